package repository

import (
	"fmt"

	"github.com/google/uuid"
	baseGorm "gorm.io/gorm"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/pkg/gorm"
)

type Reactions struct {
	DB *database.Connection
}

func (r Reactions) FindBy(commentID uint64, visitorID string) *database.Reaction {
	reaction := database.Reaction{}

	result := r.DB.Sql().
		Where("comment_id = ? AND visitor_id = ?", commentID, visitorID).
		First(&reaction)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &reaction
	}

	return nil
}

// Toggle applies a visitor's reaction and returns the kind now held, empty
// when the toggle removed it. Pressing the held kind again undoes it;
// pressing the other kind switches. The comment tallies move with the
// reaction inside one transaction.
func (r Reactions) Toggle(attrs database.ReactionsAttrs) (string, error) {
	if attrs.Kind != database.ReactionLike && attrs.Kind != database.ReactionDislike {
		return "", fmt.Errorf("unknown reaction kind [%s]", attrs.Kind)
	}

	var held string

	err := r.DB.Transaction(func(db *baseGorm.DB) error {
		// The current state is read inside the transaction so concurrent
		// toggles from the same visitor serialise instead of both acting on
		// a stale snapshot.
		current := database.Reaction{}
		result := db.
			Where("comment_id = ? AND visitor_id = ?", attrs.CommentID, attrs.VisitorID).
			First(&current)

		if gorm.IsNotFound(result.Error) {
			reaction := database.Reaction{
				UUID:      uuid.NewString(),
				CommentID: attrs.CommentID,
				VisitorID: attrs.VisitorID,
				Kind:      attrs.Kind,
			}

			if err := db.Create(&reaction).Error; err != nil {
				return fmt.Errorf("issue creating reactions: %w", err)
			}

			held = attrs.Kind

			return r.shiftTally(db, attrs.CommentID, attrs.Kind, 1)
		}

		if result.Error != nil {
			return fmt.Errorf("issue reading reactions: %w", result.Error)
		}

		if current.Kind == attrs.Kind {
			if err := db.Delete(&current).Error; err != nil {
				return fmt.Errorf("issue removing reactions: %w", err)
			}

			held = ""

			return r.shiftTally(db, attrs.CommentID, attrs.Kind, -1)
		}

		previous := current.Kind
		current.Kind = attrs.Kind

		if err := db.Save(&current).Error; err != nil {
			return fmt.Errorf("issue switching reactions: %w", err)
		}

		held = attrs.Kind

		if err := r.shiftTally(db, attrs.CommentID, previous, -1); err != nil {
			return err
		}

		return r.shiftTally(db, attrs.CommentID, attrs.Kind, 1)
	})

	if err != nil {
		return "", err
	}

	return held, nil
}

func (r Reactions) shiftTally(db *baseGorm.DB, commentID uint64, kind string, delta int) error {
	column := "likes_count"
	if kind == database.ReactionDislike {
		column = "dislikes_count"
	}

	err := db.Model(&database.Comment{}).
		Where("id = ?", commentID).
		UpdateColumn(column, baseGorm.Expr(column+" + ?", delta)).Error

	if err != nil {
		return fmt.Errorf("issue shifting the comment tally: %w", err)
	}

	return nil
}

func (r Reactions) CountFor(commentID uint64, kind string) (int64, error) {
	var count int64

	err := r.DB.Sql().
		Model(&database.Reaction{}).
		Where("comment_id = ? AND kind = ?", commentID, kind).
		Count(&count).Error

	return count, err
}
