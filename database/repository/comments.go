package repository

import (
	"fmt"

	"github.com/google/uuid"
	baseGorm "gorm.io/gorm"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/pkg/gorm"
)

type Comments struct {
	DB *database.Connection
}

// GetVisibleFor returns a post's visible comments, newest first, with their
// replies preloaded oldest first so threads read top to bottom.
func (c Comments) GetVisibleFor(postID uint64) ([]database.Comment, error) {
	var comments []database.Comment

	err := c.DB.Sql().
		Where("post_id = ?", postID).
		Where("status = ?", database.CommentStatusVisible).
		Order("created_at desc").
		Preload("Replies", func(db *baseGorm.DB) *baseGorm.DB {
			return db.Order("replies.created_at asc")
		}).
		Find(&comments).Error

	if err != nil {
		return nil, err
	}

	return comments, nil
}

// GetRecent returns the newest comments across every post for the admin
// dashboard, hidden ones included.
func (c Comments) GetRecent(limit int) ([]database.Comment, error) {
	var comments []database.Comment

	err := c.DB.Sql().
		Order("created_at desc").
		Limit(limit).
		Preload("Post").
		Find(&comments).Error

	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (c Comments) FindBy(id uint64) *database.Comment {
	comment := database.Comment{}

	result := c.DB.Sql().First(&comment, id)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &comment
	}

	return nil
}

func (c Comments) Create(attrs database.CommentsAttrs) (*database.Comment, error) {
	comment := database.Comment{
		UUID:        uuid.NewString(),
		PostID:      attrs.PostID,
		AuthorName:  attrs.AuthorName,
		AuthorEmail: attrs.AuthorEmail,
		Content:     attrs.Content,
		Status:      database.CommentStatusVisible,
	}

	if result := c.DB.Sql().Create(&comment); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating comments: %w", result.Error)
	}

	return &comment, nil
}

func (c Comments) SetStatus(comment *database.Comment, status string) error {
	if status != database.CommentStatusVisible && status != database.CommentStatusHidden {
		return fmt.Errorf("unknown comment status [%s]", status)
	}

	comment.Status = status

	if result := c.DB.Sql().Save(comment); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue updating the comment status: %s", result.Error)
	}

	return nil
}

// Delete removes a comment with its replies and reactions.
func (c Comments) Delete(comment *database.Comment) error {
	return c.DB.Transaction(func(db *baseGorm.DB) error {
		if err := db.Where("comment_id = ?", comment.ID).Delete(&database.Reply{}).Error; err != nil {
			return fmt.Errorf("issue deleting the comment replies: %s", err)
		}

		if err := db.Where("comment_id = ?", comment.ID).Delete(&database.Reaction{}).Error; err != nil {
			return fmt.Errorf("issue deleting the comment reactions: %s", err)
		}

		if err := db.Delete(comment).Error; err != nil {
			return fmt.Errorf("issue deleting the comment: %s", err)
		}

		return nil
	})
}

func (c Comments) Count() (int64, error) {
	var count int64

	err := c.DB.Sql().Model(&database.Comment{}).Count(&count).Error

	return count, err
}

// ReconcileTallies recomputes the denormalised like and dislike counters
// from the reactions table. The scheduler runs it to repair any drift left
// by crashed toggles.
func (c Comments) ReconcileTallies() error {
	var comments []database.Comment

	if err := c.DB.Sql().Find(&comments).Error; err != nil {
		return err
	}

	for i := range comments {
		comment := &comments[i]

		var likes, dislikes int64

		err := c.DB.Sql().
			Model(&database.Reaction{}).
			Where("comment_id = ? AND kind = ?", comment.ID, database.ReactionLike).
			Count(&likes).Error

		if err != nil {
			return err
		}

		err = c.DB.Sql().
			Model(&database.Reaction{}).
			Where("comment_id = ? AND kind = ?", comment.ID, database.ReactionDislike).
			Count(&dislikes).Error

		if err != nil {
			return err
		}

		if comment.LikesCount == likes && comment.DislikesCount == dislikes {
			continue
		}

		updates := map[string]any{
			"likes_count":    likes,
			"dislikes_count": dislikes,
		}

		err = c.DB.Sql().
			Model(&database.Comment{}).
			Where("id = ?", comment.ID).
			Updates(updates).Error

		if err != nil {
			return err
		}
	}

	return nil
}
