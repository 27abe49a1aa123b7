package repository

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/pkg/gorm"
)

type Replies struct {
	DB *database.Connection
}

func (r Replies) GetFor(commentID uint64) ([]database.Reply, error) {
	var replies []database.Reply

	err := r.DB.Sql().
		Where("comment_id = ?", commentID).
		Order("created_at asc").
		Find(&replies).Error

	if err != nil {
		return nil, err
	}

	return replies, nil
}

func (r Replies) Create(attrs database.RepliesAttrs) (*database.Reply, error) {
	reply := database.Reply{
		UUID:        uuid.NewString(),
		CommentID:   attrs.CommentID,
		AuthorName:  attrs.AuthorName,
		AuthorEmail: attrs.AuthorEmail,
		Content:     attrs.Content,
	}

	if result := r.DB.Sql().Create(&reply); gorm.HasDbIssues(result.Error) {
		if gorm.IsForeignKeyViolation(result.Error) {
			return nil, result.Error
		}

		return nil, fmt.Errorf("issue creating replies: %w", result.Error)
	}

	return &reply, nil
}
