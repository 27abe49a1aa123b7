package payload

import (
	"time"

	"github.com/Samuel-Loga/Personal-Website/database"
)

type CommentResponse struct {
	ID         uint64          `json:"id"`
	UUID       string          `json:"uuid"`
	AuthorName string          `json:"author_name"`
	Content    string          `json:"content"`
	Likes      int64           `json:"likes"`
	Dislikes   int64           `json:"dislikes"`
	CreatedAt  time.Time       `json:"created_at"`
	Replies    []ReplyResponse `json:"replies"`

	// Reaction holds the requesting visitor's current reaction on this
	// comment, empty when they have none.
	Reaction string `json:"reaction,omitempty"`
}

type ReplyResponse struct {
	ID         uint64    `json:"id"`
	UUID       string    `json:"uuid"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// CommentsIndexResponse carries the thread plus the visitor's remembered
// form details for prefill.
type CommentsIndexResponse struct {
	Comments      []CommentResponse `json:"comments"`
	PrefillName   string            `json:"prefill_name"`
	PrefillEmail  string            `json:"prefill_email"`
	TotalComments int               `json:"total_comments"`
}

type CommentRequest struct {
	AuthorName  string `json:"author_name" validate:"required,max=255"`
	AuthorEmail string `json:"author_email" validate:"omitempty,email,max=255"`
	Content     string `json:"content" validate:"required,max=5000"`
	Remember    bool   `json:"remember"`
}

type ReplyRequest struct {
	AuthorName  string `json:"author_name" validate:"required,max=255"`
	AuthorEmail string `json:"author_email" validate:"omitempty,email,max=255"`
	Content     string `json:"content" validate:"required,max=5000"`
	Remember    bool   `json:"remember"`
}

type ReactionRequest struct {
	Kind string `json:"kind" validate:"required,oneof=like dislike"`
}

type ReactionResponse struct {
	CommentID uint64 `json:"comment_id"`
	Reaction  string `json:"reaction"`
	Likes     int64  `json:"likes"`
	Dislikes  int64  `json:"dislikes"`
}

// AdminCommentResponse exposes moderation fields readers never see.
type AdminCommentResponse struct {
	ID          uint64    `json:"id"`
	UUID        string    `json:"uuid"`
	PostSlug    string    `json:"post_slug"`
	PostTitle   string    `json:"post_title"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	Content     string    `json:"content"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type CommentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=visible hidden"`
}

func GetCommentResponse(c database.Comment, reaction string) CommentResponse {
	replies := make([]ReplyResponse, 0, len(c.Replies))

	for _, reply := range c.Replies {
		replies = append(replies, GetReplyResponse(reply))
	}

	return CommentResponse{
		ID:         c.ID,
		UUID:       c.UUID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		Likes:      c.LikesCount,
		Dislikes:   c.DislikesCount,
		CreatedAt:  c.CreatedAt,
		Replies:    replies,
		Reaction:   reaction,
	}
}

func GetReplyResponse(r database.Reply) ReplyResponse {
	return ReplyResponse{
		ID:         r.ID,
		UUID:       r.UUID,
		AuthorName: r.AuthorName,
		Content:    r.Content,
		CreatedAt:  r.CreatedAt,
	}
}

func GetAdminCommentResponse(c database.Comment) AdminCommentResponse {
	return AdminCommentResponse{
		ID:          c.ID,
		UUID:        c.UUID,
		PostSlug:    c.Post.Slug,
		PostTitle:   c.Post.Title,
		AuthorName:  c.AuthorName,
		AuthorEmail: c.AuthorEmail,
		Content:     c.Content,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
	}
}
