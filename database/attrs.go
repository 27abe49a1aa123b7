package database

import (
	"time"
)

type UsersAttrs struct {
	Username     string
	DisplayName  string
	Email        string
	PasswordHash string
	IsAdmin      bool
}

type CategoriesAttrs struct {
	Id          uint64
	Slug        string
	Name        string
	Description string
}

type PostsAttrs struct {
	AuthorID      uint64
	CategoryID    *uint64
	Slug          string
	Title         string
	Excerpt       string
	Content       string
	CoverImageURL string
	PublishedAt   *time.Time
}

type CommentsAttrs struct {
	PostID      uint64
	AuthorName  string
	AuthorEmail string
	Content     string
}

type RepliesAttrs struct {
	CommentID   uint64
	AuthorName  string
	AuthorEmail string
	Content     string
}

type ReactionsAttrs struct {
	CommentID uint64
	VisitorID string
	Kind      string
}

type SubscribersAttrs struct {
	Email string
}
