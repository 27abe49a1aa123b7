package database

import (
	"regexp"
	"time"

	"gorm.io/gorm"
)

const DriverName = "postgres"

const (
	CommentStatusVisible = "visible"
	CommentStatusHidden  = "hidden"
)

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// User holds the site owner's account. The blog has a single admin; the
// table exists so credentials live next to the rest of the data.
type User struct {
	ID           uint64         `gorm:"primaryKey"`
	UUID         string         `gorm:"type:uuid;uniqueIndex;not null"`
	Username     string         `gorm:"uniqueIndex;size:255;not null"`
	DisplayName  string         `gorm:"size:255"`
	Email        string         `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string         `gorm:"size:255;not null"`
	IsAdmin      bool           `gorm:"default:false;not null"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

type Post struct {
	ID            uint64         `gorm:"primaryKey"`
	UUID          string         `gorm:"type:uuid;uniqueIndex;not null"`
	AuthorID      uint64         `gorm:"index;not null"`
	CategoryID    *uint64        `gorm:"index"`
	Slug          string         `gorm:"uniqueIndex;size:255;not null"`
	Title         string         `gorm:"size:255;not null"`
	Excerpt       string         `gorm:"type:text"`
	Content       string         `gorm:"type:text;not null"`
	CoverImageURL string         `gorm:"size:2048"`
	PublishedAt   *time.Time     `gorm:"index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Author   User      `gorm:"foreignKey:AuthorID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
	Comments []Comment `gorm:"foreignKey:PostID"`
}

// IsPublished reports whether the post is visible to readers.
func (p Post) IsPublished() bool {
	return p.PublishedAt != nil && !p.PublishedAt.After(time.Now())
}

type Category struct {
	ID          uint64         `gorm:"primaryKey"`
	UUID        string         `gorm:"type:uuid;uniqueIndex;not null"`
	Slug        string         `gorm:"uniqueIndex;size:255;not null"`
	Name        string         `gorm:"size:255;not null"`
	Description string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Posts []Post `gorm:"foreignKey:CategoryID"`
}

// Comment is an anonymous top-level note on a post. Status drives
// moderation: hidden comments stay in the table but never reach readers.
// LikesCount and DislikesCount are denormalised tallies kept in step with
// the reactions table; a scheduled job reconciles drift.
type Comment struct {
	ID            uint64         `gorm:"primaryKey"`
	UUID          string         `gorm:"type:uuid;uniqueIndex;not null"`
	PostID        uint64         `gorm:"index;not null"`
	AuthorName    string         `gorm:"size:255;not null"`
	AuthorEmail   string         `gorm:"size:255"`
	Content       string         `gorm:"type:text;not null"`
	Status        string         `gorm:"size:32;default:visible;not null"`
	LikesCount    int64          `gorm:"default:0;not null"`
	DislikesCount int64          `gorm:"default:0;not null"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Post    Post    `gorm:"foreignKey:PostID"`
	Replies []Reply `gorm:"foreignKey:CommentID"`
}

type Reply struct {
	ID          uint64         `gorm:"primaryKey"`
	UUID        string         `gorm:"type:uuid;uniqueIndex;not null"`
	CommentID   uint64         `gorm:"index;not null"`
	AuthorName  string         `gorm:"size:255;not null"`
	AuthorEmail string         `gorm:"size:255"`
	Content     string         `gorm:"type:text;not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Comment Comment `gorm:"foreignKey:CommentID"`
}

// Reaction records one visitor's like or dislike on a comment. The
// (comment_id, visitor_id) pair is unique so a visitor holds at most one
// reaction per comment at a time.
type Reaction struct {
	ID        uint64    `gorm:"primaryKey"`
	UUID      string    `gorm:"type:uuid;uniqueIndex;not null"`
	CommentID uint64    `gorm:"uniqueIndex:idx_reactions_comment_visitor;not null"`
	VisitorID string    `gorm:"uniqueIndex:idx_reactions_comment_visitor;size:64;not null"`
	Kind      string    `gorm:"size:16;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Comment Comment `gorm:"foreignKey:CommentID"`
}

type Subscriber struct {
	ID        uint64         `gorm:"primaryKey"`
	UUID      string         `gorm:"type:uuid;uniqueIndex;not null"`
	Email     string         `gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// GetSchemaTables lists the schema's tables in dependency order: parents
// first, children last.
func GetSchemaTables() []string {
	return []string{
		"users",
		"categories",
		"posts",
		"comments",
		"replies",
		"reactions",
		"subscribers",
	}
}

// GetSchemaModels lists every model for migrations, matching
// GetSchemaTables order.
func GetSchemaModels() []any {
	return []any{
		&User{},
		&Category{},
		&Post{},
		&Comment{},
		&Reply{},
		&Reaction{},
		&Subscriber{},
	}
}

var validTableExpression = regexp.MustCompile(`^[a-z_]{1,63}$`)

func isValidTable(name string) bool {
	if !validTableExpression.MatchString(name) {
		return false
	}

	for _, table := range GetSchemaTables() {
		if table == name {
			return true
		}
	}

	return false
}
