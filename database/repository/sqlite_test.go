package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
)

func newSQLiteConnection(t *testing.T) (*database.Connection, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(database.GetSchemaModels()...); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database.NewConnectionFromGorm(db), db
}

func seedUser(t *testing.T, conn *database.Connection, username string) database.User {
	t.Helper()

	user := database.User{
		UUID:         uuid.NewString(),
		Username:     username,
		DisplayName:  username,
		Email:        username + "@example.test",
		PasswordHash: "hash",
		IsAdmin:      true,
	}

	if err := conn.Sql().Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	return user
}

func seedCategory(t *testing.T, conn *database.Connection, slug, name string) database.Category {
	t.Helper()

	category := database.Category{
		UUID: uuid.NewString(),
		Slug: slug,
		Name: name,
	}

	if err := conn.Sql().Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}

	return category
}

func seedPost(t *testing.T, conn *database.Connection, author database.User, category *database.Category, slug, title string, publishedAt *time.Time) database.Post {
	t.Helper()

	var categoryID *uint64
	if category != nil {
		categoryID = &category.ID
	}

	post, err := repository.Posts{DB: conn}.Create(database.PostsAttrs{
		AuthorID:    author.ID,
		CategoryID:  categoryID,
		Slug:        slug,
		Title:       title,
		Excerpt:     title + " excerpt",
		Content:     title + " content",
		PublishedAt: publishedAt,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	return *post
}

func seedComment(t *testing.T, conn *database.Connection, post database.Post, author, content string) database.Comment {
	t.Helper()

	comment, err := repository.Comments{DB: conn}.Create(database.CommentsAttrs{
		PostID:     post.ID,
		AuthorName: author,
		Content:    content,
	})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	return *comment
}

func seedReply(t *testing.T, conn *database.Connection, comment database.Comment, author, content string) database.Reply {
	t.Helper()

	reply, err := repository.Replies{DB: conn}.Create(database.RepliesAttrs{
		CommentID:  comment.ID,
		AuthorName: author,
		Content:    content,
	})
	if err != nil {
		t.Fatalf("create reply: %v", err)
	}

	return *reply
}

func pastTime(t *testing.T, hoursAgo int) *time.Time {
	t.Helper()

	ts := time.Now().UTC().Add(-time.Duration(hoursAgo) * time.Hour)

	return &ts
}
