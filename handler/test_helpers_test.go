package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
)

func makeTestConn(t *testing.T) *database.Connection {
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

	return database.NewConnectionFromGorm(db)
}

func makeTestAuthor(t *testing.T, conn *database.Connection) database.User {
	t.Helper()

	user := database.User{
		UUID:         uuid.NewString(),
		Username:     "samuel",
		DisplayName:  "Samuel",
		Email:        "samuel@example.test",
		PasswordHash: "hash",
		IsAdmin:      true,
	}

	if err := conn.Sql().Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	return user
}

func makeTestPost(t *testing.T, conn *database.Connection, author database.User, slug string, published bool) database.Post {
	t.Helper()

	var publishedAt *time.Time
	if published {
		ts := time.Now().UTC().Add(-time.Hour)
		publishedAt = &ts
	}

	post, err := repository.Posts{DB: conn}.Create(database.PostsAttrs{
		AuthorID:    author.ID,
		Slug:        slug,
		Title:       "Post " + slug,
		Excerpt:     "Excerpt for " + slug,
		Content:     "<p>Body for " + slug + "</p>",
		PublishedAt: publishedAt,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	return *post
}

func makeTestComment(t *testing.T, conn *database.Connection, post database.Post, author string) database.Comment {
	t.Helper()

	comment, err := repository.Comments{DB: conn}.Create(database.CommentsAttrs{
		PostID:     post.ID,
		AuthorName: author,
		Content:    "A note from " + author,
	})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	return *comment
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	return out
}

// carryCookies copies the Set-Cookie values from a previous response onto a
// follow-up request, the way a browser would.
func carryCookies(rec *httptest.ResponseRecorder, req *http.Request) {
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
}
