package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/database/repository/pagination"
	"github.com/Samuel-Loga/Personal-Website/handler/payload"
)

func makeAdminPostsTestHandler(t *testing.T) (AdminPostsHandler, *database.Connection) {
	t.Helper()

	conn := makeTestConn(t)
	makeTestAuthor(t, conn)

	h := MakeAdminPostsHandler(
		&repository.Posts{DB: conn},
		&repository.Categories{DB: conn},
		&repository.Users{DB: conn},
		"samuel@example.test",
	)

	return h, conn
}

func TestAdminPostsHandlerIndex_IncludesDrafts(t *testing.T) {
	h, conn := makeAdminPostsTestHandler(t)

	author := database.User{}
	if err := conn.Sql().First(&author).Error; err != nil {
		t.Fatalf("find author: %v", err)
	}

	makeTestPost(t, conn, author, "live-post", true)
	makeTestPost(t, conn, author, "draft-post", false)

	req := httptest.NewRequest("GET", "/admin/posts", nil)
	rec := httptest.NewRecorder()

	if apiErr := h.Index(rec, req); apiErr != nil {
		t.Fatalf("index err: %v", apiErr.Message)
	}

	resp := decodeBody[pagination.Pagination[payload.PostResponse]](t, rec)

	if len(resp.Data) != 2 {
		t.Fatalf("expected drafts in the admin listing, got %d posts", len(resp.Data))
	}
}

func TestAdminPostsHandlerStore_SlugsFromTitle(t *testing.T) {
	h, _ := makeAdminPostsTestHandler(t)

	body := `{"title":"My Grand Plan","content":"<p>soon</p>","published":false}`

	req := httptest.NewRequest("POST", "/admin/posts", strings.NewReader(body))
	rec := httptest.NewRecorder()

	if apiErr := h.Store(rec, req); apiErr != nil {
		t.Fatalf("store err: %v", apiErr.Message)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d", rec.Code)
	}

	resp := decodeBody[payload.PostResponse](t, rec)

	if resp.Slug != "my-grand-plan" {
		t.Fatalf("expected the slug to derive from the title, got %s", resp.Slug)
	}

	if resp.PublishedAt != nil {
		t.Fatalf("expected a draft")
	}
}

func TestAdminPostsHandlerStore_UnknownCategory(t *testing.T) {
	h, _ := makeAdminPostsTestHandler(t)

	body := `{"title":"Typo","content":"x","category_slug":"does-not-exist"}`

	req := httptest.NewRequest("POST", "/admin/posts", strings.NewReader(body))
	rec := httptest.NewRecorder()

	apiErr := h.Store(rec, req)
	if apiErr == nil || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected a bad request, got %+v", apiErr)
	}
}

func TestAdminPostsHandlerStore_ValidationError(t *testing.T) {
	h, _ := makeAdminPostsTestHandler(t)

	req := httptest.NewRequest("POST", "/admin/posts", strings.NewReader(`{"title":""}`))
	rec := httptest.NewRecorder()

	apiErr := h.Store(rec, req)
	if apiErr == nil || apiErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected a validation error, got %+v", apiErr)
	}
}

func TestAdminPostsHandlerUpdate_PreservesPublicationDate(t *testing.T) {
	h, conn := makeAdminPostsTestHandler(t)

	author := database.User{}
	if err := conn.Sql().First(&author).Error; err != nil {
		t.Fatalf("find author: %v", err)
	}

	post := makeTestPost(t, conn, author, "evolving-post", true)
	originallyPublishedAt := *post.PublishedAt

	body := `{"slug":"evolving-post","title":"Evolving Post, Revised","content":"<p>new body</p>","published":true}`

	req := httptest.NewRequest("PUT", "/admin/posts/evolving-post", strings.NewReader(body))
	req.SetPathValue("slug", "evolving-post")
	rec := httptest.NewRecorder()

	if apiErr := h.Update(rec, req); apiErr != nil {
		t.Fatalf("update err: %v", apiErr.Message)
	}

	resp := decodeBody[payload.PostResponse](t, rec)

	if resp.Title != "Evolving Post, Revised" {
		t.Fatalf("expected the title to change, got %s", resp.Title)
	}

	if resp.PublishedAt == nil || !resp.PublishedAt.Equal(originallyPublishedAt) {
		t.Fatalf("expected the original publication date to survive the edit")
	}
}

func TestAdminPostsHandlerUpdate_Unpublishes(t *testing.T) {
	h, conn := makeAdminPostsTestHandler(t)

	author := database.User{}
	if err := conn.Sql().First(&author).Error; err != nil {
		t.Fatalf("find author: %v", err)
	}

	makeTestPost(t, conn, author, "retracted-post", true)

	body := `{"slug":"retracted-post","title":"Retracted Post","content":"x","published":false}`

	req := httptest.NewRequest("PUT", "/admin/posts/retracted-post", strings.NewReader(body))
	req.SetPathValue("slug", "retracted-post")
	rec := httptest.NewRecorder()

	if apiErr := h.Update(rec, req); apiErr != nil {
		t.Fatalf("update err: %v", apiErr.Message)
	}

	if found := (repository.Posts{DB: conn}).FindPublishedBy("retracted-post"); found != nil {
		t.Fatalf("expected the post to drop out of the public site")
	}
}

func TestAdminPostsHandlerDestroy(t *testing.T) {
	h, conn := makeAdminPostsTestHandler(t)

	author := database.User{}
	if err := conn.Sql().First(&author).Error; err != nil {
		t.Fatalf("find author: %v", err)
	}

	makeTestPost(t, conn, author, "doomed-post", true)

	req := httptest.NewRequest("DELETE", "/admin/posts/doomed-post", nil)
	req.SetPathValue("slug", "doomed-post")
	rec := httptest.NewRecorder()

	if apiErr := h.Destroy(rec, req); apiErr != nil {
		t.Fatalf("destroy err: %v", apiErr.Message)
	}

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d", rec.Code)
	}

	if found := (repository.Posts{DB: conn}).FindBy("doomed-post"); found != nil {
		t.Fatalf("expected the post to be gone")
	}
}

func TestAdminPostsHandlerDestroy_Unknown(t *testing.T) {
	h, _ := makeAdminPostsTestHandler(t)

	req := httptest.NewRequest("DELETE", "/admin/posts/missing", nil)
	req.SetPathValue("slug", "missing")
	rec := httptest.NewRecorder()

	apiErr := h.Destroy(rec, req)
	if apiErr == nil || apiErr.Status != http.StatusNotFound {
		t.Fatalf("expected a not found, got %+v", apiErr)
	}
}

func TestAdminPostsHandlerStore_RejectsEmptyPublishedBody(t *testing.T) {
	h, conn := makeAdminPostsTestHandler(t)

	body := `{"title":"Empty body post","content":"<p>   </p>","published":true}`

	req := httptest.NewRequest("POST", "/admin/posts", strings.NewReader(body))
	rec := httptest.NewRecorder()

	apiErr := h.Store(rec, req)
	if apiErr == nil || apiErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected the hollow body to be rejected, got %+v", apiErr)
	}

	if _, ok := apiErr.Data["Content"]; !ok {
		t.Fatalf("expected a field error on Content, got %v", apiErr.Data)
	}

	var count int64
	if err := conn.Sql().Model(&database.Post{}).Count(&count).Error; err != nil {
		t.Fatalf("count posts: %v", err)
	}

	if count != 0 {
		t.Fatalf("expected nothing to be stored, got %d posts", count)
	}

	// The same markup is storable as a draft.
	draft := `{"title":"Empty body post","content":"<p>   </p>","published":false}`

	draftReq := httptest.NewRequest("POST", "/admin/posts", strings.NewReader(draft))
	draftRec := httptest.NewRecorder()

	if apiErr := h.Store(draftRec, draftReq); apiErr != nil {
		t.Fatalf("store draft err: %v", apiErr.Message)
	}

	if draftRec.Code != http.StatusCreated {
		t.Fatalf("expected the draft to be created, got %d", draftRec.Code)
	}
}

func TestAdminPostsHandlerUpdate_RejectsPublishingEmptyBody(t *testing.T) {
	h, conn := makeAdminPostsTestHandler(t)

	author := database.User{}
	if err := conn.Sql().First(&author).Error; err != nil {
		t.Fatalf("find author: %v", err)
	}

	makeTestPost(t, conn, author, "thin-draft", false)

	body := `{"slug":"thin-draft","title":"Thin Draft","content":"<blockquote>  </blockquote>","published":true}`

	req := httptest.NewRequest("PUT", "/admin/posts/thin-draft", strings.NewReader(body))
	req.SetPathValue("slug", "thin-draft")
	rec := httptest.NewRecorder()

	apiErr := h.Update(rec, req)
	if apiErr == nil || apiErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected the hollow body to block publication, got %+v", apiErr)
	}

	if found := (repository.Posts{DB: conn}).FindPublishedBy("thin-draft"); found != nil {
		t.Fatalf("expected the post to stay a draft")
	}
}
