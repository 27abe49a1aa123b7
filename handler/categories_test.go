package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/handler/payload"
)

func makeCategoriesTestHandler(t *testing.T) (CategoriesHandler, *database.Connection) {
	t.Helper()

	conn := makeTestConn(t)

	return MakeCategoriesHandler(&repository.Categories{DB: conn}), conn
}

func seedHandlerCategory(t *testing.T, conn *database.Connection, slug, name string) database.Category {
	t.Helper()

	category := database.Category{UUID: uuid.NewString(), Slug: slug, Name: name}
	if err := conn.Sql().Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}

	return category
}

func TestCategoriesHandlerIndex(t *testing.T) {
	h, conn := makeCategoriesTestHandler(t)

	seedHandlerCategory(t, conn, "tech", "Tech")
	seedHandlerCategory(t, conn, "career", "Career")

	req := httptest.NewRequest("GET", "/categories", nil)
	rec := httptest.NewRecorder()

	if apiErr := h.Index(rec, req); apiErr != nil {
		t.Fatalf("index err: %v", apiErr.Message)
	}

	resp := decodeBody[[]payload.CategoryCountResponse](t, rec)

	if len(resp) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(resp))
	}

	if resp[0].Slug != "career" {
		t.Fatalf("expected alphabetical ordering, got %s first", resp[0].Slug)
	}
}

func TestCategoriesHandlerStore_SlugsFromName(t *testing.T) {
	h, _ := makeCategoriesTestHandler(t)

	req := httptest.NewRequest("POST", "/admin/categories", strings.NewReader(`{"name":"Side Projects"}`))
	rec := httptest.NewRecorder()

	if apiErr := h.Store(rec, req); apiErr != nil {
		t.Fatalf("store err: %v", apiErr.Message)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d", rec.Code)
	}

	resp := decodeBody[payload.CategoryResponse](t, rec)

	if resp.Slug != "side-projects" {
		t.Fatalf("expected the slug to derive from the name, got %s", resp.Slug)
	}
}

func TestCategoriesHandlerStore_Duplicate(t *testing.T) {
	h, conn := makeCategoriesTestHandler(t)

	seedHandlerCategory(t, conn, "tech", "Tech")

	req := httptest.NewRequest("POST", "/admin/categories", strings.NewReader(`{"name":"Tech","slug":"tech"}`))
	rec := httptest.NewRecorder()

	apiErr := h.Store(rec, req)
	if apiErr == nil || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected a bad request, got %+v", apiErr)
	}
}

func TestCategoriesHandlerUpdate(t *testing.T) {
	h, conn := makeCategoriesTestHandler(t)

	seedHandlerCategory(t, conn, "tech", "Tech")

	req := httptest.NewRequest("PUT", "/admin/categories/tech", strings.NewReader(`{"name":"Technology"}`))
	req.SetPathValue("slug", "tech")
	rec := httptest.NewRecorder()

	if apiErr := h.Update(rec, req); apiErr != nil {
		t.Fatalf("update err: %v", apiErr.Message)
	}

	resp := decodeBody[payload.CategoryResponse](t, rec)

	if resp.Name != "Technology" || resp.Slug != "tech" {
		t.Fatalf("unexpected category: %+v", resp)
	}
}

func TestCategoriesHandlerDestroy_UnlinksPosts(t *testing.T) {
	h, conn := makeCategoriesTestHandler(t)

	author := makeTestAuthor(t, conn)
	category := seedHandlerCategory(t, conn, "tech", "Tech")

	post, err := repository.Posts{DB: conn}.Create(database.PostsAttrs{
		AuthorID:   author.ID,
		CategoryID: &category.ID,
		Slug:       "tethered-post",
		Title:      "Tethered Post",
		Content:    "body",
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	req := httptest.NewRequest("DELETE", "/admin/categories/tech", nil)
	req.SetPathValue("slug", "tech")
	rec := httptest.NewRecorder()

	if apiErr := h.Destroy(rec, req); apiErr != nil {
		t.Fatalf("destroy err: %v", apiErr.Message)
	}

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d", rec.Code)
	}

	found := (repository.Posts{DB: conn}).FindBy(post.Slug)
	if found == nil || found.CategoryID != nil {
		t.Fatalf("expected the post to survive uncategorised")
	}
}
