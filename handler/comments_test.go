package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/handler/payload"
)

func makeCommentsTestHandler(t *testing.T) (CommentsHandler, *database.Connection, database.Post) {
	t.Helper()

	conn := makeTestConn(t)
	author := makeTestAuthor(t, conn)
	post := makeTestPost(t, conn, author, "threaded-post", true)

	h := MakeCommentsHandler(
		&repository.Posts{DB: conn},
		&repository.Comments{DB: conn},
		&repository.Reactions{DB: conn},
	)

	return h, conn, post
}

func TestCommentsHandlerIndex_HidesModeratedComments(t *testing.T) {
	h, conn, post := makeCommentsTestHandler(t)

	makeTestComment(t, conn, post, "Ann")
	hidden := makeTestComment(t, conn, post, "Spam Bot")

	if err := (repository.Comments{DB: conn}).SetStatus(&hidden, database.CommentStatusHidden); err != nil {
		t.Fatalf("hide comment: %v", err)
	}

	req := httptest.NewRequest("GET", "/posts/threaded-post/comments", nil)
	req.SetPathValue("slug", "threaded-post")
	rec := httptest.NewRecorder()

	if apiErr := h.Index(rec, req); apiErr != nil {
		t.Fatalf("index err: %v", apiErr.Message)
	}

	resp := decodeBody[payload.CommentsIndexResponse](t, rec)

	if resp.TotalComments != 1 || len(resp.Comments) != 1 {
		t.Fatalf("expected a single visible comment, got %d", resp.TotalComments)
	}

	if resp.Comments[0].AuthorName != "Ann" {
		t.Fatalf("unexpected author: %s", resp.Comments[0].AuthorName)
	}

	// The visitor id cookie is minted on first contact.
	if len(rec.Result().Cookies()) == 0 {
		t.Fatalf("expected the client cookie to be set")
	}
}

func TestCommentsHandlerIndex_DraftPost(t *testing.T) {
	h, conn, _ := makeCommentsTestHandler(t)

	author := database.User{}
	if err := conn.Sql().First(&author).Error; err != nil {
		t.Fatalf("find author: %v", err)
	}

	makeTestPost(t, conn, author, "quiet-draft", false)

	req := httptest.NewRequest("GET", "/posts/quiet-draft/comments", nil)
	req.SetPathValue("slug", "quiet-draft")
	rec := httptest.NewRecorder()

	apiErr := h.Index(rec, req)
	if apiErr == nil || apiErr.Status != http.StatusNotFound {
		t.Fatalf("expected a not found, got %+v", apiErr)
	}
}

func TestCommentsHandlerStore_Success(t *testing.T) {
	h, _, _ := makeCommentsTestHandler(t)

	body := `{"author_name":"Ann","author_email":"ann@example.test","content":"Great post!","remember":true}`

	req := httptest.NewRequest("POST", "/posts/threaded-post/comments", strings.NewReader(body))
	req.SetPathValue("slug", "threaded-post")
	rec := httptest.NewRecorder()

	if apiErr := h.Store(rec, req); apiErr != nil {
		t.Fatalf("store err: %v", apiErr.Message)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d", rec.Code)
	}

	resp := decodeBody[payload.CommentResponse](t, rec)

	if resp.ID == 0 || resp.AuthorName != "Ann" {
		t.Fatalf("unexpected comment: %+v", resp)
	}

	if len(rec.Result().Cookies()) == 0 {
		t.Fatalf("expected the remembered details to be written")
	}
}

func TestCommentsHandlerStore_RememberPrefillsNextIndex(t *testing.T) {
	h, _, _ := makeCommentsTestHandler(t)

	body := `{"author_name":"Ann","author_email":"ann@example.test","content":"Remember me","remember":true}`

	storeReq := httptest.NewRequest("POST", "/posts/threaded-post/comments", strings.NewReader(body))
	storeReq.SetPathValue("slug", "threaded-post")
	storeRec := httptest.NewRecorder()

	if apiErr := h.Store(storeRec, storeReq); apiErr != nil {
		t.Fatalf("store err: %v", apiErr.Message)
	}

	indexReq := httptest.NewRequest("GET", "/posts/threaded-post/comments", nil)
	indexReq.SetPathValue("slug", "threaded-post")
	carryCookies(storeRec, indexReq)
	indexRec := httptest.NewRecorder()

	if apiErr := h.Index(indexRec, indexReq); apiErr != nil {
		t.Fatalf("index err: %v", apiErr.Message)
	}

	resp := decodeBody[payload.CommentsIndexResponse](t, indexRec)

	if resp.PrefillName != "Ann" || resp.PrefillEmail != "ann@example.test" {
		t.Fatalf("expected the form prefill to carry over, got %q / %q", resp.PrefillName, resp.PrefillEmail)
	}
}

func TestCommentsHandlerStore_ValidationError(t *testing.T) {
	h, _, _ := makeCommentsTestHandler(t)

	body := `{"author_name":"","content":""}`

	req := httptest.NewRequest("POST", "/posts/threaded-post/comments", strings.NewReader(body))
	req.SetPathValue("slug", "threaded-post")
	rec := httptest.NewRecorder()

	apiErr := h.Store(rec, req)
	if apiErr == nil || apiErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected a validation error, got %+v", apiErr)
	}

	if len(apiErr.Data) == 0 {
		t.Fatalf("expected field errors in the response data")
	}
}

func TestCommentsHandlerStore_UnknownPost(t *testing.T) {
	h, _, _ := makeCommentsTestHandler(t)

	req := httptest.NewRequest("POST", "/posts/missing/comments", strings.NewReader(`{}`))
	req.SetPathValue("slug", "missing")
	rec := httptest.NewRecorder()

	apiErr := h.Store(rec, req)
	if apiErr == nil || apiErr.Status != http.StatusNotFound {
		t.Fatalf("expected a not found, got %+v", apiErr)
	}
}
