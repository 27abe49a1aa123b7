package handler

import (
	"log/slog"
	baseHttp "net/http"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/handler/payload"
	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
	"github.com/Samuel-Loga/Personal-Website/pkg/gorm"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

// commentWriteFailed is what anonymous writers see whenever persisting a
// comment or reply fails, FK races included.
const commentWriteFailed = "Something went wrong. Please try again later."

type CommentsHandler struct {
	Posts     *repository.Posts
	Comments  *repository.Comments
	Reactions *repository.Reactions
	Validator *portal.Validator
}

func MakeCommentsHandler(posts *repository.Posts, comments *repository.Comments, reactions *repository.Reactions) CommentsHandler {
	return CommentsHandler{
		Posts:     posts,
		Comments:  comments,
		Reactions: reactions,
		Validator: portal.GetDefaultValidator(),
	}
}

// Index returns a post's visible comment thread along with the requesting
// visitor's reaction on each comment and their remembered form details.
func (h *CommentsHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	slug := payload.GetSlugFrom(r)

	post := h.Posts.FindPublishedBy(slug)
	if post == nil {
		return endpoint.NotFound("post not found")
	}

	comments, err := h.Comments.GetVisibleFor(post.ID)
	if err != nil {
		slog.Error("Error getting comments", "err", err)
		return endpoint.InternalError("Error getting comments")
	}

	store := clientStoreFrom(r)
	visitor := visitorID(store)

	items := make([]payload.CommentResponse, 0, len(comments))

	for _, comment := range comments {
		reaction := ""
		if held := h.Reactions.FindBy(comment.ID, visitor); held != nil {
			reaction = held.Kind
		}

		items = append(items, payload.GetCommentResponse(comment, reaction))
	}

	name, _ := store.Get(clientNameKey)
	email, _ := store.Get(clientEmailKey)

	data := payload.CommentsIndexResponse{
		Comments:      items,
		PrefillName:   name,
		PrefillEmail:  email,
		TotalComments: len(items),
	}

	store.Write(w)

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(data); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

// Store creates an anonymous comment on a published post.
func (h *CommentsHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	slug := payload.GetSlugFrom(r)

	post := h.Posts.FindPublishedBy(slug)
	if post == nil {
		return endpoint.NotFound("post not found")
	}

	request, err := endpoint.ParseRequestBody[payload.CommentRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if rejects, _ := h.Validator.Rejects(request); rejects {
		return endpoint.UnprocessableEntity("invalid comment details", h.Validator.GetErrors())
	}

	comment, err := h.Comments.Create(database.CommentsAttrs{
		PostID:      post.ID,
		AuthorName:  request.AuthorName,
		AuthorEmail: request.AuthorEmail,
		Content:     request.Content,
	})

	if err != nil {
		if gorm.IsForeignKeyViolation(err) {
			return endpoint.LogBadRequestError(commentWriteFailed, err)
		}

		return endpoint.LogInternalError(commentWriteFailed, err)
	}

	store := clientStoreFrom(r)
	rememberAuthor(store, request.AuthorName, request.AuthorEmail, request.Remember)
	store.Write(w)

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondCreated(payload.GetCommentResponse(*comment, "")); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}
