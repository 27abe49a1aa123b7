package handler

import (
	baseHttp "net/http"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/handler/payload"
	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

type ReactionsHandler struct {
	Comments  *repository.Comments
	Reactions *repository.Reactions
	Validator *portal.Validator
}

func MakeReactionsHandler(comments *repository.Comments, reactions *repository.Reactions) ReactionsHandler {
	return ReactionsHandler{
		Comments:  comments,
		Reactions: reactions,
		Validator: portal.GetDefaultValidator(),
	}
}

// Store toggles the visitor's reaction on a comment. Sending the kind they
// already hold removes it; sending the other kind switches. The response
// carries the tallies after the toggle so the page can settle its
// optimistic update.
func (h *ReactionsHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	commentID, apiErr := GetCommentIDFrom(r)
	if apiErr != nil {
		return apiErr
	}

	comment := h.Comments.FindBy(commentID)
	if comment == nil || comment.Status != database.CommentStatusVisible {
		return endpoint.NotFound("comment not found")
	}

	request, err := endpoint.ParseRequestBody[payload.ReactionRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if rejects, _ := h.Validator.Rejects(request); rejects {
		return endpoint.UnprocessableEntity("invalid reaction details", h.Validator.GetErrors())
	}

	store := clientStoreFrom(r)
	visitor := visitorID(store)

	held, err := h.Reactions.Toggle(database.ReactionsAttrs{
		CommentID: comment.ID,
		VisitorID: visitor,
		Kind:      request.Kind,
	})

	if err != nil {
		return endpoint.LogInternalError("Error applying the reaction", err)
	}

	refreshed := h.Comments.FindBy(comment.ID)
	if refreshed == nil {
		return endpoint.InternalError("Error applying the reaction")
	}

	data := payload.ReactionResponse{
		CommentID: refreshed.ID,
		Reaction:  held,
		Likes:     refreshed.LikesCount,
		Dislikes:  refreshed.DislikesCount,
	}

	store.Write(w)

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(data); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}
