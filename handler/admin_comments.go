package handler

import (
	baseHttp "net/http"

	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/handler/payload"
	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

// AdminCommentsHandler moderates the thread: hide, unhide, delete.
type AdminCommentsHandler struct {
	Comments  *repository.Comments
	Validator *portal.Validator
}

func MakeAdminCommentsHandler(comments *repository.Comments) AdminCommentsHandler {
	return AdminCommentsHandler{
		Comments:  comments,
		Validator: portal.GetDefaultValidator(),
	}
}

// UpdateStatus flips a comment between visible and hidden.
func (h *AdminCommentsHandler) UpdateStatus(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	commentID, apiErr := GetCommentIDFrom(r)
	if apiErr != nil {
		return apiErr
	}

	comment := h.Comments.FindBy(commentID)
	if comment == nil {
		return endpoint.NotFound("comment not found")
	}

	request, err := endpoint.ParseRequestBody[payload.CommentStatusRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if rejects, _ := h.Validator.Rejects(request); rejects {
		return endpoint.UnprocessableEntity("invalid status", h.Validator.GetErrors())
	}

	if err := h.Comments.SetStatus(comment, request.Status); err != nil {
		return endpoint.LogInternalError("Error updating the comment", err)
	}

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.GetAdminCommentResponse(*comment)); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}

func (h *AdminCommentsHandler) Destroy(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	commentID, apiErr := GetCommentIDFrom(r)
	if apiErr != nil {
		return apiErr
	}

	comment := h.Comments.FindBy(commentID)
	if comment == nil {
		return endpoint.NotFound("comment not found")
	}

	if err := h.Comments.Delete(comment); err != nil {
		return endpoint.LogInternalError("Error deleting the comment", err)
	}

	w.WriteHeader(baseHttp.StatusNoContent)

	return nil
}
