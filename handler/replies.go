package handler

import (
	baseHttp "net/http"
	"strconv"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/handler/payload"
	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
	"github.com/Samuel-Loga/Personal-Website/pkg/gorm"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

type RepliesHandler struct {
	Comments  *repository.Comments
	Replies   *repository.Replies
	Validator *portal.Validator
}

func MakeRepliesHandler(comments *repository.Comments, replies *repository.Replies) RepliesHandler {
	return RepliesHandler{
		Comments:  comments,
		Replies:   replies,
		Validator: portal.GetDefaultValidator(),
	}
}

// Store creates an anonymous reply under a visible comment.
func (h *RepliesHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	commentID, apiErr := GetCommentIDFrom(r)
	if apiErr != nil {
		return apiErr
	}

	comment := h.Comments.FindBy(commentID)
	if comment == nil || comment.Status != database.CommentStatusVisible {
		return endpoint.NotFound("comment not found")
	}

	request, err := endpoint.ParseRequestBody[payload.ReplyRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if rejects, _ := h.Validator.Rejects(request); rejects {
		return endpoint.UnprocessableEntity("invalid reply details", h.Validator.GetErrors())
	}

	reply, err := h.Replies.Create(database.RepliesAttrs{
		CommentID:   comment.ID,
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

	if err := resp.RespondCreated(payload.GetReplyResponse(*reply)); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}

// GetCommentIDFrom reads the {id} path segment.
func GetCommentIDFrom(r *baseHttp.Request) (uint64, *endpoint.ApiError) {
	raw := r.PathValue("id")

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, endpoint.BadRequestError("the given comment id is invalid")
	}

	return id, nil
}
