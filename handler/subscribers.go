package handler

import (
	"errors"
	"log/slog"
	baseHttp "net/http"
	"strconv"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/handler/payload"
	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

type SubscribersHandler struct {
	Subscribers *repository.Subscribers
	Validator   *portal.Validator
}

func MakeSubscribersHandler(subscribers *repository.Subscribers) SubscribersHandler {
	return SubscribersHandler{
		Subscribers: subscribers,
		Validator:   portal.GetDefaultValidator(),
	}
}

// Store signs an email up for the newsletter. Subscribing twice with the
// same address reads as a conflict, not an error page.
func (h *SubscribersHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	request, err := endpoint.ParseRequestBody[payload.SubscribeRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if rejects, _ := h.Validator.Rejects(request); rejects {
		return endpoint.UnprocessableEntity("Please provide a valid email address.", h.Validator.GetErrors())
	}

	subscriber, err := h.Subscribers.Create(database.SubscribersAttrs{Email: request.Email})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSubscriber) {
			return &endpoint.ApiError{
				Message: "You are already subscribed.",
				Status:  baseHttp.StatusConflict,
			}
		}

		return endpoint.LogInternalError("Error creating the subscription", err)
	}

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondCreated(payload.GetSubscriberResponse(*subscriber)); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}

// Index lists every subscriber for the admin dashboard.
func (h *SubscribersHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	subscribers, err := h.Subscribers.GetAll()
	if err != nil {
		slog.Error("Error getting subscribers", "err", err)
		return endpoint.InternalError("Error getting subscribers")
	}

	items := make([]payload.SubscriberResponse, 0, len(subscribers))
	for _, subscriber := range subscribers {
		items = append(items, payload.GetSubscriberResponse(subscriber))
	}

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(items); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}

func (h *SubscribersHandler) Destroy(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	raw := r.PathValue("id")

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return endpoint.BadRequestError("the given subscriber id is invalid")
	}

	subscriber := h.Subscribers.FindBy(id)
	if subscriber == nil {
		return endpoint.NotFound("subscriber not found")
	}

	if err := h.Subscribers.Delete(subscriber); err != nil {
		return endpoint.LogInternalError("Error deleting the subscriber", err)
	}

	w.WriteHeader(baseHttp.StatusNoContent)

	return nil
}
