package handler

import (
	baseHttp "net/http"
	"strings"

	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/handler/payload"
	"github.com/Samuel-Loga/Personal-Website/pkg/edge"
	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

// sendNewsletterFunction is the remote function that fans the issue out to
// the mailing list.
const sendNewsletterFunction = "send-newsletter"

type NewsletterHandler struct {
	Subscribers *repository.Subscribers
	Invoker     edge.Invoker
}

func MakeNewsletterHandler(subscribers *repository.Subscribers, invoker edge.Invoker) NewsletterHandler {
	return NewsletterHandler{
		Subscribers: subscribers,
		Invoker:     invoker,
	}
}

// Send dispatches a newsletter issue to every subscriber.
func (h *NewsletterHandler) Send(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	request, err := endpoint.ParseRequestBody[payload.NewsletterRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if strings.TrimSpace(request.Subject) == "" || strings.TrimSpace(request.Content) == "" {
		return endpoint.BadRequestError("Please fill in both the subject and content.")
	}

	count, err := h.Subscribers.Count()
	if err != nil {
		return endpoint.LogInternalError("Error counting subscribers", err)
	}

	if count == 0 {
		return endpoint.BadRequestError("There are no subscribers to send to.")
	}

	dispatch := map[string]string{
		"subject": request.Subject,
		"content": request.Content,
	}

	if err := h.Invoker.Invoke(r.Context(), sendNewsletterFunction, dispatch); err != nil {
		return endpoint.LogInternalError("Error sending the newsletter", err)
	}

	data := payload.NewsletterResponse{
		Message:    "Newsletter sent successfully!",
		Recipients: int(count),
	}

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(data); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}
