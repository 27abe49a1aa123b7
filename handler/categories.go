package handler

import (
	"log/slog"
	baseHttp "net/http"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/handler/payload"
	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

type CategoriesHandler struct {
	Categories *repository.Categories
	Validator  *portal.Validator
}

func MakeCategoriesHandler(categories *repository.Categories) CategoriesHandler {
	return CategoriesHandler{
		Categories: categories,
		Validator:  portal.GetDefaultValidator(),
	}
}

// Index lists every category with its published-post tally.
func (h *CategoriesHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	counts, err := h.Categories.GetWithCounts(0)
	if err != nil {
		slog.Error("Error getting categories", "err", err)
		return endpoint.InternalError("Error getting categories")
	}

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(hydrateCategoryCounts(counts)); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *CategoriesHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	request, err := endpoint.ParseRequestBody[payload.CategoryRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if rejects, _ := h.Validator.Rejects(request); rejects {
		return endpoint.UnprocessableEntity("invalid category details", h.Validator.GetErrors())
	}

	slug := request.Slug
	if slug == "" {
		slug = portal.NewStringable(request.Name).ToSlug()
	}

	category, err := h.Categories.Create(database.CategoriesAttrs{
		Slug:        slug,
		Name:        request.Name,
		Description: request.Description,
	})

	if err != nil {
		return endpoint.LogBadRequestError(err.Error(), err)
	}

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondCreated(payload.GetCategoryResponse(*category)); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}

func (h *CategoriesHandler) Update(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	slug := payload.GetSlugFrom(r)

	category := h.Categories.FindBy(slug)
	if category == nil {
		return endpoint.NotFound("category not found")
	}

	request, err := endpoint.ParseRequestBody[payload.CategoryRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if rejects, _ := h.Validator.Rejects(request); rejects {
		return endpoint.UnprocessableEntity("invalid category details", h.Validator.GetErrors())
	}

	err = h.Categories.Update(category, database.CategoriesAttrs{
		Slug:        request.Slug,
		Name:        request.Name,
		Description: request.Description,
	})

	if err != nil {
		return endpoint.LogInternalError("Error updating the category", err)
	}

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.GetCategoryResponse(*category)); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}

// Destroy removes a category; its posts stay behind uncategorised.
func (h *CategoriesHandler) Destroy(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	slug := payload.GetSlugFrom(r)

	category := h.Categories.FindBy(slug)
	if category == nil {
		return endpoint.NotFound("category not found")
	}

	if err := h.Categories.Delete(category); err != nil {
		return endpoint.LogInternalError("Error deleting the category", err)
	}

	w.WriteHeader(baseHttp.StatusNoContent)

	return nil
}
