package handler

import (
	"log/slog"
	baseHttp "net/http"
	"time"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/database/repository/pagination"
	"github.com/Samuel-Loga/Personal-Website/handler/paginate"
	"github.com/Samuel-Loga/Personal-Website/handler/payload"
	"github.com/Samuel-Loga/Personal-Website/pkg/editor"
	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

// AdminPostsHandler covers the authoring side: drafts included, nothing
// cached.
type AdminPostsHandler struct {
	Posts      *repository.Posts
	Categories *repository.Categories
	Users      *repository.Users
	Validator  *portal.Validator
	AdminEmail string
}

func MakeAdminPostsHandler(posts *repository.Posts, categories *repository.Categories, users *repository.Users, adminEmail string) AdminPostsHandler {
	return AdminPostsHandler{
		Posts:      posts,
		Categories: categories,
		Users:      users,
		Validator:  portal.GetDefaultValidator(),
		AdminEmail: adminEmail,
	}
}

func (h *AdminPostsHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	result, err := h.Posts.GetAll(
		paginate.NewFrom(r.URL, repository.PostsPerPage),
	)

	if err != nil {
		slog.Error("Error getting posts", "err", err)
		return endpoint.InternalError("Error getting posts")
	}

	items := pagination.HydratePagination(result, payload.GetPostResponse)

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(items); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *AdminPostsHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	request, err := endpoint.ParseRequestBody[payload.PostRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if rejects, _ := h.Validator.Rejects(request); rejects {
		return endpoint.UnprocessableEntity("invalid post details", h.Validator.GetErrors())
	}

	attrs, apiErr := h.buildAttrs(request, nil)
	if apiErr != nil {
		return apiErr
	}

	post, err := h.Posts.Create(*attrs)
	if err != nil {
		return endpoint.LogBadRequestError(err.Error(), err)
	}

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondCreated(payload.GetPostResponse(*post)); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}

func (h *AdminPostsHandler) Update(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	slug := payload.GetSlugFrom(r)

	post := h.Posts.FindBy(slug)
	if post == nil {
		return endpoint.NotFound("post not found")
	}

	request, err := endpoint.ParseRequestBody[payload.PostRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if rejects, _ := h.Validator.Rejects(request); rejects {
		return endpoint.UnprocessableEntity("invalid post details", h.Validator.GetErrors())
	}

	attrs, apiErr := h.buildAttrs(request, post)
	if apiErr != nil {
		return apiErr
	}

	if err := h.Posts.Update(post, *attrs); err != nil {
		return endpoint.LogInternalError("Error updating the post", err)
	}

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.GetPostResponse(*post)); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}

func (h *AdminPostsHandler) Destroy(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	slug := payload.GetSlugFrom(r)

	post := h.Posts.FindBy(slug)
	if post == nil {
		return endpoint.NotFound("post not found")
	}

	if err := h.Posts.Delete(post); err != nil {
		return endpoint.LogInternalError("Error deleting the post", err)
	}

	w.WriteHeader(baseHttp.StatusNoContent)

	return nil
}

// buildAttrs resolves the request into storable attributes. When updating,
// current carries the existing record so publication state survives edits
// that don't flip it.
func (h *AdminPostsHandler) buildAttrs(request payload.PostRequest, current *database.Post) (*database.PostsAttrs, *endpoint.ApiError) {
	slug := request.Slug
	if slug == "" {
		slug = portal.NewStringable(request.Title).ToSlug()
	}

	// Publication requires a body that survives tag stripping; drafts may
	// hold empty markup while they are being written.
	if request.Published && editor.StripTags(request.Content) == "" {
		return nil, endpoint.UnprocessableEntity("invalid post details", map[string]string{
			"Content": "a published post cannot have an empty body",
		})
	}

	var categoryID *uint64
	if request.CategorySlug != "" {
		category := h.Categories.FindBy(request.CategorySlug)
		if category == nil {
			return nil, endpoint.BadRequestError("the given category does not exist")
		}

		categoryID = &category.ID
	}

	var authorID uint64
	if current != nil {
		authorID = current.AuthorID
	} else {
		author := h.Users.FindBy(h.AdminEmail)
		if author == nil {
			return nil, endpoint.InternalError("the admin account is not provisioned")
		}

		authorID = author.ID
	}

	var publishedAt *time.Time
	if request.Published {
		if current != nil && current.PublishedAt != nil {
			publishedAt = current.PublishedAt
		} else {
			now := time.Now()
			publishedAt = &now
		}
	}

	return &database.PostsAttrs{
		AuthorID:      authorID,
		CategoryID:    categoryID,
		Slug:          slug,
		Title:         request.Title,
		Excerpt:       request.Excerpt,
		Content:       request.Content,
		CoverImageURL: request.CoverImageURL,
		PublishedAt:   publishedAt,
	}, nil
}
