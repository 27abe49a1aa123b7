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
	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
)

// Sidebar sizes on the post detail page.
const recentPostsLimit = 3
const sidebarCategoriesLimit = 6

type PostsHandler struct {
	Posts      *repository.Posts
	Categories *repository.Categories
}

func MakePostsHandler(posts *repository.Posts, categories *repository.Categories) PostsHandler {
	return PostsHandler{
		Posts:      posts,
		Categories: categories,
	}
}

// Index lists published posts. It honours ?page, ?search (title match) and
// ?category (category slug) query params.
func (h *PostsHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	filters := payload.GetPostsFiltersFrom(r.URL.Query())

	result, err := h.Posts.GetPublished(
		&filters,
		paginate.NewFrom(r.URL, repository.PostsPerPage),
	)

	if err != nil {
		slog.Error("Error getting posts", "err", err)
		return endpoint.InternalError("Error getting posts")
	}

	items := pagination.HydratePagination(result, payload.GetPostSummary)

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(items); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

// Show resolves a published post by slug and bundles the sidebar data the
// detail page renders next to it. Drafts read as missing.
func (h *PostsHandler) Show(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	slug := payload.GetSlugFrom(r)

	if slug == "" {
		return endpoint.BadRequestError("the given post slug is invalid")
	}

	post := h.Posts.FindPublishedBy(slug)
	if post == nil {
		return endpoint.NotFound("post not found")
	}

	recent, err := h.Posts.GetRecent(recentPostsLimit, post.Slug)
	if err != nil {
		slog.Error("Error getting recent posts", "err", err)
		return endpoint.InternalError("Error getting posts")
	}

	counts, err := h.Categories.GetWithCounts(sidebarCategoriesLimit)
	if err != nil {
		slog.Error("Error getting categories", "err", err)
		return endpoint.InternalError("Error getting categories")
	}

	data := payload.ShowPostResponse{
		Post:       payload.GetPostResponse(*post),
		Recent:     hydrateSummaries(recent),
		Categories: hydrateCategoryCounts(counts),
	}

	// The salt carries the edit timestamp so a stale ETag stops matching the
	// moment the post changes.
	salt := post.UUID + post.UpdatedAt.UTC().Format(time.RFC3339Nano)

	resp := endpoint.MakeResponseFrom(salt, w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()
		return nil
	}

	if err := resp.RespondOk(data); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func hydrateSummaries(posts []database.Post) []payload.PostSummary {
	summaries := make([]payload.PostSummary, 0, len(posts))

	for _, post := range posts {
		summaries = append(summaries, payload.GetPostSummary(post))
	}

	return summaries
}

func hydrateCategoryCounts(counts []repository.CategoryCount) []payload.CategoryCountResponse {
	output := make([]payload.CategoryCountResponse, 0, len(counts))

	for _, count := range counts {
		output = append(output, payload.GetCategoryCountResponse(count))
	}

	return output
}
