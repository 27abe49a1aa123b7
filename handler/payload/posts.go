package payload

import (
	"net/http"
	"strings"
	"time"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository/queries"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

type PostResponse struct {
	UUID          string     `json:"uuid"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	CoverImageURL string     `json:"cover_image_url"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Category *CategoryResponse `json:"category,omitempty"`
}

// PostSummary trims the listing and sidebar entries down to what the cards
// render.
type PostSummary struct {
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	CoverImageURL string     `json:"cover_image_url"`
	PublishedAt   *time.Time `json:"published_at"`

	Category *CategoryResponse `json:"category,omitempty"`
}

type PostRequest struct {
	Slug          string `json:"slug" validate:"omitempty,max=255"`
	Title         string `json:"title" validate:"required,max=255"`
	Excerpt       string `json:"excerpt" validate:"max=1000"`
	Content       string `json:"content" validate:"required"`
	CoverImageURL string `json:"cover_image_url" validate:"omitempty,url"`
	CategorySlug  string `json:"category_slug" validate:"omitempty,max=255"`
	Published     bool   `json:"published"`
}

// ShowPostResponse bundles the detail page: the post plus the data its
// sidebar renders.
type ShowPostResponse struct {
	Post       PostResponse            `json:"post"`
	Recent     []PostSummary           `json:"recent"`
	Categories []CategoryCountResponse `json:"categories"`
}

func GetSlugFrom(r *http.Request) string {
	str := portal.NewStringable(r.PathValue("slug"))

	return strings.TrimSpace(str.ToLower())
}

func GetPostsFiltersFrom(u interface{ Get(string) string }) queries.PostFilters {
	return queries.PostFilters{
		Search:   u.Get("search"),
		Category: u.Get("category"),
	}
}

func GetPostResponse(p database.Post) PostResponse {
	return PostResponse{
		UUID:          p.UUID,
		Slug:          p.Slug,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		CoverImageURL: p.CoverImageURL,
		PublishedAt:   p.PublishedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Category:      getCategoryRef(p.Category),
	}
}

func GetPostSummary(p database.Post) PostSummary {
	return PostSummary{
		Slug:          p.Slug,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		CoverImageURL: p.CoverImageURL,
		PublishedAt:   p.PublishedAt,
		Category:      getCategoryRef(p.Category),
	}
}

func getCategoryRef(category *database.Category) *CategoryResponse {
	if category == nil {
		return nil
	}

	response := GetCategoryResponse(*category)

	return &response
}
