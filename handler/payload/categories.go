package payload

import (
	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
)

type CategoryResponse struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// CategoryCountResponse adds how many published posts the category holds;
// the sidebar prints the number next to the name.
type CategoryCountResponse struct {
	CategoryResponse
	Posts int64 `json:"posts"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"omitempty,max=255"`
	Description string `json:"description" validate:"max=1000"`
}

func GetCategoryResponse(c database.Category) CategoryResponse {
	return CategoryResponse{
		UUID:        c.UUID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

func GetCategoryCountResponse(c repository.CategoryCount) CategoryCountResponse {
	return CategoryCountResponse{
		CategoryResponse: GetCategoryResponse(c.Category),
		Posts:            c.Posts,
	}
}
