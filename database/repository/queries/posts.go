package queries

import (
	"gorm.io/gorm"
)

// ApplyPostsFilters The given query master table is "posts"
func ApplyPostsFilters(filters *PostFilters, query *gorm.DB) {
	if filters == nil {
		return
	}

	if filters.GetSearch() != "" {
		query.Where("LOWER(posts.title) LIKE ?", "%"+filters.GetSearch()+"%")
	}

	if filters.GetCategory() != "" {
		query.
			Joins("JOIN categories ON categories.id = posts.category_id").
			Where("categories.deleted_at IS NULL").
			Where("LOWER(categories.slug) = ?", filters.GetCategory())
	}
}
