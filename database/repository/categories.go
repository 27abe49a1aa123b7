package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	baseGorm "gorm.io/gorm"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/pkg/gorm"
)

type Categories struct {
	DB *database.Connection
}

// CategoryCount pairs a category with how many published posts it holds.
type CategoryCount struct {
	Category database.Category
	Posts    int64
}

func (c Categories) GetAll() ([]database.Category, error) {
	var categories []database.Category

	err := c.DB.Sql().
		Order("categories.name asc").
		Find(&categories).Error

	if err != nil {
		return nil, err
	}

	return categories, nil
}

// GetWithCounts returns up to limit categories ordered by name, each with
// its published-post tally. A zero limit returns them all.
func (c Categories) GetWithCounts(limit int) ([]CategoryCount, error) {
	categories, err := c.GetAll()
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(categories) > limit {
		categories = categories[:limit]
	}

	var output []CategoryCount

	for _, category := range categories {
		var count int64

		err := c.DB.Sql().
			Model(&database.Post{}).
			Where("category_id = ?", category.ID).
			Where("published_at IS NOT NULL").
			Count(&count).Error

		if err != nil {
			return nil, err
		}

		output = append(output, CategoryCount{Category: category, Posts: count})
	}

	return output, nil
}

func (c Categories) FindBy(slug string) *database.Category {
	category := database.Category{}

	result := c.DB.Sql().
		Where("LOWER(slug) = ?", strings.ToLower(slug)).
		First(&category)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &category
	}

	return nil
}

func (c Categories) Create(attrs database.CategoriesAttrs) (*database.Category, error) {
	category := database.Category{
		UUID:        uuid.NewString(),
		Slug:        attrs.Slug,
		Name:        attrs.Name,
		Description: attrs.Description,
	}

	if result := c.DB.Sql().Create(&category); gorm.HasDbIssues(result.Error) {
		if gorm.IsUniqueViolation(result.Error) {
			return nil, fmt.Errorf("a category with the slug [%s] already exists", attrs.Slug)
		}

		return nil, fmt.Errorf("error creating category [%s]: %s", attrs.Name, result.Error)
	}

	return &category, nil
}

func (c Categories) Update(category *database.Category, attrs database.CategoriesAttrs) error {
	if strings.TrimSpace(attrs.Name) != "" {
		category.Name = attrs.Name
	}

	if strings.TrimSpace(attrs.Slug) != "" {
		category.Slug = attrs.Slug
	}

	if strings.TrimSpace(attrs.Description) != "" {
		category.Description = attrs.Description
	}

	if result := c.DB.Sql().Save(category); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("error updating category [%s]: %s", category.Name, result.Error)
	}

	return nil
}

// Delete removes a category. Posts keep existing: their category link is
// cleared first so the listing treats them as uncategorised.
func (c Categories) Delete(category *database.Category) error {
	return c.DB.Transaction(func(db *baseGorm.DB) error {
		err := db.Model(&database.Post{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error

		if err != nil {
			return fmt.Errorf("error unlinking posts from category [%s]: %s", category.Name, err)
		}

		if err = db.Delete(category).Error; gorm.HasDbIssues(err) {
			return fmt.Errorf("error deleting category [%s]: %s", category.Name, err)
		}

		return nil
	})
}
