package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository/pagination"
	"github.com/Samuel-Loga/Personal-Website/database/repository/queries"
	"github.com/Samuel-Loga/Personal-Website/pkg/editor"
	"github.com/Samuel-Loga/Personal-Website/pkg/gorm"
)

// PostsPerPage matches the public listing page size.
const PostsPerPage = 8

// ErrEmptyPublishedBody guards publication: a post may only go live when its
// body still reads as something once the markup is stripped away.
var ErrEmptyPublishedBody = errors.New("a published post cannot have an empty body")

type Posts struct {
	DB *database.Connection
}

// GetPublished returns the page of live posts that match the given filters,
// newest first. Drafts and future-dated posts never appear.
func (p Posts) GetPublished(filters *queries.PostFilters, paginate pagination.Paginate) (*pagination.Pagination[database.Post], error) {
	var numItems int64
	var posts []database.Post

	query := p.DB.Sql().
		Model(&database.Post{}).
		Where("posts.published_at IS NOT NULL").
		Where("posts.published_at <= ?", time.Now()).
		Order("posts.published_at desc")

	queries.ApplyPostsFilters(filters, query)

	if err := pagination.Count[*int64](&numItems, query, p.DB.GetSession(), "posts.id"); err != nil {
		return nil, err
	}

	err := query.Preload("Category").
		Limit(paginate.Limit).
		Offset(paginate.GetOffset()).
		Find(&posts).Error

	if err != nil {
		return nil, err
	}

	paginate.SetNumItems(numItems)
	result := pagination.MakePagination[database.Post](posts, paginate)

	return result, nil
}

// GetAll returns every post regardless of publication state, newest first.
// The admin listing uses it.
func (p Posts) GetAll(paginate pagination.Paginate) (*pagination.Pagination[database.Post], error) {
	var numItems int64
	var posts []database.Post

	query := p.DB.Sql().
		Model(&database.Post{}).
		Order("posts.created_at desc")

	if err := pagination.Count[*int64](&numItems, query, p.DB.GetSession(), "posts.id"); err != nil {
		return nil, err
	}

	err := query.Preload("Category").
		Limit(paginate.Limit).
		Offset(paginate.GetOffset()).
		Find(&posts).Error

	if err != nil {
		return nil, err
	}

	paginate.SetNumItems(numItems)
	result := pagination.MakePagination[database.Post](posts, paginate)

	return result, nil
}

func (p Posts) FindBy(slug string) *database.Post {
	post := database.Post{}

	result := p.DB.Sql().
		Preload("Category").
		Where("LOWER(slug) = ?", strings.ToLower(slug)).
		First(&post)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &post
	}

	return nil
}

// FindPublishedBy resolves a slug for readers: drafts behave as missing.
func (p Posts) FindPublishedBy(slug string) *database.Post {
	post := p.FindBy(slug)

	if post == nil || !post.IsPublished() {
		return nil
	}

	return post
}

// GetRecent returns the newest published posts for the detail page sidebar.
// excludeSlug keeps the post being read out of its own sidebar; pass "" to
// skip nothing.
func (p Posts) GetRecent(limit int, excludeSlug string) ([]database.Post, error) {
	var posts []database.Post

	query := p.DB.Sql().
		Where("published_at IS NOT NULL").
		Where("published_at <= ?", time.Now())

	if excludeSlug != "" {
		query = query.Where("slug <> ?", excludeSlug)
	}

	err := query.
		Order("published_at desc").
		Limit(limit).
		Find(&posts).Error

	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (p Posts) Create(attrs database.PostsAttrs) (*database.Post, error) {
	if attrs.PublishedAt != nil && editor.StripTags(attrs.Content) == "" {
		return nil, ErrEmptyPublishedBody
	}

	post := database.Post{
		UUID:          uuid.NewString(),
		AuthorID:      attrs.AuthorID,
		CategoryID:    attrs.CategoryID,
		Slug:          attrs.Slug,
		Title:         attrs.Title,
		Excerpt:       attrs.Excerpt,
		Content:       attrs.Content,
		CoverImageURL: attrs.CoverImageURL,
		PublishedAt:   attrs.PublishedAt,
	}

	if result := p.DB.Sql().Create(&post); gorm.HasDbIssues(result.Error) {
		if gorm.IsUniqueViolation(result.Error) {
			return nil, fmt.Errorf("a post with the slug [%s] already exists", attrs.Slug)
		}

		return nil, fmt.Errorf("issue creating posts: %s", result.Error)
	}

	return &post, nil
}

func (p Posts) Update(post *database.Post, attrs database.PostsAttrs) error {
	if attrs.PublishedAt != nil && editor.StripTags(attrs.Content) == "" {
		return ErrEmptyPublishedBody
	}

	post.CategoryID = attrs.CategoryID
	post.Slug = attrs.Slug
	post.Title = attrs.Title
	post.Excerpt = attrs.Excerpt
	post.Content = attrs.Content
	post.CoverImageURL = attrs.CoverImageURL
	post.PublishedAt = attrs.PublishedAt

	if result := p.DB.Sql().Save(post); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue updating the post [%s]: %s", post.Slug, result.Error)
	}

	return nil
}

func (p Posts) Delete(post *database.Post) error {
	if result := p.DB.Sql().Delete(post); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue deleting the post [%s]: %s", post.Slug, result.Error)
	}

	return nil
}

func (p Posts) CountPublished() (int64, error) {
	var count int64

	err := p.DB.Sql().
		Model(&database.Post{}).
		Where("published_at IS NOT NULL").
		Where("published_at <= ?", time.Now()).
		Count(&count).Error

	return count, err
}

func (p Posts) CountDrafts() (int64, error) {
	var count int64

	err := p.DB.Sql().
		Model(&database.Post{}).
		Where("published_at IS NULL OR published_at > ?", time.Now()).
		Count(&count).Error

	return count, err
}
