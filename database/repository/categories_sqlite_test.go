package repository_test

import (
	"strings"
	"testing"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
)

func TestCategoriesGetWithCountsSQLite(t *testing.T) {
	conn, _ := newSQLiteConnection(t)

	author := seedUser(t, conn, "samuel")
	tech := seedCategory(t, conn, "tech", "Tech")
	career := seedCategory(t, conn, "career", "Career")
	seedCategory(t, conn, "travel", "Travel")

	seedPost(t, conn, author, &tech, "post-one", "Post One", pastTime(t, 1))
	seedPost(t, conn, author, &tech, "post-two", "Post Two", pastTime(t, 2))
	seedPost(t, conn, author, &tech, "post-draft", "Post Draft", nil)
	seedPost(t, conn, author, &career, "post-three", "Post Three", pastTime(t, 3))

	categoriesRepo := repository.Categories{DB: conn}

	counts, err := categoriesRepo.GetWithCounts(0)
	if err != nil {
		t.Fatalf("get with counts: %v", err)
	}

	if len(counts) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(counts))
	}

	// GetAll orders by name, so Career leads.
	if counts[0].Category.Slug != "career" || counts[0].Posts != 1 {
		t.Fatalf("expected career with 1 post first, got %s with %d", counts[0].Category.Slug, counts[0].Posts)
	}

	if counts[1].Category.Slug != "tech" || counts[1].Posts != 2 {
		t.Fatalf("expected tech to count published posts only, got %d", counts[1].Posts)
	}

	limited, err := categoriesRepo.GetWithCounts(2)
	if err != nil {
		t.Fatalf("get limited counts: %v", err)
	}

	if len(limited) != 2 {
		t.Fatalf("expected the limit to apply, got %d", len(limited))
	}
}

func TestCategoriesCreateRejectsDuplicateSlugSQLite(t *testing.T) {
	conn, _ := newSQLiteConnection(t)

	categoriesRepo := repository.Categories{DB: conn}

	if _, err := categoriesRepo.Create(database.CategoriesAttrs{Slug: "tech", Name: "Tech"}); err != nil {
		t.Fatalf("create category: %v", err)
	}

	_, err := categoriesRepo.Create(database.CategoriesAttrs{Slug: "tech", Name: "Technology"})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected a duplicate slug error, got %v", err)
	}
}

func TestCategoriesUpdateKeepsBlankFieldsSQLite(t *testing.T) {
	conn, _ := newSQLiteConnection(t)

	category := seedCategory(t, conn, "tech", "Tech")
	category.Description = "All things code"

	categoriesRepo := repository.Categories{DB: conn}

	if err := categoriesRepo.Update(&category, database.CategoriesAttrs{Name: "Technology"}); err != nil {
		t.Fatalf("update category: %v", err)
	}

	found := categoriesRepo.FindBy("tech")
	if found == nil {
		t.Fatalf("expected the slug to survive a blank update")
	}

	if found.Name != "Technology" || found.Description != "All things code" {
		t.Fatalf("expected only the name to change, got %q / %q", found.Name, found.Description)
	}
}

func TestCategoriesDeleteUnlinksPostsSQLite(t *testing.T) {
	conn, _ := newSQLiteConnection(t)

	author := seedUser(t, conn, "samuel")
	tech := seedCategory(t, conn, "tech", "Tech")
	post := seedPost(t, conn, author, &tech, "orphaned-post", "Orphaned Post", pastTime(t, 1))

	categoriesRepo := repository.Categories{DB: conn}

	if err := categoriesRepo.Delete(&tech); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	if categoriesRepo.FindBy("tech") != nil {
		t.Fatalf("expected the category to be gone")
	}

	found := repository.Posts{DB: conn}.FindBy(post.Slug)
	if found == nil {
		t.Fatalf("expected the post to survive")
	}

	if found.CategoryID != nil {
		t.Fatalf("expected the post to be uncategorised")
	}
}
