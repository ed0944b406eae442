package storage

import (
	"context"

	"cookbook/pkg/domain"
)

// CategoryFilter narrows category listings.
type CategoryFilter struct {
	// ActiveOnly restricts results to active categories.
	ActiveOnly bool
}

// CategoryStorage persists categories. Listings are ordered by name ascending.
type CategoryStorage interface {
	// CreateCategory inserts c, assigning an identifier when c.ID is zero.
	CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	// ReplaceCategory overwrites every field of the stored category with c and
	// returns nil when no category has c.ID.
	ReplaceCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	CategoryByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error)
	CategoryByName(ctx context.Context, name string) (*domain.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Categories(ctx context.Context, filter CategoryFilter) ([]domain.Category, error)
	// SetCategoryActive updates the active flag and updated_at only.
	SetCategoryActive(ctx context.Context, id domain.CategoryID, active bool) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id domain.CategoryID) (bool, error)
	CountCategories(ctx context.Context, filter CategoryFilter) (int64, error)
}
