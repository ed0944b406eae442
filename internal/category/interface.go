package category

import (
	"context"

	"cookbook/pkg/domain"
)

// Catalog manages recipe categories. Lookups return nil when nothing matches;
// absence is only an error for operations that need an existing category.
type Catalog interface {
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	ListAll(ctx context.Context) ([]domain.Category, error)
	ListActive(ctx context.Context) ([]domain.Category, error)
	SetActive(ctx context.Context, id domain.CategoryID, active bool) (*domain.Category, error)
	Search(ctx context.Context, term string) ([]domain.Category, error)
	CanDelete(ctx context.Context, id domain.CategoryID) (bool, error)
	Delete(ctx context.Context, id domain.CategoryID) (bool, error)
	Count(ctx context.Context, activeOnly bool) (int64, error)
	EnsureDefaults(ctx context.Context) error
}
