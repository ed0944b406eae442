package storage

import (
	"context"

	"cookbook/pkg/domain"
)

// RecipeOrder selects the ordering of recipe listings.
type RecipeOrder int

const (
	// OrderNewest sorts by creation time, most recent first.
	OrderNewest RecipeOrder = iota
	// OrderTopRated sorts by rating, highest first.
	OrderTopRated
)

// RecipeFilter narrows recipe listings. Zero values disable a criterion.
type RecipeFilter struct {
	PublishedOnly bool
	CategoryID    *domain.CategoryID
	AuthorID      *domain.UserID
	Difficulty    domain.Difficulty
	OrderBy       RecipeOrder
	// Limit caps the number of results; 0 means unlimited.
	Limit uint
}

// RecipeStorage persists recipes. Counters are changed through dedicated
// operations so that content replacement never races with them.
type RecipeStorage interface {
	CreateRecipe(ctx context.Context, r domain.Recipe) (*domain.Recipe, error)
	// ReplaceRecipe overwrites the stored recipe and returns nil when absent.
	ReplaceRecipe(ctx context.Context, r domain.Recipe) (*domain.Recipe, error)
	RecipeByID(ctx context.Context, id domain.RecipeID) (*domain.Recipe, error)
	Recipes(ctx context.Context, filter RecipeFilter) ([]domain.Recipe, error)
	// IncrementRecipeViews atomically adds one to the view counter and returns
	// the recipe as stored after the increment.
	IncrementRecipeViews(ctx context.Context, id domain.RecipeID) (*domain.Recipe, error)
	// UpdateRecipeRating stores average and increments rating_count by one,
	// but only while rating_count still equals expectedCount. It returns false
	// when the recipe is absent or the count moved.
	UpdateRecipeRating(ctx context.Context, id domain.RecipeID, expectedCount int, average float64) (bool, error)
	SetRecipePublished(ctx context.Context, id domain.RecipeID, published bool) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, id domain.RecipeID) (bool, error)
	CountRecipes(ctx context.Context, filter RecipeFilter) (int64, error)
	// SyncFavoriteCounts recomputes favorite_count from the users' favorite
	// lists and returns how many recipes changed.
	SyncFavoriteCounts(ctx context.Context) (int64, error)
}
