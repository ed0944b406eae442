package recipe

import (
	"context"

	"cookbook/pkg/domain"
)

// Catalog manages recipes and their server-owned counters.
//
//go:generate mockgen -package mockrecipe -destination=mock/mockrecipe.go cookbook/internal/recipe Catalog
type Catalog interface {
	Create(ctx context.Context, r domain.Recipe) (*domain.Recipe, error)
	Update(ctx context.Context, r domain.Recipe) (*domain.Recipe, error)
	FindByID(ctx context.Context, id domain.RecipeID) (*domain.Recipe, error)
	// FindByIDAndTouch returns the recipe after incrementing its view counter.
	FindByIDAndTouch(ctx context.Context, id domain.RecipeID) (*domain.Recipe, error)
	ListPublished(ctx context.Context) ([]domain.Recipe, error)
	ListByCategory(ctx context.Context, categoryID domain.CategoryID) ([]domain.Recipe, error)
	ListByAuthor(ctx context.Context, authorID domain.UserID) ([]domain.Recipe, error)
	ListPublishedByAuthor(ctx context.Context, authorID domain.UserID) ([]domain.Recipe, error)
	ListByDifficulty(ctx context.Context, difficulty domain.Difficulty) ([]domain.Recipe, error)
	ListTopRated(ctx context.Context, limit uint) ([]domain.Recipe, error)
	ListLatest(ctx context.Context, limit uint) ([]domain.Recipe, error)
	SearchByTitle(ctx context.Context, term string) ([]domain.Recipe, error)
	SetPublished(ctx context.Context, id domain.RecipeID, published bool) (*domain.Recipe, error)
	// Rate folds score into the running average and returns the updated recipe.
	Rate(ctx context.Context, id domain.RecipeID, score float64) (*domain.Recipe, error)
	CanEdit(ctx context.Context, userID domain.UserID, recipeID domain.RecipeID) (bool, error)
	GlobalStats(ctx context.Context) (*Stats, error)
	Delete(ctx context.Context, id domain.RecipeID) (bool, error)
	// SyncFavoriteCounts recomputes favorite counters from the users' favorites
	// and returns how many recipes changed.
	SyncFavoriteCounts(ctx context.Context) (int64, error)
}

// Stats is a read model over the whole catalog.
type Stats struct {
	TotalRecipes     int64           `json:"totalRecipes"`
	PublishedRecipes int64           `json:"publishedRecipes"`
	TopRated         []domain.Recipe `json:"topRatedRecipes"`
}

// CategoryResolver resolves the category a recipe points to.
type CategoryResolver interface {
	FindByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error)
}

// UserResolver resolves recipe authors and editors.
type UserResolver interface {
	FindByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}
