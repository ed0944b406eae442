package user

import (
	"context"

	"cookbook/pkg/domain"
)

// Directory manages user accounts and their favorites.
type Directory interface {
	// Create registers u with the given plaintext password.
	Create(ctx context.Context, u domain.User, password string) (*domain.User, error)
	// Update replaces the profile of an existing account. An empty password
	// keeps the stored hash; the enabled flag only changes through SetEnabled.
	Update(ctx context.Context, u domain.User, password string) (*domain.User, error)
	FindByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	ListActive(ctx context.Context) ([]domain.User, error)
	SetEnabled(ctx context.Context, id domain.UserID, enabled bool) (*domain.User, error)
	// Authenticate resolves login as a username first and as an email second.
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)
	ChangePassword(ctx context.Context, id domain.UserID, oldPassword, newPassword string) error
	AddFavorite(ctx context.Context, id domain.UserID, recipeID domain.RecipeID) (*domain.User, error)
	RemoveFavorite(ctx context.Context, id domain.UserID, recipeID domain.RecipeID) (*domain.User, error)
	Delete(ctx context.Context, id domain.UserID) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// Hasher is the one-way credential collaborator.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}
