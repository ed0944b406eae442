package storage

import (
	"context"

	"cookbook/pkg/domain"
)

// UserFilter narrows user listings.
type UserFilter struct {
	EnabledOnly bool
}

// UserStorage persists user accounts. Listings are ordered by username.
// Emails are expected in their normalized form.
type UserStorage interface {
	CreateUser(ctx context.Context, u domain.User) (*domain.User, error)
	// ReplaceUser overwrites the stored account and returns nil when absent.
	ReplaceUser(ctx context.Context, u domain.User) (*domain.User, error)
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	Users(ctx context.Context, filter UserFilter) ([]domain.User, error)
	SetUserEnabled(ctx context.Context, id domain.UserID, enabled bool) (*domain.User, error)
	SetUserPassword(ctx context.Context, id domain.UserID, passwordHash string) (bool, error)
	// AddUserFavorite appends recipeID to the favorites unless already present.
	// The check and the append happen in a single store operation.
	AddUserFavorite(ctx context.Context, id domain.UserID, recipeID domain.RecipeID) (*domain.User, error)
	// RemoveUserFavorite drops recipeID from the favorites; a missing entry is
	// not an error.
	RemoveUserFavorite(ctx context.Context, id domain.UserID, recipeID domain.RecipeID) (*domain.User, error)
	DeleteUser(ctx context.Context, id domain.UserID) (bool, error)
	CountUsers(ctx context.Context, filter UserFilter) (int64, error)
}
