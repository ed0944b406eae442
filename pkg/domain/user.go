package domain

import (
	"slices"
	"strings"
	"time"
)

// Role is a permission tag carried by a user.
type Role string

const (
	// RoleUser is granted to every account by default.
	RoleUser Role = "USER"
	// RoleAdmin allows managing categories, other accounts and any recipe.
	RoleAdmin Role = "ADMIN"
)

// User is a registered account. PasswordHash only ever holds the output of the
// credential hasher and is never serialized.
type User struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
	// Email is stored trimmed and lowercased.
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profileImageUrl"`

	// Roles defaults to {USER} on creation.
	Roles []Role `json:"roles"`
	// FavoriteRecipeIDs never contains the same recipe twice.
	FavoriteRecipeIDs []RecipeID `json:"favoriteRecipeIds"`
	// Enabled is false for accounts that are not allowed to sign in.
	Enabled bool `json:"enabled"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role Role) bool {
	return slices.Contains(u.Roles, role)
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool { return u.HasRole(RoleAdmin) }

// HasFavorite reports whether the recipe is in the user's favorites.
func (u *User) HasFavorite(id RecipeID) bool {
	return slices.Contains(u.FavoriteRecipeIDs, id)
}

// FullName joins first and last name, skipping empty parts.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NormalizeEmail returns the canonical form used to store and look up emails.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
