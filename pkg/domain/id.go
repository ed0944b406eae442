package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// CategoryID uniquely identifies a category.
type CategoryID uuid.UUID

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// RecipeID uniquely identifies a recipe.
type RecipeID uuid.UUID

func (id CategoryID) String() string { return uuid.UUID(id).String() }
func (id CategoryID) IsZero() bool   { return uuid.UUID(id) == uuid.Nil }

func (id CategoryID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *CategoryID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id UserID) String() string { return uuid.UUID(id).String() }
func (id UserID) IsZero() bool   { return uuid.UUID(id) == uuid.Nil }

func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id RecipeID) String() string { return uuid.UUID(id).String() }
func (id RecipeID) IsZero() bool   { return uuid.UUID(id) == uuid.Nil }

func (id RecipeID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *RecipeID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// ParseCategoryID parses the textual form of a category identifier.
func ParseCategoryID(s string) (CategoryID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CategoryID{}, fmt.Errorf("invalid category id %q: %w", s, err)
	}

	return CategoryID(id), nil
}

// ParseUserID parses the textual form of a user identifier.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, fmt.Errorf("invalid user id %q: %w", s, err)
	}

	return UserID(id), nil
}

// ParseRecipeID parses the textual form of a recipe identifier.
func ParseRecipeID(s string) (RecipeID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return RecipeID{}, fmt.Errorf("invalid recipe id %q: %w", s, err)
	}

	return RecipeID(id), nil
}
