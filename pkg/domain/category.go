package domain

import "time"

// Category groups recipes under a display name. The slug is derived from the
// name and acts as a human-readable stable key.
type Category struct {
	// ID is the store-assigned identifier.
	ID CategoryID `json:"id"`
	// Name is the unique display name.
	Name string `json:"name"`
	// Description is an optional free-form text.
	Description string `json:"description"`
	// Color is a hexadecimal display color such as "#FF6B6B".
	Color string `json:"color"`
	// IconURL references an icon representing the category.
	IconURL string `json:"iconUrl"`
	// Slug is the URL-safe derivation of Name. It is unique across categories.
	Slug string `json:"slug"`
	// Active reports whether the category is offered to users.
	Active bool `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
