package domain

import (
	"cookbook/pkg/serrors"
)

// Failure kinds surfaced by the catalog services. Absence of an entity that an
// operation depends on is reported with serrors.ErrNotFound.
var (
	ErrDuplicateName     = serrors.NewKind("DUPLICATE_NAME")
	ErrDuplicateSlug     = serrors.NewKind("DUPLICATE_SLUG")
	ErrDuplicateEmail    = serrors.NewKind("DUPLICATE_EMAIL")
	ErrDuplicateUsername = serrors.NewKind("DUPLICATE_USERNAME")
	// ErrCategoryNotFound is returned when a recipe references a category that does not resolve.
	ErrCategoryNotFound = serrors.NewKind("CATEGORY_NOT_FOUND")
	// ErrAuthorNotFound is returned when a recipe references an author that does not resolve.
	ErrAuthorNotFound = serrors.NewKind("AUTHOR_NOT_FOUND")
	// ErrInvalidCredential covers failed sign-ins and failed password verification.
	ErrInvalidCredential = serrors.NewKind("INVALID_CREDENTIAL")
	// ErrStoreUnavailable wraps any failure of the underlying store.
	ErrStoreUnavailable = serrors.NewKind("STORE_UNAVAILABLE")
)

// StoreError wraps a storage failure so callers can tell it apart from
// business failures while keeping the cause reachable through errors.Is.
func StoreError(err error, msgFmt string, args ...any) error {
	return serrors.Wrap(ErrStoreUnavailable, err, msgFmt, args...)
}
