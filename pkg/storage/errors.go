package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyInTx is returned by Begin on a handle that already is a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate matches every DuplicateError.
	ErrDuplicate = errors.New("duplicate value")
)

// Unique fields reported by DuplicateError.
const (
	FieldCategoryName = "category.name"
	FieldCategorySlug = "category.slug"
	FieldUserUsername = "user.username"
	FieldUserEmail    = "user.email"
)

// DuplicateError is returned when a write violates a unique index.
type DuplicateError struct {
	Field string
	Err   error
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s: %v", e.Field, e.Err)
}

func (e *DuplicateError) Unwrap() error { return e.Err }

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }
