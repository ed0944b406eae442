// Package storage defines the document-store contract the catalog services are
// written against. Backends live in sub-packages (postgres, memory) and share
// the same absence semantics: lookups return nil and boolean mutations return
// false when the target does not exist.
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go cookbook/pkg/storage CategoryStorage,UserStorage,RecipeStorage
package storage

import "context"

// AllStorage is the union of every entity store plus job enqueueing.
type AllStorage interface {
	CategoryStorage
	UserStorage
	RecipeStorage
	JobStorage
}

// TxStorage is an AllStorage bound to an open transaction. It becomes unusable
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root, non-transactional handle.
type Storage interface {
	AllStorage

	// Close releases the underlying resources.
	Close() error

	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
