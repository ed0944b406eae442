// Package memory is an in-process implementation of storage.Storage used for
// local development and tests. Every value is deep-copied on the way in and
// out so callers never share state with the store.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"cookbook/pkg/domain"
	"cookbook/pkg/storage"

	"github.com/riverqueue/river"
)

type state struct {
	mu         sync.RWMutex
	categories map[domain.CategoryID]domain.Category
	users      map[domain.UserID]domain.User
	recipes    map[domain.RecipeID]domain.Recipe
	jobs       []river.JobArgs
}

type snapshot struct {
	categories map[domain.CategoryID]domain.Category
	users      map[domain.UserID]domain.User
	recipes    map[domain.RecipeID]domain.Recipe
	jobs       []river.JobArgs
}

// Memory implements storage.Storage and storage.TxStorage.
//
// Transactions are snapshot based: Rollback restores the data as it was at
// Begin, discarding writes made by anyone in between.
type Memory struct {
	st *state
	// tx is set on transactional handles and cleared by Commit or Rollback.
	tx *snapshot
}

var _ storage.Storage = (*Memory)(nil)

var _ storage.TxStorage = (*Memory)(nil)

// New returns an empty store.
func New() *Memory {
	return &Memory{st: &state{
		categories: map[domain.CategoryID]domain.Category{},
		users:      map[domain.UserID]domain.User{},
		recipes:    map[domain.RecipeID]domain.Recipe{},
	}}
}

func (m *Memory) Close() error { return nil }

func (m *Memory) Begin(_ context.Context) (storage.TxStorage, error) {
	if m.tx != nil {
		return nil, storage.ErrAlreadyInTx
	}

	m.st.mu.RLock()
	defer m.st.mu.RUnlock()

	return &Memory{st: m.st, tx: &snapshot{
		categories: maps.Clone(m.st.categories),
		users:      cloneMap(m.st.users, cloneUser),
		recipes:    cloneMap(m.st.recipes, cloneRecipe),
		jobs:       slices.Clone(m.st.jobs),
	}}, nil
}

func (m *Memory) Commit() error {
	if m.tx == nil {
		return storage.ErrNotInTx
	}
	m.tx = nil

	return nil
}

func (m *Memory) Rollback() error {
	if m.tx == nil {
		return storage.ErrNotInTx
	}

	m.st.mu.Lock()
	m.st.categories = m.tx.categories
	m.st.users = m.tx.users
	m.st.recipes = m.tx.recipes
	m.st.jobs = m.tx.jobs
	m.st.mu.Unlock()
	m.tx = nil

	return nil
}

func (m *Memory) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

// AddJob records the job. Nothing executes it.
func (m *Memory) AddJob(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	m.st.jobs = append(m.st.jobs, args)

	return true, nil
}

// Jobs returns the jobs recorded by AddJob in insertion order.
func (m *Memory) Jobs() []river.JobArgs {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()

	return slices.Clone(m.st.jobs)
}

func cloneMap[K comparable, V any](in map[K]V, clone func(V) V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = clone(v)
	}

	return out
}

func cloneUser(u domain.User) domain.User {
	u.Roles = slices.Clone(u.Roles)
	u.FavoriteRecipeIDs = slices.Clone(u.FavoriteRecipeIDs)

	return u
}

func cloneRecipe(r domain.Recipe) domain.Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	r.Instructions = slices.Clone(r.Instructions)
	r.Tags = slices.Clone(r.Tags)
	if r.Nutrition != nil {
		n := *r.Nutrition
		r.Nutrition = &n
	}

	return r
}

func ptr[T any](v T) *T { return &v }
