package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"cookbook/pkg/domain"
	"cookbook/pkg/storage"

	"github.com/google/uuid"
)

func (m *Memory) CreateRecipe(_ context.Context, r domain.Recipe) (*domain.Recipe, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	if r.ID.IsZero() {
		r.ID = domain.RecipeID(uuid.New())
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}
	r = cloneRecipe(r)
	m.st.recipes[r.ID] = r

	return ptr(cloneRecipe(r)), nil
}

func (m *Memory) ReplaceRecipe(_ context.Context, r domain.Recipe) (*domain.Recipe, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	stored, ok := m.st.recipes[r.ID]
	if !ok {
		return nil, nil
	}
	r = cloneRecipe(r)
	r.CreatedAt = stored.CreatedAt
	m.st.recipes[r.ID] = r

	return ptr(cloneRecipe(r)), nil
}

func (m *Memory) mutateRecipe(id domain.RecipeID, fn func(r *domain.Recipe)) *domain.Recipe {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	r, ok := m.st.recipes[id]
	if !ok {
		return nil
	}
	fn(&r)
	m.st.recipes[id] = r

	return ptr(cloneRecipe(r))
}

func (m *Memory) RecipeByID(_ context.Context, id domain.RecipeID) (*domain.Recipe, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()

	r, ok := m.st.recipes[id]
	if !ok {
		return nil, nil
	}

	return ptr(cloneRecipe(r)), nil
}

func matchRecipe(r domain.Recipe, filter storage.RecipeFilter) bool {
	switch {
	case filter.PublishedOnly && !r.Published:
		return false
	case filter.CategoryID != nil && r.CategoryID != *filter.CategoryID:
		return false
	case filter.AuthorID != nil && r.AuthorID != *filter.AuthorID:
		return false
	case filter.Difficulty != "" && r.Difficulty != filter.Difficulty:
		return false
	default:
		return true
	}
}

func newestFirst(a, b domain.Recipe) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}

	return cmp.Compare(b.ID.String(), a.ID.String())
}

func topRatedFirst(a, b domain.Recipe) int {
	if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
		return c
	}
	if c := cmp.Compare(b.RatingCount, a.RatingCount); c != 0 {
		return c
	}

	return newestFirst(a, b)
}

func (m *Memory) Recipes(_ context.Context, filter storage.RecipeFilter) ([]domain.Recipe, error) {
	m.st.mu.RLock()
	out := make([]domain.Recipe, 0, len(m.st.recipes))
	for _, r := range m.st.recipes {
		if matchRecipe(r, filter) {
			out = append(out, cloneRecipe(r))
		}
	}
	m.st.mu.RUnlock()

	if filter.OrderBy == storage.OrderTopRated {
		slices.SortFunc(out, topRatedFirst)
	} else {
		slices.SortFunc(out, newestFirst)
	}
	if filter.Limit > 0 && uint(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (m *Memory) IncrementRecipeViews(_ context.Context, id domain.RecipeID) (*domain.Recipe, error) {
	return m.mutateRecipe(id, func(r *domain.Recipe) { r.ViewCount++ }), nil
}

func (m *Memory) UpdateRecipeRating(_ context.Context,
	id domain.RecipeID,
	expectedCount int,
	average float64) (bool, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	r, ok := m.st.recipes[id]
	if !ok || r.RatingCount != expectedCount {
		return false, nil
	}
	r.Rating = average
	r.RatingCount++
	m.st.recipes[id] = r

	return true, nil
}

func (m *Memory) SetRecipePublished(_ context.Context, id domain.RecipeID, published bool) (*domain.Recipe, error) {
	return m.mutateRecipe(id, func(r *domain.Recipe) {
		r.Published = published
		r.UpdatedAt = time.Now()
	}), nil
}

func (m *Memory) DeleteRecipe(_ context.Context, id domain.RecipeID) (bool, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	_, ok := m.st.recipes[id]
	delete(m.st.recipes, id)

	return ok, nil
}

func (m *Memory) CountRecipes(_ context.Context, filter storage.RecipeFilter) (int64, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()

	var n int64
	for _, r := range m.st.recipes {
		if matchRecipe(r, filter) {
			n++
		}
	}

	return n, nil
}

func (m *Memory) SyncFavoriteCounts(_ context.Context) (int64, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	counts := make(map[domain.RecipeID]int, len(m.st.recipes))
	for _, u := range m.st.users {
		for _, id := range u.FavoriteRecipeIDs {
			counts[id]++
		}
	}

	var changed int64
	for id, r := range m.st.recipes {
		if r.FavoriteCount != counts[id] {
			r.FavoriteCount = counts[id]
			m.st.recipes[id] = r
			changed++
		}
	}

	return changed, nil
}
