package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"cookbook/pkg/domain"
	"cookbook/pkg/storage"

	"github.com/google/uuid"
)

// categoryConflict reports the unique field c would violate, ignoring the
// category with the same ID. Callers hold the lock.
func (m *Memory) categoryConflict(c domain.Category) string {
	for id, other := range m.st.categories {
		if id == c.ID {
			continue
		}
		if other.Name == c.Name {
			return storage.FieldCategoryName
		}
		if other.Slug == c.Slug {
			return storage.FieldCategorySlug
		}
	}

	return ""
}

func (m *Memory) CreateCategory(_ context.Context, c domain.Category) (*domain.Category, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	if c.ID.IsZero() {
		c.ID = domain.CategoryID(uuid.New())
	}
	if field := m.categoryConflict(c); field != "" {
		return nil, &storage.DuplicateError{Field: field, Err: storage.ErrDuplicate}
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	m.st.categories[c.ID] = c

	return &c, nil
}

func (m *Memory) ReplaceCategory(_ context.Context, c domain.Category) (*domain.Category, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	stored, ok := m.st.categories[c.ID]
	if !ok {
		return nil, nil
	}
	if field := m.categoryConflict(c); field != "" {
		return nil, &storage.DuplicateError{Field: field, Err: storage.ErrDuplicate}
	}
	c.CreatedAt = stored.CreatedAt
	m.st.categories[c.ID] = c

	return &c, nil
}

func (m *Memory) findCategory(match func(domain.Category) bool) *domain.Category {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()

	for _, c := range m.st.categories {
		if match(c) {
			return &c
		}
	}

	return nil
}

func (m *Memory) CategoryByID(_ context.Context, id domain.CategoryID) (*domain.Category, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()

	c, ok := m.st.categories[id]
	if !ok {
		return nil, nil
	}

	return &c, nil
}

func (m *Memory) CategoryByName(_ context.Context, name string) (*domain.Category, error) {
	return m.findCategory(func(c domain.Category) bool { return c.Name == name }), nil
}

func (m *Memory) CategoryBySlug(_ context.Context, slug string) (*domain.Category, error) {
	return m.findCategory(func(c domain.Category) bool { return c.Slug == slug }), nil
}

func (m *Memory) Categories(_ context.Context, filter storage.CategoryFilter) ([]domain.Category, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()

	out := make([]domain.Category, 0, len(m.st.categories))
	for _, c := range m.st.categories {
		if filter.ActiveOnly && !c.Active {
			continue
		}
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b domain.Category) int { return strings.Compare(a.Name, b.Name) })

	return out, nil
}

func (m *Memory) SetCategoryActive(_ context.Context, id domain.CategoryID, active bool) (*domain.Category, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	c, ok := m.st.categories[id]
	if !ok {
		return nil, nil
	}
	c.Active = active
	c.UpdatedAt = time.Now()
	m.st.categories[id] = c

	return &c, nil
}

func (m *Memory) DeleteCategory(_ context.Context, id domain.CategoryID) (bool, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	_, ok := m.st.categories[id]
	delete(m.st.categories, id)

	return ok, nil
}

func (m *Memory) CountCategories(ctx context.Context, filter storage.CategoryFilter) (int64, error) {
	list, err := m.Categories(ctx, filter)

	return int64(len(list)), err
}
