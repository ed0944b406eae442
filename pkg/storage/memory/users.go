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

func (m *Memory) userConflict(u domain.User) string {
	for id, other := range m.st.users {
		if id == u.ID {
			continue
		}
		if other.Username == u.Username {
			return storage.FieldUserUsername
		}
		if other.Email == u.Email {
			return storage.FieldUserEmail
		}
	}

	return ""
}

func (m *Memory) CreateUser(_ context.Context, u domain.User) (*domain.User, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	if u.ID.IsZero() {
		u.ID = domain.UserID(uuid.New())
	}
	if field := m.userConflict(u); field != "" {
		return nil, &storage.DuplicateError{Field: field, Err: storage.ErrDuplicate}
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}
	u = cloneUser(u)
	m.st.users[u.ID] = u

	return ptr(cloneUser(u)), nil
}

func (m *Memory) ReplaceUser(_ context.Context, u domain.User) (*domain.User, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	stored, ok := m.st.users[u.ID]
	if !ok {
		return nil, nil
	}
	if field := m.userConflict(u); field != "" {
		return nil, &storage.DuplicateError{Field: field, Err: storage.ErrDuplicate}
	}
	u = cloneUser(u)
	u.CreatedAt = stored.CreatedAt
	m.st.users[u.ID] = u

	return ptr(cloneUser(u)), nil
}

// mutateUser applies fn to the stored user under the write lock.
func (m *Memory) mutateUser(id domain.UserID, fn func(u *domain.User)) *domain.User {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	u, ok := m.st.users[id]
	if !ok {
		return nil
	}
	fn(&u)
	m.st.users[id] = u

	return ptr(cloneUser(u))
}

func (m *Memory) findUser(match func(domain.User) bool) *domain.User {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()

	for _, u := range m.st.users {
		if match(u) {
			return ptr(cloneUser(u))
		}
	}

	return nil
}

func (m *Memory) UserByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()

	u, ok := m.st.users[id]
	if !ok {
		return nil, nil
	}

	return ptr(cloneUser(u)), nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*domain.User, error) {
	return m.findUser(func(u domain.User) bool { return u.Email == email }), nil
}

func (m *Memory) UserByUsername(_ context.Context, username string) (*domain.User, error) {
	return m.findUser(func(u domain.User) bool { return u.Username == username }), nil
}

func (m *Memory) Users(_ context.Context, filter storage.UserFilter) ([]domain.User, error) {
	m.st.mu.RLock()
	defer m.st.mu.RUnlock()

	out := make([]domain.User, 0, len(m.st.users))
	for _, u := range m.st.users {
		if filter.EnabledOnly && !u.Enabled {
			continue
		}
		out = append(out, cloneUser(u))
	}
	slices.SortFunc(out, func(a, b domain.User) int { return strings.Compare(a.Username, b.Username) })

	return out, nil
}

func (m *Memory) SetUserEnabled(_ context.Context, id domain.UserID, enabled bool) (*domain.User, error) {
	return m.mutateUser(id, func(u *domain.User) {
		u.Enabled = enabled
		u.UpdatedAt = time.Now()
	}), nil
}

func (m *Memory) SetUserPassword(_ context.Context, id domain.UserID, passwordHash string) (bool, error) {
	u := m.mutateUser(id, func(u *domain.User) {
		u.PasswordHash = passwordHash
		u.UpdatedAt = time.Now()
	})

	return u != nil, nil
}

func (m *Memory) AddUserFavorite(_ context.Context, id domain.UserID, recipeID domain.RecipeID) (*domain.User, error) {
	return m.mutateUser(id, func(u *domain.User) {
		if !slices.Contains(u.FavoriteRecipeIDs, recipeID) {
			u.FavoriteRecipeIDs = append(slices.Clone(u.FavoriteRecipeIDs), recipeID)
		}
		u.UpdatedAt = time.Now()
	}), nil
}

func (m *Memory) RemoveUserFavorite(_ context.Context, id domain.UserID, recipeID domain.RecipeID) (*domain.User, error) {
	return m.mutateUser(id, func(u *domain.User) {
		u.FavoriteRecipeIDs = slices.DeleteFunc(slices.Clone(u.FavoriteRecipeIDs), func(r domain.RecipeID) bool {
			return r == recipeID
		})
		u.UpdatedAt = time.Now()
	}), nil
}

func (m *Memory) DeleteUser(_ context.Context, id domain.UserID) (bool, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()

	_, ok := m.st.users[id]
	delete(m.st.users, id)

	return ok, nil
}

func (m *Memory) CountUsers(ctx context.Context, filter storage.UserFilter) (int64, error) {
	list, err := m.Users(ctx, filter)

	return int64(len(list)), err
}
