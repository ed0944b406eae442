package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"cookbook/pkg/domain"
	"cookbook/pkg/logger"
	"cookbook/pkg/serrors"
	"cookbook/pkg/storage"

	"go.uber.org/zap"
)

type directory struct {
	storage storage.UserStorage
	hasher  Hasher
	now     func() time.Time
}

// New creates a Directory storing accounts in the given storage and hashing
// passwords with hasher.
func New(storage storage.UserStorage, hasher Hasher) Directory {
	return &directory{
		storage: storage,
		hasher:  hasher,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func translateError(err error, msgFmt string, args ...any) error {
	var dup *storage.DuplicateError
	if errors.As(err, &dup) {
		switch dup.Field {
		case storage.FieldUserEmail:
			return serrors.Wrap(domain.ErrDuplicateEmail, err, "email already registered")
		case storage.FieldUserUsername:
			return serrors.Wrap(domain.ErrDuplicateUsername, err, "username already taken")
		}
	}

	return domain.StoreError(err, msgFmt, args...)
}

func notFound() error {
	return serrors.With(serrors.ErrNotFound, "user not found")
}

func (d *directory) checkEmail(ctx context.Context, email string) error {
	existing, err := d.storage.UserByEmail(ctx, email)
	if err != nil {
		return domain.StoreError(err, "could not get user by email")
	}
	if existing != nil {
		return serrors.With(domain.ErrDuplicateEmail, "email %q already registered", email)
	}

	return nil
}

func (d *directory) checkUsername(ctx context.Context, username string) error {
	existing, err := d.storage.UserByUsername(ctx, username)
	if err != nil {
		return domain.StoreError(err, "could not get user by username")
	}
	if existing != nil {
		return serrors.With(domain.ErrDuplicateUsername, "username %q already taken", username)
	}

	return nil
}

func (d *directory) hash(password string) (string, error) {
	if password == "" {
		return "", serrors.With(serrors.ErrBadRequest, "password is required")
	}

	hash, err := d.hasher.Hash(password)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid password")
	}

	return hash, nil
}

func (d *directory) Create(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = domain.NormalizeEmail(u.Email)

	if err := d.checkEmail(ctx, u.Email); err != nil {
		return nil, err
	}
	if err := d.checkUsername(ctx, u.Username); err != nil {
		return nil, err
	}

	hash, err := d.hash(password)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = hash

	if len(u.Roles) == 0 {
		u.Roles = []domain.Role{domain.RoleUser}
	}
	u.Enabled = true
	u.FavoriteRecipeIDs = nil
	u.CreatedAt = d.now()
	u.UpdatedAt = u.CreatedAt

	created, err := d.storage.CreateUser(ctx, u)
	if err != nil {
		return nil, translateError(err, "could not create user")
	}

	logger.Info(ctx, "user registered", zap.Stringer("userID", created.ID), zap.String("username", created.Username))

	return created, nil
}

// Update replaces the profile fields of an existing account. Favorites, the
// enabled flag and the creation time always come from the stored record;
// empty roles keep the stored roles.
func (d *directory) Update(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	existing, err := d.storage.UserByID(ctx, u.ID)
	if err != nil {
		return nil, domain.StoreError(err, "could not get user")
	}
	if existing == nil {
		return nil, notFound()
	}

	u.Username = strings.TrimSpace(u.Username)
	u.Email = domain.NormalizeEmail(u.Email)

	if u.Email != existing.Email {
		if err := d.checkEmail(ctx, u.Email); err != nil {
			return nil, err
		}
	}
	if u.Username != existing.Username {
		if err := d.checkUsername(ctx, u.Username); err != nil {
			return nil, err
		}
	}

	u.PasswordHash = existing.PasswordHash
	if password != "" {
		if u.PasswordHash, err = d.hash(password); err != nil {
			return nil, err
		}
	}

	if len(u.Roles) == 0 {
		u.Roles = existing.Roles
	}
	u.Enabled = existing.Enabled
	u.FavoriteRecipeIDs = existing.FavoriteRecipeIDs
	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = d.now()

	updated, err := d.storage.ReplaceUser(ctx, u)
	if err != nil {
		return nil, translateError(err, "could not update user")
	}
	if updated == nil {
		return nil, notFound()
	}

	return updated, nil
}

func (d *directory) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	u, err := d.storage.UserByID(ctx, id)
	if err != nil {
		return nil, domain.StoreError(err, "could not get user")
	}

	return u, nil
}

func (d *directory) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := d.storage.UserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, domain.StoreError(err, "could not get user by email")
	}

	return u, nil
}

func (d *directory) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := d.storage.UserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, domain.StoreError(err, "could not get user by username")
	}

	return u, nil
}

func (d *directory) ListAll(ctx context.Context) ([]domain.User, error) {
	res, err := d.storage.Users(ctx, storage.UserFilter{})
	if err != nil {
		return nil, domain.StoreError(err, "could not list users")
	}

	return res, nil
}

func (d *directory) ListActive(ctx context.Context) ([]domain.User, error) {
	res, err := d.storage.Users(ctx, storage.UserFilter{EnabledOnly: true})
	if err != nil {
		return nil, domain.StoreError(err, "could not list active users")
	}

	return res, nil
}

func (d *directory) SetEnabled(ctx context.Context, id domain.UserID, enabled bool) (*domain.User, error) {
	u, err := d.storage.SetUserEnabled(ctx, id, enabled)
	if err != nil {
		return nil, domain.StoreError(err, "could not update user status")
	}
	if u == nil {
		return nil, notFound()
	}

	logger.Info(ctx, "user status changed", zap.Stringer("userID", id), zap.Bool("enabled", enabled))

	return u, nil
}

// Authenticate does not tell unknown accounts, disabled accounts and wrong
// passwords apart.
func (d *directory) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	u, err := d.FindByUsername(ctx, login)
	if err != nil {
		return nil, err
	}
	if u == nil {
		if u, err = d.FindByEmail(ctx, login); err != nil {
			return nil, err
		}
	}

	if u == nil || !u.Enabled || !d.hasher.Verify(password, u.PasswordHash) {
		logger.Debug(ctx, "authentication failed", zap.String("login", login))

		return nil, serrors.With(domain.ErrInvalidCredential, "invalid username or password")
	}

	return u, nil
}

func (d *directory) ChangePassword(ctx context.Context, id domain.UserID, oldPassword, newPassword string) error {
	u, err := d.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return notFound()
	}
	if !d.hasher.Verify(oldPassword, u.PasswordHash) {
		return serrors.With(domain.ErrInvalidCredential, "current password does not match")
	}

	hash, err := d.hash(newPassword)
	if err != nil {
		return err
	}

	ok, err := d.storage.SetUserPassword(ctx, id, hash)
	if err != nil {
		return domain.StoreError(err, "could not update password")
	}
	if !ok {
		return notFound()
	}

	logger.Info(ctx, "password changed", zap.Stringer("userID", id))

	return nil
}

func (d *directory) AddFavorite(ctx context.Context, id domain.UserID, recipeID domain.RecipeID) (*domain.User, error) {
	u, err := d.storage.AddUserFavorite(ctx, id, recipeID)
	if err != nil {
		return nil, domain.StoreError(err, "could not add favorite")
	}
	if u == nil {
		return nil, notFound()
	}

	return u, nil
}

func (d *directory) RemoveFavorite(ctx context.Context, id domain.UserID, recipeID domain.RecipeID) (*domain.User, error) {
	u, err := d.storage.RemoveUserFavorite(ctx, id, recipeID)
	if err != nil {
		return nil, domain.StoreError(err, "could not remove favorite")
	}
	if u == nil {
		return nil, notFound()
	}

	return u, nil
}

func (d *directory) Delete(ctx context.Context, id domain.UserID) (bool, error) {
	deleted, err := d.storage.DeleteUser(ctx, id)
	if err != nil {
		return false, domain.StoreError(err, "could not delete user")
	}
	if deleted {
		logger.Info(ctx, "user deleted", zap.Stringer("userID", id))
	}

	return deleted, nil
}

func (d *directory) Count(ctx context.Context) (int64, error) {
	n, err := d.storage.CountUsers(ctx, storage.UserFilter{})
	if err != nil {
		return 0, domain.StoreError(err, "could not count users")
	}

	return n, nil
}
