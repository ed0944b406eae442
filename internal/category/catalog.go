package category

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

// catalog is the storage backed implementation of Catalog.
type catalog struct {
	storage storage.CategoryStorage
	now     func() time.Time
}

// New creates a Catalog on top of the given category storage.
func New(storage storage.CategoryStorage) Catalog {
	return &catalog{
		storage: storage,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// translateError maps unique index violations reported by the store to the
// duplicate kinds and wraps everything else as a store failure.
func translateError(err error, msgFmt string, args ...any) error {
	var dup *storage.DuplicateError
	if errors.As(err, &dup) {
		switch dup.Field {
		case storage.FieldCategoryName:
			return serrors.Wrap(domain.ErrDuplicateName, err, "category name already exists")
		case storage.FieldCategorySlug:
			return serrors.Wrap(domain.ErrDuplicateSlug, err, "category slug already exists")
		}
	}

	return domain.StoreError(err, msgFmt, args...)
}

// checkUnique fails when name or slug belong to a category other than self.
func (c *catalog) checkUnique(ctx context.Context, self domain.CategoryID, name, slug string) error {
	byName, err := c.storage.CategoryByName(ctx, name)
	if err != nil {
		return domain.StoreError(err, "could not get category by name")
	}
	if byName != nil && byName.ID != self {
		return serrors.With(domain.ErrDuplicateName, "category %q already exists", name)
	}

	bySlug, err := c.storage.CategoryBySlug(ctx, slug)
	if err != nil {
		return domain.StoreError(err, "could not get category by slug")
	}
	if bySlug != nil && bySlug.ID != self {
		return serrors.With(domain.ErrDuplicateSlug, "category slug %q already exists", slug)
	}

	return nil
}

func (c *catalog) Create(ctx context.Context, cat domain.Category) (*domain.Category, error) {
	cat.Name = strings.TrimSpace(cat.Name)
	cat.Slug = Slugify(cat.Name)
	if err := c.checkUnique(ctx, domain.CategoryID{}, cat.Name, cat.Slug); err != nil {
		return nil, err
	}

	cat.Active = true
	cat.CreatedAt = c.now()
	cat.UpdatedAt = cat.CreatedAt

	created, err := c.storage.CreateCategory(ctx, cat)
	if err != nil {
		return nil, translateError(err, "could not create category")
	}

	logger.Info(ctx, "category created", zap.Stringer("categoryID", created.ID), zap.String("slug", created.Slug))

	return created, nil
}

// Update replaces every editable field of an existing category. The slug is
// re-derived from the name and the creation time is kept.
func (c *catalog) Update(ctx context.Context, cat domain.Category) (*domain.Category, error) {
	existing, err := c.storage.CategoryByID(ctx, cat.ID)
	if err != nil {
		return nil, domain.StoreError(err, "could not get category")
	}
	if existing == nil {
		return nil, serrors.With(serrors.ErrNotFound, "category not found")
	}

	cat.Name = strings.TrimSpace(cat.Name)
	cat.Slug = Slugify(cat.Name)
	if err := c.checkUnique(ctx, cat.ID, cat.Name, cat.Slug); err != nil {
		return nil, err
	}

	cat.CreatedAt = existing.CreatedAt
	cat.UpdatedAt = c.now()

	updated, err := c.storage.ReplaceCategory(ctx, cat)
	if err != nil {
		return nil, translateError(err, "could not update category")
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "category not found")
	}

	return updated, nil
}

func (c *catalog) FindByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	res, err := c.storage.CategoryByID(ctx, id)
	if err != nil {
		return nil, domain.StoreError(err, "could not get category")
	}

	return res, nil
}

func (c *catalog) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	res, err := c.storage.CategoryByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, domain.StoreError(err, "could not get category by name")
	}

	return res, nil
}

func (c *catalog) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	res, err := c.storage.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, domain.StoreError(err, "could not get category by slug")
	}

	return res, nil
}

func (c *catalog) ListAll(ctx context.Context) ([]domain.Category, error) {
	res, err := c.storage.Categories(ctx, storage.CategoryFilter{})
	if err != nil {
		return nil, domain.StoreError(err, "could not list categories")
	}

	return res, nil
}

func (c *catalog) ListActive(ctx context.Context) ([]domain.Category, error) {
	res, err := c.storage.Categories(ctx, storage.CategoryFilter{ActiveOnly: true})
	if err != nil {
		return nil, domain.StoreError(err, "could not list active categories")
	}

	return res, nil
}

func (c *catalog) SetActive(ctx context.Context, id domain.CategoryID, active bool) (*domain.Category, error) {
	res, err := c.storage.SetCategoryActive(ctx, id, active)
	if err != nil {
		return nil, domain.StoreError(err, "could not update category status")
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "category not found")
	}

	return res, nil
}

// Search matches term against name and description of active categories,
// ignoring case. A blank term returns every active category.
func (c *catalog) Search(ctx context.Context, term string) ([]domain.Category, error) {
	active, err := c.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return active, nil
	}

	res := make([]domain.Category, 0, len(active))
	for _, cat := range active {
		if strings.Contains(strings.ToLower(cat.Name), term) ||
			strings.Contains(strings.ToLower(cat.Description), term) {
			res = append(res, cat)
		}
	}

	return res, nil
}

// CanDelete always allows deletion. Recipes keep dangling category IDs.
// TODO: reject categories still referenced by recipes once a reassignment flow exists.
func (c *catalog) CanDelete(_ context.Context, _ domain.CategoryID) (bool, error) {
	return true, nil
}

func (c *catalog) Delete(ctx context.Context, id domain.CategoryID) (bool, error) {
	deleted, err := c.storage.DeleteCategory(ctx, id)
	if err != nil {
		return false, domain.StoreError(err, "could not delete category")
	}
	if deleted {
		logger.Info(ctx, "category deleted", zap.Stringer("categoryID", id))
	}

	return deleted, nil
}

func (c *catalog) Count(ctx context.Context, activeOnly bool) (int64, error) {
	n, err := c.storage.CountCategories(ctx, storage.CategoryFilter{ActiveOnly: activeOnly})
	if err != nil {
		return 0, domain.StoreError(err, "could not count categories")
	}

	return n, nil
}
