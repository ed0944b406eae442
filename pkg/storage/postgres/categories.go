package postgres

import (
	"context"
	"fmt"
	"time"

	"cookbook/pkg/domain"
	"cookbook/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const categoriesTable = "categories"

func (p *PgSQL) CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if c.ID.IsZero() {
		c.ID = domain.CategoryID(uuid.New())
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}

	var row PgCategory
	row.FromDomain(c)

	var stored PgCategory
	if _, err := p.Builder.Insert(categoriesTable).
		Rows(row).
		Returning(&PgCategory{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store category into pg: %w", translateError(err))
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ReplaceCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	var row PgCategory
	row.FromDomain(c)

	var stored PgCategory
	found, err := p.Builder.Update(categoriesTable).
		Set(row).
		Where(goqu.I("id").Eq(uuid.UUID(c.ID))).
		Returning(&PgCategory{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not replace category in pg: %w", translateError(err))
	}
	if !found {
		return nil, nil
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) categoryBy(ctx context.Context, where goqu.Expression) (*domain.Category, error) {
	var row PgCategory
	found, err := p.Builder.From(categoriesTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch category from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CategoryByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	return p.categoryBy(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) CategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	return p.categoryBy(ctx, goqu.I("name").Eq(name))
}

func (p *PgSQL) CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return p.categoryBy(ctx, goqu.I("slug").Eq(slug))
}

func categoryConditions(filter storage.CategoryFilter) []goqu.Expression {
	var w []goqu.Expression
	if filter.ActiveOnly {
		w = append(w, goqu.I("active").IsTrue())
	}

	return w
}

// Categories lists categories ordered by name.
func (p *PgSQL) Categories(ctx context.Context, filter storage.CategoryFilter) ([]domain.Category, error) {
	var rows []PgCategory
	if err := p.Builder.From(categoriesTable).
		Where(categoryConditions(filter)...).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list categories from pg: %w", err)
	}

	out := make([]domain.Category, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) SetCategoryActive(ctx context.Context, id domain.CategoryID, active bool) (*domain.Category, error) {
	var row PgCategory
	found, err := p.Builder.Update(categoriesTable).
		Set(goqu.Record{
			"active":     active,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgCategory{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update category status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteCategory(ctx context.Context, id domain.CategoryID) (bool, error) {
	res, err := p.Builder.Delete(categoriesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete category in pg: %w", err)
	}

	return affected(res)
}

func (p *PgSQL) CountCategories(ctx context.Context, filter storage.CategoryFilter) (int64, error) {
	n, err := p.Builder.From(categoriesTable).
		Where(categoryConditions(filter)...).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count categories in pg: %w", err)
	}

	return n, nil
}
