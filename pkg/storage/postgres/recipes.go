package postgres

import (
	"context"
	"fmt"
	"time"

	"cookbook/pkg/domain"
	"cookbook/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const recipesTable = "recipes"

// syncFavoriteCountsQuery recounts, for every recipe, the users whose
// favorite list contains it and only rewrites the rows whose count changed.
const syncFavoriteCountsQuery = `
UPDATE recipes AS r
SET favorite_count = c.total
FROM (SELECT rc.id, COUNT(u.id) AS total
      FROM recipes rc
               LEFT JOIN users u ON u.favorite_recipe_ids @> jsonb_build_array(rc.id::text)
      GROUP BY rc.id) AS c
WHERE r.id = c.id
  AND r.favorite_count <> c.total`

func (p *PgSQL) CreateRecipe(ctx context.Context, r domain.Recipe) (*domain.Recipe, error) {
	if r.ID.IsZero() {
		r.ID = domain.RecipeID(uuid.New())
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}

	var row PgRecipe
	if err := row.FromDomain(r); err != nil {
		return nil, err
	}

	var stored PgRecipe
	if _, err := p.Builder.Insert(recipesTable).
		Rows(row).
		Returning(&PgRecipe{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store recipe into pg: %w", translateError(err))
	}

	return stored.ToDomain()
}

func (p *PgSQL) ReplaceRecipe(ctx context.Context, r domain.Recipe) (*domain.Recipe, error) {
	var row PgRecipe
	if err := row.FromDomain(r); err != nil {
		return nil, err
	}

	return p.updateRecipe(ctx, r.ID, row)
}

func (p *PgSQL) updateRecipe(ctx context.Context, id domain.RecipeID, set interface{}) (*domain.Recipe, error) {
	var stored PgRecipe
	found, err := p.Builder.Update(recipesTable).
		Set(set).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgRecipe{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not update recipe in pg: %w", translateError(err))
	}
	if !found {
		return nil, nil
	}

	return stored.ToDomain()
}

func (p *PgSQL) RecipeByID(ctx context.Context, id domain.RecipeID) (*domain.Recipe, error) {
	var row PgRecipe
	found, err := p.Builder.From(recipesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch recipe from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func recipeConditions(filter storage.RecipeFilter) []goqu.Expression {
	var w []goqu.Expression
	if filter.PublishedOnly {
		w = append(w, goqu.I("published").IsTrue())
	}
	if filter.CategoryID != nil {
		w = append(w, goqu.I("category_id").Eq(uuid.UUID(*filter.CategoryID)))
	}
	if filter.AuthorID != nil {
		w = append(w, goqu.I("author_id").Eq(uuid.UUID(*filter.AuthorID)))
	}
	if filter.Difficulty != "" {
		w = append(w, goqu.I("difficulty").Eq(string(filter.Difficulty)))
	}

	return w
}

func recipeOrder(order storage.RecipeOrder) []exp.OrderedExpression {
	if order == storage.OrderTopRated {
		return []exp.OrderedExpression{
			goqu.I("rating").Desc(),
			goqu.I("rating_count").Desc(),
			goqu.I("created_at").Desc(),
		}
	}

	return []exp.OrderedExpression{goqu.I("created_at").Desc(), goqu.I("id").Desc()}
}

func (p *PgSQL) Recipes(ctx context.Context, filter storage.RecipeFilter) ([]domain.Recipe, error) {
	ds := p.Builder.From(recipesTable).
		Where(recipeConditions(filter)...).
		Order(recipeOrder(filter.OrderBy)...)
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}

	var rows []PgRecipe
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list recipes from pg: %w", err)
	}

	return pgRecipesToDomain(rows)
}

func (p *PgSQL) IncrementRecipeViews(ctx context.Context, id domain.RecipeID) (*domain.Recipe, error) {
	return p.updateRecipe(ctx, id, goqu.Record{
		"view_count": goqu.L("view_count + 1"),
	})
}

// UpdateRecipeRating is a compare-and-set on rating_count.
func (p *PgSQL) UpdateRecipeRating(ctx context.Context,
	id domain.RecipeID,
	expectedCount int,
	average float64) (bool, error) {
	res, err := p.Builder.Update(recipesTable).
		Set(goqu.Record{
			"rating":       average,
			"rating_count": goqu.L("rating_count + 1"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("rating_count").Eq(expectedCount),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not update recipe rating in pg: %w", err)
	}

	return affected(res)
}

func (p *PgSQL) SetRecipePublished(ctx context.Context, id domain.RecipeID, published bool) (*domain.Recipe, error) {
	return p.updateRecipe(ctx, id, goqu.Record{
		"published":  published,
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	})
}

func (p *PgSQL) DeleteRecipe(ctx context.Context, id domain.RecipeID) (bool, error) {
	res, err := p.Builder.Delete(recipesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete recipe in pg: %w", err)
	}

	return affected(res)
}

func (p *PgSQL) CountRecipes(ctx context.Context, filter storage.RecipeFilter) (int64, error) {
	n, err := p.Builder.From(recipesTable).
		Where(recipeConditions(filter)...).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count recipes in pg: %w", err)
	}

	return n, nil
}

func (p *PgSQL) SyncFavoriteCounts(ctx context.Context) (int64, error) {
	res, err := p.DB.ExecContext(ctx, syncFavoriteCountsQuery)
	if err != nil {
		return 0, fmt.Errorf("could not sync favorite counts in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n, nil
}
