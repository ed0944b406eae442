package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cookbook/pkg/domain"
	"cookbook/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const usersTable = "users"

func (p *PgSQL) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	if u.ID.IsZero() {
		u.ID = domain.UserID(uuid.New())
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}

	var row PgUser
	if err := row.FromDomain(u); err != nil {
		return nil, err
	}

	var stored PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", translateError(err))
	}

	return stored.ToDomain()
}

func (p *PgSQL) ReplaceUser(ctx context.Context, u domain.User) (*domain.User, error) {
	var row PgUser
	if err := row.FromDomain(u); err != nil {
		return nil, err
	}

	return p.updateUser(ctx, u.ID, row)
}

// updateUser applies set to a single user and returns the updated row, or nil
// when the user does not exist.
func (p *PgSQL) updateUser(ctx context.Context, id domain.UserID, set interface{}) (*domain.User, error) {
	var stored PgUser
	found, err := p.Builder.Update(usersTable).
		Set(set).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not update user in pg: %w", translateError(err))
	}
	if !found {
		return nil, nil
	}

	return stored.ToDomain()
}

func (p *PgSQL) userBy(ctx context.Context, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("email").Eq(email))
}

func (p *PgSQL) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("username").Eq(username))
}

func userConditions(filter storage.UserFilter) []goqu.Expression {
	var w []goqu.Expression
	if filter.EnabledOnly {
		w = append(w, goqu.I("enabled").IsTrue())
	}

	return w
}

func (p *PgSQL) Users(ctx context.Context, filter storage.UserFilter) ([]domain.User, error) {
	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Where(userConditions(filter)...).
		Order(goqu.I("username").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list users from pg: %w", err)
	}

	return pgUsersToDomain(rows)
}

func (p *PgSQL) SetUserEnabled(ctx context.Context, id domain.UserID, enabled bool) (*domain.User, error) {
	return p.updateUser(ctx, id, goqu.Record{
		"enabled":    enabled,
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	})
}

func (p *PgSQL) SetUserPassword(ctx context.Context, id domain.UserID, passwordHash string) (bool, error) {
	res, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"password_hash": passwordHash,
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not update user password in pg: %w", err)
	}

	return affected(res)
}

// favoriteElement renders a single-element JSONB array holding recipeID.
func favoriteElement(recipeID domain.RecipeID) (string, error) {
	b, err := json.Marshal([]domain.RecipeID{recipeID})
	if err != nil {
		return "", fmt.Errorf("could not marshal favorite: %w", err)
	}

	return string(b), nil
}

// AddUserFavorite appends the recipe only when the containment check fails,
// all within one UPDATE statement.
func (p *PgSQL) AddUserFavorite(ctx context.Context, id domain.UserID, recipeID domain.RecipeID) (*domain.User, error) {
	elem, err := favoriteElement(recipeID)
	if err != nil {
		return nil, err
	}

	return p.updateUser(ctx, id, goqu.Record{
		"favorite_recipe_ids": goqu.L(
			"CASE WHEN favorite_recipe_ids @> ?::jsonb THEN favorite_recipe_ids ELSE favorite_recipe_ids || ?::jsonb END",
			elem, elem),
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	})
}

func (p *PgSQL) RemoveUserFavorite(ctx context.Context, id domain.UserID, recipeID domain.RecipeID) (*domain.User, error) {
	return p.updateUser(ctx, id, goqu.Record{
		"favorite_recipe_ids": goqu.L("favorite_recipe_ids - ?::text", recipeID.String()),
		"updated_at":          goqu.L("CURRENT_TIMESTAMP"),
	})
}

func (p *PgSQL) DeleteUser(ctx context.Context, id domain.UserID) (bool, error) {
	res, err := p.Builder.Delete(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete user in pg: %w", err)
	}

	return affected(res)
}

func (p *PgSQL) CountUsers(ctx context.Context, filter storage.UserFilter) (int64, error) {
	n, err := p.Builder.From(usersTable).
		Where(userConditions(filter)...).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count users in pg: %w", err)
	}

	return n, nil
}
