package postgres

import (
	"testing"

	"cookbook/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgUser_JSONBColumnsRenderAsText(t *testing.T) {
	var row PgUser
	require.NoError(t, row.FromDomain(domain.User{
		ID:       domain.UserID(uuid.New()),
		Username: "marie",
		Roles:    []domain.Role{domain.RoleUser},
	}))

	dialect := goqu.Dialect("postgres")

	query, _, err := dialect.Insert(usersTable).Rows(row).ToSQL()
	require.NoError(t, err)
	require.Contains(t, query, `'["USER"]'`)
	require.Contains(t, query, `'[]'`)

	query, _, err = dialect.Update(usersTable).Set(row).ToSQL()
	require.NoError(t, err)
	require.Contains(t, query, `"roles"='["USER"]'`)
}

func TestPgRecipe_JSONBColumnsRenderAsText(t *testing.T) {
	var row PgRecipe
	require.NoError(t, row.FromDomain(domain.Recipe{
		ID:          domain.RecipeID(uuid.New()),
		Title:       "Crêpes",
		Tags:        []string{"dessert"},
		Ingredients: []domain.Ingredient{{Name: "Farine", Quantity: 250, Unit: "g"}},
	}))

	query, _, err := goqu.Dialect("postgres").Insert(recipesTable).Rows(row).ToSQL()
	require.NoError(t, err)
	require.Contains(t, query, `'["dessert"]'`)
	require.Contains(t, query, `'[{"name":"Farine"`)
	require.Contains(t, query, `'[]'`)
	require.NotContains(t, query, "(91, ")
}
