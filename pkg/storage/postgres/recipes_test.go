package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"cookbook/pkg/domain"
	"cookbook/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Recipes(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	categoryID := domain.CategoryID(uuid.New())
	authorID := domain.UserID(uuid.New())
	base := time.Now().Add(-time.Hour).Truncate(time.Millisecond)

	newRecipe := func(title string, published bool, offset time.Duration) *domain.Recipe {
		t.Helper()
		r, err := pg.CreateRecipe(ctx, domain.Recipe{
			Title:      title,
			CategoryID: categoryID,
			AuthorID:   authorID,
			Difficulty: domain.DifficultyEasy,
			Tags:       []string{"test"},
			Ingredients: []domain.Ingredient{
				{Name: "quinoa", Quantity: 150, Unit: "g"},
			},
			Instructions: []domain.Instruction{{StepNumber: 1, Description: "Cuire"}},
			Nutrition:    &domain.Nutrition{Calories: 450, Protein: 18.5},
			Published:    published,
			CreatedAt:    base.Add(offset),
		})
		require.NoError(t, err)

		return r
	}

	bowl := newRecipe("Buddha Bowl", true, 0)
	soup := newRecipe("Velouté", true, time.Minute)
	draft := newRecipe("Brouillon", false, 2*time.Minute)

	t.Run("round trip of nested fields", func(t *testing.T) {
		r, err := pg.RecipeByID(ctx, bowl.ID)
		require.NoError(t, err)
		require.Equal(t, bowl.Ingredients, r.Ingredients)
		require.Equal(t, bowl.Instructions, r.Instructions)
		require.Equal(t, []string{"test"}, r.Tags)
		require.NotNil(t, r.Nutrition)
		require.Equal(t, 450, r.Nutrition.Calories)
		require.Equal(t, categoryID, r.CategoryID)
	})

	t.Run("filters and ordering", func(t *testing.T) {
		published, err := pg.Recipes(ctx, storage.RecipeFilter{PublishedOnly: true})
		require.NoError(t, err)
		require.Len(t, published, 2)
		require.Equal(t, soup.ID, published[0].ID)

		byAuthor, err := pg.Recipes(ctx, storage.RecipeFilter{AuthorID: &authorID})
		require.NoError(t, err)
		require.Len(t, byAuthor, 3)
		require.Equal(t, draft.ID, byAuthor[0].ID)

		limited, err := pg.Recipes(ctx, storage.RecipeFilter{Difficulty: domain.DifficultyEasy, Limit: 1})
		require.NoError(t, err)
		require.Len(t, limited, 1)

		n, err := pg.CountRecipes(ctx, storage.RecipeFilter{PublishedOnly: true})
		require.NoError(t, err)
		require.EqualValues(t, 2, n)
	})

	t.Run("view increments are atomic", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make(chan error, 10)
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := pg.IncrementRecipeViews(ctx, soup.ID)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		r, err := pg.IncrementRecipeViews(ctx, soup.ID)
		require.NoError(t, err)
		require.Equal(t, 11, r.ViewCount)

		missing, err := pg.IncrementRecipeViews(ctx, domain.RecipeID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("rating compare-and-set", func(t *testing.T) {
		ok, err := pg.UpdateRecipeRating(ctx, bowl.ID, 0, 4)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = pg.UpdateRecipeRating(ctx, bowl.ID, 0, 2)
		require.NoError(t, err)
		require.False(t, ok, "stale count must not be applied")

		r, err := pg.RecipeByID(ctx, bowl.ID)
		require.NoError(t, err)
		require.InDelta(t, 4.0, r.Rating, 1e-9)
		require.Equal(t, 1, r.RatingCount)

		top, err := pg.Recipes(ctx, storage.RecipeFilter{PublishedOnly: true, OrderBy: storage.OrderTopRated})
		require.NoError(t, err)
		require.Equal(t, bowl.ID, top[0].ID)
	})

	t.Run("publish toggle", func(t *testing.T) {
		r, err := pg.SetRecipePublished(ctx, draft.ID, true)
		require.NoError(t, err)
		require.True(t, r.Published)
	})

	t.Run("favorite counts follow the users' lists", func(t *testing.T) {
		for _, name := range []string{"a", "b"} {
			u, err := pg.CreateUser(ctx, domain.User{Username: name, Email: name + "@example.com"})
			require.NoError(t, err)
			_, err = pg.AddUserFavorite(ctx, u.ID, soup.ID)
			require.NoError(t, err)
		}

		changed, err := pg.SyncFavoriteCounts(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, changed)

		r, err := pg.RecipeByID(ctx, soup.ID)
		require.NoError(t, err)
		require.Equal(t, 2, r.FavoriteCount)

		changed, err = pg.SyncFavoriteCounts(ctx)
		require.NoError(t, err)
		require.Zero(t, changed)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := pg.DeleteRecipe(ctx, draft.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		deleted, err = pg.DeleteRecipe(ctx, draft.ID)
		require.NoError(t, err)
		require.False(t, deleted)
	})
}
