package recipe_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"cookbook/internal/category"
	"cookbook/internal/recipe"
	"cookbook/internal/user"
	"cookbook/pkg/credential"
	"cookbook/pkg/domain"
	"cookbook/pkg/serrors"
	"cookbook/pkg/storage/memory"
	mockstorage "cookbook/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type CatalogSuite struct {
	suite.Suite

	ctx        context.Context
	store      *memory.Memory
	categories category.Catalog
	users      user.Directory
	catalog    recipe.Catalog

	salads   *domain.Category
	desserts *domain.Category
	marie    *domain.User
	paul     *domain.User
	admin    *domain.User
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.New()
	s.categories = category.New(s.store)
	s.users = user.New(s.store, credential.New(credential.Options{Cost: bcrypt.MinCost}))
	s.catalog = recipe.New(s.store, s.categories, s.users, recipe.Options{
		TopRatedLimit:    2,
		RateMaxAttempts:  50,
		DefaultListLimit: 3,
	})

	var err error
	s.salads, err = s.categories.Create(s.ctx, domain.Category{Name: "Salades"})
	s.Require().NoError(err)
	s.desserts, err = s.categories.Create(s.ctx, domain.Category{Name: "Desserts"})
	s.Require().NoError(err)

	s.marie, err = s.users.Create(s.ctx, domain.User{Username: "marie", Email: "marie@recettes.fr"}, "pw")
	s.Require().NoError(err)
	s.paul, err = s.users.Create(s.ctx, domain.User{Username: "paul", Email: "paul@recettes.fr"}, "pw")
	s.Require().NoError(err)
	s.admin, err = s.users.Create(s.ctx, domain.User{
		Username: "admin",
		Email:    "admin@recettes.fr",
		Roles:    []domain.Role{domain.RoleUser, domain.RoleAdmin},
	}, "pw")
	s.Require().NoError(err)
}

func (s *CatalogSuite) create(r domain.Recipe) *domain.Recipe {
	if r.CategoryID.IsZero() {
		r.CategoryID = s.salads.ID
	}
	if r.AuthorID.IsZero() {
		r.AuthorID = s.marie.ID
	}
	created, err := s.catalog.Create(s.ctx, r)
	s.Require().NoError(err)

	return created
}

func ids(recipes []domain.Recipe) []domain.RecipeID {
	out := make([]domain.RecipeID, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}

	return out
}

func (s *CatalogSuite) TestCreate_ResetsCounters() {
	r := s.create(domain.Recipe{
		Title:         "Buddha Bowl",
		Rating:        4.9,
		RatingCount:   120,
		FavoriteCount: 7,
		ViewCount:     1000,
		Published:     true,
	})

	s.False(r.ID.IsZero())
	s.Zero(r.Rating)
	s.Zero(r.RatingCount)
	s.Zero(r.FavoriteCount)
	s.Zero(r.ViewCount)
	s.False(r.CreatedAt.IsZero())
}

func (s *CatalogSuite) TestCreate_UnknownCategory() {
	_, err := s.catalog.Create(s.ctx, domain.Recipe{
		Title:      "Orphan",
		CategoryID: domain.CategoryID(uuid.New()),
		AuthorID:   s.marie.ID,
	})
	s.Require().ErrorIs(err, domain.ErrCategoryNotFound)

	// the category is checked before the author
	_, err = s.catalog.Create(s.ctx, domain.Recipe{
		Title:      "Orphan",
		CategoryID: domain.CategoryID(uuid.New()),
		AuthorID:   domain.UserID(uuid.New()),
	})
	s.Require().ErrorIs(err, domain.ErrCategoryNotFound)
}

func (s *CatalogSuite) TestCreate_UnknownAuthor() {
	_, err := s.catalog.Create(s.ctx, domain.Recipe{
		Title:      "Ghost",
		CategoryID: s.salads.ID,
		AuthorID:   domain.UserID(uuid.New()),
	})
	s.Require().ErrorIs(err, domain.ErrAuthorNotFound)
}

func (s *CatalogSuite) TestUpdate_KeepsServerOwnedFields() {
	r := s.create(domain.Recipe{Title: "Velouté", Published: true})
	_, err := s.catalog.Rate(s.ctx, r.ID, 4)
	s.Require().NoError(err)
	_, err = s.catalog.FindByIDAndTouch(s.ctx, r.ID)
	s.Require().NoError(err)

	r.Title = "Velouté de potimarron"
	r.CategoryID = s.desserts.ID
	r.Rating = 0
	r.RatingCount = 99
	r.ViewCount = 0
	r.FavoriteCount = 42
	updated, err := s.catalog.Update(s.ctx, *r)
	s.Require().NoError(err)

	s.Equal("Velouté de potimarron", updated.Title)
	s.Equal(s.desserts.ID, updated.CategoryID)
	s.InDelta(4.0, updated.Rating, 1e-9)
	s.Equal(1, updated.RatingCount)
	s.Equal(1, updated.ViewCount)
	s.Zero(updated.FavoriteCount)
	s.Equal(r.CreatedAt, updated.CreatedAt)
}

func (s *CatalogSuite) TestUpdate_Failures() {
	_, err := s.catalog.Update(s.ctx, domain.Recipe{ID: domain.RecipeID(uuid.New()), CategoryID: s.salads.ID})
	s.Require().ErrorIs(err, serrors.ErrNotFound)

	r := s.create(domain.Recipe{Title: "Salade"})
	r.CategoryID = domain.CategoryID(uuid.New())
	_, err = s.catalog.Update(s.ctx, *r)
	s.Require().ErrorIs(err, domain.ErrCategoryNotFound)
}

func (s *CatalogSuite) TestRate_RunningAverage() {
	r := s.create(domain.Recipe{Title: "Coq au vin", Published: true})

	res, err := s.catalog.Rate(s.ctx, r.ID, 4.0)
	s.Require().NoError(err)
	s.InDelta(4.0, res.Rating, 1e-9)

	res, err = s.catalog.Rate(s.ctx, r.ID, 2.0)
	s.Require().NoError(err)
	s.InDelta(3.0, res.Rating, 1e-9)
	s.Equal(2, res.RatingCount)

	res, err = s.catalog.Rate(s.ctx, r.ID, 5.0)
	s.Require().NoError(err)
	s.InDelta(11.0/3.0, res.Rating, 1e-9)
	s.Equal(3, res.RatingCount)

	stored, err := s.catalog.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.InDelta(11.0/3.0, stored.Rating, 1e-9)
	s.Equal(3, stored.RatingCount)
}

func (s *CatalogSuite) TestRate_ConcurrentRatingsAreNotLost() {
	r := s.create(domain.Recipe{Title: "Tarte aux fraises", Published: true})

	const raters = 20
	var wg sync.WaitGroup
	errs := make(chan error, raters)
	for range raters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.catalog.Rate(s.ctx, r.ID, 5)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.Require().NoError(err)
	}

	stored, err := s.catalog.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(raters, stored.RatingCount)
	s.InDelta(5.0, stored.Rating, 1e-9)
}

func (s *CatalogSuite) TestRate_NotFound() {
	_, err := s.catalog.Rate(s.ctx, domain.RecipeID(uuid.New()), 3)
	s.Require().ErrorIs(err, serrors.ErrNotFound)
}

func (s *CatalogSuite) TestFindByIDAndTouch() {
	r := s.create(domain.Recipe{Title: "Soupe", Published: true})

	first, err := s.catalog.FindByIDAndTouch(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(1, first.ViewCount)

	second, err := s.catalog.FindByIDAndTouch(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(2, second.ViewCount)

	stored, err := s.catalog.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(2, stored.ViewCount)

	missing, err := s.catalog.FindByIDAndTouch(s.ctx, domain.RecipeID(uuid.New()))
	s.Require().NoError(err)
	s.Nil(missing)
}

func (s *CatalogSuite) TestSearchByTitle() {
	bowl := s.create(domain.Recipe{Title: "Buddha Bowl", Tags: []string{"healthy", "Quinoa"}, Published: true})
	salad := s.create(domain.Recipe{Title: "Salade de QUINOA", Published: true})
	desc := s.create(domain.Recipe{Title: "Taboulé", Description: "Au quinoa plutôt qu'à la semoule", Published: true})
	s.create(domain.Recipe{Title: "Quinoa secret", Published: false})
	s.create(domain.Recipe{Title: "Coq au vin", Published: true})

	all, err := s.catalog.SearchByTitle(s.ctx, "")
	s.Require().NoError(err)
	published, err := s.catalog.ListPublished(s.ctx)
	s.Require().NoError(err)
	s.Equal(ids(published), ids(all))
	s.Len(all, 4)

	res, err := s.catalog.SearchByTitle(s.ctx, "quinoa")
	s.Require().NoError(err)
	s.ElementsMatch([]domain.RecipeID{bowl.ID, salad.ID, desc.ID}, ids(res))
}

func (s *CatalogSuite) TestListings() {
	easy := s.create(domain.Recipe{Title: "Easy", Difficulty: domain.DifficultyEasy, Published: true})
	hard := s.create(domain.Recipe{
		Title:      "Hard",
		Difficulty: domain.DifficultyHard,
		CategoryID: s.desserts.ID,
		AuthorID:   s.paul.ID,
		Published:  true,
	})
	draft := s.create(domain.Recipe{Title: "Draft", Difficulty: domain.DifficultyEasy})

	byCategory, err := s.catalog.ListByCategory(s.ctx, s.salads.ID)
	s.Require().NoError(err)
	s.Equal([]domain.RecipeID{easy.ID}, ids(byCategory))

	byAuthor, err := s.catalog.ListByAuthor(s.ctx, s.marie.ID)
	s.Require().NoError(err)
	s.ElementsMatch([]domain.RecipeID{easy.ID, draft.ID}, ids(byAuthor))

	publishedByAuthor, err := s.catalog.ListPublishedByAuthor(s.ctx, s.marie.ID)
	s.Require().NoError(err)
	s.Equal([]domain.RecipeID{easy.ID}, ids(publishedByAuthor))

	byDifficulty, err := s.catalog.ListByDifficulty(s.ctx, domain.DifficultyEasy)
	s.Require().NoError(err)
	s.Equal([]domain.RecipeID{easy.ID}, ids(byDifficulty))

	latest, err := s.catalog.ListLatest(s.ctx, 0)
	s.Require().NoError(err)
	s.ElementsMatch([]domain.RecipeID{easy.ID, hard.ID}, ids(latest))
	s.False(latest[0].CreatedAt.Before(latest[1].CreatedAt))
}

func (s *CatalogSuite) TestListTopRated() {
	low := s.create(domain.Recipe{Title: "Low", Published: true})
	high := s.create(domain.Recipe{Title: "High", Published: true})
	mid := s.create(domain.Recipe{Title: "Mid", Published: true})
	hidden := s.create(domain.Recipe{Title: "Hidden"})

	for id, score := range map[domain.RecipeID]float64{low.ID: 1, high.ID: 5, mid.ID: 3, hidden.ID: 5} {
		_, err := s.catalog.Rate(s.ctx, id, score)
		s.Require().NoError(err)
	}

	top, err := s.catalog.ListTopRated(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal([]domain.RecipeID{high.ID, mid.ID}, ids(top))

	top, err = s.catalog.ListTopRated(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal([]domain.RecipeID{high.ID, mid.ID, low.ID}, ids(top))
}

func (s *CatalogSuite) TestCanEdit() {
	r := s.create(domain.Recipe{Title: "Mine", AuthorID: s.marie.ID})

	ok, err := s.catalog.CanEdit(s.ctx, s.marie.ID, r.ID)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.catalog.CanEdit(s.ctx, s.paul.ID, r.ID)
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.catalog.CanEdit(s.ctx, s.admin.ID, r.ID)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.catalog.CanEdit(s.ctx, s.marie.ID, domain.RecipeID(uuid.New()))
	s.Require().NoError(err)
	s.False(ok)
}

func (s *CatalogSuite) TestSetPublishedAndDelete() {
	r := s.create(domain.Recipe{Title: "Draft"})

	res, err := s.catalog.SetPublished(s.ctx, r.ID, true)
	s.Require().NoError(err)
	s.True(res.Published)

	_, err = s.catalog.SetPublished(s.ctx, domain.RecipeID(uuid.New()), true)
	s.Require().ErrorIs(err, serrors.ErrNotFound)

	deleted, err := s.catalog.Delete(s.ctx, r.ID)
	s.Require().NoError(err)
	s.True(deleted)

	deleted, err = s.catalog.Delete(s.ctx, r.ID)
	s.Require().NoError(err)
	s.False(deleted)
}

func (s *CatalogSuite) TestGlobalStats() {
	a := s.create(domain.Recipe{Title: "A", Published: true})
	b := s.create(domain.Recipe{Title: "B", Published: true})
	s.create(domain.Recipe{Title: "C", Published: true})
	s.create(domain.Recipe{Title: "Draft"})

	_, err := s.catalog.Rate(s.ctx, a.ID, 5)
	s.Require().NoError(err)
	_, err = s.catalog.Rate(s.ctx, b.ID, 4)
	s.Require().NoError(err)

	stats, err := s.catalog.GlobalStats(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(4, stats.TotalRecipes)
	s.EqualValues(3, stats.PublishedRecipes)
	s.Equal([]domain.RecipeID{a.ID, b.ID}, ids(stats.TopRated))
}

func (s *CatalogSuite) TestSyncFavoriteCounts() {
	r := s.create(domain.Recipe{Title: "Favorite", Published: true})

	_, err := s.users.AddFavorite(s.ctx, s.marie.ID, r.ID)
	s.Require().NoError(err)
	_, err = s.users.AddFavorite(s.ctx, s.paul.ID, r.ID)
	s.Require().NoError(err)

	changed, err := s.catalog.SyncFavoriteCounts(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(1, changed)

	stored, err := s.catalog.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(2, stored.FavoriteCount)

	changed, err = s.catalog.SyncFavoriteCounts(s.ctx)
	s.Require().NoError(err)
	s.Zero(changed)
}

func TestCatalog_RateGivesUpOnContention(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockRecipeStorage(ctrl)
	c := recipe.New(st, nil, nil, recipe.Options{RateMaxAttempts: 3})

	id := domain.RecipeID(uuid.New())
	st.EXPECT().RecipeByID(gomock.Any(), id).Return(&domain.Recipe{ID: id, Rating: 4, RatingCount: 1}, nil).Times(3)
	st.EXPECT().UpdateRecipeRating(gomock.Any(), id, 1, 4.5).Return(false, nil).Times(3)

	_, err := c.Rate(context.Background(), id, 5)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestCatalog_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockRecipeStorage(ctrl)
	c := recipe.New(st, nil, nil, recipe.Options{})

	cause := errors.New("connection reset")
	st.EXPECT().CountRecipes(gomock.Any(), gomock.Any()).Return(int64(0), cause).AnyTimes()
	st.EXPECT().Recipes(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := c.GlobalStats(context.Background())
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	require.ErrorIs(t, err, cause)

	st.EXPECT().IncrementRecipeViews(gomock.Any(), gomock.Any()).Return(nil, cause)
	_, err = c.FindByIDAndTouch(context.Background(), domain.RecipeID(uuid.New()))
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
