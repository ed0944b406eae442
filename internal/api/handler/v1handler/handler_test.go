package v1handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cookbook/internal/api/handler/v1handler"
	"cookbook/internal/category"
	"cookbook/internal/recipe"
	"cookbook/internal/user"
	"cookbook/pkg/credential"
	"cookbook/pkg/domain"
	"cookbook/pkg/ratelimit"
	"cookbook/pkg/storage/memory"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type HandlerSuite struct {
	suite.Suite

	ctx     context.Context
	deps    v1handler.Deps
	sec     *v1handler.SecHandler
	limiter *countingLimiter
	router  chi.Router

	admin, marie, paul          *domain.User
	adminTok, marieTok, paulTok string
	dessert                     *domain.Category
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

// countingLimiter allows the first budget calls.
type countingLimiter struct {
	budget int64
}

func (c *countingLimiter) Allow(_ context.Context, _ string) (ratelimit.Result, error) {
	c.budget--

	return ratelimit.Result{Allowed: c.budget >= 0, Limit: 10, Remaining: max(c.budget, 0), ResetAt: time.Now()}, nil
}

func (s *HandlerSuite) SetupTest() {
	s.ctx = context.Background()

	store := memory.New()
	categories := category.New(store)
	users := user.New(store, credential.New(credential.Options{Cost: bcrypt.MinCost}))
	s.deps = v1handler.Deps{
		Categories: categories,
		Users:      users,
		Recipes:    recipe.New(store, categories, users, recipe.Options{RateMaxAttempts: 5}),
	}

	_, pubPEM, privPEM := genRSAKeys(s.T())
	s.sec = newSecHandlerForTest(s.T(), pubPEM, privPEM)
	s.limiter = &countingLimiter{budget: 100}
	s.router = v1handler.New(s.deps, s.sec, v1handler.Options{RatingLimiter: s.limiter}).Routes()

	s.admin, s.adminTok = s.account("admin", domain.RoleUser, domain.RoleAdmin)
	s.marie, s.marieTok = s.account("marie")
	s.paul, s.paulTok = s.account("paul")

	var err error
	s.dessert, err = categories.Create(s.ctx, domain.Category{Name: "Desserts"})
	s.Require().NoError(err)
}

func (s *HandlerSuite) account(username string, roles ...domain.Role) (*domain.User, string) {
	u, err := s.deps.Users.Create(s.ctx, domain.User{
		Username: username,
		Email:    username + "@recettes.fr",
		Roles:    roles,
	}, "password123")
	s.Require().NoError(err)

	token, _, err := s.sec.Issue(u)
	s.Require().NoError(err)

	return u, token
}

func (s *HandlerSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	return rec
}

func (s *HandlerSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (s *HandlerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body v1handler.ErrorResponse
	s.decode(rec, &body)

	return body.Code
}

func (s *HandlerSuite) errorMessage(rec *httptest.ResponseRecorder) string {
	var body v1handler.ErrorResponse
	s.decode(rec, &body)

	return body.Message
}

func (s *HandlerSuite) recipeBody(title string) map[string]any {
	return map[string]any{
		"title":           title,
		"description":     "Une recette",
		"categoryId":      s.dessert.ID.String(),
		"servings":        4,
		"prepTimeMinutes": 10,
		"cookTimeMinutes": 20,
		"difficulty":      "EASY",
		"tags":            []string{"dessert"},
		"ingredients":     []map[string]any{{"name": "Fraises", "quantity": 500, "unit": "g"}},
		"instructions":    []map[string]any{{"description": "Laver les fraises."}},
		"published":       true,
		"rating":          5,
		"viewCount":       99,
	}
}

func (s *HandlerSuite) createRecipe(token, title string) domain.Recipe {
	rec := s.do(http.MethodPost, "/recipes", token, s.recipeBody(title))
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var out domain.Recipe
	s.decode(rec, &out)

	return out
}

func (s *HandlerSuite) TestCategories_ReadsArePublic() {
	rec := s.do(http.MethodGet, "/categories", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var list []domain.Category
	s.decode(rec, &list)
	s.Require().Len(list, 1)
	s.Equal("desserts", list[0].Slug)

	rec = s.do(http.MethodGet, "/categories/slug/desserts", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/categories/"+s.dessert.ID.String(), "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/categories/not-a-uuid", "", nil)
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/categories/slug/unknown", "", nil)
	s.Require().Equal(http.StatusNotFound, rec.Code)
	s.Equal("NOT_FOUND", s.errorCode(rec))

	rec = s.do(http.MethodGet, "/categories/search?q=sert", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &list)
	s.Len(list, 1)
}

func (s *HandlerSuite) TestCategories_AdminWrites() {
	body := map[string]any{"name": "Crème Brûlée", "color": "#FFAA00"}

	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/categories", "", body).Code)
	s.Equal(http.StatusForbidden, s.do(http.MethodPost, "/categories", s.marieTok, body).Code)

	rec := s.do(http.MethodPost, "/categories", s.adminTok, body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created domain.Category
	s.decode(rec, &created)
	s.Equal("creme-brulee", created.Slug)
	s.True(created.Active)

	rec = s.do(http.MethodPost, "/categories", s.adminTok, map[string]any{"name": "creme brulee"})
	s.Require().Equal(http.StatusConflict, rec.Code)
	s.Equal("DUPLICATE_SLUG", s.errorCode(rec))

	rec = s.do(http.MethodPost, "/categories", s.adminTok, map[string]any{"name": "x"})
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Equal("BAD_REQUEST", s.errorCode(rec))

	path := "/categories/" + created.ID.String()
	rec = s.do(http.MethodPatch, path+"/status?active=false", s.adminTok, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	// omitting active keeps the stored flag
	rec = s.do(http.MethodPut, path, s.adminTok, map[string]any{"name": "Flans"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var updated domain.Category
	s.decode(rec, &updated)
	s.Equal("flans", updated.Slug)
	s.False(updated.Active)

	rec = s.do(http.MethodGet, "/categories/count?all=true", "", nil)
	var count v1handler.CountResponse
	s.decode(rec, &count)
	s.EqualValues(2, count.Count)

	s.Equal(http.StatusBadRequest, s.do(http.MethodPatch, path+"/status", s.adminTok, nil).Code)
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, path, s.adminTok, nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, path, s.adminTok, nil).Code)
}

func (s *HandlerSuite) TestBoundsApplyToTrimmedInput() {
	rec := s.do(http.MethodPost, "/categories", s.adminTok, map[string]any{"name": "  a  "})
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Equal("name failed on min=2", s.errorMessage(rec))

	rec = s.do(http.MethodPost, "/categories", s.adminTok, map[string]any{"name": "   "})
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Equal("name failed on required", s.errorMessage(rec))

	rec = s.do(http.MethodPost, "/categories", s.adminTok, map[string]any{"name": " Tapas "})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created domain.Category
	s.decode(rec, &created)
	s.Equal("Tapas", created.Name)

	rec = s.do(http.MethodPost, "/users", "", map[string]any{"username": " ab ", "email": "ab@recettes.fr", "password": "secret1"})
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Equal("username failed on min=3", s.errorMessage(rec))

	body := s.recipeBody("  ab ")
	rec = s.do(http.MethodPost, "/recipes", s.marieTok, body)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Equal("title failed on min=3", s.errorMessage(rec))
}

func (s *HandlerSuite) TestUsers_RegisterAndAuthenticate() {
	rec := s.do(http.MethodPost, "/users", "", map[string]any{
		"username": "sophie",
		"email":    "Sophie@Recettes.fr",
		"password": "secret1",
		"roles":    []string{"ADMIN"},
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.NotContains(rec.Body.String(), "password")

	var u domain.User
	s.decode(rec, &u)
	s.Equal("sophie@recettes.fr", u.Email)
	s.Equal([]domain.Role{domain.RoleUser}, u.Roles)

	rec = s.do(http.MethodPost, "/users", "", map[string]any{
		"username": "other", "email": "sophie@recettes.fr", "password": "secret1",
	})
	s.Require().Equal(http.StatusConflict, rec.Code)
	s.Equal("DUPLICATE_EMAIL", s.errorCode(rec))

	rec = s.do(http.MethodPost, "/users", "", map[string]any{"username": "ab", "email": "nope", "password": "1"})
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/users/authenticate", "", map[string]any{"login": "sophie", "password": "wrong"})
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("INVALID_CREDENTIAL", s.errorCode(rec))

	rec = s.do(http.MethodPost, "/users/authenticate", "", map[string]any{"login": "sophie@recettes.fr", "password": "secret1"})
	s.Require().Equal(http.StatusOK, rec.Code)
	var auth v1handler.AuthenticateResponse
	s.decode(rec, &auth)
	s.Equal(u.ID, auth.User.ID)

	// the issued token authenticates writes
	created := s.createRecipe(auth.Token, "Mousse au chocolat")
	s.Equal(u.ID, created.AuthorID)
}

func (s *HandlerSuite) TestUsers_SelfOrAdmin() {
	path := "/users/" + s.marie.ID.String()
	body := map[string]any{
		"username": "marie",
		"email":    "marie@recettes.fr",
		"bio":      "Cheffe",
		"roles":    []string{"USER", "ADMIN"},
	}

	s.Equal(http.StatusUnauthorized, s.do(http.MethodPut, path, "", body).Code)
	s.Equal(http.StatusForbidden, s.do(http.MethodPut, path, s.paulTok, body).Code)

	// roles sent by a regular user are ignored
	rec := s.do(http.MethodPut, path, s.marieTok, body)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var u domain.User
	s.decode(rec, &u)
	s.Equal("Cheffe", u.Bio)
	s.False(u.IsAdmin())
	s.True(u.Enabled)

	rec = s.do(http.MethodPut, path, s.adminTok, body)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &u)
	s.True(u.IsAdmin())

	s.Equal(http.StatusForbidden, s.do(http.MethodPatch, path+"/status?enabled=false", s.paulTok, nil).Code)
	rec = s.do(http.MethodPatch, path+"/status?enabled=false", s.adminTok, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &u)
	s.False(u.Enabled)

	rec = s.do(http.MethodGet, "/users", "", nil)
	var active []domain.User
	s.decode(rec, &active)
	s.Len(active, 2)

	s.Equal(http.StatusForbidden, s.do(http.MethodDelete, path, s.paulTok, nil).Code)
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, path, s.adminTok, nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, path, "", nil).Code)
}

func (s *HandlerSuite) TestUsers_ChangePassword() {
	path := "/users/" + s.marie.ID.String() + "/change-password"

	rec := s.do(http.MethodPost, path, s.adminTok, map[string]any{"oldPassword": "password123", "newPassword": "nouveau1"})
	s.Require().Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, path, s.marieTok, map[string]any{"oldPassword": "wrong", "newPassword": "nouveau1"})
	s.Require().Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, path, s.marieTok, map[string]any{"oldPassword": "password123", "newPassword": "nouveau1"})
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodPost, "/users/authenticate", "", map[string]any{"login": "marie", "password": "nouveau1"})
	s.Require().Equal(http.StatusOK, rec.Code)
}

func (s *HandlerSuite) TestUsers_Favorites() {
	r := s.createRecipe(s.paulTok, "Tarte aux fraises")
	path := "/users/" + s.marie.ID.String() + "/favorites/"

	s.Equal(http.StatusNotFound, s.do(http.MethodPost, path+domain.RecipeID{}.String(), s.marieTok, nil).Code)
	s.Equal(http.StatusForbidden, s.do(http.MethodPost, path+r.ID.String(), s.paulTok, nil).Code)

	rec := s.do(http.MethodPost, path+r.ID.String(), s.marieTok, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var u domain.User
	s.decode(rec, &u)
	s.Equal([]domain.RecipeID{r.ID}, u.FavoriteRecipeIDs)

	rec = s.do(http.MethodDelete, path+r.ID.String(), s.marieTok, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &u)
	s.Empty(u.FavoriteRecipeIDs)
}

func (s *HandlerSuite) TestRecipes_CreateIgnoresServerFields() {
	r := s.createRecipe(s.marieTok, "Tarte aux fraises")

	s.Equal(s.marie.ID, r.AuthorID)
	s.Zero(r.Rating)
	s.Zero(r.ViewCount)
	s.Equal(domain.DifficultyEasy, r.Difficulty)
	s.Require().Len(r.Instructions, 1)
	s.Equal(1, r.Instructions[0].StepNumber)

	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/recipes", "", s.recipeBody("Sans auteur")).Code)

	body := s.recipeBody("Catégorie inconnue")
	body["categoryId"] = domain.CategoryID{}.String()
	rec := s.do(http.MethodPost, "/recipes", s.marieTok, body)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Equal("CATEGORY_NOT_FOUND", s.errorCode(rec))

	body = s.recipeBody("Trop de convives")
	body["servings"] = 51
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/recipes", s.marieTok, body).Code)
}

func (s *HandlerSuite) TestRecipes_GetTouchesViews() {
	r := s.createRecipe(s.marieTok, "Tarte aux fraises")
	path := "/recipes/" + r.ID.String()

	var got domain.Recipe
	s.decode(s.do(http.MethodGet, path, "", nil), &got)
	s.Equal(1, got.ViewCount)
	s.decode(s.do(http.MethodGet, path, "", nil), &got)
	s.Equal(2, got.ViewCount)

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/recipes/"+domain.RecipeID{}.String(), "", nil).Code)
}

func (s *HandlerSuite) TestRecipes_Rate() {
	r := s.createRecipe(s.marieTok, "Tarte aux fraises")
	path := "/recipes/" + r.ID.String() + "/rate"

	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, path+"?rating=4", "", nil).Code)
	for _, bad := range []string{"6", "-1", "5.01", "abc", "NaN", "Inf", "-Inf", ""} {
		s.Equal(http.StatusBadRequest, s.do(http.MethodPost, path+"?rating="+bad, s.paulTok, nil).Code, bad)
	}
	rec := s.do(http.MethodPost, path+"?rating=6", s.paulTok, nil)
	s.Equal("rating failed on lte=5", s.errorMessage(rec))
	rec = s.do(http.MethodPost, path+"?rating=-0.5", s.paulTok, nil)
	s.Equal("rating failed on gte=0", s.errorMessage(rec))

	rec = s.do(http.MethodPost, path+"?rating=4", s.paulTok, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	rec = s.do(http.MethodPost, path+"?rating=2", s.paulTok, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got domain.Recipe
	s.decode(rec, &got)
	s.InDelta(3.0, got.Rating, 1e-9)
	s.Equal(2, got.RatingCount)

	s.Equal(http.StatusNotFound, s.do(http.MethodPost, "/recipes/"+domain.RecipeID{}.String()+"/rate?rating=3", s.paulTok, nil).Code)

	s.limiter.budget = 0
	rec = s.do(http.MethodPost, path+"?rating=5", s.paulTok, nil)
	s.Require().Equal(http.StatusTooManyRequests, rec.Code)
	s.Equal("RATE_LIMITED", s.errorCode(rec))
}

func (s *HandlerSuite) TestRecipes_EditGuards() {
	r := s.createRecipe(s.marieTok, "Tarte aux fraises")
	path := "/recipes/" + r.ID.String()

	s.Equal(http.StatusForbidden, s.do(http.MethodPut, path, s.paulTok, s.recipeBody("Volée")).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodPut, "/recipes/"+domain.RecipeID{}.String(), s.marieTok, s.recipeBody("x y z")).Code)

	rec := s.do(http.MethodPut, path, s.adminTok, s.recipeBody("Tarte aux fraises revisitée"))
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var got domain.Recipe
	s.decode(rec, &got)
	s.Equal("Tarte aux fraises revisitée", got.Title)
	s.Equal(s.marie.ID, got.AuthorID)

	s.Equal(http.StatusForbidden, s.do(http.MethodPatch, path+"/publish?published=false", s.paulTok, nil).Code)
	rec = s.do(http.MethodPatch, path+"/publish?published=false", s.marieTok, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &got)
	s.False(got.Published)

	// drafts are only listed for their author
	authorPath := "/recipes/author/" + s.marie.ID.String()
	var list []domain.Recipe
	s.decode(s.do(http.MethodGet, authorPath, "", nil), &list)
	s.Empty(list)
	s.decode(s.do(http.MethodGet, authorPath, s.paulTok, nil), &list)
	s.Empty(list)
	s.decode(s.do(http.MethodGet, authorPath, s.marieTok, nil), &list)
	s.Len(list, 1)
	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, authorPath, "garbage", nil).Code)

	s.Equal(http.StatusForbidden, s.do(http.MethodDelete, path, s.paulTok, nil).Code)
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, path, s.marieTok, nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, path, s.marieTok, nil).Code)
}

func (s *HandlerSuite) TestRecipes_Listings() {
	s.createRecipe(s.marieTok, "Tarte aux fraises")
	quinoa := s.recipeBody("Bowl au quinoa")
	quinoa["difficulty"] = "hard"
	rec := s.do(http.MethodPost, "/recipes", s.paulTok, quinoa)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var list []domain.Recipe
	s.decode(s.do(http.MethodGet, "/recipes", "", nil), &list)
	s.Len(list, 2)

	s.decode(s.do(http.MethodGet, "/recipes/search?q=QUINOA", "", nil), &list)
	s.Require().Len(list, 1)
	s.Equal("Bowl au quinoa", list[0].Title)

	s.decode(s.do(http.MethodGet, "/recipes/difficulty/HARD", "", nil), &list)
	s.Len(list, 1)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/recipes/difficulty/extreme", "", nil).Code)

	s.decode(s.do(http.MethodGet, "/recipes/category/"+s.dessert.ID.String(), "", nil), &list)
	s.Len(list, 2)

	s.decode(s.do(http.MethodGet, "/recipes/latest?limit=1", "", nil), &list)
	s.Len(list, 1)
	s.decode(s.do(http.MethodGet, "/recipes/top-rated", "", nil), &list)
	s.Len(list, 2)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/recipes/top-rated?limit=-1", "", nil).Code)

	rec = s.do(http.MethodGet, "/recipes/stats", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var stats recipe.Stats
	s.decode(rec, &stats)
	s.EqualValues(2, stats.TotalRecipes)
	s.EqualValues(2, stats.PublishedRecipes)
	s.Len(stats.TopRated, 2)
}
