package v1handler

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"cookbook/internal/category"
	"cookbook/internal/recipe"
	"cookbook/internal/user"
	"cookbook/pkg/controller"
	"cookbook/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

// Deps are the services exposed by the v1 API.
type Deps struct {
	Categories category.Catalog
	Users      user.Directory
	Recipes    recipe.Catalog
}

type Options struct {
	// RatingLimiter throttles rating submissions per caller. Nil disables it.
	RatingLimiter controller.Limiter
}

type Handler struct {
	deps          Deps
	sec           *SecHandler
	validate      *validator.Validate
	ratingLimiter controller.Limiter
}

func New(deps Deps, sec *SecHandler, opts Options) *Handler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// report json names in validation messages
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Handler{
		deps:          deps,
		sec:           sec,
		validate:      validate,
		ratingLimiter: opts.RatingLimiter,
	}
}

// Routes returns the v1 router. Reads are public, writes need a bearer token.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.listCategories)
		r.Get("/search", h.searchCategories)
		r.Get("/count", h.countCategories)
		r.Get("/slug/{slug}", h.getCategoryBySlug)
		r.Get("/{id}", h.getCategory)

		r.Group(func(r chi.Router) {
			r.Use(h.sec.Required, AdminOnly)
			r.Post("/", h.createCategory)
			r.Put("/{id}", h.updateCategory)
			r.Patch("/{id}/status", h.setCategoryStatus)
			r.Delete("/{id}", h.deleteCategory)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.registerUser)
		r.Post("/authenticate", h.authenticate)
		r.Get("/", h.listUsers)
		r.Get("/count", h.countUsers)
		r.Get("/username/{username}", h.getUserByUsername)
		r.Get("/{id}", h.getUser)

		r.Group(func(r chi.Router) {
			r.Use(h.sec.Required)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
			r.With(AdminOnly).Patch("/{id}/status", h.setUserStatus)
			r.Post("/{id}/change-password", h.changePassword)
			r.Post("/{id}/favorites/{recipeId}", h.addFavorite)
			r.Delete("/{id}/favorites/{recipeId}", h.removeFavorite)
		})
	})

	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", h.listRecipes)
		r.Get("/search", h.searchRecipes)
		r.Get("/top-rated", h.topRatedRecipes)
		r.Get("/latest", h.latestRecipes)
		r.Get("/stats", h.recipeStats)
		r.Get("/category/{categoryId}", h.recipesByCategory)
		r.With(h.sec.Optional).Get("/author/{authorId}", h.recipesByAuthor)
		r.Get("/difficulty/{difficulty}", h.recipesByDifficulty)
		r.Get("/{id}", h.getRecipe)

		r.Group(func(r chi.Router) {
			r.Use(h.sec.Required)
			r.Post("/", h.createRecipe)
			r.Put("/{id}", h.updateRecipe)
			r.Delete("/{id}", h.deleteRecipe)
			r.Patch("/{id}/publish", h.setRecipePublished)

			rate := r
			if h.ratingLimiter != nil {
				rate = r.With(controller.WithRateLimit(h.ratingLimiter, callerKey))
			}
			rate.Post("/{id}/rate", h.rateRecipe)
		})
	})

	return r
}

// callerKey keys rate limits by the authenticated user.
func callerKey(r *http.Request) string {
	if id, ok := CallerID(r.Context()); ok {
		return "user:" + id.String()
	}

	return "ip:" + controller.GetClientIP(r)
}

// normalizer is implemented by requests whose fields are trimmed before the
// length bounds are checked.
type normalizer interface {
	normalize()
}

// decode reads a JSON body into v, normalizes and validates it.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if n, ok := v.(normalizer); ok {
		n.normalize()
	}

	return h.validate.Struct(v) //nolint: wrapcheck
}

func queryBool(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return v, nil
}

func requiredQueryBool(r *http.Request, name string) (bool, error) {
	if r.URL.Query().Get(name) == "" {
		return false, serrors.With(serrors.ErrBadRequest, "%s is required", name)
	}

	return queryBool(r, name, false)
}

func queryLimit(r *http.Request) (uint, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit")
	}

	return uint(v), nil
}
