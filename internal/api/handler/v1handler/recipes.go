package v1handler

import (
	"net/http"
	"strconv"

	"cookbook/pkg/domain"
	"cookbook/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

func recipeID(r *http.Request, param string) (domain.RecipeID, error) {
	id, err := domain.ParseRecipeID(chi.URLParam(r, param))
	if err != nil {
		return id, serrors.Wrap(serrors.ErrBadRequest, err, "invalid recipe id")
	}

	return id, nil
}

func recipeNotFound() error {
	return serrors.With(serrors.ErrNotFound, "recipe not found")
}

func (h *Handler) writeRecipes(w http.ResponseWriter, r *http.Request, res []domain.Recipe, err error) {
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, nonNil(res))
}

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Recipes.ListPublished(r.Context())
	h.writeRecipes(w, r, res, err)
}

func (h *Handler) searchRecipes(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Recipes.SearchByTitle(r.Context(), r.URL.Query().Get("q"))
	h.writeRecipes(w, r, res, err)
}

func (h *Handler) topRatedRecipes(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Recipes.ListTopRated(r.Context(), limit)
	h.writeRecipes(w, r, res, err)
}

func (h *Handler) latestRecipes(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Recipes.ListLatest(r.Context(), limit)
	h.writeRecipes(w, r, res, err)
}

func (h *Handler) recipeStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Recipes.GlobalStats(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}
	stats.TopRated = nonNil(stats.TopRated)

	writeJSON(w, r, http.StatusOK, stats)
}

func (h *Handler) recipesByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseCategoryID(chi.URLParam(r, "categoryId"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid category id"))

		return
	}

	res, err := h.deps.Recipes.ListByCategory(r.Context(), id)
	h.writeRecipes(w, r, res, err)
}

// recipesByAuthor lists drafts too when the authors ask for their own recipes.
func (h *Handler) recipesByAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseUserID(chi.URLParam(r, "authorId"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid author id"))

		return
	}

	list := h.deps.Recipes.ListPublishedByAuthor
	if caller, ok := CallerID(r.Context()); ok && caller == id {
		list = h.deps.Recipes.ListByAuthor
	}

	res, err := list(r.Context(), id)
	h.writeRecipes(w, r, res, err)
}

func (h *Handler) recipesByDifficulty(w http.ResponseWriter, r *http.Request) {
	d, err := domain.ParseDifficulty(chi.URLParam(r, "difficulty"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid difficulty"))

		return
	}

	res, err := h.deps.Recipes.ListByDifficulty(r.Context(), d)
	h.writeRecipes(w, r, res, err)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := recipeID(r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	rec, err := h.deps.Recipes.FindByIDAndTouch(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if rec == nil {
		writeError(w, r, recipeNotFound())

		return
	}

	writeJSON(w, r, http.StatusOK, rec)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerID(r.Context())
	if !ok {
		writeError(w, r, serrors.KindOnly(serrors.ErrUnauthorized))

		return
	}

	var req RecipeRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	rec := req.toDomain()
	rec.AuthorID = caller

	created, err := h.deps.Recipes.Create(r.Context(), rec)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, created)
}

// editable loads the recipe behind the id parameter and checks the caller may
// change it.
func (h *Handler) editable(r *http.Request) (*domain.Recipe, error) {
	ctx := r.Context()
	id, err := recipeID(r, "id")
	if err != nil {
		return nil, err
	}

	existing, err := h.deps.Recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if existing == nil {
		return nil, recipeNotFound()
	}

	caller, ok := CallerID(ctx)
	if !ok {
		return nil, serrors.KindOnly(serrors.ErrUnauthorized)
	}
	allowed, err := h.deps.Recipes.CanEdit(ctx, caller, id)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if !allowed {
		return nil, serrors.With(serrors.ErrForbidden, "only the author or an admin can change this recipe")
	}

	return existing, nil
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	existing, err := h.editable(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req RecipeRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	rec := req.toDomain()
	rec.ID = existing.ID
	rec.AuthorID = existing.AuthorID

	updated, err := h.deps.Recipes.Update(r.Context(), rec)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, updated)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	existing, err := h.editable(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	deleted, err := h.deps.Recipes.Delete(r.Context(), existing.ID)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if !deleted {
		writeError(w, r, recipeNotFound())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setRecipePublished(w http.ResponseWriter, r *http.Request) {
	existing, err := h.editable(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	published, err := requiredQueryBool(r, "published")
	if err != nil {
		writeError(w, r, err)

		return
	}

	rec, err := h.deps.Recipes.SetPublished(r.Context(), existing.ID, published)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, rec)
}

// rateRecipe is the only place the score range is enforced; NaN and
// infinities fail the range check too.
func (h *Handler) rateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := recipeID(r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	score, err := strconv.ParseFloat(r.URL.Query().Get("rating"), 64)
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "rating must be a number"))

		return
	}
	req := RateRequest{Rating: score}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, err)

		return
	}

	rec, err := h.deps.Recipes.Rate(r.Context(), id, req.Rating)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, rec)
}
