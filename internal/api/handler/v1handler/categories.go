package v1handler

import (
	"net/http"

	"cookbook/pkg/domain"
	"cookbook/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

func categoryID(r *http.Request) (domain.CategoryID, error) {
	id, err := domain.ParseCategoryID(chi.URLParam(r, "id"))
	if err != nil {
		return id, serrors.Wrap(serrors.ErrBadRequest, err, "invalid category id")
	}

	return id, nil
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	all, err := queryBool(r, "all", false)
	if err != nil {
		writeError(w, r, err)

		return
	}

	list := h.deps.Categories.ListActive
	if all {
		list = h.deps.Categories.ListAll
	}
	res, err := list(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, nonNil(res))
}

func (h *Handler) searchCategories(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Categories.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, nonNil(res))
}

func (h *Handler) countCategories(w http.ResponseWriter, r *http.Request) {
	all, err := queryBool(r, "all", false)
	if err != nil {
		writeError(w, r, err)

		return
	}

	n, err := h.deps.Categories.Count(r.Context(), !all)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, CountResponse{Count: n})
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := categoryID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	c, err := h.deps.Categories.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if c == nil {
		writeError(w, r, serrors.With(serrors.ErrNotFound, "category not found"))

		return
	}

	writeJSON(w, r, http.StatusOK, c)
}

func (h *Handler) getCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	c, err := h.deps.Categories.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err)

		return
	}
	if c == nil {
		writeError(w, r, serrors.With(serrors.ErrNotFound, "category not found"))

		return
	}

	writeJSON(w, r, http.StatusOK, c)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	c, err := h.deps.Categories.Create(r.Context(), req.toDomain())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, c)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := categoryID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req CategoryRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	existing, err := h.deps.Categories.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if existing == nil {
		writeError(w, r, serrors.With(serrors.ErrNotFound, "category not found"))

		return
	}

	c := req.toDomain()
	c.ID = id
	if req.Active == nil {
		c.Active = existing.Active
	}

	updated, err := h.deps.Categories.Update(r.Context(), c)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, updated)
}

func (h *Handler) setCategoryStatus(w http.ResponseWriter, r *http.Request) {
	id, err := categoryID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	active, err := requiredQueryBool(r, "active")
	if err != nil {
		writeError(w, r, err)

		return
	}

	c, err := h.deps.Categories.SetActive(r.Context(), id, active)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, c)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := categoryID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	ok, err := h.deps.Categories.CanDelete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if !ok {
		writeError(w, r, serrors.With(serrors.ErrConflict, "category is still in use"))

		return
	}

	deleted, err := h.deps.Categories.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if !deleted {
		writeError(w, r, serrors.With(serrors.ErrNotFound, "category not found"))

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// nonNil keeps empty listings rendered as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
