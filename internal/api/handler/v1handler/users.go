package v1handler

import (
	"net/http"

	"cookbook/pkg/domain"
	"cookbook/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

func userID(r *http.Request) (domain.UserID, error) {
	id, err := domain.ParseUserID(chi.URLParam(r, "id"))
	if err != nil {
		return id, serrors.Wrap(serrors.ErrBadRequest, err, "invalid user id")
	}

	return id, nil
}

func userNotFound() error {
	return serrors.With(serrors.ErrNotFound, "user not found")
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	// self registration never grants roles beyond the default
	u, err := h.deps.Users.Create(r.Context(), req.toDomain(), req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, u)
}

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	var req AuthenticateRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	u, err := h.deps.Users.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	token, expiresAt, err := h.sec.Issue(u)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, AuthenticateResponse{Token: token, ExpiresAt: expiresAt, User: u})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Users.ListActive(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, nonNil(res))
}

func (h *Handler) countUsers(w http.ResponseWriter, r *http.Request) {
	n, err := h.deps.Users.Count(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, CountResponse{Count: n})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	u, err := h.deps.Users.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if u == nil {
		writeError(w, r, userNotFound())

		return
	}

	writeJSON(w, r, http.StatusOK, u)
}

func (h *Handler) getUserByUsername(w http.ResponseWriter, r *http.Request) {
	u, err := h.deps.Users.FindByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)

		return
	}
	if u == nil {
		writeError(w, r, userNotFound())

		return
	}

	writeJSON(w, r, http.StatusOK, u)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if err := requireSelfOrAdmin(r.Context(), id); err != nil {
		writeError(w, r, err)

		return
	}

	var req UpdateUserRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	u := domain.User{
		ID:              id,
		Username:        req.Username,
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
	}
	if isAdmin(r.Context()) {
		u.Roles = req.Roles
	}

	updated, err := h.deps.Users.Update(r.Context(), u, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, updated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if err := requireSelfOrAdmin(r.Context(), id); err != nil {
		writeError(w, r, err)

		return
	}

	deleted, err := h.deps.Users.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if !deleted {
		writeError(w, r, userNotFound())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setUserStatus(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	enabled, err := requiredQueryBool(r, "enabled")
	if err != nil {
		writeError(w, r, err)

		return
	}

	u, err := h.deps.Users.SetEnabled(r.Context(), id, enabled)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, u)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if err := requireSelf(r.Context(), id); err != nil {
		writeError(w, r, err)

		return
	}

	var req ChangePasswordRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Users.ChangePassword(r.Context(), id, req.OldPassword, req.NewPassword); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	h.changeFavorite(w, r, true)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	h.changeFavorite(w, r, false)
}

func (h *Handler) changeFavorite(w http.ResponseWriter, r *http.Request, add bool) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if err := requireSelf(r.Context(), id); err != nil {
		writeError(w, r, err)

		return
	}

	recipeID, err := domain.ParseRecipeID(chi.URLParam(r, "recipeId"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid recipe id"))

		return
	}

	var u *domain.User
	if add {
		// only existing recipes can become favorites; removal stays lenient
		var existing *domain.Recipe
		if existing, err = h.deps.Recipes.FindByID(r.Context(), recipeID); err != nil {
			writeError(w, r, err)

			return
		}
		if existing == nil {
			writeError(w, r, recipeNotFound())

			return
		}
		u, err = h.deps.Users.AddFavorite(r.Context(), id, recipeID)
	} else {
		u, err = h.deps.Users.RemoveFavorite(r.Context(), id, recipeID)
	}
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, u)
}
