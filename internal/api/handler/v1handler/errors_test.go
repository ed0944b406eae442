package v1handler

import (
	"errors"
	"net/http"
	"testing"

	"cookbook/pkg/domain"
	"cookbook/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestErrorResponse(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:5432: connection refused")

	tests := []struct {
		name   string
		err    error
		status int
		code   string
		msg    string
	}{
		{"not found", serrors.With(serrors.ErrNotFound, "recipe not found"), http.StatusNotFound, "NOT_FOUND", "recipe not found"},
		{"duplicate name", serrors.KindOnly(domain.ErrDuplicateName), http.StatusConflict, "DUPLICATE_NAME", "DUPLICATE_NAME"},
		{"duplicate email", serrors.With(domain.ErrDuplicateEmail, "taken"), http.StatusConflict, "DUPLICATE_EMAIL", "taken"},
		{"unknown category", serrors.With(domain.ErrCategoryNotFound, "nope"), http.StatusBadRequest, "CATEGORY_NOT_FOUND", "nope"},
		{"unknown author", serrors.With(domain.ErrAuthorNotFound, "nope"), http.StatusBadRequest, "AUTHOR_NOT_FOUND", "nope"},
		{"bad credential", serrors.With(domain.ErrInvalidCredential, "bad"), http.StatusUnauthorized, "INVALID_CREDENTIAL", "bad"},
		{"forbidden", serrors.With(serrors.ErrForbidden, "no"), http.StatusForbidden, "FORBIDDEN", "no"},
		{"conflict", serrors.With(serrors.ErrConflict, "busy"), http.StatusConflict, "CONFLICT", "busy"},
		{"store", domain.StoreError(cause, "could not list"), http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "service unavailable"},
		{"unclassified", cause, http.StatusInternalServerError, "INTERNAL", "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := errorResponse(tt.err)
			require.Equal(t, tt.status, status)
			require.Equal(t, tt.code, body.Code)
			require.Equal(t, tt.msg, body.Message)
			require.NotContains(t, body.Message, "10.0.0.5")
		})
	}
}

func TestErrorResponse_Validation(t *testing.T) {
	h := New(Deps{}, nil, Options{})

	err := h.validate.Struct(RegisterRequest{Username: "ab", Email: "nope", Password: "secret1"})
	status, body := errorResponse(err)

	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "BAD_REQUEST", body.Code)
	require.Contains(t, body.Message, "username failed on min=3")
	require.Contains(t, body.Message, "email failed on email")
}
