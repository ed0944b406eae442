package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"cookbook/pkg/domain"
	"cookbook/pkg/logger"
	"cookbook/pkg/serrors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non 2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var kindStatus = map[serrors.Kind]int{
	serrors.ErrNotFound:         http.StatusNotFound,
	serrors.ErrBadRequest:       http.StatusBadRequest,
	serrors.ErrUnauthorized:     http.StatusUnauthorized,
	serrors.ErrForbidden:        http.StatusForbidden,
	serrors.ErrConflict:         http.StatusConflict,
	serrors.ErrRateLimited:      http.StatusTooManyRequests,
	serrors.ErrTimeout:          http.StatusGatewayTimeout,
	serrors.ErrUnavailable:      http.StatusServiceUnavailable,
	domain.ErrDuplicateName:     http.StatusConflict,
	domain.ErrDuplicateSlug:     http.StatusConflict,
	domain.ErrDuplicateEmail:    http.StatusConflict,
	domain.ErrDuplicateUsername: http.StatusConflict,
	domain.ErrCategoryNotFound:  http.StatusBadRequest,
	domain.ErrAuthorNotFound:    http.StatusBadRequest,
	domain.ErrInvalidCredential: http.StatusUnauthorized,
	domain.ErrStoreUnavailable:  http.StatusServiceUnavailable,
}

// errorResponse maps err to a status code and body. Unclassified errors never
// leak their message.
func errorResponse(err error) (int, ErrorResponse) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, ErrorResponse{Code: serrors.ErrBadRequest.Error(), Message: describe(verrs)}
	}

	kind := serrors.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		return http.StatusInternalServerError, ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"}
	}

	msg := kind.Error()
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		msg = se.Message()
	}
	if status >= http.StatusInternalServerError {
		msg = "service unavailable"
	}

	return status, ErrorResponse{Code: kind.Error(), Message: msg}
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		part := fe.Field() + " failed on " + fe.Tag()
		if fe.Param() != "" {
			part += "=" + fe.Param()
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, ", ")
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err), zap.Int("status", status))
	} else {
		logger.Debug(r.Context(), "request rejected", zap.Error(err), zap.Int("status", status))
	}

	writeJSON(w, r, status, body)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(r.Context(), "could not encode response", zap.Error(err))
	}
}
