package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"cookbook/internal/config"
	"cookbook/pkg/domain"
	"cookbook/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

const (
	// UserIDKey holds the domain.UserID of the authenticated caller.
	UserIDKey CtxKey = "UserID"
	// RolesKey holds the []domain.Role carried by the caller's token.
	RolesKey CtxKey = "Roles"
)

// SecHandlerOptions holds the PEM encoded RSA keys used for bearer tokens.
// PrivateKey may be empty, in which case tokens can be verified but not issued.
type SecHandlerOptions struct {
	PublicKey  string
	PrivateKey string
	TTL        time.Duration
}

// NewSecHandlerOptions maps the JWT section of the configuration.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey:  cfg.JWT.PublicKey,
		PrivateKey: cfg.JWT.PrivateKey,
		TTL:        cfg.JWT.TTL,
	}
}

// Claims are the claims of an access token. The subject is the user ID.
type Claims struct {
	jwt.RegisteredClaims

	Roles []domain.Role `json:"roles,omitempty"`
}

// SecHandler verifies and issues RS256 bearer tokens.
type SecHandler struct {
	publicKey  *rsa.PublicKey
	privateKey *rsa.PrivateKey
	ttl        time.Duration
	parser     *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	s := &SecHandler{
		publicKey: pub,
		ttl:       opts.TTL,
		parser:    jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired()),
	}
	if s.ttl <= 0 {
		s.ttl = 24 * time.Hour
	}

	if opts.PrivateKey != "" {
		if s.privateKey, err = jwt.ParseRSAPrivateKeyFromPEM([]byte(opts.PrivateKey)); err != nil {
			return nil, fmt.Errorf("could not parse RSA private key: %w", err)
		}
	}

	return s, nil
}

// HandleBearerAuth validates token and returns ctx carrying the caller's ID
// and roles.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims Claims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, RolesKey, claims.Roles)

	return ctx, nil
}

// Issue signs a token for u and returns it with its expiry.
func (s *SecHandler) Issue(u *domain.User) (string, time.Time, error) {
	if s.privateKey == nil {
		return "", time.Time{}, serrors.With(serrors.ErrUnavailable, "token signing is not configured")
	}

	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Roles: u.Roles,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	if err != nil {
		return "", time.Time{}, serrors.Wrap(serrors.ErrInternal, err, "could not sign token")
	}

	return signed, expiresAt, nil
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}

// Required rejects requests without a valid bearer token.
func (s *SecHandler) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional authenticates the caller when a token is present. A present but
// invalid token is still rejected.
func (s *SecHandler) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := bearerToken(r); !ok {
			next.ServeHTTP(w, r)

			return
		}

		s.Required(next).ServeHTTP(w, r)
	})
}

// AdminOnly must run after Required.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r.Context()) {
			writeError(w, r, serrors.With(serrors.ErrForbidden, "admin role required"))

			return
		}

		next.ServeHTTP(w, r)
	})
}

// CallerID returns the authenticated user, if any.
func CallerID(ctx context.Context) (domain.UserID, bool) {
	id, ok := ctx.Value(UserIDKey).(domain.UserID)

	return id, ok
}

func isAdmin(ctx context.Context) bool {
	roles, _ := ctx.Value(RolesKey).([]domain.Role)

	return slices.Contains(roles, domain.RoleAdmin)
}

// requireSelfOrAdmin fails unless the caller is id or an admin.
func requireSelfOrAdmin(ctx context.Context, id domain.UserID) error {
	caller, ok := CallerID(ctx)
	if !ok {
		return serrors.KindOnly(serrors.ErrUnauthorized)
	}
	if caller != id && !isAdmin(ctx) {
		return serrors.With(serrors.ErrForbidden, "not allowed to act on another account")
	}

	return nil
}

func requireSelf(ctx context.Context, id domain.UserID) error {
	caller, ok := CallerID(ctx)
	if !ok {
		return serrors.KindOnly(serrors.ErrUnauthorized)
	}
	if caller != id {
		return serrors.With(serrors.ErrForbidden, "not allowed to act on another account")
	}

	return nil
}
