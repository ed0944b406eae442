package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cookbook/internal/api/handler/v1handler"
	"cookbook/pkg/domain"
	"cookbook/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// genRSAKeys returns a fresh key pair PEM encoded.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")

	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})

	return priv, string(pubPEM), string(privPEM)
}

func newSecHandlerForTest(t *testing.T, pubPEM, privPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM, PrivateKey: privPEM, TTL: time.Hour})
	require.NoError(t, err, "NewSecHandler failed")

	return sh
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	priv, pubPEM, _ := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, "")

	uid := uuid.New()
	now := time.Now()
	ctx, err := sh.HandleBearerAuth(context.Background(), signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour)))
	require.NoError(t, err)

	got, ok := v1handler.CallerID(ctx)
	require.True(t, ok, "expected userID in context")
	require.Equal(t, domain.UserID(uid), got)
}

func TestHandleBearerAuth_Rejected(t *testing.T) {
	priv, pubPEM, _ := genRSAKeys(t)
	privOther, _, _ := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, "")
	now := time.Now()

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject: uuid.NewString(),
	}).SignedString(priv)
	require.NoError(t, err)

	tests := map[string]string{
		"invalid signature": signJWTRS256(t, privOther, uuid.NewString(), now, now.Add(time.Hour)),
		"expired":           signJWTRS256(t, priv, uuid.NewString(), now.Add(-2*time.Hour), now.Add(-time.Hour)),
		"invalid subject":   signJWTRS256(t, priv, "not-a-uuid", now, now.Add(time.Hour)),
		"wrong algorithm":   hs256,
		"missing expiry":    noExpiry,
		"garbage":           "abc.def.ghi",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := sh.HandleBearerAuth(context.Background(), token)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestIssue_RoundTrip(t *testing.T) {
	_, pubPEM, privPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, privPEM)

	u := &domain.User{ID: domain.UserID(uuid.New()), Roles: []domain.Role{domain.RoleUser, domain.RoleAdmin}}
	token, expiresAt, err := sh.Issue(u)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	ctx, err := sh.HandleBearerAuth(context.Background(), token)
	require.NoError(t, err)
	got, ok := v1handler.CallerID(ctx)
	require.True(t, ok)
	require.Equal(t, u.ID, got)
	require.Equal(t, u.Roles, ctx.Value(v1handler.RolesKey))
}

func TestIssue_WithoutPrivateKey(t *testing.T) {
	_, pubPEM, _ := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, "")

	_, _, err := sh.Issue(&domain.User{ID: domain.UserID(uuid.New())})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestNewSecHandler_InvalidKeys(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "nope"})
	require.Error(t, err)

	_, pubPEM, _ := genRSAKeys(t)
	_, err = v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM, PrivateKey: "nope"})
	require.Error(t, err)
}

func TestRequired_Middleware(t *testing.T) {
	priv, pubPEM, _ := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, "")

	h := sh.Required(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := v1handler.CallerID(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	now := time.Now()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signJWTRS256(t, priv, uuid.NewString(), now, now.Add(time.Hour)))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
}
