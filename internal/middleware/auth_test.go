package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/revelve/revelve-backend/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, _ := UserID(r.Context())
		_, _ = w.Write([]byte(uid))
	})
}

func TestAuthWithJWT(t *testing.T) {
	tm := auth.NewTokenManager("secret", "revelve-identity")
	mw := NewAuthMiddleware(tm, "prod")
	tok, err := tm.Generate("user-42", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	mw.Auth(echoUser()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", rec.Body.String())
}

func TestAuthDevShortcutOnlyInDev(t *testing.T) {
	tm := auth.NewTokenManager("secret", "revelve-identity")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer dev-u1")

	rec := httptest.NewRecorder()
	NewAuthMiddleware(tm, "dev").Auth(echoUser()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())

	rec = httptest.NewRecorder()
	NewAuthMiddleware(tm, "prod").Auth(echoUser()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMissingToken(t *testing.T) {
	tm := auth.NewTokenManager("secret", "revelve-identity")
	mw := NewAuthMiddleware(tm, "prod")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mw.Auth(echoUser()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
