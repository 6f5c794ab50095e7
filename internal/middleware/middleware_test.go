package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secret = "middleware-test-secret"
	issuer = "erp-ledger-test"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		c.String(http.StatusOK, userID)
	})
	r.GET("/whoami", chain...)
	return r
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(secret, issuer))

	valid, err := middleware.IssueToken(secret, issuer, "alice", time.Minute)
	require.NoError(t, err)
	expired, err := middleware.IssueToken(secret, issuer, "alice", -time.Minute)
	require.NoError(t, err)
	otherIssuer, err := middleware.IssueToken(secret, "someone-else", "alice", time.Minute)
	require.NoError(t, err)
	wrongKey, err := middleware.IssueToken("another-secret", issuer, "alice", time.Minute)
	require.NoError(t, err)
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	tests := map[string]struct {
		header   string
		wantCode int
		wantBody string
	}{
		"valid":          {"Bearer " + valid, http.StatusOK, "alice"},
		"missing header": {"", http.StatusUnauthorized, "Authorization header required"},
		"not bearer":     {"Basic " + valid, http.StatusUnauthorized, "Bearer {token}"},
		"expired":        {"Bearer " + expired, http.StatusUnauthorized, "Token has expired"},
		"other issuer":   {"Bearer " + otherIssuer, http.StatusUnauthorized, "Invalid token"},
		"wrong key":      {"Bearer " + wrongKey, http.StatusUnauthorized, "Invalid token"},
		"no subject":     {"Bearer " + noSubject, http.StatusUnauthorized, "Invalid token claims"},
		"garbage":        {"Bearer not.a.token", http.StatusUnauthorized, "Invalid token"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			w := get(r, tc.header)
			assert.Equal(t, tc.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestRateLimit(t *testing.T) {
	limiter, err := middleware.NewMemoryLimiter("2-M")
	require.NoError(t, err)
	r := newRouter(middleware.AuthMiddleware(secret, issuer), middleware.RateLimit(limiter))

	alice, err := middleware.IssueToken(secret, issuer, "alice", time.Minute)
	require.NoError(t, err)
	bob, err := middleware.IssueToken(secret, issuer, "bob", time.Minute)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "Bearer "+alice).Code)
	w := get(r, "Bearer "+alice)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "Bearer "+alice).Code)

	// Limits are per user.
	assert.Equal(t, http.StatusOK, get(r, "Bearer "+bob).Code)
}

func TestNewMemoryLimiter_RejectsBadRate(t *testing.T) {
	_, err := middleware.NewMemoryLimiter("lots")
	assert.Error(t, err)
}

func TestStructuredLogging_EchoesRequestID(t *testing.T) {
	r := newRouter(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))

	w = get(r, "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
