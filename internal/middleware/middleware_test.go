package middleware_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/middleware"
	"github.com/SscSPs/currency_rates_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secret = "middleware-test-secret"
	issuer = "rates-test"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	all := append(handlers, func(c *gin.Context) {
		if userID, ok := middleware.GetUserIDFromContext(c); ok {
			c.String(http.StatusOK, strconv.FormatInt(userID, 10))
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	r.GET("/whoami", all...)
	return r
}

func request(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/whoami", nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func token(t *testing.T, userID int64, ttl time.Duration, now time.Time) string {
	t.Helper()
	signed, _, err := utils.GenerateAccessToken(userID, secret, ttl, issuer, now)
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(secret, issuer))

	t.Run("valid token", func(t *testing.T) {
		w := request(t, r, "Bearer "+token(t, 42, time.Hour, time.Now()))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "42", w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("missing header", func(t *testing.T) {
		w := request(t, r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authentication credentials were not provided.")
	})

	t.Run("expired token", func(t *testing.T) {
		w := request(t, r, "Bearer "+token(t, 42, time.Minute, time.Now().Add(-time.Hour)))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token has expired")
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := request(t, r, "Token "+token(t, 42, time.Hour, time.Now()))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Bearer {token}")
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other, _, err := utils.GenerateAccessToken(42, secret, time.Hour, "someone-else", time.Now())
		require.NoError(t, err)
		w := request(t, r, "Bearer "+other)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		forged, _, err := utils.GenerateAccessToken(42, "not-the-secret", time.Hour, issuer, time.Now())
		require.NoError(t, err)
		w := request(t, r, "Bearer "+forged)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	r := newRouter(middleware.OptionalAuthMiddleware(secret, issuer))

	w := request(t, r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	w = request(t, r, "Bearer "+token(t, 5, time.Hour, time.Now()))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", w.Body.String())

	w = request(t, r, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNestedAuthRunsOnce(t *testing.T) {
	r := newRouter(middleware.OptionalAuthMiddleware(secret, issuer), middleware.AuthMiddleware(secret, issuer))

	w := request(t, r, "Bearer "+token(t, 8, time.Hour, time.Now()))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "8", w.Body.String())

	w = request(t, r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))

	custom := slog.New(slog.NewTextHandler(httptest.NewRecorder(), nil))
	ctx := middleware.WithLogger(context.Background(), custom)
	assert.Same(t, custom, middleware.GetLoggerFromCtx(ctx))
}

func TestRateLimit(t *testing.T) {
	lim, err := middleware.NewMemoryLimiter("2-H")
	require.NoError(t, err)
	r := newRouter(middleware.RateLimit(lim))

	assert.Equal(t, http.StatusOK, request(t, r, "").Code)
	w := request(t, r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = request(t, r, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestNewMemoryLimiter_InvalidFormat(t *testing.T) {
	_, err := middleware.NewMemoryLimiter("five-per-minute")
	assert.Error(t, err)
}
