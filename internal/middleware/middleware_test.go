package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-queue/internal/auth"
	"github.com/BruksfildServices01/salon-queue/internal/httperr"
)

type fakeGuard struct {
	admins map[uint]bool
}

func (g fakeGuard) Authenticate(token string) (auth.Identity, error) {
	switch token {
	case "admin":
		return auth.Identity{UserID: 1}, nil
	case "user":
		return auth.Identity{UserID: 2}, nil
	}
	return auth.Identity{}, httperr.UnauthorizedErr("invalid_token", "Invalid token.")
}

func (g fakeGuard) IsAdmin(_ context.Context, id auth.Identity) (bool, error) {
	return g.admins[id.UserID], nil
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func get(r http.Handler, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body httperr.HTTPError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Code
}

func TestAuthMiddleware(t *testing.T) {
	g := fakeGuard{admins: map[uint]bool{1: true}}
	r := newRouter(AuthMiddleware(g), AdminOnly(g))

	rr := get(r, "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "missing_authorization_header", errorCode(t, rr))

	rr = get(r, "Authorization", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid_authorization_header", errorCode(t, rr))

	rr = get(r, "Authorization", "Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid_token", errorCode(t, rr))

	rr = get(r, "Authorization", "Bearer user")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "not_admin", errorCode(t, rr))

	rr = get(r, "Authorization", "Bearer admin")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequestID(t *testing.T) {
	r := newRouter(RequestID())

	rr := get(r, RequestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))

	rr = get(r, "", "")
	assert.Len(t, rr.Header().Get(RequestIDHeader), 36)
}

func TestCORSMiddleware(t *testing.T) {
	r := newRouter(CORSMiddleware([]string{"https://salon.example"}))

	rr := get(r, "Origin", "https://salon.example")
	assert.Equal(t, "https://salon.example", rr.Header().Get("Access-Control-Allow-Origin"))

	rr = get(r, "Origin", "https://evil.example")
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	pre := httptest.NewRecorder()
	r.ServeHTTP(pre, req)
	assert.Equal(t, http.StatusNoContent, pre.Code)
}

func TestRateLimiter_FailOpenWithoutRedis(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rl := NewRedisRateLimiter(rdb, 1, time.Minute, "test")

	open := newRouter(rl.Middleware(logger, true))
	assert.Equal(t, http.StatusOK, get(open, "", "").Code)

	closed := newRouter(rl.Middleware(logger, false))
	rr := get(closed, "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "rate_limiter_unavailable", errorCode(t, rr))
}
