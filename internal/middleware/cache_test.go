package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/blog-platform/internal/config"
)

// cacheApp wires an Echo instance with the response cache in front of a
// handler that returns the given payload.
func cacheApp(t *testing.T, payload string, maxBody int) *echo.Echo {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{"GET": true},
		TTL:          time.Minute,
		Prefix:       "cache",
		MaxBodyBytes: maxBody,
	}
	e := echo.New()
	e.GET("/payload", func(c echo.Context) error {
		return c.String(http.StatusOK, payload)
	}, NewRedisCache(cfg, rdb))
	return e
}

func getPayload(e *echo.Echo) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/payload", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRedisCache_ServesHit(t *testing.T) {
	e := cacheApp(t, "hello world", 1024)

	rec := getPayload(e)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	require.Equal(t, "hello world", rec.Body.String())

	rec = getPayload(e)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	require.Equal(t, "hello world", rec.Body.String())
}

func TestRedisCache_SkipsOversizedBody(t *testing.T) {
	// The payload exceeds the capture limit; it must never be cached, or a
	// later hit would serve a truncated body.
	payload := strings.Repeat("a", 64)
	e := cacheApp(t, payload, 16)

	rec := getPayload(e)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, payload, rec.Body.String())

	rec = getPayload(e)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	require.Equal(t, payload, rec.Body.String(), "second response is complete, not a truncated cache entry")
}
