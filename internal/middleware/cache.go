package middleware

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/lluanbs/celestial-resort/internal/config"
)

// cachedResponse is the JSON envelope stored in Redis per cache entry.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyRecorder captures the response body while forwarding it to the
// client, up to a size limit beyond which the entry is not cached.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int
	limit  int
}

func (w *bodyRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.size += len(b)
	if w.size <= w.limit {
		w.buf.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// ResponseCache serves 2xx responses for configured methods from Redis.
// A nil client or a disabled config turns the middleware into a no-op.
// Keys hash the route and query string under the configured prefix.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if !cfg.Enabled || rdb == nil {
			return next
		}
		return func(c echo.Context) error {
			if !cfg.Methods[c.Request().Method] {
				return next(c)
			}
			key := cacheKey(cfg.Prefix, c)
			ctx := c.Request().Context()

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cached cachedResponse
				if json.Unmarshal(raw, &cached) == nil {
					return c.Blob(cached.Status, cached.ContentType, cached.Body)
				}
			}

			rec := &bodyRecorder{
				ResponseWriter: c.Response().Writer,
				status:         http.StatusOK,
				limit:          cfg.MaxBodyBytes,
			}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				return err
			}

			if rec.status >= 200 && rec.status < 300 && rec.size <= cfg.MaxBodyBytes {
				entry, err := json.Marshal(cachedResponse{
					Status:      rec.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        rec.buf.Bytes(),
				})
				if err == nil {
					rdb.Set(ctx, key, entry, cfg.TTL)
				}
			}
			return nil
		}
	}
}

func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}
