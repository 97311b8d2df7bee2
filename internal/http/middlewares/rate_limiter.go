package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

type window struct {
	count int
	start time.Time
}

// RateLimiter admits at most limit requests per client IP in each fixed window
// and reports the remaining budget in X-RateLimit-* headers.
func RateLimiter(limit int, size time.Duration) echo.MiddlewareFunc {
	return rateLimiter(limit, size, time.Now)
}

func rateLimiter(limit int, size time.Duration, now func() time.Time) echo.MiddlewareFunc {
	var (
		mu      sync.Mutex
		clients = make(map[string]*window)
		swept   time.Time
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			t := now()
			key := c.RealIP()

			mu.Lock()
			if t.Sub(swept) > size {
				for k, w := range clients {
					if t.Sub(w.start) > size {
						delete(clients, k)
					}
				}
				swept = t
			}

			w, ok := clients[key]
			if !ok || t.Sub(w.start) > size {
				w = &window{start: t}
				clients[key] = w
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(limit))

			if w.count >= limit {
				retry := w.start.Add(size).Sub(t)
				mu.Unlock()
				header.Set("X-RateLimit-Remaining", "0")
				header.Set("Retry-After", strconv.Itoa(int(retry.Seconds()+0.999)))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			w.count++
			remaining := limit - w.count
			mu.Unlock()

			header.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			return next(c)
		}
	}
}
