package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// WriteLimitConfig configures WriteLimiter
type WriteLimitConfig struct {
	// Requests is the number of mutating requests allowed per key within Window
	Requests int
	Window   time.Duration
	// KeyFunc returns the client key, the real IP by default
	KeyFunc func(c echo.Context) string
	// Now is the clock, time.Now by default
	Now func() time.Time
}

type window struct {
	count     int
	expiresAt time.Time
}

// WriteLimiter is a fixed-window limiter for POST, PUT, PATCH and DELETE requests
type WriteLimiter struct {
	cfg     WriteLimitConfig
	mu      sync.Mutex
	windows map[string]*window
}

// NewWriteLimiter creates a limiter. Expired windows are pruned lazily on access.
func NewWriteLimiter(cfg WriteLimitConfig) *WriteLimiter {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c echo.Context) string { return c.RealIP() }
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return &WriteLimiter{cfg: cfg, windows: make(map[string]*window)}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// allow records one request for key and reports whether it fits in the window
func (l *WriteLimiter) allow(key string) bool {
	now := l.cfg.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for k, w := range l.windows {
		if now.After(w.expiresAt) {
			delete(l.windows, k)
		}
	}

	w, ok := l.windows[key]
	if !ok {
		l.windows[key] = &window{count: 1, expiresAt: now.Add(l.cfg.Window)}
		return true
	}
	if w.count >= l.cfg.Requests {
		return false
	}
	w.count++
	return true
}

// Middleware returns the echo middleware. A non-positive Requests disables limiting.
func (l *WriteLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if l.cfg.Requests <= 0 || !isWrite(c.Request().Method) {
				return next(c)
			}
			if !l.allow(l.cfg.KeyFunc(c)) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Demasiadas solicitudes. Intentá nuevamente en unos segundos.")
			}
			return next(c)
		}
	}
}
