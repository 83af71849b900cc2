package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/moodbuddy/moodbuddy/internal/cache"
	"github.com/moodbuddy/moodbuddy/internal/config"
	"github.com/moodbuddy/moodbuddy/internal/gateway"
	"github.com/moodbuddy/moodbuddy/internal/session"
	"github.com/moodbuddy/moodbuddy/internal/store"
)

// Context carries the wired application services into command Run methods.
type Context struct {
	Config  config.Config
	Gateway *gateway.Client
	Debug   bool
}

// openCache builds the configured cache backend. Callers own Close.
func (c *Context) openCache() (cache.Provider, error) {
	var provider cache.Provider
	switch c.Config.CacheBackend {
	case "sqlite":
		provider = cache.NewSQLiteCache(filepath.Join(c.Config.ConfigDir, "cache.db"))
	case "json":
		provider = cache.NewJSONCache(filepath.Join(c.Config.ConfigDir, "cache.json"))
	default:
		return nil, fmt.Errorf("unknown cache backend: %q", c.Config.CacheBackend)
	}
	if err := provider.Load(); err != nil {
		return nil, err
	}
	return provider, nil
}

// requireSession loads the signed-in user or fails with a login hint.
func (c *Context) requireSession() (session.Session, error) {
	return session.Load(c.Config.ConfigDir)
}

// openStore builds a loaded store for the signed-in user, covering the
// current calendar year. Callers own closing the returned cache.
func (c *Context) openStore(ctx context.Context) (*store.Store, cache.Provider, error) {
	sess, err := c.requireSession()
	if err != nil {
		return nil, nil, err
	}

	provider, err := c.openCache()
	if err != nil {
		return nil, nil, err
	}

	s := store.New(sess.Username, c.Gateway, provider)
	start, end := yearRange(time.Now())
	if err := s.Load(ctx, start, end); err != nil {
		provider.Close()
		return nil, nil, err
	}
	return s, provider, nil
}

func yearRange(now time.Time) (string, string) {
	return fmt.Sprintf("%04d-01-01", now.Year()), fmt.Sprintf("%04d-12-31", now.Year())
}

// parseMonth interprets a YYYY-MM argument, defaulting to the current month.
func parseMonth(arg string, now time.Time) (int, time.Month, error) {
	if arg == "" {
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", arg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM", arg)
	}
	return t.Year(), t.Month(), nil
}

// monthBounds returns the first and last date strings of a month.
func monthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}
