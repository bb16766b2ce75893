package space

import (
	"log/slog"

	"github.com/roach88/shapespace/internal/expr"
)

// Option configures Build.
type Option func(*config)

type config struct {
	logger      *slog.Logger
	openObjects bool
	strictNames bool
	cacheSize   int
}

func defaultConfig() config {
	return config{
		logger:    slog.Default(),
		cacheSize: expr.DefaultCacheSize,
	}
}

// WithLogger sets the logger used during Build.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOpenObjects lets object values carry keys their shape does not
// declare.
func WithOpenObjects() Option {
	return func(c *config) {
		c.openObjects = true
	}
}

// WithStrictNames rejects members whose name is a built-in keyword.
func WithStrictNames() Option {
	return func(c *config) {
		c.strictNames = true
	}
}

// WithCacheSize sets the expression cache size. Zero disables caching.
func WithCacheSize(size int) Option {
	return func(c *config) {
		c.cacheSize = size
	}
}
