package internal

import (
	"github.com/starford/globalmenu/internal/kv"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	store  kv.Store
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithStore persists the menu configuration to store instead of opening
// the store named by the configuration. The caller keeps ownership.
func WithStore(store kv.Store) Option {
	return func(a *application) {
		a.store = store
	}
}
