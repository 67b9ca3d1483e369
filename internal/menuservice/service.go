// Package menuservice owns the live configuration and connects the menu
// engine to persistence, the workspace and connected renderers.
package menuservice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/starford/globalmenu/internal/apperr"
	"github.com/starford/globalmenu/internal/checksum"
	"github.com/starford/globalmenu/internal/kv"
	"github.com/starford/globalmenu/internal/models"
	"github.com/starford/globalmenu/internal/refresh"
	"github.com/starford/globalmenu/internal/registry"
	"github.com/starford/globalmenu/internal/settings"
	"github.com/starford/globalmenu/internal/sse"
	"github.com/starford/globalmenu/internal/vault"
	"github.com/starford/globalmenu/internal/workspace"
)

// SettingsKey is the key the configuration blob is persisted under.
const SettingsKey = "global-menu-settings"

// Publisher receives refreshed presentations. *sse.Broker implements it.
type Publisher interface {
	Publish(event sse.Event)
	Retain(key string, event sse.Event)
	Forget(key string, event sse.Event)
}

// Service serializes every read-modify-persist cycle on the configuration.
// Readers get copies; nothing outside the service aliases the live value.
type Service struct {
	store    kv.Store
	key      string
	defaults models.Configuration
	reg      *registry.Registry
	vault    *vault.Vault
	ws       *workspace.Workspace
	pub      Publisher
	logger   *slog.Logger
	delays   refresh.Delays
	sched    *refresh.Scheduler
	dark     atomic.Bool

	mu  sync.Mutex
	cfg models.Configuration
	raw []byte

	// pubMu serializes rendering passes with document removal so a stale
	// pass cannot republish a closed document.
	pubMu sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithIDGenerator sets the generator for new menu and rule ids.
func WithIDGenerator(ids registry.IDGenerator) Option {
	return func(s *Service) { s.reg = registry.New(ids) }
}

// WithKey persists the configuration under key instead of SettingsKey.
func WithKey(key string) Option {
	return func(s *Service) { s.key = key }
}

// WithVault resolves document contexts from the given vault.
func WithVault(v *vault.Vault) Option {
	return func(s *Service) { s.vault = v }
}

// WithWorkspace sets the workspace tracking open documents.
func WithWorkspace(ws *workspace.Workspace) Option {
	return func(s *Service) { s.ws = ws }
}

// WithPublisher sends refreshed presentations to p.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.pub = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithDelays overrides the refresh debounce delays.
func WithDelays(d refresh.Delays) Option {
	return func(s *Service) { s.delays = d }
}

// WithDarkMode sets the initial host dark-mode flag.
func WithDarkMode(dark bool) Option {
	return func(s *Service) { s.dark.Store(dark) }
}

// New returns a Service persisting to store. The configuration holds the
// defaults until Load is called.
func New(store kv.Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		key:      SettingsKey,
		defaults: settings.Defaults(),
		reg:      registry.New(registry.UUIDGenerator{}),
		ws:       workspace.New(),
		logger:   slog.Default(),
		delays:   refresh.DefaultDelays(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cfg = settings.Reset(s.defaults)
	s.sched = refresh.NewScheduler(s.onRefresh, s.delays, s.logger)
	return s
}

// Close cancels any pending refresh.
func (s *Service) Close() {
	s.sched.Stop()
}

// Load reads the persisted blob, upgrades legacy keys and reconciles it with
// the defaults. A malformed blob never fails Load; the ignored parts are
// logged.
func (s *Service) Load(ctx context.Context) error {
	raw, err := s.store.Load(ctx, s.key)
	if err != nil {
		return fmt.Errorf("menuservice: load: %w", err)
	}
	migrated, err := settings.Migrate(raw)
	if err != nil {
		s.logger.Warn("menuservice: legacy migration failed", slog.String("error", err.Error()))
		migrated = raw
	}
	cfg, err := settings.Reconcile(s.defaults, migrated)
	if err != nil {
		s.logger.Warn("menuservice: persisted configuration partially ignored", slog.String("error", err.Error()))
	}

	s.mu.Lock()
	s.cfg = cfg
	s.raw = raw
	s.mu.Unlock()

	s.logger.Info("menuservice: configuration loaded",
		slog.Int("menus", len(cfg.Menus)),
		slog.Int("rules", len(cfg.Rules)),
		slog.String("style_mode", string(cfg.StyleMode)))
	return nil
}

// Config returns a copy of the current configuration.
func (s *Service) Config() models.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Clone()
}

// Defaults returns a copy of the default configuration.
func (s *Service) Defaults() models.Configuration {
	return s.defaults.Clone()
}

// ETag identifies the persisted configuration for optimistic concurrency.
func (s *Service) ETag() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return checksum.ETag(s.raw)
}

// mutate applies fn to a copy of the configuration, persists the result and
// swaps it in. On any error the live configuration is left untouched.
func (s *Service) mutate(ctx context.Context, ifMatch string, fn func(cfg *models.Configuration) error) error {
	s.mu.Lock()
	if !checksum.Matches(ifMatch, s.raw) {
		s.mu.Unlock()
		return fmt.Errorf("menuservice: configuration changed: %w", apperr.ErrConflict)
	}
	next := s.cfg.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	data, err := json.Marshal(next)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("menuservice: encode: %w", err)
	}
	if err := s.store.Save(ctx, s.key, data); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("menuservice: persist: %w", err)
	}
	s.cfg = next
	s.raw = data
	etag := checksum.ETag(data)
	s.mu.Unlock()

	if s.pub != nil {
		s.pub.Publish(sse.Event{Type: sse.EventSettings, Data: map[string]string{"etag": etag}})
	}
	s.sched.Request(refresh.TriggerSettings)
	return nil
}

// Patch merges a partial configuration blob over the current configuration,
// field by field for the style objects, and persists it. Legacy keys are
// accepted. ifMatch, when set, must match the current ETag.
func (s *Service) Patch(ctx context.Context, blob []byte, ifMatch string) (models.Configuration, error) {
	migrated, err := settings.Migrate(blob)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("%w: %w", apperr.ErrValidation, err)
	}
	var out models.Configuration
	err = s.mutate(ctx, ifMatch, func(cfg *models.Configuration) error {
		next, err := settings.Reconcile(*cfg, migrated)
		if err != nil {
			return fmt.Errorf("%w: %w", apperr.ErrValidation, err)
		}
		if err := validatePatch(&next, migrated); err != nil {
			return err
		}
		*cfg = next
		out = next.Clone()
		return nil
	})
	return out, err
}

// validatePatch validates the parts of cfg that blob touched. Untouched
// parts may hold values accepted on load that the edit boundary would not.
func validatePatch(cfg *models.Configuration, blob []byte) error {
	has := func(key string) bool { return settings.HasKey(blob, key) }

	if has("menuPosition") {
		if err := settings.ValidatePosition(cfg.MenuPosition); err != nil {
			return fmt.Errorf("menuPosition: %w", err)
		}
	}
	if has("styleMode") {
		if err := settings.ValidateStyleMode(cfg.StyleMode); err != nil {
			return fmt.Errorf("styleMode: %w", err)
		}
	}
	if has("globalTypography") {
		if err := settings.ValidateTypography(&cfg.GlobalTypography); err != nil {
			return fmt.Errorf("globalTypography: %w", err)
		}
	}
	if has("globalSpacing") {
		if err := settings.ValidateSpacing(&cfg.GlobalSpacing); err != nil {
			return fmt.Errorf("globalSpacing: %w", err)
		}
	}
	if has("customLight") {
		if err := settings.ValidateNamedStyle(&cfg.CustomLight); err != nil {
			return fmt.Errorf("customLight: %w", err)
		}
	}
	if has("customDark") {
		if err := settings.ValidateNamedStyle(&cfg.CustomDark); err != nil {
			return fmt.Errorf("customDark: %w", err)
		}
	}
	if has("menus") {
		for i := range cfg.Menus {
			if err := settings.ValidateMenu(&cfg.Menus[i]); err != nil {
				return fmt.Errorf("menu %q: %w", cfg.Menus[i].ID, err)
			}
		}
	}
	if has("rules") {
		for i := range cfg.Rules {
			if err := settings.ValidateRule(&cfg.Rules[i]); err != nil {
				return fmt.Errorf("rule %q: %w", cfg.Rules[i].ID, err)
			}
		}
	}
	return nil
}

// Reset replaces the configuration with the defaults and persists it.
func (s *Service) Reset(ctx context.Context) (models.Configuration, error) {
	var out models.Configuration
	err := s.mutate(ctx, "", func(cfg *models.Configuration) error {
		*cfg = settings.Reset(s.defaults)
		out = cfg.Clone()
		return nil
	})
	return out, err
}
