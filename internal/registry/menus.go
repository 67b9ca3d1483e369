// Package registry owns the menu and rule collections of a configuration.
//
// Every mutation keeps the main menu and the base rule in place: the main
// menu cannot be removed or renamed, the base rule cannot be removed and
// only its enabled flag and target menu can change.
package registry

import (
	"fmt"

	"github.com/starford/globalmenu/internal/apperr"
	"github.com/starford/globalmenu/internal/models"
	"github.com/starford/globalmenu/internal/rules"
	"github.com/starford/globalmenu/internal/settings"
)

const (
	newMenuTitle = "New Menu Title"
	clonedSuffix = " (Cloned)"
)

// Registry applies menu and rule mutations to a configuration.
type Registry struct {
	ids IDGenerator
}

// New returns a Registry drawing identifiers from ids.
func New(ids IDGenerator) *Registry {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Registry{ids: ids}
}

// ResolveTarget returns a copy of the menu r points to.
func ResolveTarget(menus []models.Menu, r models.Rule) (models.Menu, bool) {
	m := rules.Target(menus, r)
	if m == nil {
		return models.Menu{}, false
	}
	return m.Clone(), true
}

// Menu returns an owned copy of the menu with id.
func Menu(cfg *models.Configuration, id string) (models.Menu, error) {
	m := cfg.FindMenu(id)
	if m == nil {
		return models.Menu{}, fmt.Errorf("registry: menu %q: %w", id, apperr.ErrNotFound)
	}
	return m.Clone(), nil
}

// NewMenu returns a draft menu with a fresh id. It is not part of cfg until
// it has items and is committed with CreateMenu.
func (r *Registry) NewMenu(cfg *models.Configuration) models.Menu {
	return models.Menu{
		ID:        r.ids.NewID(),
		Name:      fmt.Sprintf("New Menu %d", len(cfg.Menus)+1),
		Enabled:   true,
		ShowTitle: true,
		Title:     newMenuTitle,
		Items:     []models.MenuItem{},
	}
}

// CreateMenu validates m and appends a copy of it to cfg. An empty id is
// replaced with a fresh one.
func (r *Registry) CreateMenu(cfg *models.Configuration, m models.Menu) (models.Menu, error) {
	if m.ID == "" {
		m.ID = r.ids.NewID()
	}
	if cfg.FindMenu(m.ID) != nil {
		return models.Menu{}, fmt.Errorf("registry: menu %q: %w", m.ID, apperr.ErrAlreadyExists)
	}
	if err := settings.ValidateMenu(&m); err != nil {
		return models.Menu{}, err
	}
	m = m.Clone()
	cfg.Menus = append(cfg.Menus, m)
	return m.Clone(), nil
}

// CloneMenu appends a deep copy of the menu with id under a fresh id.
func (r *Registry) CloneMenu(cfg *models.Configuration, id string) (models.Menu, error) {
	src := cfg.FindMenu(id)
	if src == nil {
		return models.Menu{}, fmt.Errorf("registry: clone menu %q: %w", id, apperr.ErrNotFound)
	}
	m := src.Clone()
	m.ID = r.ids.NewID()
	m.Name += clonedSuffix
	cfg.Menus = append(cfg.Menus, m)
	return m.Clone(), nil
}

// RemoveMenu deletes the menu with id. Rules pointing at it are retargeted
// to the main menu first.
func (r *Registry) RemoveMenu(cfg *models.Configuration, id string) error {
	if id == models.MainMenuID {
		return fmt.Errorf("registry: remove main menu: %w", apperr.ErrProtected)
	}
	idx := -1
	for i := range cfg.Menus {
		if cfg.Menus[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("registry: remove menu %q: %w", id, apperr.ErrNotFound)
	}

	for i := range cfg.Rules {
		if cfg.Rules[i].MenuID == id {
			cfg.Rules[i].MenuID = models.MainMenuID
		}
	}
	cfg.Menus = append(cfg.Menus[:idx], cfg.Menus[idx+1:]...)
	return nil
}

// ReplaceMenu commits an edited copy over the stored menu with the same id.
// The main menu keeps its name.
func (r *Registry) ReplaceMenu(cfg *models.Configuration, m models.Menu) error {
	cur := cfg.FindMenu(m.ID)
	if cur == nil {
		return fmt.Errorf("registry: replace menu %q: %w", m.ID, apperr.ErrNotFound)
	}
	if m.ID == models.MainMenuID {
		m.Name = cur.Name
	}
	if err := settings.ValidateMenu(&m); err != nil {
		return err
	}
	*cur = m.Clone()
	return nil
}
