package menuservice

import (
	"context"

	"github.com/starford/globalmenu/internal/models"
	"github.com/starford/globalmenu/internal/registry"
	"github.com/starford/globalmenu/internal/rules"
)

// Menus returns copies of all menus in display order.
func (s *Service) Menus() []models.Menu {
	return s.Config().Menus
}

// Menu returns an owned copy of one menu for editing.
func (s *Service) Menu(id string) (models.Menu, error) {
	cfg := s.Config()
	return registry.Menu(&cfg, id)
}

// NewMenu returns an uncommitted draft menu with a fresh id.
func (s *Service) NewMenu() models.Menu {
	cfg := s.Config()
	return s.reg.NewMenu(&cfg)
}

// CreateMenu validates and stores a new menu.
func (s *Service) CreateMenu(ctx context.Context, m models.Menu) (models.Menu, error) {
	var out models.Menu
	err := s.mutate(ctx, "", func(cfg *models.Configuration) error {
		var err error
		out, err = s.reg.CreateMenu(cfg, m)
		return err
	})
	return out, err
}

// CloneMenu stores a deep copy of the menu with id.
func (s *Service) CloneMenu(ctx context.Context, id string) (models.Menu, error) {
	var out models.Menu
	err := s.mutate(ctx, "", func(cfg *models.Configuration) error {
		var err error
		out, err = s.reg.CloneMenu(cfg, id)
		return err
	})
	return out, err
}

// ReplaceMenu commits an edited menu copy.
func (s *Service) ReplaceMenu(ctx context.Context, m models.Menu) (models.Menu, error) {
	var out models.Menu
	err := s.mutate(ctx, "", func(cfg *models.Configuration) error {
		if err := s.reg.ReplaceMenu(cfg, m); err != nil {
			return err
		}
		out = cfg.FindMenu(m.ID).Clone()
		return nil
	})
	return out, err
}

// EditMenu applies edit to an owned copy of the menu with id and commits
// the copy. A failing edit or an invalid result leaves the menu untouched.
func (s *Service) EditMenu(ctx context.Context, id string, edit func(m *models.Menu) error) (models.Menu, error) {
	var out models.Menu
	err := s.mutate(ctx, "", func(cfg *models.Configuration) error {
		m, err := registry.Menu(cfg, id)
		if err != nil {
			return err
		}
		if err := edit(&m); err != nil {
			return err
		}
		if err := s.reg.ReplaceMenu(cfg, m); err != nil {
			return err
		}
		out = cfg.FindMenu(id).Clone()
		return nil
	})
	return out, err
}

// RemoveMenu deletes a menu and retargets its rules to the main menu.
func (s *Service) RemoveMenu(ctx context.Context, id string) error {
	return s.mutate(ctx, "", func(cfg *models.Configuration) error {
		return s.reg.RemoveMenu(cfg, id)
	})
}

// Rules returns copies of all rules in stored priority order.
func (s *Service) Rules() []models.Rule {
	return s.Config().Rules
}

// EvaluationOrder returns every rule in the order matching tries them, base
// rule last.
func (s *Service) EvaluationOrder() []models.Rule {
	cfg := s.Config()
	out := rules.Sort(cfg.Rules)
	if base := cfg.FindRule(models.BaseRuleID); base != nil {
		out = append(out, *base)
	}
	return out
}

// AddRule stores a rule at the highest priority. A nil rule adds the
// default catch-all rule targeting the first menu.
func (s *Service) AddRule(ctx context.Context, r *models.Rule) (models.Rule, error) {
	var out models.Rule
	err := s.mutate(ctx, "", func(cfg *models.Configuration) error {
		rule := s.reg.NewRule(cfg)
		if r != nil {
			rule = *r
		}
		var err error
		out, err = s.reg.AddRule(cfg, rule)
		return err
	})
	return out, err
}

// UpdateRule commits an edited rule.
func (s *Service) UpdateRule(ctx context.Context, r models.Rule) (models.Rule, error) {
	var out models.Rule
	err := s.mutate(ctx, "", func(cfg *models.Configuration) error {
		var err error
		out, err = s.reg.UpdateRule(cfg, r)
		return err
	})
	return out, err
}

// RemoveRule deletes a rule.
func (s *Service) RemoveRule(ctx context.Context, id string) error {
	return s.mutate(ctx, "", func(cfg *models.Configuration) error {
		return s.reg.RemoveRule(cfg, id)
	})
}

// MoveRule raises or lowers a rule's priority by one step.
func (s *Service) MoveRule(ctx context.Context, id string, d registry.Direction) error {
	return s.mutate(ctx, "", func(cfg *models.Configuration) error {
		return s.reg.MoveRule(cfg, id, d)
	})
}

// SetBaseRule enables or disables the base rule and retargets it.
func (s *Service) SetBaseRule(ctx context.Context, enabled bool, menuID string) (models.Rule, error) {
	var out models.Rule
	err := s.mutate(ctx, "", func(cfg *models.Configuration) error {
		if err := s.reg.SetBaseRule(cfg, enabled, menuID); err != nil {
			return err
		}
		out = *cfg.FindRule(models.BaseRuleID)
		return nil
	})
	return out, err
}
