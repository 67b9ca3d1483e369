package registry

import (
	"fmt"

	"github.com/starford/globalmenu/internal/apperr"
	"github.com/starford/globalmenu/internal/models"
	"github.com/starford/globalmenu/internal/rules"
	"github.com/starford/globalmenu/internal/settings"
)

// NewRule returns a catch-all rule with a fresh id targeting the first menu.
func (r *Registry) NewRule(cfg *models.Configuration) models.Rule {
	menuID := models.MainMenuID
	if len(cfg.Menus) > 0 {
		menuID = cfg.Menus[0].ID
	}
	return models.Rule{
		ID:      r.ids.NewID(),
		Enabled: true,
		Type:    models.RuleAll,
		Value:   models.Wildcard,
		MenuID:  menuID,
	}
}

// AddRule normalizes and validates rule and inserts it at the highest
// priority. An empty id is replaced with a fresh one.
func (r *Registry) AddRule(cfg *models.Configuration, rule models.Rule) (models.Rule, error) {
	if rule.ID == "" {
		rule.ID = r.ids.NewID()
	}
	if rule.ID == models.BaseRuleID {
		return models.Rule{}, fmt.Errorf("registry: add base rule: %w", apperr.ErrProtected)
	}
	if cfg.FindRule(rule.ID) != nil {
		return models.Rule{}, fmt.Errorf("registry: rule %q: %w", rule.ID, apperr.ErrAlreadyExists)
	}
	rule = rules.Normalize(rule)
	if err := settings.ValidateRule(&rule); err != nil {
		return models.Rule{}, err
	}
	cfg.Rules = append([]models.Rule{rule}, cfg.Rules...)
	return rule, nil
}

// UpdateRule commits an edited rule. A type change clears a value that was
// carried over unchanged. For the base rule only the enabled flag and the
// target menu are applied.
func (r *Registry) UpdateRule(cfg *models.Configuration, rule models.Rule) (models.Rule, error) {
	cur := cfg.FindRule(rule.ID)
	if cur == nil {
		return models.Rule{}, fmt.Errorf("registry: update rule %q: %w", rule.ID, apperr.ErrNotFound)
	}
	if rule.ID == models.BaseRuleID {
		if err := r.SetBaseRule(cfg, rule.Enabled, rule.MenuID); err != nil {
			return models.Rule{}, err
		}
		return *cfg.FindRule(models.BaseRuleID), nil
	}

	if rule.Type != cur.Type && rule.Value == cur.Value {
		rule = rules.ChangeType(models.Rule{ID: rule.ID, Enabled: rule.Enabled, Type: cur.Type, Value: cur.Value, MenuID: rule.MenuID}, rule.Type)
	}
	rule = rules.Normalize(rule)
	if err := settings.ValidateRule(&rule); err != nil {
		return models.Rule{}, err
	}
	*cur = rule
	return rule, nil
}

// RemoveRule deletes the rule with id.
func (r *Registry) RemoveRule(cfg *models.Configuration, id string) error {
	if id == models.BaseRuleID {
		return fmt.Errorf("registry: remove base rule: %w", apperr.ErrProtected)
	}
	for i := range cfg.Rules {
		if cfg.Rules[i].ID == id {
			cfg.Rules = append(cfg.Rules[:i], cfg.Rules[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("registry: remove rule %q: %w", id, apperr.ErrNotFound)
}

// MoveRule swaps the rule with id and the nearest non-base rule in
// direction d. The base rule is skipped over and cannot be moved itself.
func (r *Registry) MoveRule(cfg *models.Configuration, id string, d Direction) error {
	if id == models.BaseRuleID {
		return fmt.Errorf("registry: move base rule: %w", apperr.ErrProtected)
	}
	i := -1
	for k := range cfg.Rules {
		if cfg.Rules[k].ID == id {
			i = k
			break
		}
	}
	if i < 0 {
		return fmt.Errorf("registry: move rule %q: %w", id, apperr.ErrNotFound)
	}

	j, err := neighbour(i, d)
	if err != nil {
		return err
	}
	step := j - i
	for j >= 0 && j < len(cfg.Rules) && cfg.Rules[j].ID == models.BaseRuleID {
		j += step
	}
	if j < 0 || j >= len(cfg.Rules) {
		return nil
	}
	cfg.Rules[i], cfg.Rules[j] = cfg.Rules[j], cfg.Rules[i]
	return nil
}

// SetBaseRule enables or disables the base rule and retargets it. An empty
// menuID keeps the current target.
func (r *Registry) SetBaseRule(cfg *models.Configuration, enabled bool, menuID string) error {
	base := cfg.FindRule(models.BaseRuleID)
	if base == nil {
		return fmt.Errorf("registry: base rule: %w", apperr.ErrNotFound)
	}
	if menuID != "" {
		if cfg.FindMenu(menuID) == nil {
			return fmt.Errorf("registry: base rule target %q: %w", menuID, apperr.ErrNotFound)
		}
		base.MenuID = menuID
	}
	base.Enabled = enabled
	return nil
}
