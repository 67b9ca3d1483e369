package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/starford/globalmenu/internal/models"
)

var (
	errNotJSON   = errors.New("settings: persisted configuration is not valid JSON")
	errNotObject = errors.New("settings: persisted configuration is not a JSON object")
)

// Reconcile merges a possibly partial persisted blob over defaults and
// re-asserts the main-menu and base-rule invariants.
//
// Top-level keys present in loaded replace the default value. The style
// objects (globalTypography, globalSpacing, customLight, customDark and the
// typography/spacing objects nested in the latter two) merge field by field,
// so absent fields keep their default. Menus and rules are replaced as whole
// sequences.
//
// The returned configuration is always usable. A non-nil error only reports
// what part of loaded was ignored.
func Reconcile(defaults models.Configuration, loaded []byte) (models.Configuration, error) {
	cfg := defaults.Clone()

	raw := bytes.TrimSpace(loaded)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		enforce(&cfg, defaults, true)
		return cfg, nil
	}
	if !gjson.ValidBytes(raw) {
		enforce(&cfg, defaults, true)
		return cfg, errNotJSON
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		enforce(&cfg, defaults, true)
		return cfg, errNotObject
	}

	// Decoding into an existing slice reuses its elements, which would leak
	// default fields into loaded menus and rules.
	if member(root, "menus").Exists() {
		cfg.Menus = nil
	}
	rules := member(root, "rules")
	if rules.Exists() {
		cfg.Rules = nil
	}

	// Struct targets keep fields the blob does not mention, which gives the
	// per-field merge for the style objects. Mistyped fields are skipped.
	var decodeErr error
	if err := json.Unmarshal(raw, &cfg); err != nil {
		decodeErr = fmt.Errorf("settings: ignored part of persisted configuration: %w", err)
	}

	// A blob that leaves the rule list alone keeps the current flag.
	enforce(&cfg, defaults, !rules.Exists() || baseEnabledSet(rules))
	return cfg, decodeErr
}

// HasKey reports whether the JSON object blob has a top-level key that
// decodes into the field named key.
func HasKey(blob []byte, key string) bool {
	return member(gjson.ParseBytes(blob), key).Exists()
}

// member looks key up in obj the way encoding/json matches object keys to
// struct fields: an exact match wins, otherwise the first case-insensitive
// one.
func member(obj gjson.Result, key string) gjson.Result {
	if v := obj.Get(gjson.Escape(key)); v.Exists() {
		return v
	}
	var found gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		if strings.EqualFold(k.String(), key) {
			found = v
			return false
		}
		return true
	})
	return found
}

// baseEnabledSet reports whether the first base rule in a raw rule list
// carries an enabled field.
func baseEnabledSet(rules gjson.Result) bool {
	set := false
	rules.ForEach(func(_, r gjson.Result) bool {
		if member(r, "id").String() != models.BaseRuleID {
			return true
		}
		set = member(r, "enabled").Exists()
		return false
	})
	return set
}

// EnsureInvariants makes cfg hold exactly one main menu and exactly one base
// rule of type all with the wildcard value. It is idempotent.
func EnsureInvariants(cfg *models.Configuration, defaults models.Configuration) {
	enforce(cfg, defaults, true)
}

// Reset returns a fresh copy of defaults with the invariants asserted.
func Reset(defaults models.Configuration) models.Configuration {
	cfg := defaults.Clone()
	enforce(&cfg, defaults, true)
	return cfg
}

// enforce implements EnsureInvariants. baseEnabledSet reports whether the
// base rule's enabled flag came from an explicit value; when it did not, the
// rule is enabled.
func enforce(cfg *models.Configuration, defaults models.Configuration, baseEnabledSet bool) {
	cfg.Menus = dedupeMenus(cfg.Menus, models.MainMenuID)
	if cfg.FindMenu(models.MainMenuID) == nil {
		main := DefaultMainMenu()
		if m := defaults.FindMenu(models.MainMenuID); m != nil {
			main = m.Clone()
		}
		cfg.Menus = append([]models.Menu{main}, cfg.Menus...)
	}

	cfg.Rules = dedupeRules(cfg.Rules, models.BaseRuleID)
	base := cfg.FindRule(models.BaseRuleID)
	if base == nil {
		rule := DefaultBaseRule()
		if r := defaults.FindRule(models.BaseRuleID); r != nil {
			rule = *r
		}
		cfg.Rules = append(cfg.Rules, rule)
		base = &cfg.Rules[len(cfg.Rules)-1]
	}
	base.Type = models.RuleAll
	base.Value = models.Wildcard
	if !baseEnabledSet {
		base.Enabled = true
	}
	if base.MenuID == "" {
		base.MenuID = models.MainMenuID
	}
}

// dedupeMenus drops every menu with id after the first one.
func dedupeMenus(menus []models.Menu, id string) []models.Menu {
	seen := false
	out := make([]models.Menu, 0, len(menus))
	for _, m := range menus {
		if m.ID == id {
			if seen {
				continue
			}
			seen = true
		}
		out = append(out, m)
	}
	return out
}

// dedupeRules drops every rule with id after the first one.
func dedupeRules(rules []models.Rule, id string) []models.Rule {
	seen := false
	out := make([]models.Rule, 0, len(rules))
	for _, r := range rules {
		if r.ID == id {
			if seen {
				continue
			}
			seen = true
		}
		out = append(out, r)
	}
	return out
}
