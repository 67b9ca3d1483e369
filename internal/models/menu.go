// Package models defines the domain types for the global menu engine.
package models

// ItemType selects what activating a MenuItem does.
type ItemType string

// Item types.
const (
	ItemNote    ItemType = "note"
	ItemCommand ItemType = "command"
)

// MenuItem is one navigable entry of a Menu. Value is a document identifier
// for ItemNote and a command identifier for ItemCommand.
type MenuItem struct {
	Name    string   `json:"name"`
	Enabled bool     `json:"enabled"`
	Type    ItemType `json:"type"`
	Value   string   `json:"value"`
	NewTab  bool     `json:"newTab"`
}

// Menu is a named, ordered list of items.
type Menu struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Enabled   bool       `json:"enabled"`
	ShowTitle bool       `json:"showTitle"`
	Title     string     `json:"title"`
	Items     []MenuItem `json:"items"`
}

// Displayable reports whether the menu may be shown at all.
// A menu without items is never displayable, even when enabled.
func (m *Menu) Displayable() bool {
	return m != nil && m.Enabled && len(m.Items) > 0
}

// Clone returns a deep copy of the menu.
func (m Menu) Clone() Menu {
	out := m
	if m.Items != nil {
		out.Items = make([]MenuItem, len(m.Items))
		copy(out.Items, m.Items)
	}
	return out
}

// RuleType selects the predicate a Rule applies to a document.
type RuleType string

// Rule types.
const (
	RuleAll    RuleType = "all"
	RuleTag    RuleType = "tag"
	RuleFolder RuleType = "folder"
	RuleNote   RuleType = "note"
	RuleRegex  RuleType = "regex"
)

// Wildcard is the value of catch-all rules.
const Wildcard = "*"

// Rule maps documents matching a predicate to a menu.
type Rule struct {
	ID      string   `json:"id"`
	Enabled bool     `json:"enabled"`
	Type    RuleType `json:"type"`
	Value   string   `json:"value"`
	MenuID  string   `json:"menuId"`
}

// Specific reports whether the rule carries an explicit value rather than
// an empty or wildcard one.
func (r Rule) Specific() bool {
	return r.Value != "" && r.Value != Wildcard
}
