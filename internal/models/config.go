package models

// MenuPosition places the menu relative to the document.
type MenuPosition string

// Menu positions.
const (
	PositionTop    MenuPosition = "top"
	PositionBottom MenuPosition = "bottom"
)

// Fixed identifiers of the two distinguished entities.
const (
	MainMenuID = "main-menu"
	BaseRuleID = "base-all-notes-rule"
)

// Configuration is the persisted root aggregate.
type Configuration struct {
	Menus                    []Menu       `json:"menus"`
	Rules                    []Rule       `json:"rules"`
	MenuPosition             MenuPosition `json:"menuPosition"`
	StyleMode                StyleMode    `json:"styleMode"`
	AutoRefresh              bool         `json:"autoRefresh"`
	OpenLinksInNewTabDefault bool         `json:"openLinksInNewTabDefault"`
	ShowOnlyInActiveDocument bool         `json:"showOnlyInActiveDocument"`
	GlobalTypography         Typography   `json:"globalTypography"`
	GlobalSpacing            Spacing      `json:"globalSpacing"`
	CustomLight              NamedStyle   `json:"customLight"`
	CustomDark               NamedStyle   `json:"customDark"`
}

// Clone returns a deep copy of the configuration. Style layers are plain
// values, so only the menu and rule sequences need copying.
func (c Configuration) Clone() Configuration {
	out := c
	if c.Menus != nil {
		out.Menus = make([]Menu, len(c.Menus))
		for i, m := range c.Menus {
			out.Menus[i] = m.Clone()
		}
	}
	if c.Rules != nil {
		out.Rules = make([]Rule, len(c.Rules))
		copy(out.Rules, c.Rules)
	}
	return out
}

// FindMenu returns the menu with the given id, or nil.
func (c *Configuration) FindMenu(id string) *Menu {
	for i := range c.Menus {
		if c.Menus[i].ID == id {
			return &c.Menus[i]
		}
	}
	return nil
}

// FindRule returns the rule with the given id, or nil.
func (c *Configuration) FindRule(id string) *Rule {
	for i := range c.Rules {
		if c.Rules[i].ID == id {
			return &c.Rules[i]
		}
	}
	return nil
}
