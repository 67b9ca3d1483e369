// Package settings implements the configuration model: defaults,
// reconciliation of persisted blobs, invariant enforcement and validation.
package settings

import (
	"github.com/starford/globalmenu/internal/models"
	"github.com/starford/globalmenu/internal/style"
)

var defaultTypography = models.Typography{
	FontFamily:         "var(--font-text)",
	FontSize:           "0.9em",
	FontWeight:         "normal",
	TextTransform:      models.TransformNone,
	TitleFontFamily:    "var(--font-interface)",
	TitleFontSize:      "0.9em",
	TitleFontWeight:    "600",
	TitleTextTransform: models.TransformUppercase,
}

var defaultSpacing = models.Spacing{
	MenuPadding:               "8px 15px",
	ItemPadding:               "6px 12px",
	ItemGap:                   "8px",
	ItemBorderRadius:          "0px",
	MenuBorderWidth:           "1px",
	MenuContainerBorderRadius: "0px",
}

// namedStyle instantiates the canonical style template with a color set,
// so both custom variants share one typography/spacing source.
func namedStyle(colors models.ColorSet) models.NamedStyle {
	return models.NamedStyle{
		ColorSet:   colors,
		Typography: defaultTypography,
		Spacing:    defaultSpacing,
	}
}

// DefaultMainMenu returns a fresh copy of the default main menu.
func DefaultMainMenu() models.Menu {
	return models.Menu{
		ID:        models.MainMenuID,
		Name:      "Main Menu",
		Enabled:   true,
		ShowTitle: true,
		Title:     "NAVIGATION",
		Items: []models.MenuItem{
			{Name: "Dashboard", Enabled: true, Type: models.ItemNote, Value: "Dashboard"},
		},
	}
}

// DefaultBaseRule returns a fresh copy of the default base rule.
func DefaultBaseRule() models.Rule {
	return models.Rule{
		ID:      models.BaseRuleID,
		Enabled: true,
		Type:    models.RuleAll,
		Value:   models.Wildcard,
		MenuID:  models.MainMenuID,
	}
}

// DefaultTypography returns the default global typography.
func DefaultTypography() models.Typography { return defaultTypography }

// DefaultSpacing returns the default global spacing.
func DefaultSpacing() models.Spacing { return defaultSpacing }

// DefaultCustomLight returns the default custom light style.
func DefaultCustomLight() models.NamedStyle { return namedStyle(style.LightColors) }

// DefaultCustomDark returns the default custom dark style.
func DefaultCustomDark() models.NamedStyle { return namedStyle(style.DarkColors) }

// Defaults returns a new default configuration. Every call returns an
// independent value.
func Defaults() models.Configuration {
	return models.Configuration{
		Menus:            []models.Menu{DefaultMainMenu()},
		Rules:            []models.Rule{DefaultBaseRule()},
		MenuPosition:     models.PositionTop,
		StyleMode:        models.StyleAutoSystem,
		GlobalTypography: defaultTypography,
		GlobalSpacing:    defaultSpacing,
		CustomLight:      DefaultCustomLight(),
		CustomDark:       DefaultCustomDark(),
	}
}
