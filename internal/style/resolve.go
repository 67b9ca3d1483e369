package style

import "github.com/starford/globalmenu/internal/models"

// Resolve computes the effective colors, typography and spacing for cfg.
// dark is the host's current dark-mode flag; it only matters for the auto
// modes. Unknown or empty modes resolve as auto-system.
func Resolve(cfg models.Configuration, dark bool) models.ResolvedStyle {
	global := func(mode models.StyleMode, colors models.ColorSet) models.ResolvedStyle {
		return models.ResolvedStyle{
			Mode:       mode,
			Colors:     colors,
			Typography: cfg.GlobalTypography,
			Spacing:    cfg.GlobalSpacing,
		}
	}
	named := func(mode models.StyleMode, ns models.NamedStyle) models.ResolvedStyle {
		return models.ResolvedStyle{
			Mode:       mode,
			Colors:     ns.ColorSet,
			Typography: ns.Typography,
			Spacing:    ns.Spacing,
		}
	}

	switch cfg.StyleMode {
	case models.StyleAutoBaseLightDark:
		if dark {
			return global(cfg.StyleMode, DarkColors)
		}
		return global(cfg.StyleMode, LightColors)
	case models.StyleLight:
		return global(cfg.StyleMode, LightColors)
	case models.StyleDark:
		return global(cfg.StyleMode, DarkColors)
	case models.StyleAutoCustom:
		if dark {
			return named(cfg.StyleMode, cfg.CustomDark)
		}
		return named(cfg.StyleMode, cfg.CustomLight)
	case models.StyleCustomLight:
		return named(cfg.StyleMode, cfg.CustomLight)
	case models.StyleCustomDark:
		return named(cfg.StyleMode, cfg.CustomDark)
	default:
		return global(models.StyleAutoSystem, ThemeColors)
	}
}

// KnownMode reports whether m is one of the enumerated style modes.
func KnownMode(m models.StyleMode) bool {
	for _, known := range models.StyleModes {
		if m == known {
			return true
		}
	}
	return false
}
