package style

import (
	"sort"
	"strings"

	"github.com/starford/globalmenu/internal/models"
)

const varPrefix = "--global-menu-"

// ClassName returns the container class the renderer applies for a mode.
func ClassName(mode models.StyleMode) string {
	switch mode {
	case models.StyleAutoCustom:
		return "global-menu-custom"
	case "":
		return "global-menu-" + string(models.StyleAutoSystem)
	default:
		return "global-menu-" + string(mode)
	}
}

// Variables maps a resolved style onto the CSS custom properties the menu
// stylesheet reads.
func Variables(s models.ResolvedStyle) map[string]string {
	return map[string]string{
		varPrefix + "padding":                 s.Spacing.MenuPadding,
		varPrefix + "item-padding":            s.Spacing.ItemPadding,
		varPrefix + "item-gap":                s.Spacing.ItemGap,
		varPrefix + "border-radius":           s.Spacing.ItemBorderRadius,
		varPrefix + "border-width":            s.Spacing.MenuBorderWidth,
		varPrefix + "container-border-radius": s.Spacing.MenuContainerBorderRadius,

		varPrefix + "font-family":          s.Typography.FontFamily,
		varPrefix + "font-size":            s.Typography.FontSize,
		varPrefix + "font-weight":          s.Typography.FontWeight,
		varPrefix + "text-transform":       s.Typography.TextTransform,
		varPrefix + "title-font-family":    s.Typography.TitleFontFamily,
		varPrefix + "title-font-size":      s.Typography.TitleFontSize,
		varPrefix + "title-font-weight":    s.Typography.TitleFontWeight,
		varPrefix + "title-text-transform": s.Typography.TitleTextTransform,

		varPrefix + "bg":       s.Colors.Background,
		varPrefix + "text":     s.Colors.Text,
		varPrefix + "border":   s.Colors.Border,
		varPrefix + "hover-bg": s.Colors.HoverBackground,
		varPrefix + "accent":   s.Colors.Accent,
	}
}

// InlineStyle renders the variables as a deterministic inline style string.
func InlineStyle(s models.ResolvedStyle) string {
	vars := Variables(s)
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	decls := make([]string, len(keys))
	for i, k := range keys {
		decls[i] = k + ": " + vars[k] + ";"
	}
	return strings.Join(decls, " ")
}
