// Package present turns a configuration and a document context into the
// instruction a renderer paints.
package present

import (
	"github.com/starford/globalmenu/internal/models"
	"github.com/starford/globalmenu/internal/rules"
	"github.com/starford/globalmenu/internal/style"
)

// Build selects the menu for dc and resolves the style to paint it with.
// The result's Menu is nil when no rule applies. Build does not modify cfg.
func Build(cfg models.Configuration, dc models.DocumentContext, dark bool) models.Presentation {
	resolved := style.Resolve(cfg, dark)
	p := models.Presentation{
		Document:  dc.Path,
		Position:  Position(cfg.MenuPosition),
		Style:     resolved,
		ClassName: style.ClassName(resolved.Mode),
		Variables: style.Variables(resolved),
	}

	rule, ok := rules.Select(cfg.Rules, cfg.Menus, dc)
	if !ok {
		return p
	}
	menu := rules.Target(cfg.Menus, rule).Clone()
	p.Menu = &menu
	p.RuleID = rule.ID
	if menu.ShowTitle && menu.Title != "" {
		p.Title = menu.Title
	}
	p.Items = Items(menu, cfg.OpenLinksInNewTabDefault)
	return p
}

// Position maps unknown positions to the top of the document.
func Position(p models.MenuPosition) models.MenuPosition {
	if p == models.PositionBottom {
		return p
	}
	return models.PositionTop
}

// Items returns the enabled items of m in render order with their
// activations.
func Items(m models.Menu, newTabDefault bool) []models.RenderedItem {
	out := make([]models.RenderedItem, 0, len(m.Items))
	for _, it := range m.Items {
		if !it.Enabled {
			continue
		}
		out = append(out, Render(it, newTabDefault))
	}
	return out
}

// Render computes the activations of one item. NOTE items open their
// document, in a new tab when either the global default or the item asks
// for it; the auxiliary activation always opens a new tab. COMMAND items
// execute their command and have no auxiliary activation.
func Render(it models.MenuItem, newTabDefault bool) models.RenderedItem {
	if it.Type == models.ItemCommand {
		return models.RenderedItem{
			Name:    it.Name,
			Primary: models.Activation{Kind: models.ActionExecuteCommand, Target: it.Value},
		}
	}
	return models.RenderedItem{
		Name: it.Name,
		Primary: models.Activation{
			Kind:   models.ActionOpenDocument,
			Target: it.Value,
			NewTab: newTabDefault || it.NewTab,
		},
		Auxiliary: &models.Activation{
			Kind:   models.ActionOpenDocument,
			Target: it.Value,
			NewTab: true,
		},
	}
}
