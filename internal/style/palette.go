// Package style resolves the effective menu style from the configured mode
// and style layers.
package style

import "github.com/starford/globalmenu/internal/models"

// LightColors is the fixed light palette.
var LightColors = models.ColorSet{
	Background:      "#ffffff",
	Text:            "#333333",
	Border:          "#e1e1e1",
	HoverBackground: "#f5f5f5",
	Accent:          "#007bff",
}

// DarkColors is the fixed dark palette.
var DarkColors = models.ColorSet{
	Background:      "#2b2b2b",
	Text:            "#dddddd",
	Border:          "#444444",
	HoverBackground: "#3c3c3c",
	Accent:          "#bb86fc",
}

// ThemeColors delegates every color to the host theme variables.
var ThemeColors = models.ColorSet{
	Background:      "var(--background-primary)",
	Text:            "var(--text-normal)",
	Border:          "var(--background-modifier-border)",
	HoverBackground: "var(--background-modifier-hover)",
	Accent:          "var(--interactive-accent)",
}
