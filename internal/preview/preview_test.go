package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/globalmenu/internal/models"
	"github.com/starford/globalmenu/internal/present"
	"github.com/starford/globalmenu/internal/settings"
	"github.com/starford/globalmenu/internal/style"
	"github.com/starford/globalmenu/internal/vault"
)

func presentation(t *testing.T, mutate func(cfg *models.Configuration)) models.Presentation {
	t.Helper()
	cfg := settings.Defaults()
	if mutate != nil {
		mutate(&cfg)
	}
	return present.Build(cfg, vault.NewContext("notes/today.md", nil), false)
}

func TestString_TopMenu(t *testing.T) {
	p := presentation(t, func(cfg *models.Configuration) {
		cfg.Menus[0].Items = append(cfg.Menus[0].Items,
			models.MenuItem{Name: "palette", Enabled: true, Type: models.ItemCommand, Value: "palette:open"},
			models.MenuItem{Name: "hidden", Enabled: false, Type: models.ItemNote, Value: "x"},
		)
	})

	out := String(p, Options{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)

	assert.Contains(t, out, "NAVIGATION")
	assert.Contains(t, out, "Dashboard")
	assert.Contains(t, out, ":palette")
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, lines[len(lines)-1], "notes/today.md")
	assert.NotContains(t, out, "\x1b[", "plain output carries no escape codes")
}

func TestString_BottomAndTransform(t *testing.T) {
	p := presentation(t, func(cfg *models.Configuration) {
		cfg.MenuPosition = models.PositionBottom
		cfg.GlobalTypography.TextTransform = models.TransformUppercase
		cfg.OpenLinksInNewTabDefault = true
	})

	out := String(p, Options{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Contains(t, lines[0], "notes/today.md")
	assert.Contains(t, out, "DASHBOARD ↗")
}

func TestString_NoMenu(t *testing.T) {
	p := presentation(t, func(cfg *models.Configuration) {
		cfg.Rules[0].Enabled = false
	})
	assert.Equal(t, "no menu for notes/today.md\n", String(p, Options{}))
}

func TestString_ColorAndLegend(t *testing.T) {
	p := presentation(t, func(cfg *models.Configuration) {
		cfg.StyleMode = models.StyleDark
	})
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, p, Options{Color: true, Legend: true}))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "accent     "+style.DarkColors.Accent)
	assert.Contains(t, out, "global-menu-dark")
}

func TestColors_ThemeVarsFallBack(t *testing.T) {
	pal := Colors(style.ThemeColors, true)
	want, _ := colorful.Hex(style.DarkColors.Background)
	assert.Equal(t, want.Hex(), pal.Background.Hex())

	pal = Colors(style.ThemeColors, false)
	want, _ = colorful.Hex(style.LightColors.Accent)
	assert.Equal(t, want.Hex(), pal.Accent.Hex())
}

func TestReadable(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{}
	lightGrey, _ := colorful.Hex("#eeeeee")

	assert.InDelta(t, 21.0, Contrast(white, black), 0.01)
	assert.InDelta(t, 1.0, Contrast(white, white), 0.001)

	assert.Equal(t, black, Readable(lightGrey, white))
	assert.Equal(t, white, Readable(black, black))

	dark, _ := colorful.Hex("#333333")
	assert.Equal(t, dark, Readable(dark, white))
}

func TestTransform(t *testing.T) {
	tests := []struct {
		tt   string
		in   string
		want string
	}{
		{models.TransformNone, "daily notes", "daily notes"},
		{models.TransformUppercase, "daily notes", "DAILY NOTES"},
		{models.TransformLowercase, "Daily Notes", "daily notes"},
		{models.TransformCapitalize, "daily  notes", "Daily  Notes"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, transform(tc.in, tc.tt), tc.tt)
	}
}

func TestCells(t *testing.T) {
	assert.Equal(t, 2, cells("15px"))
	assert.Equal(t, 1, cells("8px"))
	assert.Equal(t, 2, cells("1em"))
	assert.Equal(t, 0, cells("auto"))
	assert.Equal(t, "12px", horizontal("6px 12px"))
	assert.True(t, isBold("600"))
	assert.False(t, isBold("normal"))
}
