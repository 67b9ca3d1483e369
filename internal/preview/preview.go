// Package preview draws a resolved menu presentation in the terminal, the
// way a renderer would paint it above or below a document.
package preview

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/starford/globalmenu/internal/models"
	"github.com/starford/globalmenu/internal/style"
)

// minContrast is the WCAG AA ratio for normal text.
const minContrast = 4.5

// Options controls the preview.
type Options struct {
	// Dark picks the palette theme-variable colors fall back to.
	Dark bool
	// Color enables true-color output. Without it the preview is plain text.
	Color bool
	// Legend appends the resolved color tokens.
	Legend bool
}

// Palette is the set of concrete colors a preview paints with.
type Palette struct {
	Background colorful.Color
	Text       colorful.Color
	Border     colorful.Color
	Hover      colorful.Color
	Accent     colorful.Color
}

// Colors turns the color tokens of s into concrete colors. Theme variables
// and unparsable tokens take the fixed palette's color for the host mode.
// Text that would not be readable on the background is replaced by black
// or white.
func Colors(s models.ColorSet, dark bool) Palette {
	fallback := style.LightColors
	if dark {
		fallback = style.DarkColors
	}
	pick := func(token, def string) colorful.Color {
		if c, ok := style.ParseHex(token); ok {
			return c
		}
		c, _ := style.ParseHex(def)
		return c
	}
	p := Palette{
		Background: pick(s.Background, fallback.Background),
		Text:       pick(s.Text, fallback.Text),
		Border:     pick(s.Border, fallback.Border),
		Hover:      pick(s.HoverBackground, fallback.HoverBackground),
		Accent:     pick(s.Accent, fallback.Accent),
	}
	p.Text = Readable(p.Text, p.Background)
	return p
}

// Luminance returns the WCAG relative luminance of c.
func Luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG contrast ratio between a and b, from 1 to 21.
func Contrast(a, b colorful.Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Readable returns fg when it contrasts enough with bg, and otherwise black
// or white, whichever contrasts more.
func Readable(fg, bg colorful.Color) colorful.Color {
	if Contrast(fg, bg) >= minContrast {
		return fg
	}
	black, white := colorful.Color{}, colorful.Color{R: 1, G: 1, B: 1}
	if Contrast(black, bg) >= Contrast(white, bg) {
		return black
	}
	return white
}

// Render draws p. A presentation without a menu renders a single notice.
func Render(w io.Writer, p models.Presentation, opts Options) error {
	_, err := io.WriteString(w, String(p, opts))
	return err
}

// String draws p and returns the result.
func String(p models.Presentation, opts Options) string {
	if p.Menu == nil {
		return fmt.Sprintf("no menu for %s\n", p.Document)
	}

	r := lipgloss.NewRenderer(io.Discard)
	if opts.Color {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	pal := Colors(p.Style.Colors, opts.Dark)
	ty, sp := p.Style.Typography, p.Style.Spacing
	bg := lipgloss.Color(pal.Background.Hex())

	items := make([]string, 0, len(p.Items))
	itemStyle := r.NewStyle().
		Foreground(lipgloss.Color(pal.Text.Hex())).
		Background(bg).
		Padding(0, cells(horizontal(sp.ItemPadding)))
	for _, it := range p.Items {
		items = append(items, itemStyle.Render(itemLabel(it, ty.TextTransform)))
	}
	gap := r.NewStyle().Background(bg).Render(strings.Repeat(" ", max(1, cells(sp.ItemGap))))
	row := strings.Join(items, gap)

	body := row
	if p.Title != "" {
		title := r.NewStyle().
			Foreground(lipgloss.Color(pal.Accent.Hex())).
			Background(bg).
			Bold(isBold(ty.TitleFontWeight)).
			Render(transform(p.Title, ty.TitleTextTransform))
		body = lipgloss.JoinVertical(lipgloss.Left, title, row)
	}

	box := r.NewStyle().
		Background(bg).
		Padding(0, cells(horizontal(sp.MenuPadding)))
	if width(sp.MenuBorderWidth) > 0 {
		box = box.Border(border(sp.MenuContainerBorderRadius)).
			BorderForeground(lipgloss.Color(pal.Border.Hex())).
			BorderBackground(bg)
	}
	menu := box.Render(body)

	doc := r.NewStyle().Faint(true).Render("· " + p.Document)
	var out string
	if p.Position == models.PositionBottom {
		out = lipgloss.JoinVertical(lipgloss.Left, doc, menu)
	} else {
		out = lipgloss.JoinVertical(lipgloss.Left, menu, doc)
	}
	if opts.Legend {
		out = lipgloss.JoinVertical(lipgloss.Left, out, legend(p))
	}
	return out + "\n"
}

func itemLabel(it models.RenderedItem, tt string) string {
	label := transform(it.Name, tt)
	switch {
	case it.Primary.Kind == models.ActionExecuteCommand:
		return ":" + label
	case it.Primary.NewTab:
		return label + " ↗"
	default:
		return label
	}
}

func legend(p models.Presentation) string {
	c := p.Style.Colors
	lines := []string{
		"mode       " + string(p.Style.Mode) + "  (" + p.ClassName + ")",
		"background " + c.Background,
		"text       " + c.Text,
		"border     " + c.Border,
		"hover      " + c.HoverBackground,
		"accent     " + c.Accent,
	}
	return strings.Join(lines, "\n")
}

// transform applies a CSS text-transform value.
func transform(s string, tt string) string {
	switch tt {
	case models.TransformUppercase:
		return strings.ToUpper(s)
	case models.TransformLowercase:
		return strings.ToLower(s)
	case models.TransformCapitalize:
		runes := []rune(s)
		start := true
		for i, ch := range runes {
			if unicode.IsSpace(ch) {
				start = true
				continue
			}
			if start {
				runes[i] = unicode.ToUpper(ch)
				start = false
			}
		}
		return string(runes)
	default:
		return s
	}
}

func isBold(weight string) bool {
	switch weight {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n >= 600
}

// border maps a container radius onto a box-drawing border.
func border(radius string) lipgloss.Border {
	if width(radius) > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

// horizontal returns the horizontal component of a CSS padding shorthand.
func horizontal(padding string) string {
	f := strings.Fields(padding)
	if len(f) >= 2 {
		return f[1]
	}
	if len(f) == 1 {
		return f[0]
	}
	return ""
}

// width parses a CSS length in px or em into pixels. Unknown tokens count
// as zero.
func width(token string) float64 {
	t := strings.TrimSpace(token)
	mult := 1.0
	switch {
	case strings.HasSuffix(t, "px"):
		t = strings.TrimSuffix(t, "px")
	case strings.HasSuffix(t, "em"):
		t = strings.TrimSuffix(t, "em")
		mult = 16
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v * mult
}

// cells converts a CSS length into terminal cells, eight pixels per cell.
func cells(token string) int {
	return int(math.Round(width(token) / 8))
}
