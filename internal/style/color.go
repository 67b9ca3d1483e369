package style

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/starford/globalmenu/internal/models"
)

var errColorToken = errors.New("must be a hex color or a var(--...) reference")

// IsThemeVar reports whether token references a host theme variable.
func IsThemeVar(token string) bool {
	t := strings.TrimSpace(token)
	return strings.HasPrefix(t, "var(--") && strings.HasSuffix(t, ")")
}

// ParseHex parses a #rgb or #rrggbb token.
func ParseHex(token string) (colorful.Color, bool) {
	c, err := colorful.Hex(strings.TrimSpace(token))
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// ColorToken is an ozzo-validation rule accepting hex colors and theme
// variable references. Empty strings are left to validation.Required.
var ColorToken = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" || IsThemeVar(s) {
		return nil
	}
	if _, ok := ParseHex(s); ok {
		return nil
	}
	return errColorToken
})

// ValidateColors checks every token of a color set.
func ValidateColors(c *models.ColorSet) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Background, validation.Required, ColorToken),
		validation.Field(&c.Text, validation.Required, ColorToken),
		validation.Field(&c.Border, validation.Required, ColorToken),
		validation.Field(&c.HoverBackground, validation.Required, ColorToken),
		validation.Field(&c.Accent, validation.Required, ColorToken),
	)
}
