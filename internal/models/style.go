package models

// StyleMode selects how the menu style is resolved.
type StyleMode string

// Style modes.
const (
	StyleAutoSystem        StyleMode = "auto-system"
	StyleAutoBaseLightDark StyleMode = "auto-base-light-dark"
	StyleLight             StyleMode = "light"
	StyleDark              StyleMode = "dark"
	StyleAutoCustom        StyleMode = "auto-custom"
	StyleCustomLight       StyleMode = "custom-light"
	StyleCustomDark        StyleMode = "custom-dark"
)

// StyleModes lists every known mode in presentation order.
var StyleModes = []StyleMode{
	StyleAutoSystem,
	StyleAutoBaseLightDark,
	StyleLight,
	StyleDark,
	StyleAutoCustom,
	StyleCustomLight,
	StyleCustomDark,
}

// Text transforms accepted by Typography.
const (
	TransformNone       = "none"
	TransformUppercase  = "uppercase"
	TransformCapitalize = "capitalize"
	TransformLowercase  = "lowercase"
)

// Typography holds CSS-like font tokens for items and the menu title.
type Typography struct {
	FontFamily         string `json:"fontFamily"`
	FontSize           string `json:"fontSize"`
	FontWeight         string `json:"fontWeight"`
	TextTransform      string `json:"textTransform"`
	TitleFontFamily    string `json:"titleFontFamily"`
	TitleFontSize      string `json:"titleFontSize"`
	TitleFontWeight    string `json:"titleFontWeight"`
	TitleTextTransform string `json:"titleTextTransform"`
}

// Spacing holds CSS-like length tokens for the menu layout.
type Spacing struct {
	MenuPadding               string `json:"menuPadding"`
	ItemPadding               string `json:"itemPadding"`
	ItemGap                   string `json:"itemGap"`
	ItemBorderRadius          string `json:"itemBorderRadius"`
	MenuBorderWidth           string `json:"menuBorderWidth"`
	MenuContainerBorderRadius string `json:"menuContainerBorderRadius"`
}

// ColorSet holds the five color tokens of a menu.
type ColorSet struct {
	Background      string `json:"background"`
	Text            string `json:"text"`
	Border          string `json:"border"`
	HoverBackground string `json:"hoverBackground"`
	Accent          string `json:"accent"`
}

// NamedStyle is a complete, independently overridable style variant.
// The color fields are flattened into the JSON object.
type NamedStyle struct {
	ColorSet
	Typography Typography `json:"typography"`
	Spacing    Spacing    `json:"spacing"`
}

// ResolvedStyle is the effective style to paint.
type ResolvedStyle struct {
	Mode       StyleMode  `json:"mode"`
	Colors     ColorSet   `json:"colors"`
	Typography Typography `json:"typography"`
	Spacing    Spacing    `json:"spacing"`
}
