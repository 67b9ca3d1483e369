package settings

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/globalmenu/internal/apperr"
	"github.com/starford/globalmenu/internal/models"
	"github.com/starford/globalmenu/internal/style"
)

var transforms = []interface{}{
	models.TransformNone,
	models.TransformUppercase,
	models.TransformCapitalize,
	models.TransformLowercase,
}

// lengths matches one to four space separated CSS lengths, as in a padding
// shorthand.
var lengths = regexp.MustCompile(`^(0|\d*\.?\d+(px|em|rem|%|pt|vh|vw))( (0|\d*\.?\d+(px|em|rem|%|pt|vh|vw))){0,3}$`)

func styleModes() []interface{} {
	out := make([]interface{}, len(models.StyleModes))
	for i, m := range models.StyleModes {
		out[i] = m
	}
	return out
}

// invalid wraps a validation failure so callers can match apperr.ErrValidation.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", apperr.ErrValidation, err)
}

// ValidateMenu checks a menu at the edit boundary. A menu must contain at
// least one item.
func ValidateMenu(m *models.Menu) error {
	return invalid(validation.ValidateStruct(m,
		validation.Field(&m.ID, validation.Required),
		validation.Field(&m.Name, validation.Required),
		validation.Field(&m.Items,
			validation.Required.Error("a menu must contain at least one item"),
			validation.Each(validation.By(func(v interface{}) error {
				item, _ := v.(models.MenuItem)
				return validateItem(&item)
			})),
		),
	))
}

func validateItem(it *models.MenuItem) error {
	return validation.ValidateStruct(it,
		validation.Field(&it.Type, validation.Required, validation.In(models.ItemNote, models.ItemCommand)),
	)
}

// ValidateRule checks a rule at the edit boundary.
func ValidateRule(r *models.Rule) error {
	return invalid(validation.ValidateStruct(r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Type, validation.Required, validation.In(
			models.RuleAll, models.RuleTag, models.RuleFolder, models.RuleNote, models.RuleRegex,
		)),
		validation.Field(&r.Value, validation.When(r.Type == models.RuleAll, validation.In(models.Wildcard))),
		validation.Field(&r.MenuID, validation.Required),
	))
}

// ValidateTypography checks typography tokens.
func ValidateTypography(t *models.Typography) error {
	return invalid(validateTypography(t))
}

func validateTypography(t *models.Typography) error {
	return validation.ValidateStruct(t,
		validation.Field(&t.TextTransform, validation.In(transforms...)),
		validation.Field(&t.TitleTextTransform, validation.In(transforms...)),
	)
}

// ValidateSpacing checks spacing tokens.
func ValidateSpacing(sp *models.Spacing) error {
	return invalid(validateSpacing(sp))
}

func validateSpacing(sp *models.Spacing) error {
	length := []validation.Rule{validation.Required, validation.Match(lengths).Error("must be CSS lengths such as 8px or 6px 12px")}
	return validation.ValidateStruct(sp,
		validation.Field(&sp.MenuPadding, length...),
		validation.Field(&sp.ItemPadding, length...),
		validation.Field(&sp.ItemGap, length...),
		validation.Field(&sp.ItemBorderRadius, length...),
		validation.Field(&sp.MenuBorderWidth, length...),
		validation.Field(&sp.MenuContainerBorderRadius, length...),
	)
}

// ValidateNamedStyle checks a custom style variant.
func ValidateNamedStyle(ns *models.NamedStyle) error {
	if err := style.ValidateColors(&ns.ColorSet); err != nil {
		return invalid(err)
	}
	if err := validateTypography(&ns.Typography); err != nil {
		return invalid(err)
	}
	if err := validateSpacing(&ns.Spacing); err != nil {
		return invalid(fmt.Errorf("spacing: %w", err))
	}
	return nil
}

// ValidatePosition checks a menu position.
func ValidatePosition(p models.MenuPosition) error {
	return invalid(validation.Validate(p, validation.Required, validation.In(models.PositionTop, models.PositionBottom)))
}

// ValidateStyleMode checks a style mode.
func ValidateStyleMode(m models.StyleMode) error {
	return invalid(validation.Validate(m, validation.Required, validation.In(styleModes()...)))
}

// ValidateConfig checks the enumerated top-level fields and the style
// layers of a whole configuration. Menus and rules are validated one by one
// when they are edited.
func ValidateConfig(c *models.Configuration) error {
	if err := ValidatePosition(c.MenuPosition); err != nil {
		return fmt.Errorf("menuPosition: %w", err)
	}
	if err := ValidateStyleMode(c.StyleMode); err != nil {
		return fmt.Errorf("styleMode: %w", err)
	}
	if err := ValidateTypography(&c.GlobalTypography); err != nil {
		return fmt.Errorf("globalTypography: %w", err)
	}
	if err := ValidateSpacing(&c.GlobalSpacing); err != nil {
		return fmt.Errorf("globalSpacing: %w", err)
	}
	if err := ValidateNamedStyle(&c.CustomLight); err != nil {
		return fmt.Errorf("customLight: %w", err)
	}
	if err := ValidateNamedStyle(&c.CustomDark); err != nil {
		return fmt.Errorf("customDark: %w", err)
	}
	return nil
}
