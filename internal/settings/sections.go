package settings

import (
	"fmt"

	"github.com/starford/globalmenu/internal/apperr"
	"github.com/starford/globalmenu/internal/models"
)

// Section names a style block that can be reset to its default on its own.
type Section string

// Resettable style sections.
const (
	SectionGlobalTypography Section = "globalTypography"
	SectionGlobalSpacing    Section = "globalSpacing"
	SectionLightColors      Section = "customLight.colors"
	SectionLightTypography  Section = "customLight.typography"
	SectionLightSpacing     Section = "customLight.spacing"
	SectionDarkColors       Section = "customDark.colors"
	SectionDarkTypography   Section = "customDark.typography"
	SectionDarkSpacing      Section = "customDark.spacing"
)

// ResetSection restores one style section of cfg from defaults.
func ResetSection(cfg *models.Configuration, defaults models.Configuration, s Section) error {
	switch s {
	case SectionGlobalTypography:
		cfg.GlobalTypography = defaults.GlobalTypography
	case SectionGlobalSpacing:
		cfg.GlobalSpacing = defaults.GlobalSpacing
	case SectionLightColors:
		cfg.CustomLight.ColorSet = defaults.CustomLight.ColorSet
	case SectionLightTypography:
		cfg.CustomLight.Typography = defaults.CustomLight.Typography
	case SectionLightSpacing:
		cfg.CustomLight.Spacing = defaults.CustomLight.Spacing
	case SectionDarkColors:
		cfg.CustomDark.ColorSet = defaults.CustomDark.ColorSet
	case SectionDarkTypography:
		cfg.CustomDark.Typography = defaults.CustomDark.Typography
	case SectionDarkSpacing:
		cfg.CustomDark.Spacing = defaults.CustomDark.Spacing
	default:
		return fmt.Errorf("%w: unknown style section %q", apperr.ErrValidation, s)
	}
	return nil
}
