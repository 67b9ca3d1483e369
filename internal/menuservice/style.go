package menuservice

import (
	"context"
	"fmt"

	"github.com/starford/globalmenu/internal/models"
	"github.com/starford/globalmenu/internal/settings"
	"github.com/starford/globalmenu/internal/style"
)

// StyleSettings is the style-bearing part of the configuration.
type StyleSettings struct {
	StyleMode        models.StyleMode  `json:"styleMode"`
	GlobalTypography models.Typography `json:"globalTypography"`
	GlobalSpacing    models.Spacing    `json:"globalSpacing"`
	CustomLight      models.NamedStyle `json:"customLight"`
	CustomDark       models.NamedStyle `json:"customDark"`
}

func styleOf(cfg models.Configuration) StyleSettings {
	return StyleSettings{
		StyleMode:        cfg.StyleMode,
		GlobalTypography: cfg.GlobalTypography,
		GlobalSpacing:    cfg.GlobalSpacing,
		CustomLight:      cfg.CustomLight,
		CustomDark:       cfg.CustomDark,
	}
}

// Style returns the style settings.
func (s *Service) Style() StyleSettings {
	return styleOf(s.Config())
}

// ResolvedStyle resolves the style for the given dark-mode flag.
func (s *Service) ResolvedStyle(dark bool) models.ResolvedStyle {
	return style.Resolve(s.Config(), dark)
}

// SetStyle replaces all style settings.
func (s *Service) SetStyle(ctx context.Context, st StyleSettings) (StyleSettings, error) {
	var out StyleSettings
	err := s.mutate(ctx, "", func(cfg *models.Configuration) error {
		next := *cfg
		next.StyleMode = st.StyleMode
		next.GlobalTypography = st.GlobalTypography
		next.GlobalSpacing = st.GlobalSpacing
		next.CustomLight = st.CustomLight
		next.CustomDark = st.CustomDark
		if err := validateStyle(&next); err != nil {
			return err
		}
		*cfg = next
		out = styleOf(next)
		return nil
	})
	return out, err
}

// ResetStyleSection restores one style section to its default.
func (s *Service) ResetStyleSection(ctx context.Context, section settings.Section) (StyleSettings, error) {
	var out StyleSettings
	err := s.mutate(ctx, "", func(cfg *models.Configuration) error {
		if err := settings.ResetSection(cfg, s.defaults, section); err != nil {
			return err
		}
		out = styleOf(*cfg)
		return nil
	})
	return out, err
}

func validateStyle(cfg *models.Configuration) error {
	if err := settings.ValidateStyleMode(cfg.StyleMode); err != nil {
		return fmt.Errorf("styleMode: %w", err)
	}
	if err := settings.ValidateTypography(&cfg.GlobalTypography); err != nil {
		return fmt.Errorf("globalTypography: %w", err)
	}
	if err := settings.ValidateSpacing(&cfg.GlobalSpacing); err != nil {
		return fmt.Errorf("globalSpacing: %w", err)
	}
	if err := settings.ValidateNamedStyle(&cfg.CustomLight); err != nil {
		return fmt.Errorf("customLight: %w", err)
	}
	if err := settings.ValidateNamedStyle(&cfg.CustomDark); err != nil {
		return fmt.Errorf("customDark: %w", err)
	}
	return nil
}
