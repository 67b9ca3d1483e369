package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/starford/globalmenu/internal/apperr"
	"github.com/starford/globalmenu/internal/models"
)

func TestValidateMenu(t *testing.T) {
	m := DefaultMainMenu()
	assert.NoError(t, ValidateMenu(&m))

	empty := m.Clone()
	empty.Items = nil
	assert.ErrorIs(t, ValidateMenu(&empty), apperr.ErrValidation)

	badItem := m.Clone()
	badItem.Items[0].Type = "link"
	assert.ErrorIs(t, ValidateMenu(&badItem), apperr.ErrValidation)

	noName := m.Clone()
	noName.Name = ""
	assert.ErrorIs(t, ValidateMenu(&noName), apperr.ErrValidation)
}

func TestValidateRule(t *testing.T) {
	r := DefaultBaseRule()
	assert.NoError(t, ValidateRule(&r))

	tag := models.Rule{ID: "r", Type: models.RuleTag, Value: "x", MenuID: "m"}
	assert.NoError(t, ValidateRule(&tag))

	all := models.Rule{ID: "r", Type: models.RuleAll, Value: "x", MenuID: "m"}
	assert.ErrorIs(t, ValidateRule(&all), apperr.ErrValidation)

	noMenu := models.Rule{ID: "r", Type: models.RuleTag, Value: "x"}
	assert.ErrorIs(t, ValidateRule(&noMenu), apperr.ErrValidation)
}

func TestValidateConfig(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, ValidateConfig(&cfg))

	pos := Defaults()
	pos.MenuPosition = "left"
	assert.ErrorIs(t, ValidateConfig(&pos), apperr.ErrValidation)

	mode := Defaults()
	mode.StyleMode = "neon"
	assert.ErrorIs(t, ValidateConfig(&mode), apperr.ErrValidation)

	transform := Defaults()
	transform.GlobalTypography.TextTransform = "shout"
	assert.ErrorIs(t, ValidateConfig(&transform), apperr.ErrValidation)

	color := Defaults()
	color.CustomDark.Accent = "nope"
	assert.ErrorIs(t, ValidateConfig(&color), apperr.ErrValidation)
}

func TestResetSection(t *testing.T) {
	defaults := Defaults()
	cfg := Defaults()
	cfg.GlobalSpacing.ItemGap = "99px"
	cfg.CustomLight.Background = "#123456"
	cfg.CustomLight.Typography.FontSize = "3em"

	assert.NoError(t, ResetSection(&cfg, defaults, SectionLightColors))
	assert.Equal(t, defaults.CustomLight.ColorSet, cfg.CustomLight.ColorSet)
	assert.Equal(t, "3em", cfg.CustomLight.Typography.FontSize)
	assert.Equal(t, "99px", cfg.GlobalSpacing.ItemGap)

	assert.NoError(t, ResetSection(&cfg, defaults, SectionGlobalSpacing))
	assert.Equal(t, defaults.GlobalSpacing, cfg.GlobalSpacing)

	assert.ErrorIs(t, ResetSection(&cfg, defaults, "menus"), apperr.ErrValidation)
}

func TestValidateConfig_Spacing(t *testing.T) {
	spacing := Defaults()
	spacing.GlobalSpacing.ItemGap = "wide"
	assert.ErrorIs(t, ValidateConfig(&spacing), apperr.ErrValidation)

	nested := Defaults()
	nested.CustomLight.Spacing.MenuPadding = ""
	assert.ErrorIs(t, ValidateConfig(&nested), apperr.ErrValidation)
}

func TestValidateSpacing(t *testing.T) {
	sp := DefaultSpacing()
	assert.NoError(t, ValidateSpacing(&sp))

	sp.MenuPadding = "4px 8px 4px 8px"
	sp.ItemGap = "0"
	sp.ItemBorderRadius = "0.5em"
	assert.NoError(t, ValidateSpacing(&sp))

	sp.MenuPadding = "1px 2px 3px 4px 5px"
	assert.ErrorIs(t, ValidateSpacing(&sp), apperr.ErrValidation)
}

func TestHasKey(t *testing.T) {
	blob := []byte(`{"GlobalSpacing": {}, "styleMode": "dark"}`)
	assert.True(t, HasKey(blob, "globalSpacing"))
	assert.True(t, HasKey(blob, "styleMode"))
	assert.False(t, HasKey(blob, "menus"))
}
