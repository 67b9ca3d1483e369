package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/globalmenu/internal/apperr"
	"github.com/starford/globalmenu/internal/models"
)

func ruleIDs(cfg *models.Configuration) []string {
	out := make([]string, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		out = append(out, r.ID)
	}
	return out
}

func TestNewRuleAndAdd(t *testing.T) {
	reg, cfg := newRegistry()

	r := reg.NewRule(cfg)
	assert.Equal(t, models.Rule{ID: "id-1", Enabled: true, Type: models.RuleAll, Value: "*", MenuID: models.MainMenuID}, r)

	_, err := reg.AddRule(cfg, r)
	require.NoError(t, err)
	added, err := reg.AddRule(cfg, models.Rule{Enabled: true, Type: models.RuleTag, Value: "#work", MenuID: models.MainMenuID})
	require.NoError(t, err)
	assert.Equal(t, "work", added.Value)
	assert.Equal(t, []string{added.ID, "id-1", models.BaseRuleID}, ruleIDs(cfg))

	_, err = reg.AddRule(cfg, models.Rule{ID: models.BaseRuleID})
	assert.ErrorIs(t, err, apperr.ErrProtected)
	_, err = reg.AddRule(cfg, models.Rule{ID: "id-1", Type: models.RuleAll, MenuID: "m"})
	assert.ErrorIs(t, err, apperr.ErrAlreadyExists)
	_, err = reg.AddRule(cfg, models.Rule{Type: models.RuleType("glob"), MenuID: "m"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateRule(t *testing.T) {
	reg, cfg := newRegistry()
	r, err := reg.AddRule(cfg, models.Rule{Enabled: true, Type: models.RuleRegex, Value: "^daily/", MenuID: models.MainMenuID})
	require.NoError(t, err)

	r.Type = models.RuleTag
	got, err := reg.UpdateRule(cfg, r)
	require.NoError(t, err)
	assert.Equal(t, "", got.Value, "value does not carry over into a tag rule")

	got.Value = "notes"
	got.Type = models.RuleFolder
	got, err = reg.UpdateRule(cfg, got)
	require.NoError(t, err)
	assert.Equal(t, "notes/", got.Value)
	assert.Equal(t, got, *cfg.FindRule(r.ID))

	_, err = reg.UpdateRule(cfg, models.Rule{ID: "missing"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateRule_BaseFixedFields(t *testing.T) {
	reg, cfg := newRegistry()

	got, err := reg.UpdateRule(cfg, models.Rule{ID: models.BaseRuleID, Enabled: false, Type: models.RuleTag, Value: "x"})
	require.NoError(t, err)
	assert.False(t, got.Enabled)
	assert.Equal(t, models.RuleAll, got.Type)
	assert.Equal(t, models.Wildcard, got.Value)
	assert.Equal(t, models.MainMenuID, got.MenuID)
}

func TestRemoveRule(t *testing.T) {
	reg, cfg := newRegistry()
	r, err := reg.AddRule(cfg, reg.NewRule(cfg))
	require.NoError(t, err)

	require.NoError(t, reg.RemoveRule(cfg, r.ID))
	assert.Equal(t, []string{models.BaseRuleID}, ruleIDs(cfg))
	assert.ErrorIs(t, reg.RemoveRule(cfg, r.ID), apperr.ErrNotFound)
	assert.ErrorIs(t, reg.RemoveRule(cfg, models.BaseRuleID), apperr.ErrProtected)
}

func TestMoveRule(t *testing.T) {
	reg, cfg := newRegistry()
	cfg.Rules = []models.Rule{
		{ID: "a", Type: models.RuleAll, Value: "*", MenuID: models.MainMenuID},
		{ID: models.BaseRuleID, Type: models.RuleAll, Value: "*", MenuID: models.MainMenuID},
		{ID: "b", Type: models.RuleAll, Value: "*", MenuID: models.MainMenuID},
	}

	require.NoError(t, reg.MoveRule(cfg, "b", Up))
	assert.Equal(t, []string{"b", models.BaseRuleID, "a"}, ruleIDs(cfg))

	require.NoError(t, reg.MoveRule(cfg, "b", Up))
	assert.Equal(t, []string{"b", models.BaseRuleID, "a"}, ruleIDs(cfg))

	require.NoError(t, reg.MoveRule(cfg, "a", Down))
	assert.Equal(t, []string{"b", models.BaseRuleID, "a"}, ruleIDs(cfg))

	assert.ErrorIs(t, reg.MoveRule(cfg, models.BaseRuleID, Up), apperr.ErrProtected)
	assert.ErrorIs(t, reg.MoveRule(cfg, "missing", Up), apperr.ErrNotFound)
}

func TestSetBaseRule(t *testing.T) {
	reg, cfg := newRegistry()

	require.NoError(t, reg.SetBaseRule(cfg, false, ""))
	assert.False(t, cfg.FindRule(models.BaseRuleID).Enabled)
	assert.Equal(t, models.MainMenuID, cfg.FindRule(models.BaseRuleID).MenuID)

	assert.ErrorIs(t, reg.SetBaseRule(cfg, true, "missing"), apperr.ErrNotFound)
}
