package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/globalmenu/internal/apperr"
	"github.com/starford/globalmenu/internal/models"
	"github.com/starford/globalmenu/internal/settings"
)

func newRegistry() (*Registry, *models.Configuration) {
	cfg := settings.Defaults()
	return New(NewCounter("id")), &cfg
}

func item(name string) models.MenuItem {
	return models.MenuItem{Name: name, Enabled: true, Type: models.ItemNote, Value: name}
}

func TestCounter(t *testing.T) {
	c := NewCounter("m")
	assert.Equal(t, "m-1", c.NewID())
	assert.Equal(t, "m-2", c.NewID())
}

func TestUUIDGenerator(t *testing.T) {
	a, b := UUIDGenerator{}.NewID(), UUIDGenerator{}.NewID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestNewMenuAndCreate(t *testing.T) {
	reg, cfg := newRegistry()

	draft := reg.NewMenu(cfg)
	assert.Equal(t, "id-1", draft.ID)
	assert.Equal(t, "New Menu 2", draft.Name)
	assert.Equal(t, "New Menu Title", draft.Title)
	assert.True(t, draft.Enabled)
	assert.True(t, draft.ShowTitle)

	_, err := reg.CreateMenu(cfg, draft)
	require.ErrorIs(t, err, apperr.ErrValidation)
	assert.Len(t, cfg.Menus, 1, "menu without items must not be stored")

	AddItem(&draft)
	created, err := reg.CreateMenu(cfg, draft)
	require.NoError(t, err)
	require.Len(t, cfg.Menus, 2)
	assert.Equal(t, "id-1", created.ID)

	_, err = reg.CreateMenu(cfg, draft)
	assert.ErrorIs(t, err, apperr.ErrAlreadyExists)
}

func TestCloneMenu_DeepCopy(t *testing.T) {
	reg, cfg := newRegistry()

	clone, err := reg.CloneMenu(cfg, models.MainMenuID)
	require.NoError(t, err)
	assert.Equal(t, "id-1", clone.ID)
	assert.Equal(t, "Main Menu (Cloned)", clone.Name)

	stored := cfg.FindMenu(clone.ID)
	require.NotNil(t, stored)
	stored.Items[0].Name = "changed"
	assert.Equal(t, "Dashboard", cfg.FindMenu(models.MainMenuID).Items[0].Name)

	_, err = reg.CloneMenu(cfg, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRemoveMenu(t *testing.T) {
	reg, cfg := newRegistry()

	other, err := reg.CreateMenu(cfg, models.Menu{Name: "Work", Enabled: true, Items: []models.MenuItem{item("a")}})
	require.NoError(t, err)
	rule, err := reg.AddRule(cfg, models.Rule{Enabled: true, Type: models.RuleTag, Value: "work", MenuID: other.ID})
	require.NoError(t, err)
	require.NoError(t, reg.SetBaseRule(cfg, true, other.ID))

	require.NoError(t, reg.RemoveMenu(cfg, other.ID))
	assert.Nil(t, cfg.FindMenu(other.ID))
	assert.Equal(t, models.MainMenuID, cfg.FindRule(rule.ID).MenuID)
	assert.Equal(t, models.MainMenuID, cfg.FindRule(models.BaseRuleID).MenuID)

	assert.ErrorIs(t, reg.RemoveMenu(cfg, models.MainMenuID), apperr.ErrProtected)
	assert.ErrorIs(t, reg.RemoveMenu(cfg, "missing"), apperr.ErrNotFound)
	assert.NotNil(t, cfg.FindMenu(models.MainMenuID))
}

func TestReplaceMenu(t *testing.T) {
	reg, cfg := newRegistry()

	edit, err := Menu(cfg, models.MainMenuID)
	require.NoError(t, err)
	edit.Name = "Renamed"
	edit.Title = "NAV"
	AddItem(&edit)

	assert.Equal(t, 1, len(cfg.FindMenu(models.MainMenuID).Items), "edits stay on the copy until committed")

	require.NoError(t, reg.ReplaceMenu(cfg, edit))
	main := cfg.FindMenu(models.MainMenuID)
	assert.Equal(t, "Main Menu", main.Name)
	assert.Equal(t, "NAV", main.Title)
	assert.Len(t, main.Items, 2)

	edit.Items = nil
	assert.ErrorIs(t, reg.ReplaceMenu(cfg, edit), apperr.ErrValidation)
	assert.Len(t, cfg.FindMenu(models.MainMenuID).Items, 2)

	assert.ErrorIs(t, reg.ReplaceMenu(cfg, models.Menu{ID: "missing"}), apperr.ErrNotFound)
}

func TestItemEditing(t *testing.T) {
	m := models.Menu{ID: "m", Items: []models.MenuItem{item("a"), item("b"), item("c")}}

	require.NoError(t, MoveItem(&m, 0, Up))
	require.NoError(t, MoveItem(&m, 0, Down))
	assert.Equal(t, []string{"b", "a", "c"}, names(m))

	require.NoError(t, RemoveItem(&m, 2))
	assert.Equal(t, []string{"b", "a"}, names(m))

	cmd := models.MenuItem{Name: "cmd", Enabled: true, Type: models.ItemCommand, Value: "app:reload", NewTab: true}
	require.NoError(t, UpdateItem(&m, 1, cmd))
	assert.False(t, m.Items[1].NewTab)

	added := AddItem(&m)
	assert.Equal(t, "New Item", added.Name)
	assert.Equal(t, models.ItemNote, added.Type)

	assert.ErrorIs(t, RemoveItem(&m, 9), apperr.ErrNotFound)
	assert.ErrorIs(t, MoveItem(&m, 0, Direction("left")), apperr.ErrValidation)
}

func names(m models.Menu) []string {
	out := make([]string, 0, len(m.Items))
	for _, it := range m.Items {
		out = append(out, it.Name)
	}
	return out
}

func TestResolveTarget(t *testing.T) {
	_, cfg := newRegistry()

	m, ok := ResolveTarget(cfg.Menus, models.Rule{MenuID: models.MainMenuID})
	require.True(t, ok)
	m.Items[0].Name = "x"
	assert.Equal(t, "Dashboard", cfg.Menus[0].Items[0].Name)

	_, ok = ResolveTarget(cfg.Menus, models.Rule{MenuID: "missing"})
	assert.False(t, ok)
}
