package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/globalmenu/internal/models"
)

func menu(id string, items int) models.Menu {
	m := models.Menu{ID: id, Name: id, Enabled: true}
	for i := 0; i < items; i++ {
		m.Items = append(m.Items, models.MenuItem{Name: "item", Enabled: true, Type: models.ItemNote, Value: "x"})
	}
	return m
}

func base(enabled bool, menuID string) models.Rule {
	return models.Rule{ID: models.BaseRuleID, Enabled: enabled, Type: models.RuleAll, Value: models.Wildcard, MenuID: menuID}
}

func rule(id string, t models.RuleType, value, menuID string) models.Rule {
	return models.Rule{ID: id, Enabled: true, Type: t, Value: value, MenuID: menuID}
}

func TestSelect_TypePriority(t *testing.T) {
	menus := []models.Menu{menu("A", 1), menu("B", 1), menu("C", 1)}
	rs := []models.Rule{
		rule("folder", models.RuleFolder, "", "B"),
		rule("all", models.RuleAll, models.Wildcard, "A"),
		rule("note", models.RuleNote, "X", "C"),
	}
	dc := models.DocumentContext{Path: "X.md", Basename: "X", FolderPath: models.RootFolder}

	got, ok := Select(rs, menus, dc)
	require.True(t, ok)
	assert.Equal(t, "note", got.ID)
	assert.Equal(t, "C", got.MenuID)
}

func TestSelect_FallsBackToBase(t *testing.T) {
	menus := []models.Menu{menu("main", 2), menu("M1", 1)}
	rs := []models.Rule{
		base(true, "main"),
		rule("tag", models.RuleTag, "project", "M1"),
	}
	dc := models.DocumentContext{Path: "a.md", Basename: "a", FolderPath: models.RootFolder}

	got, ok := Select(rs, menus, dc)
	require.True(t, ok)
	assert.Equal(t, models.BaseRuleID, got.ID)
}

func TestSelect_SkipsEmptyMenu(t *testing.T) {
	menus := []models.Menu{menu("main", 1), menu("empty", 0), menu("second", 1)}
	dc := models.DocumentContext{Path: "Inbox/a.md", Basename: "a", Tags: []string{"x"}, FolderPath: "Inbox/"}

	rs := []models.Rule{
		rule("note", models.RuleNote, "a", "empty"),
		rule("tag", models.RuleTag, "x", "second"),
		base(true, "main"),
	}
	got, ok := Select(rs, menus, dc)
	require.True(t, ok)
	assert.Equal(t, "tag", got.ID)

	rs = []models.Rule{rule("note", models.RuleNote, "a", "empty"), base(true, "main")}
	got, ok = Select(rs, menus, dc)
	require.True(t, ok)
	assert.Equal(t, models.BaseRuleID, got.ID)
}

func TestSelect_TagScenario(t *testing.T) {
	menus := []models.Menu{menu("main", 1), menu("M1", 1)}
	rs := []models.Rule{rule("tag", models.RuleTag, "project", "M1"), base(false, "main")}

	got, ok := Select(rs, menus, models.DocumentContext{Path: "p.md", Basename: "p", Tags: []string{"project"}, FolderPath: "/"})
	require.True(t, ok)
	assert.Equal(t, "tag", got.ID)

	_, ok = Select(rs, menus, models.DocumentContext{Path: "p.md", Basename: "p", FolderPath: "/"})
	assert.False(t, ok)
}

func TestSelect_BaseEvaluatedLastWhereverStored(t *testing.T) {
	menus := []models.Menu{menu("main", 1), menu("M1", 1)}
	rs := []models.Rule{base(true, "main"), rule("all", models.RuleAll, models.Wildcard, "M1")}

	got, ok := Select(rs, menus, models.DocumentContext{Path: "a.md", Basename: "a", FolderPath: "/"})
	require.True(t, ok)
	assert.Equal(t, "all", got.ID)
}

func TestSelect_DisabledAndDangling(t *testing.T) {
	disabledMenu := menu("off", 1)
	disabledMenu.Enabled = false
	menus := []models.Menu{menu("main", 1), disabledMenu}

	disabledRule := rule("disabled", models.RuleAll, models.Wildcard, "main")
	disabledRule.Enabled = false
	rs := []models.Rule{
		disabledRule,
		rule("dangling", models.RuleAll, models.Wildcard, "missing"),
		rule("off", models.RuleAll, models.Wildcard, "off"),
		base(true, "main"),
	}

	got, ok := Select(rs, menus, models.DocumentContext{Path: "a.md", Basename: "a", FolderPath: "/"})
	require.True(t, ok)
	assert.Equal(t, models.BaseRuleID, got.ID)
}

func TestSelect_BaseTargetNotDisplayable(t *testing.T) {
	menus := []models.Menu{menu("main", 0)}
	_, ok := Select([]models.Rule{base(true, "main")}, menus, models.DocumentContext{FolderPath: "/"})
	assert.False(t, ok)
}

func TestSelect_SpecificValueWinsWithinType(t *testing.T) {
	menus := []models.Menu{menu("main", 1), menu("any", 1), menu("notes", 1)}
	rs := []models.Rule{
		rule("any-folder", models.RuleFolder, "", "any"),
		rule("notes-folder", models.RuleFolder, "notes/", "notes"),
		base(true, "main"),
	}
	got, ok := Select(rs, menus, models.DocumentContext{Path: "notes/a.md", Basename: "a", FolderPath: "notes/"})
	require.True(t, ok)
	assert.Equal(t, "notes-folder", got.ID)
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		rule models.Rule
		dc   models.DocumentContext
		want bool
	}{
		{"all", rule("r", models.RuleAll, "*", "m"), models.DocumentContext{}, true},
		{"tag plain", rule("r", models.RuleTag, "work", "m"), models.DocumentContext{Tags: []string{"work"}}, true},
		{"tag hash on rule", rule("r", models.RuleTag, "#work", "m"), models.DocumentContext{Tags: []string{"work"}}, true},
		{"tag hash on context", rule("r", models.RuleTag, "work", "m"), models.DocumentContext{Tags: []string{"#work"}}, true},
		{"tag missing", rule("r", models.RuleTag, "work", "m"), models.DocumentContext{Tags: []string{"home"}}, false},
		{"folder empty non-root", rule("r", models.RuleFolder, "", "m"), models.DocumentContext{FolderPath: "notes/"}, true},
		{"folder empty root", rule("r", models.RuleFolder, "", "m"), models.DocumentContext{FolderPath: "/"}, false},
		{"folder prefix", rule("r", models.RuleFolder, "notes/", "m"), models.DocumentContext{FolderPath: "notes/daily/"}, true},
		{"folder other", rule("r", models.RuleFolder, "notes/", "m"), models.DocumentContext{FolderPath: "work/"}, false},
		{"note exact", rule("r", models.RuleNote, "Home", "m"), models.DocumentContext{Basename: "Home"}, true},
		{"note case", rule("r", models.RuleNote, "home", "m"), models.DocumentContext{Basename: "Home"}, false},
		{"regex match", rule("r", models.RuleRegex, `^daily/\d{4}`, "m"), models.DocumentContext{Path: "daily/2024-01-01.md"}, true},
		{"regex miss", rule("r", models.RuleRegex, `^daily/`, "m"), models.DocumentContext{Path: "notes/a.md"}, false},
		{"regex invalid", rule("r", models.RuleRegex, `([`, "m"), models.DocumentContext{Path: "([.md"}, false},
		{"unknown type", rule("r", models.RuleType("glob"), "*", "m"), models.DocumentContext{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.rule, tt.dc))
		})
	}
}

func TestSelect_InvalidRegexContinues(t *testing.T) {
	menus := []models.Menu{menu("main", 1), menu("R", 1), menu("T", 1)}
	rs := []models.Rule{
		rule("bad", models.RuleRegex, `(unclosed`, "R"),
		rule("tag", models.RuleTag, "t", "T"),
		base(true, "main"),
	}
	got, ok := Select(rs, menus, models.DocumentContext{Path: "(unclosed", FolderPath: "/"})
	require.True(t, ok)
	assert.Equal(t, models.BaseRuleID, got.ID)
}

func TestSort_StableAndExcludesBase(t *testing.T) {
	rs := []models.Rule{
		base(true, "main"),
		rule("all1", models.RuleAll, "*", "m"),
		rule("regex", models.RuleRegex, "x", "m"),
		rule("tag-empty", models.RuleTag, "", "m"),
		rule("tag1", models.RuleTag, "a", "m"),
		rule("tag2", models.RuleTag, "b", "m"),
		rule("note", models.RuleNote, "n", "m"),
	}
	var ids []string
	for _, r := range Sort(rs) {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"note", "tag1", "tag2", "tag-empty", "regex", "all1"}, ids)
	assert.Equal(t, models.BaseRuleID, rs[0].ID, "input must not be reordered")
}

func TestValidPattern(t *testing.T) {
	assert.True(t, ValidPattern(`^a(?=b)`))
	assert.False(t, ValidPattern(`a(`))
}
