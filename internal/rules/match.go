// Package rules selects the rule, and through it the menu, that applies to
// a document.
package rules

import (
	"sort"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/starford/globalmenu/internal/models"
)

// regexTimeout bounds a single REGEX rule evaluation. A timed-out match
// counts as a non-match.
const regexTimeout = 100 * time.Millisecond

// typePriority orders rule types from most to least specific.
var typePriority = map[models.RuleType]int{
	models.RuleNote:   0,
	models.RuleTag:    1,
	models.RuleFolder: 2,
	models.RuleRegex:  3,
	models.RuleAll:    4,
}

func priority(t models.RuleType) int {
	if p, ok := typePriority[t]; ok {
		return p
	}
	return len(typePriority)
}

// Sort returns the non-base rules in evaluation order: by type priority,
// then explicit values before empty or wildcard ones, then stored order.
// The input is not modified.
func Sort(rules []models.Rule) []models.Rule {
	out := make([]models.Rule, 0, len(rules))
	for _, r := range rules {
		if r.ID != models.BaseRuleID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := priority(out[i].Type), priority(out[j].Type)
		if pi != pj {
			return pi < pj
		}
		return out[i].Specific() && !out[j].Specific()
	})
	return out
}

// Matches evaluates the predicate of r against dc. The enabled flag is not
// consulted.
func Matches(r models.Rule, dc models.DocumentContext) bool {
	switch r.Type {
	case models.RuleAll:
		return true
	case models.RuleTag:
		return dc.HasTag(r.Value)
	case models.RuleFolder:
		if r.Value == "" {
			return dc.FolderPath != models.RootFolder
		}
		return strings.HasPrefix(dc.FolderPath, r.Value)
	case models.RuleNote:
		return dc.Basename == r.Value
	case models.RuleRegex:
		return matchRegex(r.Value, dc.Path)
	default:
		return false
	}
}

// matchRegex reports whether pattern matches path. Patterns use ECMAScript
// syntax; invalid patterns and timeouts never match.
func matchRegex(pattern, path string) bool {
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return false
	}
	re.MatchTimeout = regexTimeout
	ok, err := re.MatchString(path)
	return err == nil && ok
}

// ValidPattern reports whether pattern compiles as a REGEX rule value.
func ValidPattern(pattern string) bool {
	_, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	return err == nil
}

// Select returns the rule that decides the menu for dc.
//
// Enabled non-base rules are tried in Sort order; the first whose predicate
// matches and whose target menu is displayable wins. The base rule is tried
// last regardless of where it is stored. When nothing qualifies Select
// reports false and no menu is shown.
func Select(rules []models.Rule, menus []models.Menu, dc models.DocumentContext) (models.Rule, bool) {
	for _, r := range Sort(rules) {
		if !r.Enabled || !Matches(r, dc) {
			continue
		}
		if Target(menus, r).Displayable() {
			return r, true
		}
	}

	for _, r := range rules {
		if r.ID != models.BaseRuleID {
			continue
		}
		if r.Enabled && Target(menus, r).Displayable() {
			return r, true
		}
		break
	}
	return models.Rule{}, false
}

// Target resolves the menu a rule points to, or nil when it does not exist.
func Target(menus []models.Menu, r models.Rule) *models.Menu {
	for i := range menus {
		if menus[i].ID == r.MenuID {
			return &menus[i]
		}
	}
	return nil
}
