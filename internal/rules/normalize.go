package rules

import (
	"strings"

	"github.com/starford/globalmenu/internal/models"
)

// Normalize canonicalizes the value of a rule for its type: TAG values lose
// a leading '#', non-empty FOLDER values end with '/', ALL values are the
// wildcard.
func Normalize(r models.Rule) models.Rule {
	r.Value = strings.TrimSpace(r.Value)
	switch r.Type {
	case models.RuleTag:
		r.Value = strings.TrimPrefix(r.Value, "#")
	case models.RuleFolder:
		if r.Value != "" && !strings.HasSuffix(r.Value, "/") {
			r.Value += "/"
		}
	case models.RuleAll:
		r.Value = models.Wildcard
	}
	return r
}

// ChangeType retypes a rule. Values of TAG, FOLDER and NOTE rules do not
// carry over, so the value is cleared unless the new type is ALL or REGEX.
func ChangeType(r models.Rule, t models.RuleType) models.Rule {
	if r.Type == t {
		return r
	}
	r.Type = t
	if t != models.RuleAll && t != models.RuleRegex {
		r.Value = ""
	}
	return Normalize(r)
}
