package models

// RootFolder is the folder path of documents at the vault root.
const RootFolder = "/"

// DocumentContext describes the displayed document for one resolution.
// FolderPath is RootFolder for root documents and "parent/path/" otherwise.
type DocumentContext struct {
	Path       string   `json:"path"`
	Basename   string   `json:"basename"`
	Tags       []string `json:"tags"`
	FolderPath string   `json:"folderPath"`
}

// HasTag reports whether the context carries tag. Leading '#' is ignored on
// both sides.
func (d DocumentContext) HasTag(tag string) bool {
	tag = trimHash(tag)
	for _, t := range d.Tags {
		if trimHash(t) == tag {
			return true
		}
	}
	return false
}

func trimHash(s string) string {
	if len(s) > 0 && s[0] == '#' {
		return s[1:]
	}
	return s
}

// ActionKind is what the host performs when an item is activated.
type ActionKind string

// Activation kinds.
const (
	ActionOpenDocument   ActionKind = "open-document"
	ActionExecuteCommand ActionKind = "execute-command"
)

// Activation is the host instruction for activating an item.
type Activation struct {
	Kind   ActionKind `json:"kind"`
	Target string     `json:"target"`
	NewTab bool       `json:"newTab,omitempty"`
}

// RenderedItem is an enabled item together with its activations.
type RenderedItem struct {
	Name      string      `json:"name"`
	Primary   Activation  `json:"primary"`
	Auxiliary *Activation `json:"auxiliary,omitempty"`
}

// Presentation is the instruction consumed by the rendering layer.
// Menu is nil when nothing should be displayed.
type Presentation struct {
	Document  string            `json:"document"`
	Menu      *Menu             `json:"menu"`
	RuleID    string            `json:"ruleId,omitempty"`
	Title     string            `json:"title,omitempty"`
	Items     []RenderedItem    `json:"items,omitempty"`
	Position  MenuPosition      `json:"position"`
	Style     ResolvedStyle     `json:"style"`
	ClassName string            `json:"className"`
	Variables map[string]string `json:"variables,omitempty"`
}
