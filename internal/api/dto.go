package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/globalmenu/internal/models"
	"github.com/starford/globalmenu/internal/refresh"
	"github.com/starford/globalmenu/internal/registry"
	"github.com/starford/globalmenu/internal/settings"
)

// DocumentRequest names one document of the host workspace.
type DocumentRequest struct {
	Path string `json:"path" example:"projects/plan.md"`
}

// Validate validates the request.
func (r DocumentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Path, validation.Required),
	)
}

// RenameRequest reports a document moved by the host.
type RenameRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Validate validates the request.
func (r RenameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.From, validation.Required),
		validation.Field(&r.To, validation.Required),
	)
}

// MoveRequest moves a rule or an item one step.
type MoveRequest struct {
	Direction registry.Direction `json:"direction" example:"up"`
}

// Validate validates the request.
func (r MoveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Direction, validation.Required, validation.In(registry.Up, registry.Down)),
	)
}

// BaseRuleRequest enables, disables or retargets the base rule. An empty
// menu id keeps the current target.
type BaseRuleRequest struct {
	Enabled *bool  `json:"enabled"`
	MenuID  string `json:"menuId,omitempty"`
}

// Validate validates the request.
func (r BaseRuleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Enabled, validation.NotNil),
	)
}

// StyleSectionRequest names a style section to reset.
type StyleSectionRequest struct {
	Section settings.Section `json:"section" example:"customDark.colors"`
}

// Validate validates the request.
func (r StyleSectionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Section, validation.Required),
	)
}

// ThemeRequest reports the host dark-mode flag.
type ThemeRequest struct {
	Dark *bool `json:"dark"`
}

// Validate validates the request.
func (r ThemeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Dark, validation.NotNil),
	)
}

var triggers = []interface{}{
	refresh.TriggerDocumentSwitch,
	refresh.TriggerLayoutChange,
	refresh.TriggerModify,
	refresh.TriggerTheme,
	refresh.TriggerResize,
	refresh.TriggerActivation,
	refresh.TriggerSettings,
}

// RefreshRequest asks for a debounced refresh. Without a trigger the
// refresh runs immediately and the response carries the presentations.
type RefreshRequest struct {
	Trigger refresh.Trigger `json:"trigger,omitempty" example:"resize"`
}

// Validate validates the request.
func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Trigger, validation.In(triggers...)),
	)
}

// ActivateRequest activates one rendered item of a document's menu.
type ActivateRequest struct {
	Path      string `json:"path"`
	Index     *int   `json:"index"`
	Auxiliary bool   `json:"auxiliary,omitempty"`
}

// Validate validates the request.
func (r ActivateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Path, validation.Required),
		validation.Field(&r.Index, validation.NotNil, validation.Min(0)),
	)
}

// WorkspaceResponse describes the tracked host workspace.
type WorkspaceResponse struct {
	Documents []string `json:"documents"`
	Active    string   `json:"active,omitempty"`
	Targets   []string `json:"targets"`
	Dark      bool     `json:"dark"`
}

// RefreshResponse lists the presentations of an immediate refresh.
type RefreshResponse struct {
	Presentations []models.Presentation `json:"presentations"`
}
