package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/globalmenu/internal/menuservice"
	"github.com/starford/globalmenu/internal/models"
)

// ListRules handles GET /api/rules. With ?order=evaluation the rules are
// returned in the order they are tried, base rule last.
func (h *Handler) ListRules(w http.ResponseWriter, r *http.Request) {
	list := h.svc.Rules()
	if r.URL.Query().Get("order") == "evaluation" {
		list = h.svc.EvaluationOrder()
	}
	writeJSON(w, http.StatusOK, map[string]any{"rules": list})
}

// CreateRule handles POST /api/rules. Without a body the default catch-all
// rule for the first menu is added.
//
//	@Summary		Add a rule at the highest priority
//	@Tags			rules
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	models.Rule
//	@Failure		403	{object}	errResponse
//	@Failure		422	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/rules [post]
func (h *Handler) CreateRule(w http.ResponseWriter, r *http.Request) {
	var rule models.Rule
	given, err := decodeJSON(w, r, &rule)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	var in *models.Rule
	if given {
		in = &rule
	}
	out, err := h.svc.AddRule(r.Context(), in)
	if err != nil {
		writeError(w, "create rule", err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// UpdateRule handles PUT /api/rules/{id}.
func (h *Handler) UpdateRule(w http.ResponseWriter, r *http.Request) {
	var rule models.Rule
	if !decodeRequired(w, r, &rule) {
		return
	}
	rule.ID = chi.URLParam(r, "id")
	out, err := h.svc.UpdateRule(r.Context(), rule)
	if err != nil {
		writeError(w, "update rule", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// DeleteRule handles DELETE /api/rules/{id}.
func (h *Handler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveRule(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, "delete rule", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveRule handles POST /api/rules/{id}/move.
func (h *Handler) MoveRule(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if !decodeRequired(w, r, &req) {
		return
	}
	if err := h.svc.MoveRule(r.Context(), chi.URLParam(r, "id"), req.Direction); err != nil {
		writeError(w, "move rule", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rules": h.svc.Rules()})
}

// SetBaseRule handles PUT /api/rules/base.
func (h *Handler) SetBaseRule(w http.ResponseWriter, r *http.Request) {
	var req BaseRuleRequest
	if !decodeRequired(w, r, &req) {
		return
	}
	out, err := h.svc.SetBaseRule(r.Context(), *req.Enabled, req.MenuID)
	if err != nil {
		writeError(w, "set base rule", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GetStyle handles GET /api/style.
func (h *Handler) GetStyle(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Style())
}

// GetResolvedStyle handles GET /api/style/resolved?dark=.
func (h *Handler) GetResolvedStyle(w http.ResponseWriter, r *http.Request) {
	dark, ok := h.darkParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.ResolvedStyle(dark))
}

// PutStyle handles PUT /api/style.
func (h *Handler) PutStyle(w http.ResponseWriter, r *http.Request) {
	var st menuservice.StyleSettings
	if !decodeRequired(w, r, &st) {
		return
	}
	out, err := h.svc.SetStyle(r.Context(), st)
	if err != nil {
		writeError(w, "put style", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ResetStyleSection handles POST /api/style/reset.
func (h *Handler) ResetStyleSection(w http.ResponseWriter, r *http.Request) {
	var req StyleSectionRequest
	if !decodeRequired(w, r, &req) {
		return
	}
	out, err := h.svc.ResetStyleSection(r.Context(), req.Section)
	if err != nil {
		writeError(w, "reset style section", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// darkParam reads the optional dark query parameter, falling back to the
// host flag the service tracks.
func (h *Handler) darkParam(w http.ResponseWriter, r *http.Request) (bool, bool) {
	raw := r.URL.Query().Get("dark")
	if raw == "" {
		return h.svc.Dark(), true
	}
	dark, err := strconv.ParseBool(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("dark must be a boolean"))
		return false, false
	}
	return dark, true
}
