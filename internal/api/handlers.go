package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/globalmenu/internal/menuservice"
	"github.com/starford/globalmenu/internal/models"
	"github.com/starford/globalmenu/internal/registry"
)

// Handler holds API route handlers.
type Handler struct {
	svc *menuservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *menuservice.Service) *Handler {
	return &Handler{svc: svc}
}

// GetSettings handles GET /api/settings.
//
//	@Summary		Get the current configuration
//	@Tags			settings
//	@Produce		json
//	@Success		200	{object}	models.Configuration
//	@Header			200	{string}	ETag	"Configuration version"
//	@Security		BearerAuth
//	@Router			/settings [get]
func (h *Handler) GetSettings(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("ETag", h.svc.ETag())
	writeJSON(w, http.StatusOK, h.svc.Config())
}

// GetDefaults handles GET /api/settings/defaults.
func (h *Handler) GetDefaults(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Defaults())
}

// PatchSettings handles PATCH /api/settings.
//
//	@Summary		Merge a partial configuration
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			If-Match	header	string	false	"ETag from a previous read"
//	@Success		200	{object}	models.Configuration
//	@Failure		409	{object}	errResponse
//	@Failure		422	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/settings [patch]
func (h *Handler) PatchSettings(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if len(body) == 0 {
		writeJSON(w, http.StatusBadRequest, errorBody("request body is required"))
		return
	}
	cfg, err := h.svc.Patch(r.Context(), body, r.Header.Get("If-Match"))
	if err != nil {
		writeError(w, "patch settings", err)
		return
	}
	w.Header().Set("ETag", h.svc.ETag())
	writeJSON(w, http.StatusOK, cfg)
}

// ResetSettings handles POST /api/settings/reset.
func (h *Handler) ResetSettings(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.Reset(r.Context())
	if err != nil {
		writeError(w, "reset settings", err)
		return
	}
	w.Header().Set("ETag", h.svc.ETag())
	writeJSON(w, http.StatusOK, cfg)
}

// ListMenus handles GET /api/menus.
func (h *Handler) ListMenus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"menus": h.svc.Menus()})
}

// NewMenu handles GET /api/menus/new and returns an uncommitted draft.
func (h *Handler) NewMenu(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.NewMenu())
}

// GetMenu handles GET /api/menus/{id}.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Menu(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "get menu", err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// CreateMenu handles POST /api/menus.
//
//	@Summary		Create a menu
//	@Tags			menus
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	models.Menu
//	@Failure		409	{object}	errResponse
//	@Failure		422	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/menus [post]
func (h *Handler) CreateMenu(w http.ResponseWriter, r *http.Request) {
	var m models.Menu
	if !decodeRequired(w, r, &m) {
		return
	}
	out, err := h.svc.CreateMenu(r.Context(), m)
	if err != nil {
		writeError(w, "create menu", err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// ReplaceMenu handles PUT /api/menus/{id}.
func (h *Handler) ReplaceMenu(w http.ResponseWriter, r *http.Request) {
	var m models.Menu
	if !decodeRequired(w, r, &m) {
		return
	}
	m.ID = chi.URLParam(r, "id")
	out, err := h.svc.ReplaceMenu(r.Context(), m)
	if err != nil {
		writeError(w, "replace menu", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// DeleteMenu handles DELETE /api/menus/{id}.
func (h *Handler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveMenu(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, "delete menu", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CloneMenu handles POST /api/menus/{id}/clone.
func (h *Handler) CloneMenu(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.CloneMenu(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "clone menu", err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func itemIndex(r *http.Request) (int, bool) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	return i, err == nil
}

// AddItem handles POST /api/menus/{id}/items. The optional body overrides
// the new item's fields.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var it models.MenuItem
	given, err := decodeJSON(w, r, &it)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	out, err := h.svc.EditMenu(r.Context(), chi.URLParam(r, "id"), func(m *models.Menu) error {
		registry.AddItem(m)
		if given {
			return registry.UpdateItem(m, len(m.Items)-1, it)
		}
		return nil
	})
	if err != nil {
		writeError(w, "add item", err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// UpdateItem handles PUT /api/menus/{id}/items/{index}.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	i, ok := itemIndex(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid item index"))
		return
	}
	var it models.MenuItem
	if !decodeRequired(w, r, &it) {
		return
	}
	out, err := h.svc.EditMenu(r.Context(), chi.URLParam(r, "id"), func(m *models.Menu) error {
		return registry.UpdateItem(m, i, it)
	})
	if err != nil {
		writeError(w, "update item", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// DeleteItem handles DELETE /api/menus/{id}/items/{index}.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	i, ok := itemIndex(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid item index"))
		return
	}
	out, err := h.svc.EditMenu(r.Context(), chi.URLParam(r, "id"), func(m *models.Menu) error {
		return registry.RemoveItem(m, i)
	})
	if err != nil {
		writeError(w, "delete item", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// MoveItem handles POST /api/menus/{id}/items/{index}/move.
func (h *Handler) MoveItem(w http.ResponseWriter, r *http.Request) {
	i, ok := itemIndex(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid item index"))
		return
	}
	var req MoveRequest
	if !decodeRequired(w, r, &req) {
		return
	}
	out, err := h.svc.EditMenu(r.Context(), chi.URLParam(r, "id"), func(m *models.Menu) error {
		return registry.MoveItem(m, i, req.Direction)
	})
	if err != nil {
		writeError(w, "move item", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
