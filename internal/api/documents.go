package api

import (
	"net/http"

	"github.com/starford/globalmenu/internal/watcher"
)

// Resolve handles GET /api/resolve?path=&dark=.
//
//	@Summary		Resolve the menu presentation for a document
//	@Tags			documents
//	@Produce		json
//	@Param			path	query		string	true	"Document path"
//	@Param			dark	query		bool	false	"Host dark mode"
//	@Success		200		{object}	models.Presentation
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/resolve [get]
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'path' is required"))
		return
	}
	dark, ok := h.darkParam(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Resolve(r.Context(), path, dark)
	if err != nil {
		writeError(w, "resolve", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Workspace handles GET /api/workspace.
func (h *Handler) Workspace(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.workspace())
}

func (h *Handler) workspace() WorkspaceResponse {
	active, _ := h.svc.ActiveDocument()
	return WorkspaceResponse{
		Documents: h.svc.OpenDocuments(),
		Active:    active,
		Targets:   h.svc.RenderTargets(),
		Dark:      h.svc.Dark(),
	}
}

// OpenDocument handles POST /api/workspace/open.
func (h *Handler) OpenDocument(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if !decodeRequired(w, r, &req) {
		return
	}
	h.svc.OpenDocument(req.Path)
	writeJSON(w, http.StatusOK, h.workspace())
}

// CloseDocument handles POST /api/workspace/close.
func (h *Handler) CloseDocument(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if !decodeRequired(w, r, &req) {
		return
	}
	h.svc.CloseDocument(req.Path)
	writeJSON(w, http.StatusOK, h.workspace())
}

// ActivateDocument handles POST /api/workspace/active.
func (h *Handler) ActivateDocument(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if !decodeRequired(w, r, &req) {
		return
	}
	h.svc.ActivateDocument(req.Path)
	writeJSON(w, http.StatusOK, h.workspace())
}

// RenameDocument handles POST /api/workspace/rename.
func (h *Handler) RenameDocument(w http.ResponseWriter, r *http.Request) {
	var req RenameRequest
	if !decodeRequired(w, r, &req) {
		return
	}
	h.svc.RenameDocument(req.From, req.To)
	writeJSON(w, http.StatusOK, h.workspace())
}

// ModifyDocument handles POST /api/workspace/modify. Hosts without a vault
// watcher report content changes here.
func (h *Handler) ModifyDocument(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if !decodeRequired(w, r, &req) {
		return
	}
	h.svc.HandleChange(watcher.Event{Kind: watcher.Modified, Path: req.Path})
	w.WriteHeader(http.StatusAccepted)
}

// SetTheme handles POST /api/theme.
func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if !decodeRequired(w, r, &req) {
		return
	}
	h.svc.SetDark(*req.Dark)
	writeJSON(w, http.StatusOK, h.workspace())
}

// Refresh handles POST /api/refresh.
//
//	@Summary		Re-render the menus of the target documents
//	@Tags			documents
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	RefreshResponse	"Immediate refresh"
//	@Success		202	"Debounced refresh scheduled"
//	@Security		BearerAuth
//	@Router			/refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if _, err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
		return
	}
	if req.Trigger != "" {
		h.svc.RequestRefresh(req.Trigger)
		w.WriteHeader(http.StatusAccepted)
		return
	}
	writeJSON(w, http.StatusOK, RefreshResponse{Presentations: h.svc.Refresh()})
}

// Activate handles POST /api/activate.
func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	var req ActivateRequest
	if !decodeRequired(w, r, &req) {
		return
	}
	act, err := h.svc.Activate(r.Context(), req.Path, *req.Index, req.Auxiliary)
	if err != nil {
		writeError(w, "activate", err)
		return
	}
	writeJSON(w, http.StatusOK, act)
}
