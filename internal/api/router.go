package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/globalmenu/internal/menuservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// events, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *menuservice.Service, authEnabled bool, token string, events http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Settings.
	r.Get("/settings", h.GetSettings)
	r.Patch("/settings", h.PatchSettings)
	r.Get("/settings/defaults", h.GetDefaults)
	r.Post("/settings/reset", h.ResetSettings)

	// Menus and their items.
	r.Get("/menus", h.ListMenus)
	r.Post("/menus", h.CreateMenu)
	r.Get("/menus/new", h.NewMenu)
	r.Get("/menus/{id}", h.GetMenu)
	r.Put("/menus/{id}", h.ReplaceMenu)
	r.Delete("/menus/{id}", h.DeleteMenu)
	r.Post("/menus/{id}/clone", h.CloneMenu)
	r.Post("/menus/{id}/items", h.AddItem)
	r.Put("/menus/{id}/items/{index}", h.UpdateItem)
	r.Delete("/menus/{id}/items/{index}", h.DeleteItem)
	r.Post("/menus/{id}/items/{index}/move", h.MoveItem)

	// Rules.
	r.Get("/rules", h.ListRules)
	r.Post("/rules", h.CreateRule)
	r.Put("/rules/base", h.SetBaseRule)
	r.Put("/rules/{id}", h.UpdateRule)
	r.Delete("/rules/{id}", h.DeleteRule)
	r.Post("/rules/{id}/move", h.MoveRule)

	// Style.
	r.Get("/style", h.GetStyle)
	r.Put("/style", h.PutStyle)
	r.Get("/style/resolved", h.GetResolvedStyle)
	r.Post("/style/reset", h.ResetStyleSection)

	// Documents and the host workspace.
	r.Get("/resolve", h.Resolve)
	r.Get("/workspace", h.Workspace)
	r.Post("/workspace/open", h.OpenDocument)
	r.Post("/workspace/close", h.CloseDocument)
	r.Post("/workspace/active", h.ActivateDocument)
	r.Post("/workspace/rename", h.RenameDocument)
	r.Post("/workspace/modify", h.ModifyDocument)
	r.Post("/theme", h.SetTheme)
	r.Post("/refresh", h.Refresh)
	r.Post("/activate", h.Activate)

	if events != nil {
		r.Get("/events", events.ServeHTTP)
	}

	return r
}
