package menuservice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/starford/globalmenu/internal/apperr"
	"github.com/starford/globalmenu/internal/models"
	"github.com/starford/globalmenu/internal/present"
	"github.com/starford/globalmenu/internal/refresh"
	"github.com/starford/globalmenu/internal/sse"
	"github.com/starford/globalmenu/internal/vault"
	"github.com/starford/globalmenu/internal/watcher"
)

// DocumentContext derives the context of the document at path. Without a
// vault the document has no tags.
func (s *Service) DocumentContext(path string) (models.DocumentContext, error) {
	if s.vault == nil {
		return vault.NewContext(path, nil), nil
	}
	return s.vault.Context(path)
}

// Resolve builds the presentation for the document at path.
func (s *Service) Resolve(_ context.Context, path string, dark bool) (models.Presentation, error) {
	dc, err := s.DocumentContext(path)
	if err != nil {
		return models.Presentation{}, err
	}
	return s.ResolveContext(dc, dark), nil
}

// ResolveContext builds the presentation for an already derived context.
func (s *Service) ResolveContext(dc models.DocumentContext, dark bool) models.Presentation {
	return present.Build(s.Config(), dc, dark)
}

// Dark returns the host dark-mode flag.
func (s *Service) Dark() bool { return s.dark.Load() }

// SetDark records a host theme change and schedules a refresh.
func (s *Service) SetDark(dark bool) {
	if s.dark.Swap(dark) != dark {
		s.sched.Request(refresh.TriggerTheme)
	}
}

// OpenDocument records that the host opened path.
func (s *Service) OpenDocument(path string) {
	if s.ws.Open(vault.Normalize(path)) {
		s.sched.Request(refresh.TriggerLayoutChange)
	}
}

// ActivateDocument records that path became the active document.
func (s *Service) ActivateDocument(path string) {
	s.ws.Activate(vault.Normalize(path))
	s.sched.Request(refresh.TriggerDocumentSwitch)
}

// CloseDocument records that the host closed path.
func (s *Service) CloseDocument(path string) {
	path = vault.Normalize(path)
	s.pubMu.Lock()
	closed := s.ws.Close(path)
	if closed {
		s.forget(path)
	}
	s.pubMu.Unlock()
	if closed {
		s.sched.Request(refresh.TriggerLayoutChange)
	}
}

// ActiveDocument returns the active document.
func (s *Service) ActiveDocument() (string, bool) {
	return s.ws.Active()
}

// RenderTargets returns the documents that currently receive a menu.
func (s *Service) RenderTargets() []string {
	return s.ws.Targets(s.Config().ShowOnlyInActiveDocument)
}

// RequestRefresh schedules a debounced refresh for trigger t.
func (s *Service) RequestRefresh(t refresh.Trigger) {
	s.sched.Request(t)
}

// HandleChange reacts to a vault change reported by the watcher.
// Modifications refresh only when autoRefresh is enabled.
func (s *Service) HandleChange(ev watcher.Event) {
	ev.Path = vault.Normalize(ev.Path)
	switch ev.Kind {
	case watcher.Modified, watcher.Created:
		if s.Config().AutoRefresh && s.ws.IsOpen(ev.Path) {
			s.sched.Request(refresh.TriggerModify)
		}
	case watcher.Deleted:
		s.CloseDocument(ev.Path)
	}
}

// Activate returns what the host should do when item index of the menu
// shown for path is activated. Auxiliary activations (middle click or the
// context menu) always open a new tab.
func (s *Service) Activate(ctx context.Context, path string, index int, auxiliary bool) (models.Activation, error) {
	p, err := s.Resolve(ctx, path, s.Dark())
	if err != nil {
		return models.Activation{}, err
	}
	if p.Menu == nil || index < 0 || index >= len(p.Items) {
		return models.Activation{}, fmt.Errorf("menuservice: item %d for %s: %w", index, path, apperr.ErrNotFound)
	}
	item := p.Items[index]
	act := item.Primary
	if auxiliary {
		if item.Auxiliary == nil {
			return models.Activation{}, fmt.Errorf("menuservice: item %q has no auxiliary action: %w", item.Name, apperr.ErrValidation)
		}
		act = *item.Auxiliary
	}
	s.sched.Request(refresh.TriggerActivation)
	return act, nil
}

// Refresh renders every target document now and clears the menus of open
// documents that are no longer targets.
func (s *Service) Refresh() []models.Presentation {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	cfg := s.Config()
	dark := s.Dark()
	targets := s.ws.Targets(cfg.ShowOnlyInActiveDocument)

	isTarget := make(map[string]struct{}, len(targets))
	out := make([]models.Presentation, 0, len(targets))
	for _, doc := range targets {
		isTarget[doc] = struct{}{}
		dc, err := s.DocumentContext(doc)
		if err != nil {
			s.logger.Warn("menuservice: derive context failed",
				slog.String("path", doc),
				slog.String("error", err.Error()))
			dc = vault.NewContext(doc, nil)
		}
		p := present.Build(cfg, dc, dark)
		out = append(out, p)
		if s.pub != nil {
			s.pub.Retain(doc, sse.Event{Type: sse.EventRender, Data: p})
		}
	}
	for _, doc := range s.ws.Documents() {
		if _, ok := isTarget[doc]; !ok {
			s.forget(doc)
		}
	}
	return out
}

func (s *Service) forget(doc string) {
	if s.pub != nil {
		s.pub.Forget(doc, sse.Event{Type: sse.EventClear, Data: map[string]string{"document": doc}})
	}
}

func (s *Service) onRefresh(t refresh.Trigger) {
	rendered := s.Refresh()
	s.logger.Debug("menuservice: refreshed",
		slog.String("trigger", string(t)),
		slog.Int("documents", len(rendered)))
}

// RenameDocument follows a document moved by the host.
func (s *Service) RenameDocument(from, to string) {
	from, to = vault.Normalize(from), vault.Normalize(to)
	s.pubMu.Lock()
	renamed := s.ws.Rename(from, to)
	if renamed {
		s.forget(from)
	}
	s.pubMu.Unlock()
	if renamed {
		s.sched.Request(refresh.TriggerLayoutChange)
	}
}

// OpenDocuments returns the open documents in opening order.
func (s *Service) OpenDocuments() []string {
	return s.ws.Documents()
}
