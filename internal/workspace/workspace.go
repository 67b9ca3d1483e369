// Package workspace tracks the documents open in the host and which one is
// active.
package workspace

import (
	"slices"
	"sync"
)

// Workspace is safe for concurrent use.
type Workspace struct {
	mu     sync.RWMutex
	open   []string
	active string
}

// New returns an empty workspace.
func New() *Workspace {
	return &Workspace{}
}

// Open adds path to the open documents. It reports whether the document
// was not open before.
func (w *Workspace) Open(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if slices.Contains(w.open, path) {
		return false
	}
	w.open = append(w.open, path)
	return true
}

// Activate opens path if needed and makes it the active document.
func (w *Workspace) Activate(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !slices.Contains(w.open, path) {
		w.open = append(w.open, path)
	}
	w.active = path
}

// Close removes path. Closing the active document activates the most
// recently opened remaining one.
func (w *Workspace) Close(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := slices.Index(w.open, path)
	if i < 0 {
		return false
	}
	w.open = slices.Delete(w.open, i, i+1)
	if w.active == path {
		w.active = ""
		if n := len(w.open); n > 0 {
			w.active = w.open[n-1]
		}
	}
	return true
}

// Rename updates a document path after a move, keeping its position and
// active state.
func (w *Workspace) Rename(from, to string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := slices.Index(w.open, from)
	if i < 0 {
		return false
	}
	w.open[i] = to
	if w.active == from {
		w.active = to
	}
	return true
}

// Active returns the active document.
func (w *Workspace) Active() (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.active, w.active != ""
}

// Documents returns the open documents in opening order.
func (w *Workspace) Documents() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.open)
}

// IsOpen reports whether path is open.
func (w *Workspace) IsOpen(path string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Contains(w.open, path)
}

// Targets returns the documents that receive a menu: only the active one
// when onlyActive is set, every open document otherwise.
func (w *Workspace) Targets(onlyActive bool) []string {
	if !onlyActive {
		return w.Documents()
	}
	if active, ok := w.Active(); ok {
		return []string{active}
	}
	return nil
}
