// Package watcher reports document changes in a vault directory tree.
package watcher

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/globalmenu/internal/vault"
)

// Kind classifies a document change.
type Kind string

// Change kinds.
const (
	Created  Kind = "created"
	Modified Kind = "modified"
	Deleted  Kind = "deleted"
)

// Event is one document change with a vault-relative path.
type Event struct {
	Kind Kind
	Path string
}

// Callback receives document changes.
type Callback func(Event)

const reconcileDelay = 200 * time.Millisecond

// Watch runs an fsnotify watcher over the vault until ctx is cancelled and
// calls cb for every change to a document.
//
// Directories created at runtime are added to the watch list. fsnotify only
// reports the old path of a rename, so renames trigger a debounced rescan
// that reports the new path as created and vanished paths as deleted.
func Watch(ctx context.Context, v *vault.Vault, logger *slog.Logger, cb Callback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, v.Root()); err != nil {
		return err
	}

	known := make(map[string]struct{})
	if paths, err := v.List(); err == nil {
		for _, p := range paths {
			known[p] = struct{}{}
		}
	}
	emit := func(kind Kind, p string) {
		switch kind {
		case Deleted:
			delete(known, p)
		default:
			known[p] = struct{}{}
		}
		logger.Debug("watcher: change", slog.String("path", p), slog.String("kind", string(kind)))
		if cb != nil {
			cb(Event{Kind: kind, Path: p})
		}
	}

	logger.Info("watcher: started", slog.String("root", v.Root()))

	var reconcileTimer *time.Timer
	var reconcileCh <-chan time.Time
	scheduleReconcile := func() {
		if reconcileTimer == nil {
			reconcileTimer = time.NewTimer(reconcileDelay)
			reconcileCh = reconcileTimer.C
		} else {
			reconcileTimer.Reset(reconcileDelay)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reconcileTimer != nil {
				reconcileTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-reconcileCh:
			rescan(v, known, logger, emit)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs := ev.Name

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(abs); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, abs); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", abs),
							slog.String("error", addErr.Error()))
					}
					scheduleReconcile()
					continue
				}
			}

			if !strings.HasSuffix(abs, vault.DocumentExt) {
				continue
			}
			rel, relErr := v.Rel(abs)
			if relErr != nil {
				continue
			}

			switch {
			case ev.Op&fsnotify.Create != 0:
				emit(Created, rel)
			case ev.Op&fsnotify.Write != 0:
				emit(Modified, rel)
			case ev.Op&fsnotify.Remove != 0:
				emit(Deleted, rel)
			case ev.Op&fsnotify.Rename != 0:
				emit(Deleted, rel)
				scheduleReconcile()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// rescan lists the vault and reports paths that appeared or vanished since
// the last known state.
func rescan(v *vault.Vault, known map[string]struct{}, logger *slog.Logger, emit func(Kind, string)) {
	paths, err := v.List()
	if err != nil {
		logger.Warn("watcher: rescan failed", slog.String("error", err.Error()))
		return
	}
	disk := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		disk[p] = struct{}{}
		if _, ok := known[p]; !ok {
			emit(Created, p)
		}
	}
	for p := range known {
		if _, ok := disk[p]; !ok {
			emit(Deleted, p)
		}
	}
}

// addDirsRecursive adds root and its non-hidden subdirectories.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}
