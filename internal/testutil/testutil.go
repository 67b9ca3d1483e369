// Package testutil provides shared test helpers for setting up vaults and
// configuration stores.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/globalmenu/internal/kv"
	"github.com/starford/globalmenu/internal/vault"
)

// TestStore creates a temporary SQLite store that is closed on cleanup.
func TestStore(t *testing.T) kv.Store {
	t.Helper()
	store, err := kv.OpenSQLite(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// TestVault creates a temporary vault holding files, keyed by
// slash-separated relative path.
func TestVault(t *testing.T, files map[string]string) (*vault.Vault, string) {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		WriteDoc(t, dir, rel, content)
	}
	v, err := vault.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	return v, dir
}

// WriteDoc writes a document under dir, creating parent directories.
func WriteDoc(t *testing.T, dir, rel, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
