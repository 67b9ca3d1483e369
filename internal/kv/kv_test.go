package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	db, err := Open(DriverSQLite, filepath.Join(dir, "kv.db"))
	if err != nil {
		t.Fatalf("Open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	file, err := Open(DriverFile, filepath.Join(dir, "files"))
	if err != nil {
		t.Fatalf("Open file: %v", err)
	}
	t.Cleanup(func() { file.Close() })

	return map[string]Store{DriverSQLite: db, DriverFile: file}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			data, err := s.Load(ctx, "settings")
			if err != nil || data != nil {
				t.Fatalf("Load missing = %q, %v; want nil, nil", data, err)
			}

			if err := s.Save(ctx, "settings", []byte(`{"a":1}`)); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := s.Save(ctx, "settings", []byte(`{"a":2}`)); err != nil {
				t.Fatalf("Save overwrite: %v", err)
			}
			data, err = s.Load(ctx, "settings")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if string(data) != `{"a":2}` {
				t.Errorf("data = %q", data)
			}

			if err := s.Delete(ctx, "settings"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if err := s.Delete(ctx, "settings"); err != nil {
				t.Fatalf("Delete missing: %v", err)
			}
			if data, _ := s.Load(ctx, "settings"); data != nil {
				t.Errorf("expected nil after delete, got %q", data)
			}
		})
	}
}

func TestStore_InvalidKey(t *testing.T) {
	for name, s := range stores(t) {
		if err := s.Save(context.Background(), "../escape", []byte("x")); err == nil {
			t.Errorf("%s: expected error for invalid key", name)
		}
	}
}

func TestFile_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	f, err := OpenFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Save(context.Background(), "settings", []byte("{}")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "settings.json" {
		t.Errorf("entries = %v", entries)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open("redis", t.TempDir()); err == nil {
		t.Error("expected error for unknown driver")
	}
}
