// Package kv persists opaque configuration blobs under string keys.
package kv

import (
	"context"
	"fmt"
	"regexp"
)

// Store drivers.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
)

var keyRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Store is a key-value persistence backend. Load returns nil data and a nil
// error for keys that were never saved.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Verify implementations at compile time.
var (
	_ Store = (*SQLite)(nil)
	_ Store = (*File)(nil)
)

// Open returns the store for driver at path: a database file for
// DriverSQLite, a directory for DriverFile.
func Open(driver, path string) (Store, error) {
	switch driver {
	case DriverSQLite, "":
		return OpenSQLite(path)
	case DriverFile:
		return OpenFile(path)
	default:
		return nil, fmt.Errorf("kv: unknown driver %q", driver)
	}
}

func checkKey(key string) error {
	if !keyRe.MatchString(key) {
		return fmt.Errorf("kv: invalid key %q", key)
	}
	return nil
}
