// Package vault reads Markdown documents from a directory tree and derives
// the document context rules are matched against.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/starford/globalmenu/internal/apperr"
	"github.com/starford/globalmenu/internal/models"
	"github.com/starford/globalmenu/internal/parser"
)

// DocumentExt is the extension of documents in a vault.
const DocumentExt = ".md"

// Vault is a document tree rooted at a local directory.
type Vault struct {
	root string // absolute path
}

// Open returns a Vault rooted at dir. The directory must already exist.
func Open(dir string) (*Vault, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("vault: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("vault: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault: root is not a directory: %s", abs)
	}
	return &Vault{root: abs}, nil
}

// Root returns the absolute root directory.
func (v *Vault) Root() string { return v.root }

// safePath resolves a vault-relative path and rejects any result that
// escapes the root.
func (v *Vault) safePath(rel string) (string, error) {
	if rel == "" {
		return v.root, nil
	}
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("vault: absolute paths not allowed: %s", rel)
	}
	abs, err := filepath.Abs(filepath.Join(v.root, cleaned))
	if err != nil {
		return "", fmt.Errorf("vault: resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, v.root+string(os.PathSeparator)) && abs != v.root {
		return "", fmt.Errorf("vault: path escapes vault root: %s", rel)
	}
	return abs, nil
}

// Rel converts an absolute file system path under the root into a
// slash-separated vault path.
func (v *Vault) Rel(abs string) (string, error) {
	rel, err := filepath.Rel(v.root, abs)
	if err != nil {
		return "", fmt.Errorf("vault: rel %s: %w", abs, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("vault: path outside root: %s", abs)
	}
	return filepath.ToSlash(rel), nil
}

// Read returns the raw bytes of a document.
func (v *Vault) Read(p string) ([]byte, error) {
	abs, err := v.safePath(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("vault: read %s: %w", p, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("vault: read %s: %w", p, err)
	}
	return data, nil
}

// List returns the sorted vault paths of every document. Hidden
// directories are skipped.
func (v *Vault) List() ([]string, error) {
	var out []string
	err := filepath.WalkDir(v.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if p != v.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), DocumentExt) {
			return nil
		}
		rel, err := v.Rel(p)
		if err != nil {
			return err
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("vault: list: %w", err)
	}
	sort.Strings(out)
	return out, nil
}

// Context reads the document at p and derives its context.
func (v *Vault) Context(p string) (models.DocumentContext, error) {
	p = Normalize(p)
	data, err := v.Read(p)
	if err != nil {
		return models.DocumentContext{}, err
	}
	res, err := parser.Parse(data)
	if err != nil {
		return models.DocumentContext{}, fmt.Errorf("vault: parse %s: %w", p, err)
	}
	return NewContext(p, res.Tags), nil
}

// Normalize cleans a vault path into slash-separated form without a
// leading slash.
func Normalize(p string) string {
	p = path.Clean("/" + filepath.ToSlash(p))
	return strings.TrimPrefix(p, "/")
}

// NewContext derives the context of a document at vault path p. The
// basename drops the extension; the folder path is "/" at the root and
// "parent/" otherwise.
func NewContext(p string, tags []string) models.DocumentContext {
	p = Normalize(p)
	base := path.Base(p)
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}

	folder := models.RootFolder
	if dir := path.Dir(p); dir != "." && dir != "/" {
		folder = dir + "/"
	}
	if tags == nil {
		tags = []string{}
	}
	return models.DocumentContext{
		Path:       p,
		Basename:   base,
		Tags:       tags,
		FolderPath: folder,
	}
}
