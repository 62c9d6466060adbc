// Package adapter contains the infrastructure adapters of glotscan: the
// source filesystem, the extraction cache, translation files, exports and
// metrics.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning source trees. It hides direct `os` access so the
// scanning logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the tree under root. Returning filepath.SkipDir from fn
	// for a directory skips it.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// Fingerprint returns the SHA-256 and size of the file at path.
	Fingerprint(path m.Path) (m.Fingerprint, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Abs returns the absolute, cleaned form of path.
	Abs(path m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over every file and directory under root.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// Fingerprint hashes the file content while counting its size.
func (a *LocalSourceFSAdapter) Fingerprint(path m.Path) (m.Fingerprint, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return m.Fingerprint{}, err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()

	n, err := io.Copy(h, f)
	if err != nil {
		return m.Fingerprint{}, err
	}

	return m.Fingerprint{Hash: fmt.Sprintf("%x", h.Sum(nil)), Size: n}, nil
}

// FingerprintBytes computes the fingerprint of content already in memory.
func FingerprintBytes(content []byte) m.Fingerprint {
	return m.Fingerprint{Hash: fmt.Sprintf("%x", sha256.Sum256(content)), Size: int64(len(content))}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Abs returns the absolute form of path.
func (a *LocalSourceFSAdapter) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}
