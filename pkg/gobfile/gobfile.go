// Package gobfile stores a single gob-encoded value in a file, optionally
// zstd compressed. Writes go to a temporary file that is renamed into place,
// so readers see either the old or the new snapshot.
package gobfile

import (
	"bufio"
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// ErrCorrupt is returned when a file exists but does not hold a snapshot.
var ErrCorrupt = errors.New("gobfile: corrupt snapshot")

const magic = "GOBF"

const (
	encodingPlain byte = 'p'
	encodingZstd  byte = 'z'
)

// Option configures Save.
type Option func(*options)

type options struct {
	compress bool
	perm     os.FileMode
}

// WithCompression toggles zstd compression. It is on by default.
func WithCompression(enabled bool) Option {
	return func(o *options) {
		o.compress = enabled
	}
}

// WithPerm sets the mode of the written file.
func WithPerm(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// Save atomically replaces the file at path with the encoding of v.
func Save[T any](path string, v T, opts ...Option) error {
	o := options{compress: true, perm: 0o644}
	for _, opt := range opts {
		opt(&o)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	if err := encode(tmp, v, o.compress); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, o.perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	tmpName = ""

	slog.Debug("saved snapshot", "path", path, "compressed", o.compress)

	return nil
}

func encode[T any](w io.Writer, v T, compress bool) error {
	bw := bufio.NewWriter(w)

	encoding := encodingPlain
	if compress {
		encoding = encodingZstd
	}

	if _, err := bw.WriteString(magic); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	if err := bw.WriteByte(encoding); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	if !compress {
		if err := gob.NewEncoder(bw).Encode(v); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}

		return bw.Flush()
	}

	zw, err := zstd.NewWriter(bw)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}

	if err := gob.NewEncoder(zw).Encode(v); err != nil {
		_ = zw.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close zstd writer: %w", err)
	}

	return bw.Flush()
}

// Load decodes the snapshot at path. A missing file yields an error
// matching os.ErrNotExist; an undecodable one yields ErrCorrupt.
func Load[T any](path string) (T, error) {
	var v T

	data, err := os.ReadFile(path)
	if err != nil {
		return v, err
	}

	if len(data) < len(magic)+1 || string(data[:len(magic)]) != magic {
		return v, fmt.Errorf("%w: bad header", ErrCorrupt)
	}

	var r io.Reader = bytes.NewReader(data[len(magic)+1:])

	switch data[len(magic)] {
	case encodingPlain:
	case encodingZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return v, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		defer zr.Close()

		r = zr
	default:
		return v, fmt.Errorf("%w: unknown encoding %q", ErrCorrupt, data[len(magic)])
	}

	if err := gob.NewDecoder(r).Decode(&v); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	slog.Debug("loaded snapshot", "path", path)

	return v, nil
}
