package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

// ErrInvalidLocale is returned for identifiers that are not BCP 47 tags.
var ErrInvalidLocale = errors.New("invalid locale")

const translationExt = ".txt"

// maxTranslationLine bounds a single line of a translation file.
const maxTranslationLine = 16 << 20

// CanonicalLocale normalises a locale identifier, accepting underscores as
// separators: "pt_br" becomes "pt-BR".
func CanonicalLocale(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidLocale)
	}

	tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidLocale, id, err)
	}

	return tag.String(), nil
}

// TranslationStore reads and writes per-locale translation files.
type TranslationStore interface {
	// Load returns the translations of group for locale keyed by entry id.
	// A missing file is an empty set.
	Load(ctx context.Context, group, locale string) (map[string]string, error)
	// Save replaces the file of group and locale with entries.
	Save(ctx context.Context, group, locale string, entries map[string]string) error
	// Set stores one translation.
	Set(ctx context.Context, group, locale, entryID, text string) error
	// Delete removes one translation and reports whether it existed.
	Delete(ctx context.Context, group, locale, entryID string) (bool, error)
	// Locales lists the locales that have a file for group.
	Locales(ctx context.Context, group string) ([]string, error)
	// Path returns the file backing group and locale.
	Path(group, locale string) m.Path
}

// LocalTranslationStore keeps one line-oriented file per group and locale
// in a directory.
type LocalTranslationStore struct {
	dir string
	mu  sync.Mutex
}

// NewLocalTranslationStore returns a store rooted at dir.
func NewLocalTranslationStore(dir m.Path) *LocalTranslationStore {
	return &LocalTranslationStore{dir: string(dir)}
}

// Path implements TranslationStore. The locale is used as given; callers
// pass canonical identifiers.
func (s *LocalTranslationStore) Path(group, locale string) m.Path {
	return m.Path(filepath.Join(s.dir, group+"."+locale+translationExt))
}

// Load implements TranslationStore.
func (s *LocalTranslationStore) Load(ctx context.Context, group, locale string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, _, err := s.resolve(group, locale)
	if err != nil {
		return nil, err
	}

	return readTranslations(path)
}

// Save implements TranslationStore.
func (s *LocalTranslationStore) Save(ctx context.Context, group, locale string, entries map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path, canonical, err := s.resolve(group, locale)
	if err != nil {
		return err
	}

	return writeTranslations(path, group, canonical, entries)
}

// Set implements TranslationStore.
func (s *LocalTranslationStore) Set(ctx context.Context, group, locale, entryID, text string) error {
	return s.modify(ctx, group, locale, func(entries map[string]string) bool {
		if old, ok := entries[entryID]; ok && old == text {
			return false
		}

		entries[entryID] = text

		return true
	})
}

// Delete implements TranslationStore.
func (s *LocalTranslationStore) Delete(ctx context.Context, group, locale, entryID string) (bool, error) {
	existed := false

	err := s.modify(ctx, group, locale, func(entries map[string]string) bool {
		_, existed = entries[entryID]
		delete(entries, entryID)

		return existed
	})

	return existed, err
}

func (s *LocalTranslationStore) modify(ctx context.Context, group, locale string, fn func(map[string]string) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path, canonical, err := s.resolve(group, locale)
	if err != nil {
		return err
	}

	entries, err := readTranslations(path)
	if err != nil {
		return err
	}

	if !fn(entries) {
		return nil
	}

	return writeTranslations(path, group, canonical, entries)
}

// Locales implements TranslationStore.
func (s *LocalTranslationStore) Locales(ctx context.Context, group string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}

	prefix := group + "."

	var locales []string

	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, translationExt) {
			continue
		}

		id := strings.TrimSuffix(strings.TrimPrefix(name, prefix), translationExt)
		if strings.Contains(id, ".") {
			continue
		}

		locale, err := CanonicalLocale(id)
		if err != nil {
			slog.Debug("Skipping translation file with invalid locale", "file", name, "error", err)
			continue
		}

		locales = append(locales, locale)
	}

	sort.Strings(locales)

	return locales, nil
}

func (s *LocalTranslationStore) resolve(group, locale string) (path, canonical string, err error) {
	if group == "" || strings.ContainsAny(group, `/\`) {
		return "", "", fmt.Errorf("invalid translation group %q", group)
	}

	canonical, err = CanonicalLocale(locale)
	if err != nil {
		return "", "", err
	}

	return string(s.Path(group, canonical)), canonical, nil
}

func readTranslations(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}

	if err != nil {
		return nil, fmt.Errorf("open translations: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	entries, err := DecodeTranslations(f, path)
	if err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}

	return entries, nil
}

func writeTranslations(path, group, locale string, entries map[string]string) error {
	var buf bytes.Buffer
	if err := EncodeTranslations(&buf, group, locale, entries); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create translations directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("write translations: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close translations: %w", err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod translations: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace translations: %w", err)
	}

	slog.Debug("Wrote translations", "path", path, "entries", len(entries))

	return nil
}

// EncodeTranslations writes entries sorted by id, one `id = "text"` line
// each, below a comment header naming group and locale.
func EncodeTranslations(w io.Writer, group, locale string, entries map[string]string) error {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# glotscan translations\n# group: %s\n# locale: %s\n\n", group, locale)

	for _, id := range ids {
		fmt.Fprintf(bw, "%s = \"%s\"\n", id, escapeTranslation(entries[id]))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write translations: %w", err)
	}

	return nil
}

// DecodeTranslations parses a translation file. Blank lines, comments
// starting with # or ; and surrounding whitespace are ignored; malformed
// lines are logged and skipped. source only labels log records.
func DecodeTranslations(r io.Reader, source string) (map[string]string, error) {
	entries := make(map[string]string)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTranslationLine)

	lineNo := 0

	for sc.Scan() {
		lineNo++

		line := sc.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		id, text, err := parseTranslationLine(line)
		if err != nil {
			slog.Warn("Skipping malformed translation line", "file", source, "line", lineNo, "error", err)
			continue
		}

		entries[id] = text
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func parseTranslationLine(line string) (string, string, error) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return "", "", errors.New("missing '='")
	}

	id := strings.TrimSpace(line[:eq])
	if id == "" {
		return "", "", errors.New("missing id")
	}

	value := strings.TrimSpace(line[eq+1:])
	if value == "" || value[0] != '"' {
		return "", "", errors.New("value is not quoted")
	}

	end := -1

	for i := 1; i < len(value); i++ {
		if value[i] == '\\' {
			i++
			continue
		}

		if value[i] == '"' {
			end = i
			break
		}
	}

	if end < 0 {
		return "", "", errors.New("unterminated value")
	}

	if tail := strings.TrimSpace(value[end+1:]); tail != "" && tail[0] != '#' && tail[0] != ';' {
		return "", "", fmt.Errorf("unexpected text after value: %q", tail)
	}

	return id, unescapeTranslation(value[1:end]), nil
}

var translationEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
)

func escapeTranslation(s string) string {
	return translationEscaper.Replace(s)
}

func unescapeTranslation(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder

	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			sb.WriteByte(s[i])
			continue
		}

		i++

		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '"':
			sb.WriteByte(s[i])
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}

	return sb.String()
}
