package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"glotscan.dev/pkg/glotscan/internal/adapter"
	"glotscan.dev/pkg/glotscan/internal/domain/tokenizers"
	m "glotscan.dev/pkg/glotscan/internal/model"
)

// ScanArgs contains the arguments for a scan.
type ScanArgs struct {
	Roots []m.SourceRoot
	// Exclude lists folder names skipped in every root, in addition to
	// each root's own list.
	Exclude []string
	// UseCache reuses stored extractions of unchanged files. The cache is
	// rewritten either way.
	UseCache bool
	// Parallel bounds how many roots are scanned at once.
	Parallel int
}

// ScanStats counts what a scan did.
type ScanStats struct {
	Files     int
	CacheHits int
	Tokenized int
	Pruned    int
	Skipped   int
}

// ScanResult holds the extraction of every scanned file.
type ScanResult struct {
	Files    []m.FileExtraction
	Warnings []m.Warning
	Stats    ScanStats
}

// Scanner walks source roots and extracts call sites file by file.
type Scanner interface {
	Scan(ctx context.Context, args ScanArgs) (ScanResult, error)
}

type scanner struct {
	fs       adapter.SourceFSAdapter
	cache    adapter.CacheStore
	registry *tokenizers.Registry
	detector Detector
}

// NewScanner creates a Scanner.
func NewScanner(
	fs adapter.SourceFSAdapter,
	cache adapter.CacheStore,
	registry *tokenizers.Registry,
	detector Detector,
) Scanner {
	return &scanner{fs: fs, cache: cache, registry: registry, detector: detector}
}

// scanState is shared by the goroutines of one scan.
type scanState struct {
	stored   map[m.Path]m.CacheRecord
	useCache bool

	mu       sync.Mutex
	seen     map[m.Path]bool
	fresh    map[m.Path]m.CacheRecord
	files    []m.FileExtraction
	warnings []m.Warning
	stats    ScanStats
}

// claim marks path as enumerated and reports whether this caller owns it.
func (st *scanState) claim(p m.Path) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.seen[p] {
		return false
	}

	st.seen[p] = true
	st.stats.Files++

	return true
}

func (st *scanState) warn(w m.Warning) {
	st.mu.Lock()
	st.warnings = append(st.warnings, w)
	st.mu.Unlock()
}

// Scan implements Scanner. The whole pass runs inside one cache update, so
// concurrent scans sharing a store never interleave their writes.
func (s *scanner) Scan(ctx context.Context, args ScanArgs) (ScanResult, error) {
	if len(args.Roots) == 0 {
		return ScanResult{}, errors.New("no source roots to scan")
	}

	parallel := max(args.Parallel, 1)

	var result ScanResult

	err := s.cache.Update(ctx, func(cache *m.Cache) error {
		st := &scanState{
			stored:   cache.Records,
			useCache: args.UseCache,
			seen:     make(map[m.Path]bool),
			fresh:    make(map[m.Path]m.CacheRecord),
		}

		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(parallel)

		for _, root := range args.Roots {
			group.Go(func() error {
				return s.scanRoot(groupCtx, root, args.Exclude, st)
			})
		}

		if err := group.Wait(); err != nil {
			return err
		}

		for p := range st.stored {
			if !st.seen[p] {
				st.stats.Pruned++
			}
		}

		cache.Records = st.fresh
		result = st.result()

		return nil
	})
	if err != nil {
		return ScanResult{}, fmt.Errorf("scan: %w", err)
	}

	slog.Debug("Scan finished", "files", result.Stats.Files, "cacheHits", result.Stats.CacheHits,
		"tokenized", result.Stats.Tokenized, "pruned", result.Stats.Pruned, "skipped", result.Stats.Skipped)

	return result, nil
}

func (st *scanState) result() ScanResult {
	sort.Slice(st.files, func(i, j int) bool {
		if st.files[i].File.ShortPath != st.files[j].File.ShortPath {
			return st.files[i].File.ShortPath < st.files[j].File.ShortPath
		}

		return st.files[i].File.FullPath < st.files[j].File.FullPath
	})

	sort.SliceStable(st.warnings, func(i, j int) bool {
		fi, li := st.warnings[i].Position()
		fj, lj := st.warnings[j].Position()

		if fi != fj {
			return fi < fj
		}

		return li < lj
	})

	return ScanResult{Files: st.files, Warnings: st.warnings, Stats: st.stats}
}

func (s *scanner) scanRoot(ctx context.Context, root m.SourceRoot, globalExclude []string, st *scanState) error {
	abs, err := s.fs.Abs(root.Path)
	if err != nil {
		return fmt.Errorf("resolve source root %s: %w", root.Path, err)
	}

	if _, err := s.fs.FileInfo(abs); err != nil {
		return fmt.Errorf("source root %s: %w", root.Path, err)
	}

	excluded := make(map[string]bool, len(root.Exclude)+len(globalExclude))
	for _, name := range append(append([]string(nil), root.Exclude...), globalExclude...) {
		excluded[name] = true
	}

	slog.Debug("Scanning source root", "root", root.Path, "name", root.Name, "exclude", len(excluded))

	return s.fs.Walk(abs, func(p string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if p == string(abs) {
				return err
			}

			slog.Warn("Skipping unreadable path", "path", p, "error", err)
			st.warn(m.UnreadableFileWarning{File: m.Path(p), Err: err.Error()})

			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() {
			if p != string(abs) && excluded[info.Name()] {
				slog.Debug("Skipping excluded folder", "path", p)
				return filepath.SkipDir
			}

			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		tok, ok := s.registry.ForPath(p)
		if !ok {
			return nil
		}

		rel, err := s.fs.RelPath(abs, m.Path(p))
		if err != nil {
			return err
		}

		if !matchesInclude(root.Include, rel, info.Name()) {
			return nil
		}

		file := m.File{
			FullPath:  m.Path(p),
			ShortPath: shortPath(root.Path, rel),
			Root:      root.Name,
			Language:  tok.Language(),
		}

		if !st.claim(file.FullPath) {
			return nil
		}

		s.scanFile(file, tok, st)

		return nil
	})
}

// scanFile extracts one file, reusing its cache record when the
// fingerprint is unchanged.
func (s *scanner) scanFile(file m.File, tok tokenizers.Tokenizer, st *scanState) {
	fp, err := s.fs.Fingerprint(file.FullPath)
	if err != nil {
		s.skip(st, file, m.UnreadableFileWarning{File: file.ShortPath, Err: err.Error()})
		return
	}

	if rec, ok := st.stored[file.FullPath]; ok && st.useCache && rec.Fingerprint == fp {
		st.mu.Lock()
		st.fresh[file.FullPath] = rec
		st.files = append(st.files, m.FileExtraction{
			File:       file,
			Extraction: restamp(rec.Extraction, file.ShortPath),
			Cached:     true,
		})
		st.stats.CacheHits++
		st.mu.Unlock()

		return
	}

	src, err := s.fs.ReadFile(file.FullPath)
	if err != nil {
		s.skip(st, file, m.UnreadableFileWarning{File: file.ShortPath, Err: err.Error()})
		return
	}

	tokens, err := tok.Tokenize(src)
	if err != nil {
		line := 0

		var syntaxErr *tokenizers.SyntaxError
		if errors.As(err, &syntaxErr) {
			line = syntaxErr.Line
		}

		s.skip(st, file, m.TokenizeFailedWarning{File: file.ShortPath, Line: line, Err: err.Error()})

		return
	}

	extraction := s.detector.Detect(DetectInput{
		File:     file.ShortPath,
		Language: tok.Language(),
		Concat:   tok.ConcatOperator(),
		Tokens:   tokens,
	})

	slog.Debug("Extracted file", "file", file.ShortPath, "callSites", len(extraction.CallSites),
		"unresolved", len(extraction.Unresolved))

	st.mu.Lock()
	st.fresh[file.FullPath] = m.CacheRecord{
		Path:        file.FullPath,
		Fingerprint: adapter.FingerprintBytes(src),
		Extraction:  extraction,
	}
	st.files = append(st.files, m.FileExtraction{File: file, Extraction: extraction})
	st.stats.Tokenized++
	st.mu.Unlock()
}

func (s *scanner) skip(st *scanState, file m.File, w m.Warning) {
	slog.Warn("Skipping file", "file", file.ShortPath, "reason", w.Message())

	st.mu.Lock()
	st.warnings = append(st.warnings, w)
	st.stats.Skipped++
	st.mu.Unlock()
}

// restamp points a cached extraction at the file's current display path.
func restamp(ext m.Extraction, file m.Path) m.Extraction {
	var out m.Extraction

	for _, cs := range ext.CallSites {
		cs.File = file
		out.CallSites = append(out.CallSites, cs)
	}

	for _, u := range ext.Unresolved {
		u.File = file
		out.Unresolved = append(out.Unresolved, u)
	}

	return out
}

func shortPath(root m.Path, rel m.Path) m.Path {
	if rel == "." {
		return root
	}

	return m.Path(filepath.Join(string(root), string(rel)))
}

// matchesInclude reports whether a file passes the root's include globs.
// Globs match either the slash-separated relative path or the base name.
func matchesInclude(include []string, rel m.Path, base string) bool {
	if len(include) == 0 {
		return true
	}

	slashRel := filepath.ToSlash(string(rel))

	for _, glob := range include {
		if ok, _ := path.Match(glob, slashRel); ok {
			return true
		}

		if ok, _ := path.Match(glob, base); ok {
			return true
		}
	}

	return false
}
