package adapter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/leonelquinteros/gotext"
	"gopkg.in/yaml.v3"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

// ExportFormat selects the serialization of an export.
type ExportFormat string

// Supported export formats.
const (
	FormatJSON ExportFormat = "json"
	FormatYAML ExportFormat = "yaml"
	// FormatPO is a gettext catalog of at most one locale.
	FormatPO ExportFormat = "po"
)

// ParseExportFormat validates a user supplied format name.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case FormatJSON, FormatYAML, FormatPO:
		return ExportFormat(s), nil
	case "yml":
		return FormatYAML, nil
	case "pot":
		return FormatPO, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want json, yaml or po)", s)
	}
}

// ExportDocument is the serialized form of a collection.
type ExportDocument struct {
	Group    string          `json:"group,omitempty" yaml:"group,omitempty"`
	Locales  []string        `json:"locales,omitempty" yaml:"locales,omitempty"`
	Entries  []ExportEntry   `json:"entries" yaml:"entries"`
	Warnings []ExportWarning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ExportEntry is one string entry with its translations keyed by locale.
type ExportEntry struct {
	ID           string             `json:"id" yaml:"id"`
	Text         string             `json:"text" yaml:"text"`
	Context      string             `json:"context,omitempty" yaml:"context,omitempty"`
	Occurrences  []ExportOccurrence `json:"occurrences" yaml:"occurrences"`
	Translations map[string]string  `json:"translations,omitempty" yaml:"translations,omitempty"`
	Warnings     []ExportWarning    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ExportOccurrence is a file and line.
type ExportOccurrence struct {
	File string `json:"file" yaml:"file"`
	Line int    `json:"line" yaml:"line"`
}

// ExportWarning flattens a model.Warning.
type ExportWarning struct {
	Kind    string `json:"kind" yaml:"kind"`
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// ExportInput is what an export is built from. Translations maps locale to
// entry id to text.
type ExportInput struct {
	Group        string
	Entries      []m.StringEntry
	Warnings     []m.Warning
	Translations map[string]map[string]string
}

// Exporter writes collections in machine readable formats.
type Exporter interface {
	Export(w io.Writer, format ExportFormat, in ExportInput) error
}

// DocumentExporter implements Exporter with encoding/json, yaml.v3 and gotext.
type DocumentExporter struct{}

// NewDocumentExporter returns a DocumentExporter.
func NewDocumentExporter() *DocumentExporter {
	return &DocumentExporter{}
}

// Export implements Exporter.
func (e *DocumentExporter) Export(w io.Writer, format ExportFormat, in ExportInput) error {
	if format == FormatPO {
		return writePO(w, in)
	}

	doc := BuildExportDocument(in)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}

	return nil
}

// writePO writes the entries as a gettext catalog. Without translations the
// result is a template with empty msgstr values.
func writePO(w io.Writer, in ExportInput) error {
	if len(in.Translations) > 1 {
		return fmt.Errorf("po export takes a single locale, got %d", len(in.Translations))
	}

	var translations map[string]string
	for _, t := range in.Translations {
		translations = t
	}

	po := gotext.NewPo()
	domain := po.GetDomain()

	for _, entry := range in.Entries {
		if entry.Context != "" {
			domain.SetC(entry.Text, entry.Context, translations[entry.ID])
			continue
		}

		domain.Set(entry.Text, translations[entry.ID])
	}

	raw, err := po.MarshalText()
	if err != nil {
		return fmt.Errorf("encode po: %w", err)
	}

	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("write po: %w", err)
	}

	return nil
}

// BuildExportDocument converts model values into the export shape.
func BuildExportDocument(in ExportInput) ExportDocument {
	doc := ExportDocument{Group: in.Group, Entries: make([]ExportEntry, 0, len(in.Entries))}

	for locale := range in.Translations {
		doc.Locales = append(doc.Locales, locale)
	}

	sort.Strings(doc.Locales)

	for _, entry := range in.Entries {
		out := ExportEntry{
			ID:          entry.ID,
			Text:        entry.Text,
			Context:     entry.Context,
			Occurrences: make([]ExportOccurrence, 0, len(entry.Occurrences)),
		}

		for _, occ := range entry.Occurrences {
			out.Occurrences = append(out.Occurrences, ExportOccurrence{File: string(occ.File), Line: occ.Line})
		}

		for _, locale := range doc.Locales {
			if text, ok := in.Translations[locale][entry.ID]; ok {
				if out.Translations == nil {
					out.Translations = make(map[string]string)
				}

				out.Translations[locale] = text
			}
		}

		for _, w := range entry.Warnings {
			out.Warnings = append(out.Warnings, exportWarning(w))
		}

		doc.Entries = append(doc.Entries, out)
	}

	for _, w := range in.Warnings {
		doc.Warnings = append(doc.Warnings, exportWarning(w))
	}

	return doc
}

func exportWarning(w m.Warning) ExportWarning {
	file, line := w.Position()

	return ExportWarning{
		Kind:    string(w.Kind()),
		File:    string(file),
		Line:    line,
		Message: w.Message(),
	}
}
