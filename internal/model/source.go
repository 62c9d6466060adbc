// Package model defines the data structures shared by the scanner, the
// strings collection and the translation store.
package model

// Path represents a file system path.
type Path string

// Language names a source language with a registered tokenizer.
type Language string

// Registered source languages.
const (
	LanguagePHP        Language = "php"
	LanguageJavaScript Language = "javascript"
	LanguagePython     Language = "python"
	LanguageGo         Language = "go"
	LanguageLua        Language = "lua"
)

// SourceRoot is a directory tree registered for extraction.
type SourceRoot struct {
	// Name is the display name used in listings and exports.
	Name string `mapstructure:"name" yaml:"name" json:"name"`
	// Path is the directory to scan.
	Path Path `mapstructure:"path" yaml:"path" json:"path"`
	// Exclude lists folder names skipped anywhere below Path.
	Exclude []string `mapstructure:"exclude" yaml:"exclude,omitempty" json:"exclude,omitempty"`
	// Include lists glob patterns matched against file base names.
	// An empty list accepts every file with a registered extension.
	Include []string `mapstructure:"include" yaml:"include,omitempty" json:"include,omitempty"`
}

// File represents a source file discovered during a scan.
type File struct {
	// FullPath is the absolute path of the file.
	FullPath Path
	// ShortPath is the path relative to the root it was found under.
	ShortPath Path
	// Root is the display name of the owning SourceRoot.
	Root     string
	Language Language
}
