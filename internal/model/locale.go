package model

// Namespace classifies which locale a change applies to.
type Namespace string

const (
	// NamespaceApplication is the locale of the application's own interface.
	NamespaceApplication Namespace = "application"
	// NamespaceContent is the locale of user-facing content.
	NamespaceContent Namespace = "content"
)

// LocaleChanged is emitted after a locale switch has completed.
type LocaleChanged struct {
	Previous  string
	Current   string
	Namespace Namespace
}
