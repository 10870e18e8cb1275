// Package editor defines the narrow host-editor surface the formatter
// integration plugs into: documents, text edits, and the format-provider
// slot. The real editor lives on the other side of these types.
package editor

import (
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
)

// LanguagePHP is the language identifier for PHP documents.
const LanguagePHP = "php"

// Document represents an open file with its current text content.
type Document struct {
	// Path is the absolute file path (empty for scratch buffers).
	Path string

	// Name is the display name (filename or "Untitled").
	Name string

	// LanguageID is the detected language identifier.
	LanguageID string

	// text holds the current content.
	mu   sync.RWMutex
	text string

	// version tracks document changes.
	version atomic.Int64
}

// NewDocument creates a new document from a file path and its content.
func NewDocument(path string, content []byte) *Document {
	name := filepath.Base(path)
	if path == "" {
		name = "Untitled"
	}

	return &Document{
		Path:       path,
		Name:       name,
		LanguageID: DetectLanguageID(path),
		text:       string(content),
	}
}

// Text returns the current document content.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text
}

// SetText replaces the document content and bumps the version.
func (d *Document) SetText(text string) {
	d.mu.Lock()
	d.text = text
	d.mu.Unlock()
	d.version.Add(1)
}

// Version returns the current document version.
func (d *Document) Version() int64 {
	return d.version.Load()
}

// IsScratch returns true if this is a scratch buffer (no file path).
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// ApplyEdits applies the given edits to the document content.
// Edits are applied in reverse document order so earlier edits do not
// invalidate the positions of later ones.
func (d *Document) ApplyEdits(edits []TextEdit) {
	if len(edits) == 0 {
		return
	}

	d.mu.Lock()
	text := d.text
	for i := len(edits) - 1; i >= 0; i-- {
		text = applyEdit(text, edits[i])
	}
	d.text = text
	d.mu.Unlock()
	d.version.Add(1)
}

// DetectLanguageID returns the language identifier for a file path.
// Only PHP variants are recognized; everything else is empty.
func DetectLanguageID(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".php", ".phtml", ".php4", ".php5":
		return LanguagePHP
	default:
		return ""
	}
}
