package editor

import (
	"context"
	"fmt"
	"sync"
)

// FormatProvider is the document-formatting slot a formatter plugs into.
// It returns the edits required to format the document, or no edits when
// the document is already formatted or formatting was skipped.
type FormatProvider interface {
	FormatDocument(ctx context.Context, doc *Document) ([]TextEdit, error)
}

// ProviderRegistry maps language identifiers to format providers.
// At most one provider is registered per language; registering again
// replaces the previous provider.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]FormatProvider
}

// NewProviderRegistry creates an empty provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]FormatProvider),
	}
}

// Register installs a provider for a language.
func (r *ProviderRegistry) Register(languageID string, p FormatProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[languageID] = p
}

// Unregister removes the provider for a language.
func (r *ProviderRegistry) Unregister(languageID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.providers, languageID)
}

// Lookup returns the provider for a language, if any.
func (r *ProviderRegistry) Lookup(languageID string) (FormatProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[languageID]
	return p, ok
}

// Format runs the document's provider and applies the resulting edits.
// It reports whether the document changed. Documents without a registered
// provider are left untouched.
func (r *ProviderRegistry) Format(ctx context.Context, doc *Document) (bool, error) {
	p, ok := r.Lookup(doc.LanguageID)
	if !ok {
		return false, nil
	}

	edits, err := p.FormatDocument(ctx, doc)
	if err != nil {
		return false, fmt.Errorf("format %s: %w", doc.Name, err)
	}
	if len(edits) == 0 {
		return false, nil
	}

	doc.ApplyEdits(edits)
	return true, nil
}
