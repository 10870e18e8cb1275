package fixer

import (
	"context"
	"errors"

	"github.com/dshills/phpfix/internal/editor"
)

// Provider plugs the coordinator into the editor's document-formatting
// slot. A successful fix yields a single edit replacing the whole
// document; a fix skipped because another is in flight yields no edits
// and no error.
type Provider struct {
	co *Coordinator
}

// NewProvider creates a format provider backed by the coordinator.
func NewProvider(co *Coordinator) *Provider {
	return &Provider{co: co}
}

// FormatDocument implements editor.FormatProvider.
func (p *Provider) FormatDocument(ctx context.Context, doc *editor.Document) ([]editor.TextEdit, error) {
	original := doc.Text()

	fixed, err := p.co.Fix(ctx, doc)
	if errors.Is(err, ErrFixInFlight) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if fixed == original {
		return nil, nil
	}
	return []editor.TextEdit{editor.ReplaceAll(original, fixed)}, nil
}
