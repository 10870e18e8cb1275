package editor

import (
	"context"
	"errors"
	"testing"
)

// staticProvider returns a fixed set of edits.
type staticProvider struct {
	edits []TextEdit
	err   error
}

func (p *staticProvider) FormatDocument(ctx context.Context, doc *Document) ([]TextEdit, error) {
	return p.edits, p.err
}

func TestProviderRegistry_Lookup(t *testing.T) {
	r := NewProviderRegistry()
	p := &staticProvider{}

	r.Register(LanguagePHP, p)

	got, ok := r.Lookup(LanguagePHP)
	if !ok || got != p {
		t.Error("expected registered provider to be found")
	}

	if _, ok := r.Lookup("go"); ok {
		t.Error("expected no provider for unregistered language")
	}

	r.Unregister(LanguagePHP)
	if _, ok := r.Lookup(LanguagePHP); ok {
		t.Error("expected provider to be gone after Unregister")
	}
}

func TestProviderRegistry_Format(t *testing.T) {
	r := NewProviderRegistry()
	doc := NewDocument("/srv/index.php", []byte("<?php   echo 1;"))

	r.Register(LanguagePHP, &staticProvider{
		edits: []TextEdit{ReplaceAll(doc.Text(), "<?php echo 1;")},
	})

	changed, err := r.Format(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Error("expected document to change")
	}
	if doc.Text() != "<?php echo 1;" {
		t.Errorf("unexpected text %q", doc.Text())
	}
}

func TestProviderRegistry_FormatNoProvider(t *testing.T) {
	r := NewProviderRegistry()
	doc := NewDocument("/srv/main.go", []byte("package main"))

	changed, err := r.Format(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Error("expected no change without a provider")
	}
}

func TestProviderRegistry_FormatError(t *testing.T) {
	r := NewProviderRegistry()
	doc := NewDocument("/srv/index.php", []byte("<?php"))

	wantErr := errors.New("fixer unavailable")
	r.Register(LanguagePHP, &staticProvider{err: wantErr})

	if _, err := r.Format(context.Background(), doc); !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped provider error, got %v", err)
	}
}
