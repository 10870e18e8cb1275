package fixer

import (
	"context"
	"testing"
	"time"

	"github.com/dshills/phpfix/internal/editor"
)

func TestProvider_FormatDocument(t *testing.T) {
	stub := writeStub(t, `printf '%s' '<?php echo 1;' > "$last"`)
	co, _, _ := newTestCoordinator(t, stub, 5*time.Second)
	p := NewProvider(co)

	doc := editor.NewDocument("/srv/index.php", []byte("<?php   echo   1 ;"))
	edits, err := p.FormatDocument(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(edits) != 1 {
		t.Fatalf("expected 1 whole-document edit, got %d", len(edits))
	}
	if edits[0].NewText != "<?php echo 1;" {
		t.Errorf("unexpected edit text %q", edits[0].NewText)
	}

	doc.ApplyEdits(edits)
	if doc.Text() != "<?php echo 1;" {
		t.Errorf("expected document updated, got %q", doc.Text())
	}
}

func TestProvider_NoEditsWhenUnchanged(t *testing.T) {
	stub := writeStub(t, `exit 0`)
	co, _, _ := newTestCoordinator(t, stub, 5*time.Second)
	p := NewProvider(co)

	doc := editor.NewDocument("/srv/index.php", []byte("<?php echo 1;"))
	edits, err := p.FormatDocument(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(edits) != 0 {
		t.Errorf("expected no edits for already formatted document, got %d", len(edits))
	}
}

func TestProvider_InFlightIsSilent(t *testing.T) {
	stub := writeStub(t, `exit 0`)
	co, _, _ := newTestCoordinator(t, stub, 5*time.Second)
	p := NewProvider(co)

	// Occupy the single fix slot directly.
	co.busy.Store(true)
	defer co.busy.Store(false)

	doc := editor.NewDocument("/srv/index.php", []byte("<?php"))
	edits, err := p.FormatDocument(context.Background(), doc)

	if err != nil {
		t.Errorf("expected silent no-op, got error %v", err)
	}
	if edits != nil {
		t.Errorf("expected no edits, got %v", edits)
	}
}

func TestProvider_PropagatesFailure(t *testing.T) {
	stub := writeStub(t, `exit 64`)
	co, _, _ := newTestCoordinator(t, stub, 5*time.Second)
	p := NewProvider(co)

	doc := editor.NewDocument("/srv/index.php", []byte("<?php"))
	if _, err := p.FormatDocument(context.Background(), doc); err == nil {
		t.Error("expected error for exit 64")
	}
}
