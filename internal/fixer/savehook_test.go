package fixer

import (
	"testing"
	"time"

	"github.com/dshills/phpfix/internal/editor"
	"github.com/dshills/phpfix/internal/hook"
)

func TestSaveHook_FixesPHPDocument(t *testing.T) {
	stub := writeStub(t, `printf '%s' '<?php echo 1;' > "$last"`)
	co, _, _ := newTestCoordinator(t, stub, 5*time.Second)

	var applied string
	h := NewSaveHook(co, func(doc *editor.Document, fixed string) error {
		applied = fixed
		return nil
	}, nil)

	doc := editor.NewDocument("/srv/index.php", []byte("<?php   echo   1 ;"))
	h.OnSave(hook.SaveEvent{Document: doc})

	if applied != "<?php echo 1;" {
		t.Errorf("expected apply with fixed text, got %q", applied)
	}
}

func TestSaveHook_IgnoresNonPHP(t *testing.T) {
	stub := writeStub(t, `printf '%s' 'changed' > "$last"`)
	co, temp, _ := newTestCoordinator(t, stub, 5*time.Second)

	h := NewSaveHook(co, func(doc *editor.Document, fixed string) error {
		t.Error("apply must not run for non-PHP documents")
		return nil
	}, nil)

	doc := editor.NewDocument("/srv/main.go", []byte("package main"))
	h.OnSave(hook.SaveEvent{Document: doc})

	// No temp file may have been produced for the skipped document.
	if co.Busy() {
		t.Error("expected no fix to be running")
	}
	checkCleanedUp(t, co, temp, "main.go")
}

func TestSaveHook_UnchangedOutputNotApplied(t *testing.T) {
	stub := writeStub(t, `exit 0`)
	co, _, _ := newTestCoordinator(t, stub, 5*time.Second)

	h := NewSaveHook(co, func(doc *editor.Document, fixed string) error {
		t.Error("apply must not run when output is unchanged")
		return nil
	}, nil)

	doc := editor.NewDocument("/srv/index.php", []byte("<?php echo 1;"))
	h.OnSave(hook.SaveEvent{Document: doc})
}

func TestSaveHook_FailureIsSilent(t *testing.T) {
	stub := writeStub(t, `exit 16`)
	co, _, _ := newTestCoordinator(t, stub, 5*time.Second)

	h := NewSaveHook(co, func(doc *editor.Document, fixed string) error {
		t.Error("apply must not run on failure")
		return nil
	}, nil)

	doc := editor.NewDocument("/srv/index.php", []byte("<?php"))
	h.OnSave(hook.SaveEvent{Document: doc})
}

func TestSaveHook_Identity(t *testing.T) {
	h := NewSaveHook(nil, nil, nil)

	if h.Name() != SaveHookName {
		t.Errorf("unexpected hook name %q", h.Name())
	}
	if h.Priority() != SaveHookPriority {
		t.Errorf("unexpected hook priority %d", h.Priority())
	}
}
