package hook

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/phpfix/internal/editor"
)

func TestRegistry_RegisterIdempotent(t *testing.T) {
	r := NewRegistry()

	r.Register(NewFuncHook("format-on-save", 100, nil))
	r.Register(NewFuncHook("format-on-save", 100, nil))
	r.Register(NewFuncHook("format-on-save", 100, nil))

	if r.Count() != 1 {
		t.Errorf("expected 1 hook after repeated registration, got %d", r.Count())
	}
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry()
	r.Register(NewFuncHook("format-on-save", 100, nil))

	if !r.Unregister("format-on-save") {
		t.Error("expected Unregister to report removal")
	}

	if r.Registered("format-on-save") {
		t.Error("expected hook to be gone")
	}

	if r.Unregister("format-on-save") {
		t.Error("expected second Unregister to report false")
	}
}

func TestRegistry_EmitOrder(t *testing.T) {
	r := NewRegistry()

	var order []string
	record := func(name string) func(SaveEvent) {
		return func(SaveEvent) { order = append(order, name) }
	}

	r.Register(NewFuncHook("low", 10, record("low")))
	r.Register(NewFuncHook("high", 100, record("high")))
	r.Register(NewFuncHook("mid", 50, record("mid")))

	r.Emit(SaveEvent{Document: editor.NewDocument("/tmp/a.php", nil)})

	want := []string{"high", "mid", "low"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("hook order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_EmitPanicRecovery(t *testing.T) {
	r := NewRegistry()

	called := false
	r.Register(NewFuncHook("panics", 100, func(SaveEvent) { panic("boom") }))
	r.Register(NewFuncHook("survives", 10, func(SaveEvent) { called = true }))

	r.Emit(SaveEvent{})

	if !called {
		t.Error("expected hook after a panicking hook to run")
	}
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry()
	r.Register(NewFuncHook("a", 1, nil))
	r.Register(NewFuncHook("b", 2, nil))

	r.Clear()

	if r.Count() != 0 {
		t.Errorf("expected empty registry, got %d hooks", r.Count())
	}
}
