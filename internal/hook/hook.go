// Package hook provides the save-hook registry the formatter integration
// uses to run format-on-save. Hooks are identified by name, ordered by
// priority, and invoked for every document save event.
package hook

import "github.com/dshills/phpfix/internal/editor"

// SaveEvent describes a document that was just saved.
type SaveEvent struct {
	// Document is the saved document.
	Document *editor.Document
}

// Hook receives save events.
type Hook interface {
	// Name identifies the hook. Registering a hook with an existing
	// name replaces the previous registration.
	Name() string

	// Priority orders hook execution (higher runs first).
	Priority() int

	// OnSave is called after a document is saved.
	OnSave(event SaveEvent)
}

// FuncHook wraps a function as a Hook.
type FuncHook struct {
	name     string
	priority int
	fn       func(event SaveEvent)
}

// NewFuncHook creates a hook from a function.
func NewFuncHook(name string, priority int, fn func(event SaveEvent)) *FuncHook {
	return &FuncHook{name: name, priority: priority, fn: fn}
}

// Name implements Hook.
func (h *FuncHook) Name() string { return h.name }

// Priority implements Hook.
func (h *FuncHook) Priority() int { return h.priority }

// OnSave implements Hook.
func (h *FuncHook) OnSave(event SaveEvent) {
	if h.fn != nil {
		h.fn(event)
	}
}
