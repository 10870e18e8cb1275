package fixer

import (
	"context"
	"errors"

	"github.com/dshills/phpfix/internal/editor"
	"github.com/dshills/phpfix/internal/hook"
)

// SaveHookName identifies the format-on-save hook in the registry.
const SaveHookName = "format-on-save"

// SaveHookPriority orders the hook among other save hooks.
const SaveHookPriority = 100

// ApplyFunc applies fixed text back to a saved document.
type ApplyFunc func(doc *editor.Document, fixed string) error

// SaveHook runs a fix for PHP documents after they are saved.
// The resolver registers and unregisters it as the on_save setting
// changes.
type SaveHook struct {
	co    *Coordinator
	apply ApplyFunc
	log   Logger
}

// NewSaveHook creates the format-on-save hook.
func NewSaveHook(co *Coordinator, apply ApplyFunc, log Logger) *SaveHook {
	if log == nil {
		log = nopLogger{}
	}
	return &SaveHook{co: co, apply: apply, log: log}
}

// Name implements hook.Hook.
func (h *SaveHook) Name() string { return SaveHookName }

// Priority implements hook.Hook.
func (h *SaveHook) Priority() int { return SaveHookPriority }

// OnSave implements hook.Hook. Non-PHP documents are ignored. Failures
// are already surfaced through notifications, so the hook only logs.
func (h *SaveHook) OnSave(event hook.SaveEvent) {
	doc := event.Document
	if doc == nil || doc.LanguageID != editor.LanguagePHP {
		return
	}

	fixed, err := h.co.Fix(context.Background(), doc)
	if errors.Is(err, ErrFixInFlight) {
		return
	}
	if err != nil {
		h.log.Debug("format on save skipped for %s: %v", doc.Name, err)
		return
	}

	if fixed == doc.Text() {
		return
	}
	if h.apply != nil {
		if err := h.apply(doc, fixed); err != nil {
			h.log.Error("apply fixed text to %s: %v", doc.Name, err)
		}
	}
}
