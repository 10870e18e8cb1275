package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dshills/phpfix/internal/config"
	"github.com/dshills/phpfix/internal/config/watcher"
	"github.com/dshills/phpfix/internal/editor"
	"github.com/dshills/phpfix/internal/fixer"
	"github.com/dshills/phpfix/internal/hook"
	"github.com/dshills/phpfix/internal/notify"
	"github.com/dshills/phpfix/internal/process"
)

// shutdownGrace bounds how long Shutdown waits for a running fix
// process before killing it.
const shutdownGrace = 5 * time.Second

// Options configures a session.
type Options struct {
	// SettingsPath is the TOML settings file. Empty uses defaults
	// without live reload.
	SettingsPath string

	// WorkspaceRoot is the active workspace root. Empty means no
	// workspace is open.
	WorkspaceRoot string

	// LogLevel is the minimum level written to LogOutput.
	LogLevel LogLevel

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer
}

// Application owns one editor session's formatter integration state.
type Application struct {
	log       *Logger
	notifier  *notify.Dispatcher
	hooks     *hook.Registry
	providers *editor.ProviderRegistry
	resolver  *config.Resolver
	sup       *process.Supervisor
	co        *fixer.Coordinator
	saveHook  *fixer.SaveHook

	watch *watcher.Watcher

	mu            sync.RWMutex
	workspaceRoot string

	shutdownOnce sync.Once
}

// New creates and wires a session.
//
// The settings file is read once up front; if a settings path is given,
// a watcher keeps the configuration live afterwards. The PHP format
// provider is always registered; the format-on-save hook follows the
// on_save setting.
func New(opts Options) (*Application, error) {
	app := &Application{
		notifier:      notify.NewDispatcher(),
		hooks:         hook.NewRegistry(),
		providers:     editor.NewProviderRegistry(),
		sup:           process.NewSupervisor(),
		workspaceRoot: opts.WorkspaceRoot,
	}

	app.log = NewLogger(LoggerConfig{
		Level:  opts.LogLevel,
		Output: opts.LogOutput,
		Prefix: "phpfix",
	})

	app.resolver = config.New(
		config.FileLoader(opts.SettingsPath),
		config.WithLogger(app.log.WithComponent("config")),
		config.WithOnSaveFunc(app.toggleSaveHook),
	)

	app.co = fixer.New(
		app.resolver,
		fixer.WithNotifier(app.notifier),
		fixer.WithSupervisor(app.sup),
		fixer.WithLogger(app.log.WithComponent("fixer")),
		fixer.WithWorkspaceRoot(app.WorkspaceRoot),
	)

	app.saveHook = fixer.NewSaveHook(app.co, app.applyFixed, app.log.WithComponent("hook"))
	app.providers.Register(editor.LanguagePHP, fixer.NewProvider(app.co))

	// Pick up the settings file and toggle the save hook.
	app.resolver.Reload()

	if opts.SettingsPath != "" {
		w, err := watcher.New(opts.SettingsPath, app.resolver.Reload,
			watcher.WithLogger(app.log.WithComponent("watcher")))
		if err != nil {
			return nil, fmt.Errorf("watch settings: %w", err)
		}
		app.watch = w
	}

	return app, nil
}

// Logger returns the session logger.
func (app *Application) Logger() *Logger {
	return app.log
}

// Notifier returns the notification dispatcher.
func (app *Application) Notifier() *notify.Dispatcher {
	return app.notifier
}

// Hooks returns the save-hook registry.
func (app *Application) Hooks() *hook.Registry {
	return app.hooks
}

// Config returns the current configuration snapshot.
func (app *Application) Config() *config.Configuration {
	return app.resolver.Current()
}

// WorkspaceRoot returns the active workspace root.
func (app *Application) WorkspaceRoot() string {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.workspaceRoot
}

// SetWorkspaceRoot changes the active workspace root.
func (app *Application) SetWorkspaceRoot(root string) {
	app.mu.Lock()
	app.workspaceRoot = root
	app.mu.Unlock()
}

// FormatFile loads a file, formats it through the registered provider,
// and writes it back when it changed. It reports whether the file was
// rewritten.
func (app *Application) FormatFile(ctx context.Context, path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	doc := editor.NewDocument(path, content)
	changed, err := app.providers.Format(ctx, doc)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(doc.Text()), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// DocumentSaved routes a save event through the hook registry.
func (app *Application) DocumentSaved(doc *editor.Document) {
	app.hooks.Emit(hook.SaveEvent{Document: doc})
}

// Shutdown releases the session's resources: the settings watcher, any
// running fixer process, and the notification dispatcher.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		if app.watch != nil {
			_ = app.watch.Close()
		}
		app.sup.Shutdown(shutdownGrace)
		app.notifier.Close()
	})
}

// toggleSaveHook matches the hook registration to the on_save setting.
func (app *Application) toggleSaveHook(enabled bool) {
	if enabled {
		app.hooks.Register(app.saveHook)
		return
	}
	app.hooks.Unregister(fixer.SaveHookName)
}

// applyFixed writes fixed text back to a saved document and its file.
func (app *Application) applyFixed(doc *editor.Document, fixed string) error {
	doc.SetText(fixed)
	if doc.Path == "" {
		return nil
	}
	return os.WriteFile(doc.Path, []byte(fixed), 0o644)
}
