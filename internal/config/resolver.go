package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

// extensionPathToken is the placeholder in exec_path that expands to the
// integration's own installation directory.
const extensionPathToken = "${extensionPath}"

// Logger is the logging interface the resolver needs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Resolver owns the current Configuration snapshot and rebuilds it when
// the settings source signals a change.
//
// Reloads are reentrancy-guarded: a reload requested while one is in
// flight is ignored, not queued. A failing settings read aborts the
// reload and leaves the prior configuration intact.
type Resolver struct {
	load LoadFunc
	log  Logger

	// onSave is invoked with the resolved on_save flag after every
	// successful reload, so the host can toggle its save hook.
	onSave func(enabled bool)

	extensionDir string
	home         string

	// reloading guards against reentrant reloads.
	reloading atomic.Bool

	// current holds the latest resolved snapshot.
	current atomic.Pointer[Configuration]
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the resolver's logger.
func WithLogger(log Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// WithOnSaveFunc sets the callback toggling the format-on-save hook.
func WithOnSaveFunc(fn func(enabled bool)) Option {
	return func(r *Resolver) {
		r.onSave = fn
	}
}

// WithExtensionDir sets the directory ${extensionPath} expands to.
func WithExtensionDir(dir string) Option {
	return func(r *Resolver) {
		r.extensionDir = dir
	}
}

// WithHomeDir sets the directory a leading ~/ expands to.
func WithHomeDir(dir string) Option {
	return func(r *Resolver) {
		r.home = dir
	}
}

// New creates a Resolver reading settings through load.
// The initial configuration is the resolved defaults; call Reload to
// pick up the settings source.
func New(load LoadFunc, opts ...Option) *Resolver {
	r := &Resolver{
		load: load,
		log:  nopLogger{},
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.extensionDir == "" {
		if exe, err := os.Executable(); err == nil {
			r.extensionDir = filepath.Dir(exe)
		}
	}
	if r.home == "" {
		if home, err := os.UserHomeDir(); err == nil {
			r.home = home
		}
	}

	cfg := r.resolve(DefaultSettings())
	r.current.Store(&cfg)

	return r
}

// Current returns the latest configuration snapshot.
func (r *Resolver) Current() *Configuration {
	return r.current.Load()
}

// Reload re-reads the settings source and swaps in a new snapshot.
//
// Concurrent reloads while one is in progress are ignored. A settings
// read error is logged and the prior configuration is kept.
func (r *Resolver) Reload() {
	if !r.reloading.CompareAndSwap(false, true) {
		r.log.Debug("settings reload already in progress, ignoring")
		return
	}
	defer r.reloading.Store(false)

	settings, err := r.load()
	if err != nil {
		r.log.Error("settings reload failed, keeping prior configuration: %v", err)
		return
	}

	cfg := r.resolve(settings)
	r.current.Store(&cfg)
	r.log.Debug("settings reloaded: exec=%s on_save=%v", cfg.ExecPath, cfg.OnSave)

	if r.onSave != nil {
		r.onSave(cfg.OnSave)
	}
}

// resolve builds a Configuration from raw settings.
func (r *Resolver) resolve(settings Settings) Configuration {
	rules, err := normalizeRules(settings.Rules)
	if err != nil {
		r.log.Error("invalid rules setting, ignoring: %v", err)
	}

	timeout := DefaultTimeout
	if settings.Timeout != "" {
		d, err := time.ParseDuration(settings.Timeout)
		if err != nil {
			r.log.Error("invalid timeout setting %q, using %s: %v", settings.Timeout, DefaultTimeout, err)
		} else {
			timeout = d
		}
	}

	return Configuration{
		ExecPath: r.expandExecPath(settings.ExecPath),
		Rules:    rules,
		Config:   settings.Config,
		OnSave:   settings.OnSave,
		Timeout:  timeout,
	}
}

// expandExecPath applies ${extensionPath} and ~/ expansion.
func (r *Resolver) expandExecPath(path string) string {
	if r.extensionDir != "" {
		path = strings.ReplaceAll(path, extensionPathToken, r.extensionDir)
	}
	return ExpandHome(path, r.home)
}
