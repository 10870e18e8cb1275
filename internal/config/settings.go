// Package config resolves the formatter integration's settings into an
// immutable Configuration snapshot and rebuilds it when the settings
// source changes.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the raw settings schema as read from the TOML settings file.
type Settings struct {
	// ExecPath is the php-cs-fixer executable path. Supports the
	// ${extensionPath} placeholder and a leading ~/.
	ExecPath string `toml:"exec_path"`

	// Rules is either a rule-set name (string) or a rule table.
	Rules any `toml:"rules"`

	// Config is a semicolon-separated ordered list of candidate
	// config-file paths. Entries may start with ~/.
	Config string `toml:"config"`

	// OnSave enables format-on-save for PHP documents.
	OnSave bool `toml:"on_save"`

	// Timeout bounds a single fix operation, for example "30s".
	Timeout string `toml:"timeout"`
}

// DefaultSettings returns the settings used when no settings file exists.
// The default config candidates mirror php-cs-fixer's own discovery order.
func DefaultSettings() Settings {
	return Settings{
		ExecPath: "php-cs-fixer",
		Config:   ".php-cs-fixer.php;.php-cs-fixer.dist.php;.php_cs;.php_cs.dist",
		Timeout:  "30s",
	}
}

// LoadFunc reads raw settings from the settings source.
type LoadFunc func() (Settings, error)

// FileLoader returns a LoadFunc reading TOML settings from path.
// A missing file yields the defaults; an unreadable or malformed file
// is an error (the resolver keeps the prior configuration).
func FileLoader(path string) LoadFunc {
	return func() (Settings, error) {
		if path == "" {
			return DefaultSettings(), nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return DefaultSettings(), nil
			}
			return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
		}

		settings := DefaultSettings()
		if err := toml.Unmarshal(data, &settings); err != nil {
			return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
		}
		return settings, nil
	}
}

// Configuration is an immutable snapshot of the resolved settings.
type Configuration struct {
	// ExecPath is the executable path with ${extensionPath} and ~/ expanded.
	ExecPath string

	// Rules is the configured rule selection.
	Rules RuleSpec

	// Config is the raw semicolon-separated config-file candidate list.
	Config string

	// OnSave indicates format-on-save is enabled.
	OnSave bool

	// Timeout bounds a single fix operation (0 disables the bound).
	Timeout time.Duration
}

// DefaultTimeout bounds a fix operation when the settings omit one.
const DefaultTimeout = 30 * time.Second

// ExpandHome substitutes a leading ~/ with the home directory.
func ExpandHome(path, home string) string {
	if home == "" || !strings.HasPrefix(path, "~/") {
		return path
	}
	return filepath.Join(home, path[2:])
}
