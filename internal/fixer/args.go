package fixer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/phpfix/internal/config"
)

// Workspace placeholder tokens accepted in exec_path.
const (
	workspaceRootToken   = "${workspaceRoot}"
	workspaceFolderToken = "${workspaceFolder}"
)

// vscodeDir is the editor settings directory searched before the
// workspace root for relative config-file entries.
const vscodeDir = ".vscode"

// ExistsFunc tests whether a candidate config file exists on disk.
type ExistsFunc func(path string) bool

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ArgBuilder computes the php-cs-fixer command line for one invocation.
// The argument list is recomputed per request because the workspace root
// and configuration can change between calls.
type ArgBuilder struct {
	// Exists tests config-file candidates. Defaults to an os.Stat check.
	Exists ExistsFunc

	// Home is the directory a leading ~/ in config entries expands to.
	Home string
}

// NewArgBuilder creates an ArgBuilder with OS defaults.
func NewArgBuilder() *ArgBuilder {
	b := &ArgBuilder{Exists: fileExists}
	if home, err := os.UserHomeDir(); err == nil {
		b.Home = home
	}
	return b
}

// Build returns the argument tokens for a fix invocation, without the
// trailing temp-file path.
//
// The config-file discovery scans candidates in configuration order:
// for each entry, absolute paths are taken as-is and relative paths are
// tried under <root>/.vscode/ then <root>/. The first existing file
// wins and at most one --config flag is emitted. Only when no config
// file is found does a configured rule set produce a --rules flag; with
// neither, the binary falls back to its own discovery.
func (b *ArgBuilder) Build(cfg *config.Configuration, workspaceRoot string) []string {
	args := []string{"fix", "--using-cache=no", "--path-mode=override", "-vv"}

	if path, ok := b.findConfigFile(cfg.Config, workspaceRoot); ok {
		return append(args, "--config="+path)
	}

	if !cfg.Rules.IsZero() {
		if flag, err := cfg.Rules.Flag(); err == nil && flag != "" {
			args = append(args, "--rules="+flag)
		}
	}

	return args
}

// findConfigFile runs the candidate scan and returns the first existing
// config file.
func (b *ArgBuilder) findConfigFile(configSetting, workspaceRoot string) (string, bool) {
	entries := splitConfigSetting(configSetting, b.Home)
	if len(entries) == 0 {
		return "", false
	}

	var searchPaths []string
	if workspaceRoot != "" {
		searchPaths = []string{
			filepath.Join(workspaceRoot, vscodeDir) + string(filepath.Separator),
			workspaceRoot + string(filepath.Separator),
		}
	}

	exists := b.Exists
	if exists == nil {
		exists = fileExists
	}

	for _, entry := range entries {
		if filepath.IsAbs(entry) {
			if exists(entry) {
				return entry, true
			}
			continue
		}
		for _, prefix := range searchPaths {
			candidate := prefix + entry
			if exists(candidate) {
				return candidate, true
			}
		}
	}

	return "", false
}

// splitConfigSetting splits the semicolon-separated config setting into
// ordered entries, dropping empties and expanding a leading ~/ per entry.
func splitConfigSetting(setting, home string) []string {
	var entries []string
	for _, entry := range strings.Split(setting, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		entries = append(entries, config.ExpandHome(entry, home))
	}
	return entries
}

// ResolveExecPath substitutes a ${workspaceRoot} or ${workspaceFolder}
// placeholder prefix with the workspace root. Without an open workspace
// the path is returned unchanged.
func ResolveExecPath(execPath, workspaceRoot string) string {
	if workspaceRoot == "" {
		return execPath
	}
	if strings.HasPrefix(execPath, workspaceRootToken) {
		return workspaceRoot + execPath[len(workspaceRootToken):]
	}
	if strings.HasPrefix(execPath, workspaceFolderToken) {
		return workspaceRoot + execPath[len(workspaceFolderToken):]
	}
	return execPath
}
