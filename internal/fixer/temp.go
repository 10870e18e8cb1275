package fixer

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempManager owns the temporary file a fix operation hands to the
// external binary.
//
// The path is deterministic: the temp directory plus the document's
// base filename. Two documents sharing a base name would collide, which
// is safe only because fix operations are serialized by the
// coordinator's single-slot gate.
type TempManager struct {
	// Dir is the directory for temp files. Defaults to os.TempDir().
	Dir string
}

// NewTempManager creates a TempManager using the platform temp directory.
func NewTempManager() *TempManager {
	return &TempManager{Dir: os.TempDir()}
}

// Materialize writes text to the temp file for the given document name
// and returns its path.
func (m *TempManager) Materialize(docName, text string) (string, error) {
	dir := m.Dir
	if dir == "" {
		dir = os.TempDir()
	}

	path := filepath.Join(dir, filepath.Base(docName))
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("write temp file %s: %w", path, err)
	}
	return path, nil
}

// Release removes the temp file. Removal is best-effort: failures are
// swallowed and never propagated.
func (m *TempManager) Release(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}
