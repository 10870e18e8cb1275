package fixer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTempManager_Materialize(t *testing.T) {
	m := &TempManager{Dir: t.TempDir()}

	path, err := m.Materialize("index.php", "<?php echo 1;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filepath.Base(path) != "index.php" {
		t.Errorf("expected temp file named after document, got %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read temp file: %v", err)
	}
	if string(data) != "<?php echo 1;" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestTempManager_MaterializeUsesBaseName(t *testing.T) {
	m := &TempManager{Dir: t.TempDir()}

	path, err := m.Materialize("/srv/app/src/index.php", "<?php")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filepath.Base(path) != "index.php" {
		t.Errorf("expected only the base filename, got %s", path)
	}
	if filepath.Dir(path) != m.Dir {
		t.Errorf("expected temp file in %s, got %s", m.Dir, path)
	}
}

func TestTempManager_Release(t *testing.T) {
	m := &TempManager{Dir: t.TempDir()}

	path, err := m.Materialize("index.php", "<?php")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.Release(path)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected temp file to be removed")
	}

	// Releasing a missing file is swallowed.
	m.Release(path)
	m.Release("")
}
