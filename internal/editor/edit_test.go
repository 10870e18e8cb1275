package editor

import "testing"

func TestFullDocumentRange(t *testing.T) {
	text := "<?php\necho 1;\n"
	r := FullDocumentRange(text)

	if r.Start.Line != 0 || r.Start.Character != 0 {
		t.Errorf("unexpected start %+v", r.Start)
	}

	// Trailing newline leaves an empty final line.
	if r.End.Line != 2 || r.End.Character != 0 {
		t.Errorf("unexpected end %+v", r.End)
	}
}

func TestApplyEdits_ReplaceAll(t *testing.T) {
	doc := NewDocument("/tmp/a.php", []byte("<?php\necho   1 ;\n"))
	fixed := "<?php\necho 1;\n"

	doc.ApplyEdits([]TextEdit{ReplaceAll(doc.Text(), fixed)})

	if doc.Text() != fixed {
		t.Errorf("expected %q, got %q", fixed, doc.Text())
	}
}

func TestApplyEdits_Partial(t *testing.T) {
	doc := NewDocument("/tmp/a.php", []byte("<?php\necho 1;\necho 2;\n"))

	doc.ApplyEdits([]TextEdit{{
		Range: Range{
			Start: Position{Line: 1, Character: 5},
			End:   Position{Line: 1, Character: 6},
		},
		NewText: "42",
	}})

	want := "<?php\necho 42;\necho 2;\n"
	if doc.Text() != want {
		t.Errorf("expected %q, got %q", want, doc.Text())
	}
}

func TestApplyEdits_ClampsOutOfRange(t *testing.T) {
	doc := NewDocument("/tmp/a.php", []byte("abc"))

	doc.ApplyEdits([]TextEdit{{
		Range: Range{
			Start: Position{Line: 0, Character: 1},
			End:   Position{Line: 5, Character: 0},
		},
		NewText: "Z",
	}})

	if doc.Text() != "aZ" {
		t.Errorf("expected %q, got %q", "aZ", doc.Text())
	}
}

func TestApplyEdits_Empty(t *testing.T) {
	doc := NewDocument("/tmp/a.php", []byte("abc"))
	doc.ApplyEdits(nil)

	if doc.Version() != 0 {
		t.Errorf("expected version unchanged, got %d", doc.Version())
	}
}
