package editor

import "strings"

// Position is a zero-based line/character location in a document.
type Position struct {
	Line      int
	Character int
}

// Range is a half-open [Start, End) span in a document.
type Range struct {
	Start Position
	End   Position
}

// TextEdit replaces the text inside Range with NewText.
type TextEdit struct {
	Range   Range
	NewText string
}

// FullDocumentRange returns a range covering the entire text.
func FullDocumentRange(text string) Range {
	lines := strings.Split(text, "\n")
	last := len(lines) - 1
	return Range{
		Start: Position{Line: 0, Character: 0},
		End:   Position{Line: last, Character: len(lines[last])},
	}
}

// ReplaceAll returns a single edit replacing the whole of text with newText.
func ReplaceAll(text, newText string) TextEdit {
	return TextEdit{
		Range:   FullDocumentRange(text),
		NewText: newText,
	}
}

// applyEdit splices a single edit into text.
func applyEdit(text string, edit TextEdit) string {
	start := offsetOf(text, edit.Range.Start)
	end := offsetOf(text, edit.Range.End)
	if start > len(text) {
		start = len(text)
	}
	if end > len(text) {
		end = len(text)
	}
	if end < start {
		end = start
	}
	return text[:start] + edit.NewText + text[end:]
}

// offsetOf converts a line/character position into a byte offset.
// Positions past the end of a line or the document clamp to the end.
func offsetOf(text string, pos Position) int {
	offset := 0
	line := 0
	for line < pos.Line {
		nl := strings.IndexByte(text[offset:], '\n')
		if nl < 0 {
			return len(text)
		}
		offset += nl + 1
		line++
	}

	lineEnd := len(text)
	if nl := strings.IndexByte(text[offset:], '\n'); nl >= 0 {
		lineEnd = offset + nl
	}

	offset += pos.Character
	if offset > lineEnd {
		offset = lineEnd
	}
	return offset
}
