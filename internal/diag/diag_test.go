package diag

import (
	"strings"
	"testing"

	"github.com/shiroscript/shiro/internal/token"
)

func TestFormatIncludesCodeFileAndPosition(t *testing.T) {
	d := New(CodeUnrecognizedToken, "unexpected '%'", token.Position{Line: 2, Column: 5}, "main.shiro", "let x = 1;\nlet y = %;")
	out := d.Format()

	if !strings.Contains(out, string(CodeUnrecognizedToken)) {
		t.Error("formatted output should include the diagnostic code")
	}
	if !strings.Contains(out, "main.shiro:2:5") {
		t.Error("formatted output should include file and position")
	}
	if !strings.Contains(out, "let y = %;") {
		t.Error("formatted output should quote the offending source line")
	}
	if !strings.Contains(out, "unexpected '%'") {
		t.Error("formatted output should include the message")
	}
}

func TestFormatWithoutFileOmitsFileFromHeader(t *testing.T) {
	d := New(CodeGenericRuntimeError, "boom", token.Position{Line: 1, Column: 1}, "", "")
	out := d.Format()
	if strings.Contains(out, " in :") {
		t.Error("an empty file name should not leak into the header")
	}
}

func TestFormatCaretAlignsWithColumn(t *testing.T) {
	d := New(CodeInvalidToken, "bad token", token.Position{Line: 1, Column: 3}, "f.shiro", "ab?")
	lines := strings.Split(d.Format(), "\n")

	var sourceLineIdx int
	for i, l := range lines {
		if strings.Contains(l, "ab?") {
			sourceLineIdx = i
			break
		}
	}
	caretLine := lines[sourceLineIdx+1]
	if !strings.HasSuffix(caretLine, "^") {
		t.Errorf("caret line should end in ^, got %q", caretLine)
	}
}

func TestDiagnosticImplementsError(t *testing.T) {
	var err error = New(CodeModuleNotFound, "nope", token.Position{Line: 1, Column: 1}, "", "")
	if err.Error() == "" {
		t.Error("Error() should return a non-empty string")
	}
}
