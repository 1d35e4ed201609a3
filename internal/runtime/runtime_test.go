package runtime

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shiroscript/shiro/internal/diag"
	"github.com/shiroscript/shiro/internal/value"
)

func TestEvalStringReturnsNullForStatementsWithNoFinalValue(t *testing.T) {
	rt := New()
	got, err := rt.EvalString(`let x = 1;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != value.Null {
		t.Errorf("a trailing `let` has no useful value, expected Null, got %v", got.ToString())
	}
}

func TestEvalStringReturnsLastExpressionValue(t *testing.T) {
	rt := New()
	got, err := rt.EvalString(`1 + 2;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ToString() != "3" {
		t.Errorf("got %v, want 3", got.ToString())
	}
}

func TestEvalStringReportsParseErrorsAsDiagnostics(t *testing.T) {
	rt := New()
	_, err := rt.EvalString(`let = ;`)
	if err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestParseFailureSurfacesItsSpecificDiagnosticCode(t *testing.T) {
	rt := New()
	_, err := rt.EvalString(`let x = 1 & 2;`)
	d, ok := err.(*diag.Diagnostic)
	if !ok {
		t.Fatalf("expected a *diag.Diagnostic, got %T", err)
	}
	if d.Code != diag.CodeInvalidToken {
		t.Errorf("illegal character should surface E0201, got %s", d.Code)
	}
}

func TestNativeStdlibImportIsUsable(t *testing.T) {
	rt := New()
	got, err := rt.EvalString(`
		use "@std/math" as math;
		math.abs(-5);
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ToString() != "5" {
		t.Errorf("got %v, want 5", got.ToString())
	}
}

func TestUnknownModulePathIsAModuleNotFoundError(t *testing.T) {
	rt := New()
	_, err := rt.EvalString(`use "./does_not_exist.shiro" as m;`)
	if err == nil {
		t.Fatal("expected a module-not-found error")
	}
}

func TestUnregisteredAtPathWithNoStdlibRootIsModuleNotFound(t *testing.T) {
	rt := New()
	_, err := rt.EvalString(`use "@not/a/real/lib" as m;`)
	if err == nil {
		t.Fatal("expected a module-not-found error, not a native-library lookup failure")
	}
}

func TestUnregisteredAtPathResolvesUnderStdlibRootEnvVar(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "greeting.shiro"), []byte(`let msg = "hi"; msg;`), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(stdlibRootEnvVar, root)

	rt := New()
	got, err := rt.EvalString(`use "@greeting.shiro" as g; g;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ToString() != "hi" {
		t.Errorf("got %v, want hi", got.ToString())
	}
}

func TestEvalFileLoadsSiblingModuleRelativeToImportingFile(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "lib.shiro")
	mainPath := filepath.Join(dir, "main.shiro")

	if err := os.WriteFile(libPath, []byte(`let answer = 42; answer;`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(mainPath, []byte(`use "lib.shiro" as lib; lib;`), 0o644); err != nil {
		t.Fatal(err)
	}

	rt := New()
	got, err := rt.EvalFile(mainPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ToString() != "42" {
		t.Errorf("got %v, want 42", got.ToString())
	}
}
