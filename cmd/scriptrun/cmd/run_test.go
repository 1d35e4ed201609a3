package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestRunScriptFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.shiro")
	if err := os.WriteFile(path, []byte(`1 + 2;`), 0o644); err != nil {
		t.Fatal(err)
	}

	var runErr error
	output := captureStdout(t, func() {
		runErr = runScript(runCmd, []string{path})
	})
	if runErr != nil {
		t.Fatalf("runScript failed: %v", runErr)
	}
	if !strings.Contains(output, "3") {
		t.Errorf("expected output to contain 3, got %q", output)
	}
}

func TestRunScriptInlineEval(t *testing.T) {
	evalExpr = `2 * 21;`
	defer func() { evalExpr = "" }()

	var runErr error
	output := captureStdout(t, func() {
		runErr = runScript(runCmd, nil)
	})
	if runErr != nil {
		t.Fatalf("runScript failed: %v", runErr)
	}
	if !strings.Contains(output, "42") {
		t.Errorf("expected output to contain 42, got %q", output)
	}
}

func TestRunScriptWithNoFileAndNoInlineIsAnError(t *testing.T) {
	evalExpr = ""
	if err := runScript(runCmd, nil); err == nil {
		t.Error("expected an error when neither a file nor -e is given")
	}
}

func TestRunScriptNullResultPrintsNothing(t *testing.T) {
	evalExpr = `let x = 1;`
	defer func() { evalExpr = "" }()

	output := captureStdout(t, func() {
		if err := runScript(runCmd, nil); err != nil {
			t.Fatalf("runScript failed: %v", err)
		}
	})
	if strings.TrimSpace(output) != "" {
		t.Errorf("a Null result should print nothing, got %q", output)
	}
}
