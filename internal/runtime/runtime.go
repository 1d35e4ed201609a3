// Package runtime implements the Runtime Driver (spec §4.7): it owns the
// Heap, the native library registry, and the interpreter, and exposes the
// one operation the CLI needs — evaluate a source file (or an inline
// snippet) to a Value, running gc() afterward, and render any error as a
// positioned diagnostic against the file it came from.
//
// Grounded on the teacher's top-level internal/interp package
// (Interpreter owning shared runtime state behind a RunFile-style entry
// point) and on original_source/interpreter/src/parser/mod.rs's
// preprocess -> lex -> parse pipeline and file-table diagnostics.
package runtime

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/diag"
	"github.com/shiroscript/shiro/internal/eval"
	"github.com/shiroscript/shiro/internal/heap"
	"github.com/shiroscript/shiro/internal/lexer"
	"github.com/shiroscript/shiro/internal/natives"
	"github.com/shiroscript/shiro/internal/parser"
	"github.com/shiroscript/shiro/internal/preproc"
	"github.com/shiroscript/shiro/internal/scope"
	"github.com/shiroscript/shiro/internal/stdlib"
	"github.com/shiroscript/shiro/internal/value"
)

// Runtime owns everything shared across one program run: a single Heap
// and native registry, and the Interp that threads them through
// evaluation. Module imports (spec §4.5) resolve relative to the
// importing file's directory and are always evaluated fresh — never
// cached — against a new root scope that shares this same Heap and
// registry.
type Runtime struct {
	heap    *heap.Heap
	natives *natives.Registry
	interp  *eval.Interp

	baseDir string
}

// stdlibRootEnvVar names the environment variable whose value roots
// `@`-prefixed source module resolution once the registry has already
// rejected the path as unrecognized (spec §4.5 item 2, §6 "Environment").
const stdlibRootEnvVar = "SHIRO_STDLIB_ROOT"

// New creates a Runtime with every supplemented standard library
// registered (spec §4.6's @std/* paths).
func New() *Runtime {
	h := heap.New()
	reg := natives.NewRegistry()
	stdlib.RegisterAll(reg)

	rt := &Runtime{heap: h, natives: reg}
	rt.interp = eval.New(h, reg)
	rt.interp.ModuleLoader = rt.loadModule
	return rt
}

// EvalFile parses and evaluates the program at path, then runs a
// mark-sweep collection rooted at the final root scope's own bindings.
func (rt *Runtime) EvalFile(path string) (value.Value, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(diag.ErrMsgModuleNotFound, path)
	}
	rt.baseDir = filepath.Dir(path)
	return rt.evalSource(path, string(code))
}

// EvalString parses and evaluates code as if it were a file named
// "<eval>" rooted in the current working directory — the `-e` CLI path.
func (rt *Runtime) EvalString(code string) (value.Value, error) {
	rt.baseDir = "."
	return rt.evalSource("<eval>", code)
}

func (rt *Runtime) evalSource(name, code string) (value.Value, error) {
	program, err := rt.parse(name, code)
	if err != nil {
		return nil, err
	}

	root := rt.interp.NewRootScope()
	result, err := rt.interp.EvalBlock(program.Statements, root)
	if err != nil {
		return nil, err
	}

	rt.heap.GC(rootValues(root))
	return result, nil
}

func (rt *Runtime) parse(name, code string) (*ast.Program, error) {
	clean := preproc.Strip(code)
	l := lexer.New(clean)
	p := parser.New(l)
	prog := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		first := errs[0]
		return nil, diag.New(first.Code, first.Message, first.Pos, name, clean)
	}
	return prog, nil
}

// loadModule implements eval.Interp's ModuleLoader for paths the native
// registry does not recognize (spec §4.5 item 2): an unrecognized
// `@`-prefixed path resolves against the stdlib root named by
// stdlibRootEnvVar when that variable is set; any other path — including
// an `@`-prefixed one with no stdlib root configured — resolves relative
// to the directory of whichever file is currently being evaluated. The
// target is read and evaluated fresh against a brand new root scope
// sharing this Runtime's Heap and registry; the result is never cached.
// No collection runs after a module: the heap is only collected once
// the top-level program has finished.
func (rt *Runtime) loadModule(path string) (value.Value, error) {
	var full string
	switch {
	case strings.HasPrefix(path, "@") && os.Getenv(stdlibRootEnvVar) != "":
		full = filepath.Join(os.Getenv(stdlibRootEnvVar), strings.TrimPrefix(path, "@"))
	case filepath.IsAbs(path):
		full = path
	default:
		full = filepath.Join(rt.baseDir, strings.TrimPrefix(path, "@"))
	}
	code, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf(diag.ErrMsgModuleNotFound, path)
	}
	program, err := rt.parse(full, string(code))
	if err != nil {
		return nil, err
	}
	prevDir := rt.baseDir
	rt.baseDir = filepath.Dir(full)
	defer func() { rt.baseDir = prevDir }()
	return rt.interp.EvalBlock(program.Statements, rt.interp.NewRootScope())
}

// ReportError renders err to stderr. Diagnostics print their full
// source-line-and-caret form; any other error (an internal Go error with
// no source position) is printed as a plain generic-runtime-error line.
func (rt *Runtime) ReportError(err error) {
	if d, ok := err.(*diag.Diagnostic); ok {
		fmt.Fprintln(os.Stderr, d.Format())
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", diag.CodeGenericRuntimeError, err.Error())
}

func rootValues(root *scope.Scope) []value.Value {
	bindings := root.Bindings()
	vals := make([]value.Value, 0, len(bindings))
	for _, v := range bindings {
		vals = append(vals, v)
	}
	return vals
}
