package stdlib

import (
	"testing"

	"github.com/shiroscript/shiro/internal/eval"
	"github.com/shiroscript/shiro/internal/heap"
	"github.com/shiroscript/shiro/internal/lexer"
	"github.com/shiroscript/shiro/internal/natives"
	"github.com/shiroscript/shiro/internal/parser"
	"github.com/shiroscript/shiro/internal/preproc"
	"github.com/shiroscript/shiro/internal/value"
)

// testEval parses and evaluates input against a fresh Interp with every
// @std library registered, the way the runtime driver wires them.
func testEval(t *testing.T, input string) value.Value {
	t.Helper()
	l := lexer.New(preproc.Strip(input))
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parser errors: %v", errs)
	}

	reg := natives.NewRegistry()
	RegisterAll(reg)
	in := eval.New(heap.New(), reg)
	root := in.NewRootScope()
	result, err := in.EvalBlock(program.Statements, root)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	return result
}

func TestMathLibrary(t *testing.T) {
	cases := map[string]string{
		`use "@std/math" as math; math.sqrt(16);`:    "4",
		`use "@std/math" as math; math.floor(3.7);`:  "3",
		`use "@std/math" as math; math.ceil(3.2);`:   "4",
		`use "@std/math" as math; math.pow(2, 10);`:  "1024",
		`use "@std/math" as math; math.min(3, 1, 2);`: "1",
		`use "@std/math" as math; math.max(3, 1, 2);`: "3",
	}
	for src, want := range cases {
		if got := testEval(t, src).ToString(); got != want {
			t.Errorf("%s = %s, want %s", src, got, want)
		}
	}
}

func TestCollectionsLibrary(t *testing.T) {
	got := testEval(t, `
		use "@std/collections" as col;
		let arr = [3, 1, 2];
		col.sum(arr);
	`)
	if got.ToString() != "6" {
		t.Errorf("sum got %v, want 6", got.ToString())
	}

	got = testEval(t, `
		use "@std/collections" as col;
		col.min([5, 2, 8]);
	`)
	if got.ToString() != "2" {
		t.Errorf("min got %v, want 2", got.ToString())
	}
}

func TestCollectionsSortReturnsNewSortedArray(t *testing.T) {
	got := testEval(t, `
		use "@std/collections" as col;
		let sorted = col.sort([3, 1, 2]);
		sorted[0];
	`)
	if got.ToString() != "1" {
		t.Errorf("got %v, want 1", got.ToString())
	}
}

func TestStringsLibraryNormalize(t *testing.T) {
	got := testEval(t, `
		use "@std/strings" as s;
		s.normalize("abc");
	`)
	if got.ToString() != "abc" {
		t.Errorf("got %v, want abc", got.ToString())
	}
}

func TestStringsLibraryCompareTextIdentical(t *testing.T) {
	got := testEval(t, `
		use "@std/strings" as s;
		s.compareText("abc", "abc");
	`)
	if got.ToString() != "0" {
		t.Errorf("identical strings should compare equal, got %v", got.ToString())
	}
}

func TestEncodingRoundTripsThroughUTF16(t *testing.T) {
	got := testEval(t, `
		use "@std/encoding" as enc;
		let bytes = enc.toUTF16("hi");
		enc.fromUTF16(bytes);
	`)
	if got.ToString() != "hi" {
		t.Errorf("round trip got %v, want hi", got.ToString())
	}
}

func TestTimeMillisReturnsAPositiveInteger(t *testing.T) {
	got := testEval(t, `use "@std/time" as t; t.millis();`)
	iv, ok := got.(*value.IntegerValue)
	if !ok {
		t.Fatalf("expected an IntegerValue, got %T", got)
	}
	if iv.Value <= 0 {
		t.Errorf("expected a positive millisecond timestamp, got %d", iv.Value)
	}
}

func TestIOPrintlnReturnsNull(t *testing.T) {
	got := testEval(t, `use "@std/io" as io; io.println("hello");`)
	if got != value.Null {
		t.Errorf("println should return Null, got %v", got.ToString())
	}
}
