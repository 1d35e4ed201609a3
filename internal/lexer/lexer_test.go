package lexer

import (
	"testing"

	"github.com/shiroscript/shiro/internal/diag"
	"github.com/shiroscript/shiro/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `let x = 5;
	x = x + 10;
	`

	tests := []struct {
		expectedLiteral string
		expectedType    token.Type
	}{
		{"let", token.LET},
		{"x", token.IDENT},
		{"=", token.ASSIGN},
		{"5", token.INT},
		{";", token.SEMICOLON},
		{"x", token.IDENT},
		{"=", token.ASSIGN},
		{"x", token.IDENT},
		{"+", token.PLUS},
		{"10", token.INT},
		{";", token.SEMICOLON},
		{"", token.EOF},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `let fun if else while for return true false null use as`

	tests := []token.Type{
		token.LET, token.FUN, token.IF, token.ELSE, token.WHILE, token.FOR,
		token.RETURN, token.TRUE, token.FALSE, token.NULL, token.USE, token.AS,
	}

	l := New(input)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - expected=%q, got=%q (literal=%q)", i, want, tok.Type, tok.Literal)
		}
	}
}

func TestTwoCharOperators(t *testing.T) {
	input := `== != <= >= += -= *= /= %= && ||`
	tests := []struct {
		typ     token.Type
		literal string
	}{
		{token.EQ, "=="}, {token.NEQ, "!="}, {token.LE, "<="}, {token.GE, ">="},
		{token.PLUSEQ, "+="}, {token.MINUSEQ, "-="}, {token.STAREQ, "*="},
		{token.SLASHEQ, "/="}, {token.PERCENTEQ, "%="}, {token.AND, "&&"}, {token.OR, "||"},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.typ || tok.Literal != tt.literal {
			t.Fatalf("tests[%d] - expected=%q/%q, got=%q/%q", i, tt.typ, tt.literal, tok.Type, tok.Literal)
		}
	}
}

func TestSingleAmpersandIsIllegal(t *testing.T) {
	l := New(`&`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Errorf("a lone '&' should be illegal, got %v", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Errorf("expected one recorded lexer error, got %d", len(l.Errors()))
	}
	if got := l.Errors()[0].Code; got != diag.CodeInvalidToken {
		t.Errorf("expected CodeInvalidToken, got %v", got)
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"line1\nline2\t\"quoted\"\\"`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %v", tok.Type)
	}
	want := "line1\nline2\t\"quoted\"\\"
	if tok.Literal != want {
		t.Errorf("got %q, want %q", tok.Literal, want)
	}
}

func TestFloatRequiresDigitAfterDot(t *testing.T) {
	l := New(`3.14`)
	tok := l.NextToken()
	if tok.Type != token.FLOAT || tok.Literal != "3.14" {
		t.Errorf("got %v %q, want FLOAT 3.14", tok.Type, tok.Literal)
	}

	l = New(`3.x`)
	tok = l.NextToken()
	if tok.Type != token.INT || tok.Literal != "3" {
		t.Errorf("a dot not followed by a digit should end the number: got %v %q, want INT 3", tok.Type, tok.Literal)
	}
}

func TestColumnCountsRunesNotBytes(t *testing.T) {
	l := New(`"é" x`)
	l.NextToken() // the string
	tok := l.NextToken()
	if tok.Literal != "x" {
		t.Fatalf("expected identifier x, got %q", tok.Literal)
	}
	if tok.Pos.Column != 5 {
		t.Errorf("expected column 5 counting é as one rune, got %d", tok.Pos.Column)
	}
}

func TestLineTracking(t *testing.T) {
	l := New("let x = 1;\nlet y = 2;")
	for i := 0; i < 5; i++ {
		l.NextToken()
	}
	tok := l.NextToken() // "let" on line 2
	if tok.Pos.Line != 2 {
		t.Errorf("expected line 2, got %d", tok.Pos.Line)
	}
}
