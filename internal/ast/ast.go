// Package ast defines the Abstract Syntax Tree node types the evaluator
// walks. The shape follows spec §3.1 exactly: almost every construct,
// including control flow and declarations, is an Expr — there is no
// separate Statement interface, mirroring the single `Expr` enum of the
// language this interpreter implements.
package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shiroscript/shiro/internal/token"
)

// Node is the base interface every AST node implements.
type Node interface {
	// TokenLiteral returns the literal text of the token the node starts
	// with. Mostly useful for debugging and tests.
	TokenLiteral() string
	// String renders the node back to source-like text for debugging.
	String() string
	// Pos returns the node's position in the source file.
	Pos() token.Position
}

// Expr is any node that can appear where a value is expected. Per spec
// §3.1, that is every node in this language.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of a parsed source file: an ordered block of
// top-level expressions.
type Program struct {
	Statements []Expr
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// Nop is a no-op expression; the parser never emits it but the evaluator
// must still handle it per spec §3.1.
type Nop struct{ Token token.Token }

func (n *Nop) exprNode()             {}
func (n *Nop) TokenLiteral() string  { return n.Token.Literal }
func (n *Nop) String() string        { return "" }
func (n *Nop) Pos() token.Position   { return n.Token.Pos }

// NullLit is the `null` literal.
type NullLit struct{ Token token.Token }

func (n *NullLit) exprNode()            {}
func (n *NullLit) TokenLiteral() string { return n.Token.Literal }
func (n *NullLit) String() string       { return "null" }
func (n *NullLit) Pos() token.Position  { return n.Token.Pos }

// IntegerLit is a 64-bit signed integer literal.
type IntegerLit struct {
	Token token.Token
	Value int64
}

func (n *IntegerLit) exprNode()            {}
func (n *IntegerLit) TokenLiteral() string { return n.Token.Literal }
func (n *IntegerLit) String() string       { return n.Token.Literal }
func (n *IntegerLit) Pos() token.Position  { return n.Token.Pos }

// DecimalLit is a 64-bit float literal.
type DecimalLit struct {
	Token token.Token
	Value float64
}

func (n *DecimalLit) exprNode()            {}
func (n *DecimalLit) TokenLiteral() string { return n.Token.Literal }
func (n *DecimalLit) String() string       { return n.Token.Literal }
func (n *DecimalLit) Pos() token.Position  { return n.Token.Pos }

// BooleanLit is a `true`/`false` literal.
type BooleanLit struct {
	Token token.Token
	Value bool
}

func (n *BooleanLit) exprNode()            {}
func (n *BooleanLit) TokenLiteral() string { return n.Token.Literal }
func (n *BooleanLit) String() string       { return n.Token.Literal }
func (n *BooleanLit) Pos() token.Position  { return n.Token.Pos }

// StringLit is a double-quoted string literal.
type StringLit struct {
	Token token.Token
	Value string
}

func (n *StringLit) exprNode()            {}
func (n *StringLit) TokenLiteral() string { return n.Token.Literal }
func (n *StringLit) String() string       { return fmt.Sprintf("%q", n.Value) }
func (n *StringLit) Pos() token.Position  { return n.Token.Pos }

// Let always defines Name in the current scope with the result of Value.
type Let struct {
	Token token.Token
	Name  string
	Value Expr
}

func (n *Let) exprNode()            {}
func (n *Let) TokenLiteral() string { return n.Token.Literal }
func (n *Let) String() string       { return fmt.Sprintf("let %s = %s", n.Name, n.Value.String()) }
func (n *Let) Pos() token.Position  { return n.Token.Pos }

// Ref is a reference to a variable or property path: Regular for a plain
// dotted path (`a.b.c`), Indexed when the last segment is computed
// (`a.b[expr]`).
type Ref struct {
	Token   token.Token
	Path    []string
	Indexed Expr // non-nil only for an Indexed reference
}

func (n *Ref) exprNode()            {}
func (n *Ref) TokenLiteral() string { return n.Token.Literal }
func (n *Ref) String() string {
	if n.Indexed != nil {
		return strings.Join(n.Path, ".") + "[" + n.Indexed.String() + "]"
	}
	return strings.Join(n.Path, ".")
}
func (n *Ref) Pos() token.Position { return n.Token.Pos }

// AssignOp assigns to Target the result of applying Op (`=`, `+=`, `-=`,
// `*=`, `/=`, `%=`) with Value.
type AssignOp struct {
	Token  token.Token
	Target *Ref
	Op     token.Type
	Value  Expr
}

func (n *AssignOp) exprNode()            {}
func (n *AssignOp) TokenLiteral() string { return n.Token.Literal }
func (n *AssignOp) String() string {
	return fmt.Sprintf("%s %s %s", n.Target.String(), n.Token.Literal, n.Value.String())
}
func (n *AssignOp) Pos() token.Position { return n.Token.Pos }

// BinaryOp is a left/right binary operator expression.
type BinaryOp struct {
	Token token.Token
	Left  Expr
	Op    token.Type
	Right Expr
}

func (n *BinaryOp) exprNode()            {}
func (n *BinaryOp) TokenLiteral() string { return n.Token.Literal }
func (n *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left.String(), n.Token.Literal, n.Right.String())
}
func (n *BinaryOp) Pos() token.Position { return n.Token.Pos }

// UnaryOp is a prefix unary operator expression (only `!` in this
// language).
type UnaryOp struct {
	Token token.Token
	Op    token.Type
	Value Expr
}

func (n *UnaryOp) exprNode()            {}
func (n *UnaryOp) TokenLiteral() string { return n.Token.Literal }
func (n *UnaryOp) String() string       { return fmt.Sprintf("(%s%s)", n.Token.Literal, n.Value.String()) }
func (n *UnaryOp) Pos() token.Position  { return n.Token.Pos }

// Invocation calls the function bound to Path with Args.
type Invocation struct {
	Token token.Token
	Path  []string
	Args  []Expr
}

func (n *Invocation) exprNode()            {}
func (n *Invocation) TokenLiteral() string { return n.Token.Literal }
func (n *Invocation) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", strings.Join(n.Path, "."), strings.Join(args, ", "))
}
func (n *Invocation) Pos() token.Position { return n.Token.Pos }

// FunctionDecl declares a function, named or anonymous. Body is an
// ordered block of expressions (see spec §4.4 for block semantics).
type FunctionDecl struct {
	Token  token.Token
	Name   string // "" when anonymous
	Params []string
	Body   []Expr
}

func (n *FunctionDecl) exprNode()            {}
func (n *FunctionDecl) TokenLiteral() string { return n.Token.Literal }
func (n *FunctionDecl) String() string {
	name := n.Name
	return fmt.Sprintf("fun %s(%s) {...}", name, strings.Join(n.Params, ", "))
}
func (n *FunctionDecl) Pos() token.Position { return n.Token.Pos }

// ObjectEntry is one `key: expr` pair inside an ObjectDef.
type ObjectEntry struct {
	Token token.Token
	Key   string
	Value Expr
}

func (n *ObjectEntry) exprNode()            {}
func (n *ObjectEntry) TokenLiteral() string { return n.Token.Literal }
func (n *ObjectEntry) String() string       { return fmt.Sprintf("%s: %s", n.Key, n.Value.String()) }
func (n *ObjectEntry) Pos() token.Position  { return n.Token.Pos }

// ObjectDef is an object literal; evaluating it allocates a heap Object.
type ObjectDef struct {
	Token   token.Token
	Entries []*ObjectEntry
}

func (n *ObjectDef) exprNode()            {}
func (n *ObjectDef) TokenLiteral() string { return n.Token.Literal }
func (n *ObjectDef) String() string {
	entries := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		entries[i] = e.String()
	}
	return "{" + strings.Join(entries, ", ") + "}"
}
func (n *ObjectDef) Pos() token.Position { return n.Token.Pos }

// ArrayDef is an array literal; evaluating it allocates a heap Array.
type ArrayDef struct {
	Token token.Token
	Items []Expr
}

func (n *ArrayDef) exprNode()            {}
func (n *ArrayDef) TokenLiteral() string { return n.Token.Literal }
func (n *ArrayDef) String() string {
	items := make([]string, len(n.Items))
	for i, it := range n.Items {
		items[i] = it.String()
	}
	return "[" + strings.Join(items, ", ") + "]"
}
func (n *ArrayDef) Pos() token.Position { return n.Token.Pos }

// IfBranch is one `if`/`else if`/`else` arm. Condition is nil for the
// final, unconditional `else` arm.
type IfBranch struct {
	Condition Expr
	Body      []Expr
}

// If is an ordered list of branches; the first whose Condition is nil or
// truthy executes (spec §4.3).
type If struct {
	Token    token.Token
	Branches []*IfBranch
}

func (n *If) exprNode()            {}
func (n *If) TokenLiteral() string { return n.Token.Literal }
func (n *If) String() string       { return "if (...) {...}" }
func (n *If) Pos() token.Position  { return n.Token.Pos }

// While loops Body while Cond is truthy.
type While struct {
	Token token.Token
	Cond  Expr
	Body  []Expr
}

func (n *While) exprNode()            {}
func (n *While) TokenLiteral() string { return n.Token.Literal }
func (n *While) String() string       { return fmt.Sprintf("while (%s) {...}", n.Cond.String()) }
func (n *While) Pos() token.Position  { return n.Token.Pos }

// For is a C-style loop: Init runs once, then Cond/Body/Step repeat.
type For struct {
	Token token.Token
	Init  Expr
	Cond  Expr
	Step  Expr
	Body  []Expr
}

func (n *For) exprNode()            {}
func (n *For) TokenLiteral() string { return n.Token.Literal }
func (n *For) String() string {
	return fmt.Sprintf("for (%s; %s; %s) {...}", n.Init.String(), n.Cond.String(), n.Step.String())
}
func (n *For) Pos() token.Position { return n.Token.Pos }

// Return halts the enclosing block and yields Value as its result (spec
// §4.4).
type Return struct {
	Token token.Token
	Value Expr
}

func (n *Return) exprNode()            {}
func (n *Return) TokenLiteral() string { return n.Token.Literal }
func (n *Return) String() string       { return "return " + n.Value.String() }
func (n *Return) Pos() token.Position  { return n.Token.Pos }

// Import evaluates Path (a native library marker or a source module) and
// binds the result to Name in the current scope.
type Import struct {
	Token token.Token
	Path  string
	Name  string
}

func (n *Import) exprNode()            {}
func (n *Import) TokenLiteral() string { return n.Token.Literal }
func (n *Import) String() string       { return fmt.Sprintf("use %q as %s", n.Path, n.Name) }
func (n *Import) Pos() token.Position  { return n.Token.Pos }
