package parser

import (
	"strconv"

	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/token"
)

func (p *Parser) parseIntegerLit() ast.Expr {
	tok := p.cur
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.genericErrorf(tok.Pos, "invalid integer literal %q at %s", tok.Literal, tok.Pos)
		return nil
	}
	return &ast.IntegerLit{Token: tok, Value: v}
}

func (p *Parser) parseDecimalLit() ast.Expr {
	tok := p.cur
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.genericErrorf(tok.Pos, "invalid decimal literal %q at %s", tok.Literal, tok.Pos)
		return nil
	}
	return &ast.DecimalLit{Token: tok, Value: v}
}

func (p *Parser) parseStringLit() ast.Expr {
	return &ast.StringLit{Token: p.cur, Value: p.cur.Literal}
}

func (p *Parser) parseBooleanLit() ast.Expr {
	return &ast.BooleanLit{Token: p.cur, Value: p.cur.Type == token.TRUE}
}

func (p *Parser) parseNullLit() ast.Expr {
	return &ast.NullLit{Token: p.cur}
}

func (p *Parser) parseUnary() ast.Expr {
	tok := p.cur
	p.next()
	return &ast.UnaryOp{Token: tok, Op: tok.Type, Value: p.parseExpr(UNARY)}
}

// parseUnaryMinus handles a leading `-` as numeric negation, desugared to
// `0 - expr` so the evaluator only needs the binary-op table of §3.3.
func (p *Parser) parseUnaryMinus() ast.Expr {
	tok := p.cur
	p.next()
	operand := p.parseExpr(UNARY)
	return &ast.BinaryOp{
		Token: tok,
		Left:  &ast.IntegerLit{Token: tok, Value: 0},
		Op:    token.MINUS,
		Right: operand,
	}
}

func (p *Parser) parseGroupedExpr() ast.Expr {
	p.next()
	expr := p.parseExpr(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseBinaryOp(left ast.Expr) ast.Expr {
	tok := p.cur
	precedence := p.curPrecedence()
	p.next()
	right := p.parseExpr(precedence)
	return &ast.BinaryOp{Token: tok, Left: left, Op: tok.Type, Right: right}
}

// parseObjectDef parses `{ key: expr, ... }`. cur is on the opening `{`.
func (p *Parser) parseObjectDef() ast.Expr {
	tok := p.cur
	def := &ast.ObjectDef{Token: tok}

	if p.peekIs(token.RBRACE) {
		p.next()
		return def
	}

	for {
		p.next()
		if !p.curIs(token.IDENT) && !p.curIs(token.STRING) {
			p.genericErrorf(p.cur.Pos, "expected object key, got %s at %s", p.cur.Type, p.cur.Pos)
			return def
		}
		entryTok := p.cur
		key := p.cur.Literal
		if !p.expectPeek(token.COLON) {
			return def
		}
		p.next()
		value := p.parseExpr(LOWEST)
		def.Entries = append(def.Entries, &ast.ObjectEntry{Token: entryTok, Key: key, Value: value})

		if p.peekIs(token.COMMA) {
			p.next()
			continue
		}
		break
	}

	if !p.expectPeek(token.RBRACE) {
		return def
	}
	return def
}

// parseArrayDef parses `[ expr, ... ]`. cur is on the opening `[`.
func (p *Parser) parseArrayDef() ast.Expr {
	tok := p.cur
	def := &ast.ArrayDef{Token: tok}

	if p.peekIs(token.RBRACKET) {
		p.next()
		return def
	}

	p.next()
	def.Items = append(def.Items, p.parseExpr(LOWEST))
	for p.peekIs(token.COMMA) {
		p.next()
		p.next()
		def.Items = append(def.Items, p.parseExpr(LOWEST))
	}

	if !p.expectPeek(token.RBRACKET) {
		return def
	}
	return def
}

// parseFunctionDecl parses `fun name?(params) { body }`. cur is on `fun`.
func (p *Parser) parseFunctionDecl() ast.Expr {
	tok := p.cur
	decl := &ast.FunctionDecl{Token: tok}

	if p.peekIs(token.IDENT) {
		p.next()
		decl.Name = p.cur.Literal
	}

	if !p.expectPeek(token.LPAREN) {
		return decl
	}
	decl.Params = p.parseParamList()

	if !p.expectPeek(token.LBRACE) {
		return decl
	}
	decl.Body = p.parseBlock()
	if !p.curIs(token.RBRACE) {
		p.genericErrorf(tok.Pos, "unterminated function body at %s", tok.Pos)
	}
	return decl
}

func (p *Parser) parseParamList() []string {
	var params []string
	if p.peekIs(token.RPAREN) {
		p.next()
		return params
	}
	p.next()
	params = append(params, p.cur.Literal)
	for p.peekIs(token.COMMA) {
		p.next()
		p.next()
		params = append(params, p.cur.Literal)
	}
	if !p.expectPeek(token.RPAREN) {
		return params
	}
	return params
}

func (p *Parser) parseArgList() []ast.Expr {
	var args []ast.Expr
	if p.peekIs(token.RPAREN) {
		p.next()
		return args
	}
	p.next()
	args = append(args, p.parseExpr(LOWEST))
	for p.peekIs(token.COMMA) {
		p.next()
		p.next()
		args = append(args, p.parseExpr(LOWEST))
	}
	if !p.expectPeek(token.RPAREN) {
		return args
	}
	return args
}

var assignOps = map[token.Type]bool{
	token.ASSIGN: true, token.PLUSEQ: true, token.MINUSEQ: true,
	token.STAREQ: true, token.SLASHEQ: true, token.PERCENTEQ: true,
}

// parseIdentOrCallOrAssign is the prefix parse function for any expression
// starting with an identifier. A reference path in this language is flat
// (spec §3.1): `a.b.c` is one Ref with Path ["a","b","c"]; an index only
// ever computes the final segment (`a.b[expr]`), so indexing does not
// chain further. The same primary also resolves to an Invocation when
// followed by `(`, or to an AssignOp when followed by an assignment
// operator.
func (p *Parser) parseIdentOrCallOrAssign() ast.Expr {
	tok := p.cur
	path := []string{p.cur.Literal}

	for p.peekIs(token.DOT) {
		p.next()
		if !p.expectPeek(token.IDENT) {
			return &ast.Ref{Token: tok, Path: path}
		}
		path = append(path, p.cur.Literal)
	}

	if p.peekIs(token.LPAREN) {
		p.next()
		args := p.parseArgList()
		return &ast.Invocation{Token: tok, Path: path, Args: args}
	}

	ref := &ast.Ref{Token: tok, Path: path}
	if p.peekIs(token.LBRACKET) {
		p.next()
		p.next()
		ref.Indexed = p.parseExpr(LOWEST)
		if !p.expectPeek(token.RBRACKET) {
			return ref
		}
	}

	if assignOps[p.peek.Type] {
		p.next()
		opTok := p.cur
		p.next()
		value := p.parseExpr(LOWEST)
		return &ast.AssignOp{Token: opTok, Target: ref, Op: opTok.Type, Value: value}
	}

	return ref
}
