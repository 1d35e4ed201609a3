package parser

import "github.com/shiroscript/shiro/internal/ast"
import "github.com/shiroscript/shiro/internal/token"

// parseLet parses `let name = expr`. cur is on `let`.
func (p *Parser) parseLet() ast.Expr {
	tok := p.cur
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.cur.Literal
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.next()
	value := p.parseExpr(LOWEST)
	return &ast.Let{Token: tok, Name: name, Value: value}
}

// parseImport parses `use "path" as name`. cur is on `use`.
func (p *Parser) parseImport() ast.Expr {
	tok := p.cur
	if !p.expectPeek(token.STRING) {
		return nil
	}
	path := p.cur.Literal
	if !p.expectPeek(token.AS) {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.Import{Token: tok, Path: path, Name: p.cur.Literal}
}

// parseIf parses a chain of `if (cond) {...} else if (cond) {...} else {...}`.
// cur is on `if`.
func (p *Parser) parseIf() ast.Expr {
	tok := p.cur
	node := &ast.If{Token: tok}

	for {
		branch := &ast.IfBranch{}
		if !p.expectPeek(token.LPAREN) {
			return node
		}
		p.next()
		branch.Condition = p.parseExpr(LOWEST)
		if !p.expectPeek(token.RPAREN) {
			return node
		}
		if !p.expectPeek(token.LBRACE) {
			return node
		}
		branch.Body = p.parseBlock()
		node.Branches = append(node.Branches, branch)

		if p.peekIs(token.ELSE) {
			p.next()
			if p.peekIs(token.IF) {
				p.next()
				continue
			}
			if !p.expectPeek(token.LBRACE) {
				return node
			}
			node.Branches = append(node.Branches, &ast.IfBranch{Body: p.parseBlock()})
		}
		break
	}

	return node
}

// parseWhile parses `while (cond) { body }`. cur is on `while`.
func (p *Parser) parseWhile() ast.Expr {
	tok := p.cur
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.next()
	cond := p.parseExpr(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	return &ast.While{Token: tok, Cond: cond, Body: p.parseBlock()}
}

// parseFor parses `for (init; cond; step) { body }`. cur is on `for`.
func (p *Parser) parseFor() ast.Expr {
	tok := p.cur
	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.next()
	init := p.parseTopLevelNoTrailingSemi()
	if !p.peekIs(token.SEMICOLON) {
		p.genericErrorf(p.peek.Pos, "expected ';' after for-init at %s", p.peek.Pos)
		return nil
	}
	p.next()

	p.next()
	cond := p.parseExpr(LOWEST)
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}

	p.next()
	step := p.parseTopLevelNoTrailingSemi()
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlock()

	return &ast.For{Token: tok, Init: init, Cond: cond, Step: step, Body: body}
}

// parseTopLevelNoTrailingSemi parses a single let/assignment/expression
// clause without consuming a trailing `;` itself — used inside a `for`
// header where the caller owns the separators.
func (p *Parser) parseTopLevelNoTrailingSemi() ast.Expr {
	if p.curIs(token.LET) {
		return p.parseLet()
	}
	return p.parseExpr(LOWEST)
}

// parseReturn parses `return expr` or a bare `return`. cur is on `return`.
func (p *Parser) parseReturn() ast.Expr {
	tok := p.cur
	if p.peekIs(token.SEMICOLON) || p.peekIs(token.RBRACE) {
		return &ast.Return{Token: tok, Value: &ast.NullLit{Token: tok}}
	}
	p.next()
	return &ast.Return{Token: tok, Value: p.parseExpr(LOWEST)}
}
