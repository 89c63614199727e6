package parser

import (
	"fmt"

	"able/minipy/pkg/ast"
	"able/minipy/pkg/lexer"
	"able/minipy/pkg/runtime"
)

// parseExpr is the entry point for the full operator grammar, precedence
// lowest to highest: or > and > not > comparison > (+ -) > (* /) >
// postfix (dotted path / call / str(...)) > primary.
func (p *Parser) parseExpr() (runtime.Executable, error) {
	return p.parseOr()
}

// parseExprList parses a comma-separated list of expressions (used by
// print and call-argument lists); at least one expression is required.
func (p *Parser) parseExprList() ([]runtime.Executable, error) {
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	args := []runtime.Executable{first}
	for p.isChar(',') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}
	return args, nil
}

func (p *Parser) parseOr() (runtime.Executable, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Tag == lexer.Or {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.Or{Lhs: left, Rhs: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (runtime.Executable, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur.Tag == lexer.And {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &ast.And{Lhs: left, Rhs: right}
	}
	return left, nil
}

func (p *Parser) parseNot() (runtime.Executable, error) {
	if p.cur.Tag == lexer.Not {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Arg: operand}, nil
	}
	return p.parseComparison()
}

func comparatorFor(tok lexer.Token) (runtime.Comparator, bool) {
	switch {
	case tok.Tag == lexer.Eq:
		return runtime.Equal, true
	case tok.Tag == lexer.NotEq:
		return runtime.NotEqual, true
	case tok.Tag == lexer.LessOrEq:
		return runtime.LessOrEqual, true
	case tok.Tag == lexer.GreaterOrEq:
		return runtime.GreaterOrEqual, true
	case tok.Tag == lexer.Char && tok.ChValue == '<':
		return runtime.Less, true
	case tok.Tag == lexer.Char && tok.ChValue == '>':
		return runtime.Greater, true
	default:
		return nil, false
	}
}

func (p *Parser) parseComparison() (runtime.Executable, error) {
	left, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	if cmp, ok := comparatorFor(p.cur); ok {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{Lhs: left, Rhs: right, Cmp: cmp}, nil
	}
	return left, nil
}

func (p *Parser) parseAddSub() (runtime.Executable, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}
	for p.isChar('+') || p.isChar('-') {
		op := p.cur.ChValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			left = &ast.Add{Lhs: left, Rhs: right}
		} else {
			left = &ast.Sub{Lhs: left, Rhs: right}
		}
	}
	return left, nil
}

func (p *Parser) parseMulDiv() (runtime.Executable, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	for p.isChar('*') || p.isChar('/') {
		op := p.cur.ChValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			left = &ast.Mult{Lhs: left, Rhs: right}
		} else {
			left = &ast.Div{Lhs: left, Rhs: right}
		}
	}
	return left, nil
}

// parsePostfix handles dotted field access and call application chained
// onto a primary. A '.' step extends a VariableValue's id path in place
// when it is immediately followed by another '.' or nothing callable;
// when followed by '(' it becomes a MethodCall on whatever the chain has
// built so far. Field access is only ever valid on a VariableValue — the
// runtime has no node for reading a field off an arbitrary expression
// result, matching spec.md's VariableValue contract.
func (p *Parser) parsePostfix() (runtime.Executable, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.isChar('.') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(lexer.Id); err != nil {
			return nil, err
		}
		name := p.cur.StrValue
		if err := p.advance(); err != nil {
			return nil, err
		}

		if p.isChar('(') {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			expr = &ast.MethodCall{Object: expr, Method: name, Args: args}
			continue
		}

		v, ok := expr.(*ast.VariableValue)
		if !ok {
			return nil, fmt.Errorf("parse error: cannot access field %q of a call result", name)
		}
		expr = &ast.VariableValue{Ids: append(append([]string{}, v.Ids...), name)}
	}
	return expr, nil
}

func (p *Parser) parseArgs() ([]runtime.Executable, error) {
	if err := p.consumeChar('('); err != nil {
		return nil, err
	}
	var args []runtime.Executable
	if !p.isChar(')') {
		list, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		args = list
	}
	if err := p.consumeChar(')'); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (runtime.Executable, error) {
	switch {
	case p.cur.Tag == lexer.Number:
		v := p.cur.IntValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.NumberLiteral{Value: runtime.Number{Value: v}}, nil

	case p.cur.Tag == lexer.String:
		v := p.cur.StrValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StringLiteral{Value: runtime.String{Value: v}}, nil

	case p.cur.Tag == lexer.True:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.BoolLiteral{Value: runtime.Boolean{Value: true}}, nil

	case p.cur.Tag == lexer.False:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.BoolLiteral{Value: runtime.Boolean{Value: false}}, nil

	case p.cur.Tag == lexer.None:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NoneLiteral{}, nil

	case p.isChar('('):
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consumeChar(')'); err != nil {
			return nil, err
		}
		return expr, nil

	case p.cur.Tag == lexer.Id && p.cur.StrValue == "str":
		return p.parseStrCall()

	case p.cur.Tag == lexer.Id:
		return p.parseIdentifierPrimary()

	default:
		return nil, fmt.Errorf("parse error: unexpected token %s", p.cur)
	}
}

func (p *Parser) parseStrCall() (runtime.Executable, error) {
	if err := p.advance(); err != nil { // consume "str"
		return nil, err
	}
	if err := p.consumeChar('('); err != nil {
		return nil, err
	}
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.consumeChar(')'); err != nil {
		return nil, err
	}
	return &ast.Stringify{Arg: arg}, nil
}

// parseIdentifierPrimary resolves a bare identifier: if it names a
// previously-defined class and is immediately called, it is instance
// construction; otherwise it is a variable reference (the start of a
// VariableValue dotted path, possibly extended by parsePostfix).
func (p *Parser) parseIdentifierPrimary() (runtime.Executable, error) {
	name := p.cur.StrValue
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.isChar('(') {
		class, ok := p.classes[name]
		if !ok {
			return nil, fmt.Errorf("parse error: %q is not a known class", name)
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &ast.NewInstance{Class: class, Args: args}, nil
	}
	return &ast.VariableValue{Ids: []string{name}}, nil
}
