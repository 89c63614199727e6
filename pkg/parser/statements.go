package parser

import (
	"fmt"

	"able/minipy/pkg/ast"
	"able/minipy/pkg/lexer"
	"able/minipy/pkg/runtime"
)

func (p *Parser) parseStatement() (runtime.Executable, error) {
	switch p.cur.Tag {
	case lexer.Class:
		return p.parseClassDef()
	case lexer.If:
		return p.parseIfElse()
	case lexer.Print:
		return p.parsePrintStmt()
	case lexer.Return:
		return p.parseReturnStmt()
	default:
		return p.parseAssignmentOrExprStatement()
	}
}

func (p *Parser) parseClassDef() (runtime.Executable, error) {
	if err := p.consume(lexer.Class); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.Id); err != nil {
		return nil, err
	}
	name := p.cur.StrValue
	if err := p.advance(); err != nil {
		return nil, err
	}

	var parent *runtime.Class
	if p.isChar('(') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(lexer.Id); err != nil {
			return nil, err
		}
		parentName := p.cur.StrValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		var ok bool
		parent, ok = p.classes[parentName]
		if !ok {
			return nil, fmt.Errorf("parse error: unknown parent class %q", parentName)
		}
		if err := p.consumeChar(')'); err != nil {
			return nil, err
		}
	}

	if err := p.consumeChar(':'); err != nil {
		return nil, err
	}
	if err := p.consume(lexer.Newline); err != nil {
		return nil, err
	}
	if err := p.consume(lexer.Indent); err != nil {
		return nil, err
	}

	var methods []runtime.Method
	for p.cur.Tag != lexer.Dedent {
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if err := p.consume(lexer.Dedent); err != nil {
		return nil, err
	}

	class := runtime.NewClass(name, methods, parent)
	p.classes[name] = class
	return &ast.ClassDefinition{Class: class}, nil
}

func (p *Parser) parseMethodDef() (runtime.Method, error) {
	if err := p.consume(lexer.Def); err != nil {
		return runtime.Method{}, err
	}
	if err := p.expect(lexer.Id); err != nil {
		return runtime.Method{}, err
	}
	name := p.cur.StrValue
	if err := p.advance(); err != nil {
		return runtime.Method{}, err
	}

	if err := p.consumeChar('('); err != nil {
		return runtime.Method{}, err
	}
	var params []string
	if !p.isChar(')') {
		for {
			if err := p.expect(lexer.Id); err != nil {
				return runtime.Method{}, err
			}
			params = append(params, p.cur.StrValue)
			if err := p.advance(); err != nil {
				return runtime.Method{}, err
			}
			if !p.isChar(',') {
				break
			}
			if err := p.advance(); err != nil {
				return runtime.Method{}, err
			}
		}
	}
	if err := p.consumeChar(')'); err != nil {
		return runtime.Method{}, err
	}
	if err := p.consumeChar(':'); err != nil {
		return runtime.Method{}, err
	}
	// The leading self is bound by ClassInstance.Call, not passed as an
	// argument, so it is not counted among the formal parameters.
	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}

	body, err := p.parseBlock()
	if err != nil {
		return runtime.Method{}, err
	}
	return runtime.Method{Name: name, Params: params, Body: &ast.MethodBody{Body: body}}, nil
}

func (p *Parser) parseIfElse() (runtime.Executable, error) {
	if err := p.consume(lexer.If); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.consumeChar(':'); err != nil {
		return nil, err
	}
	thenBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBody runtime.Executable
	if p.cur.Tag == lexer.Else {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.consumeChar(':'); err != nil {
			return nil, err
		}
		elseBody, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfElse{Cond: cond, Then: thenBody, Else: elseBody}, nil
}

func (p *Parser) parsePrintStmt() (runtime.Executable, error) {
	if err := p.consume(lexer.Print); err != nil {
		return nil, err
	}
	args, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if err := p.consume(lexer.Newline); err != nil {
		return nil, err
	}
	return &ast.Print{Args: args}, nil
}

func (p *Parser) parseReturnStmt() (runtime.Executable, error) {
	if err := p.consume(lexer.Return); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.consume(lexer.Newline); err != nil {
		return nil, err
	}
	return &ast.Return{Expr: expr}, nil
}

// parseAssignmentOrExprStatement parses a leading expression and then
// decides, from what follows, whether it was an assignment target or a
// standalone expression statement. Because '=' never appears inside
// expression grammar, the expression parse always stops cleanly right
// before it.
func (p *Parser) parseAssignmentOrExprStatement() (runtime.Executable, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.isChar('=') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consume(lexer.Newline); err != nil {
			return nil, err
		}
		v, ok := expr.(*ast.VariableValue)
		if !ok {
			return nil, fmt.Errorf("parse error: invalid assignment target")
		}
		if len(v.Ids) == 1 {
			return &ast.Assignment{Name: v.Ids[0], Rhs: rhs}, nil
		}
		return &ast.FieldAssignment{
			Object: &ast.VariableValue{Ids: v.Ids[:len(v.Ids)-1]},
			Field:  v.Ids[len(v.Ids)-1],
			Rhs:    rhs,
		}, nil
	}

	if err := p.consume(lexer.Newline); err != nil {
		return nil, err
	}
	return &ast.ExprStatement{Expr: expr}, nil
}
