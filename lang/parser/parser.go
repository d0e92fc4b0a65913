// Package parser turns a token stream into the abstract syntax tree
// consumed by the interpreter.
//
// The grammar is parsed by recursive descent with one token of lookahead.
// Binary operator precedence, loosest to tightest:
//
//	||  &&  == !=  < > <= >=  + -  * / %  unary - !
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ardnew/grim/lang/ast"
	"github.com/ardnew/grim/lang/scanner"
	"github.com/ardnew/grim/lang/token"
)

// Error describes a syntax error at a specific token.
type Error struct {
	Msg string
	Tok token.Token
}

// Error implements the error interface.
func (e *Error) Error() string {
	where := strconv.Quote(e.Tok.Lexeme)
	if e.Tok.Kind == token.EOF {
		where = "end of input"
	}

	return fmt.Sprintf("%d:%d: %s (at %s)",
		e.Tok.Pos.Line, e.Tok.Pos.Column, e.Msg, where)
}

// Parser consumes a token stream produced by the scanner.
type Parser struct {
	tokens  []token.Token
	current int
}

// New creates a Parser over the given tokens. The stream must be terminated
// by an EOF token, as produced by [scanner.Scanner.Scan].
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseString scans and parses source text in one step.
func ParseString(source string) (*ast.Program, error) {
	tokens, err := scanner.New(source).Scan()
	if err != nil {
		return nil, err
	}

	return New(tokens).Parse()
}

// Parse consumes the entire token stream and returns the program tree.
// The first syntax error aborts the parse.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{}

	for !p.check(token.EOF) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		prog.Statements = append(prog.Statements, stmt)
	}

	return prog, nil
}

func (p *Parser) statement() (ast.Statement, error) {
	switch {
	case p.match(token.Let):
		return p.varDecl()
	case p.match(token.Fn):
		return p.fnDecl()
	case p.match(token.If):
		return p.ifStmt()
	case p.match(token.While):
		return p.whileStmt()
	case p.match(token.Return):
		return p.returnStmt()
	case p.match(token.Print):
		return p.printStmt()
	case p.match(token.Input):
		return p.inputStmt()
	case p.check(token.Identifier):
		return p.assignStmt()
	default:
		return nil, p.errorf("expected statement")
	}
}

func (p *Parser) varDecl() (ast.Statement, error) {
	at := p.previous().Pos

	name, err := p.consume(token.Identifier, "expected variable name after 'let'")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.Equal, "expected '=' after variable name"); err != nil {
		return nil, err
	}

	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.Semicolon, "expected ';' after declaration"); err != nil {
		return nil, err
	}

	return ast.VarDecl{Name: name.Lexeme, Value: value, At: at}, nil
}

func (p *Parser) assignStmt() (ast.Statement, error) {
	name := p.advance()

	if _, err := p.consume(token.Equal, "expected '=' after identifier"); err != nil {
		return nil, err
	}

	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.Semicolon, "expected ';' after assignment"); err != nil {
		return nil, err
	}

	return ast.Assign{Name: name.Lexeme, Value: value, At: name.Pos}, nil
}

func (p *Parser) ifStmt() (ast.Statement, error) {
	at := p.previous().Pos

	cond, err := p.parenExpr("if")
	if err != nil {
		return nil, err
	}

	then, err := p.block()
	if err != nil {
		return nil, err
	}

	var alt []ast.Statement

	if p.match(token.Else) {
		alt, err = p.block()
		if err != nil {
			return nil, err
		}
	}

	return ast.If{Cond: cond, Then: then, Else: alt, At: at}, nil
}

func (p *Parser) whileStmt() (ast.Statement, error) {
	at := p.previous().Pos

	cond, err := p.parenExpr("while")
	if err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return ast.While{Cond: cond, Body: body, At: at}, nil
}

func (p *Parser) fnDecl() (ast.Statement, error) {
	at := p.previous().Pos

	name, err := p.consume(token.Identifier, "expected function name after 'fn'")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.LeftParen, "expected '(' after function name"); err != nil {
		return nil, err
	}

	var params []string

	if !p.check(token.RightParen) {
		for {
			param, err := p.consume(token.Identifier, "expected parameter name")
			if err != nil {
				return nil, err
			}

			params = append(params, param.Lexeme)

			if !p.match(token.Comma) {
				break
			}
		}
	}

	if _, err := p.consume(token.RightParen, "expected ')' after parameters"); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return ast.FnDecl{Name: name.Lexeme, Params: params, Body: body, At: at}, nil
}

func (p *Parser) returnStmt() (ast.Statement, error) {
	at := p.previous().Pos

	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.Semicolon, "expected ';' after return value"); err != nil {
		return nil, err
	}

	return ast.Return{Value: value, At: at}, nil
}

func (p *Parser) printStmt() (ast.Statement, error) {
	at := p.previous().Pos

	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.Semicolon, "expected ';' after print value"); err != nil {
		return nil, err
	}

	return ast.Print{Value: value, At: at}, nil
}

func (p *Parser) inputStmt() (ast.Statement, error) {
	at := p.previous().Pos

	name, err := p.consume(token.Identifier, "expected variable name after 'input'")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.Semicolon, "expected ';' after input target"); err != nil {
		return nil, err
	}

	return ast.Input{Name: name.Lexeme, At: at}, nil
}

// parenExpr parses a parenthesized condition following an if or while
// keyword.
func (p *Parser) parenExpr(keyword string) (ast.Expression, error) {
	if _, err := p.consume(token.LeftParen, "expected '(' after '"+keyword+"'"); err != nil {
		return nil, err
	}

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.RightParen, "expected ')' after condition"); err != nil {
		return nil, err
	}

	return cond, nil
}

func (p *Parser) block() ([]ast.Statement, error) {
	if _, err := p.consume(token.LeftBrace, "expected '{'"); err != nil {
		return nil, err
	}

	var stmts []ast.Statement

	for !p.check(token.RightBrace) && !p.check(token.EOF) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	if _, err := p.consume(token.RightBrace, "expected '}' after block"); err != nil {
		return nil, err
	}

	return stmts, nil
}

func (p *Parser) expression() (ast.Expression, error) {
	return p.or()
}

// binaryLevel parses a left-associative run of the given operators, with
// operands parsed by next.
func (p *Parser) binaryLevel(
	next func() (ast.Expression, error),
	ops ...token.Kind,
) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) {
		op := p.previous()

		right, err := next()
		if err != nil {
			return nil, err
		}

		left = ast.Binary{Op: op.Kind, Left: left, Right: right, At: op.Pos}
	}

	return left, nil
}

func (p *Parser) or() (ast.Expression, error) {
	return p.binaryLevel(p.and, token.Or)
}

func (p *Parser) and() (ast.Expression, error) {
	return p.binaryLevel(p.equality, token.And)
}

func (p *Parser) equality() (ast.Expression, error) {
	return p.binaryLevel(p.comparison, token.EqualEqual, token.BangEqual)
}

func (p *Parser) comparison() (ast.Expression, error) {
	return p.binaryLevel(p.term,
		token.Less, token.Greater, token.LessEqual, token.GreaterEqual)
}

func (p *Parser) term() (ast.Expression, error) {
	return p.binaryLevel(p.factor, token.Plus, token.Minus)
}

func (p *Parser) factor() (ast.Expression, error) {
	return p.binaryLevel(p.unary, token.Star, token.Slash, token.Percent)
}

func (p *Parser) unary() (ast.Expression, error) {
	if p.match(token.Minus, token.Bang) {
		op := p.previous()

		right, err := p.unary()
		if err != nil {
			return nil, err
		}

		return ast.Unary{Op: op.Kind, Right: right, At: op.Pos}, nil
	}

	return p.primary()
}

//nolint:cyclop
func (p *Parser) primary() (ast.Expression, error) {
	switch {
	case p.match(token.Int):
		tok := p.previous()

		value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, &Error{Msg: "invalid integer literal", Tok: tok}
		}

		return ast.IntLit{Value: value, At: tok.Pos}, nil

	case p.match(token.Float):
		tok := p.previous()

		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, &Error{Msg: "invalid float literal", Tok: tok}
		}

		return ast.FloatLit{Value: value, At: tok.Pos}, nil

	case p.match(token.Bool):
		tok := p.previous()

		return ast.BoolLit{Value: tok.Lexeme == "true", At: tok.Pos}, nil

	case p.match(token.String):
		tok := p.previous()

		return ast.StringLit{
			Value: strings.Trim(tok.Lexeme, `"`),
			At:    tok.Pos,
		}, nil

	case p.match(token.Identifier):
		tok := p.previous()

		if p.check(token.LeftParen) {
			return p.call(tok)
		}

		return ast.Ident{Name: tok.Lexeme, At: tok.Pos}, nil

	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}

		if _, err := p.consume(token.RightParen, "expected ')' after expression"); err != nil {
			return nil, err
		}

		return expr, nil

	default:
		return nil, p.errorf("expected expression")
	}
}

func (p *Parser) call(name token.Token) (ast.Expression, error) {
	// Consume the '(' detected by the caller.
	p.advance()

	var args []ast.Expression

	if !p.check(token.RightParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}

			args = append(args, arg)

			if !p.match(token.Comma) {
				break
			}
		}
	}

	if _, err := p.consume(token.RightParen, "expected ')' after arguments"); err != nil {
		return nil, err
	}

	return ast.Call{Name: name.Lexeme, Args: args, At: name.Pos}, nil
}

func (p *Parser) consume(kind token.Kind, msg string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}

	return token.Token{}, p.errorf("%s", msg)
}

func (p *Parser) errorf(format string, args ...any) error {
	return &Error{
		Msg: fmt.Sprintf(format, args...),
		Tok: p.peek(),
	}
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()

			return true
		}
	}

	return false
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	tok := p.tokens[p.current]
	if tok.Kind != token.EOF {
		p.current++
	}

	return tok
}

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }
