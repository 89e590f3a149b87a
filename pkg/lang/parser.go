package lang

import (
	"fmt"
	"strconv"
)

// Parser consumes the flat token slice produced by Scan and builds a Program.
//
// Grammar:
//
//	program   = statement*
//	statement = "let" IDENTIFIER "=" expr ";"
//	          | "print" "(" expr ")" ";"
//	expr      = atom ("+" atom)?
//	atom      = INTEGER | IDENTIFIER
//
// Only one "+" is accepted per expression; "1 + 2 + 3" fails at the second
// "+" because the statement terminator is expected there.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// atEnd reports whether every token has been consumed.
func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// peek returns the current token without consuming it. ok is false at end of
// input.
func (p *Parser) peek() (tok Token, ok bool) {
	if p.atEnd() {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

// endLine is the line reported for errors at end of input.
func (p *Parser) endLine() int {
	if len(p.tokens) == 0 {
		return 0
	}
	return p.tokens[len(p.tokens)-1].Line
}

func (p *Parser) errorAt(tok Token, ok bool, format string, args ...any) error {
	line := tok.Line
	if !ok {
		line = p.endLine()
	}
	return &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...), AtEnd: !ok}
}

// describe renders a token the way error messages name it.
func describe(tok Token, ok bool) string {
	if !ok {
		return "<end>"
	}
	return strconv.Quote(tok.Lexeme)
}

// expectedName renders the token type an error message was waiting for.
func expectedName(tt TokenType) string {
	switch tt {
	case IDENTIFIER:
		return "identifier"
	case INTEGER:
		return "number"
	case LET:
		return `"let"`
	case PRINT:
		return `"print"`
	case ASSIGN:
		return `"="`
	case SEMICOLON:
		return `";"`
	case PLUS:
		return `"+"`
	case LPAREN:
		return `"("`
	case RPAREN:
		return `")"`
	default:
		return tt.String()
	}
}

// expect consumes the current token if it matches tt, otherwise returns an error
// naming both the expected and the found token.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok, ok := p.peek()
	if !ok || tok.Type != tt {
		return tok, p.errorAt(tok, ok, "expected %s, found %s", expectedName(tt), describe(tok, ok))
	}
	p.pos++
	return tok, nil
}

// parseAtom handles integer literals and identifiers.
func (p *Parser) parseAtom() (Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.errorAt(tok, ok, "expected number or identifier, found %s", describe(tok, ok))
	}
	switch tok.Type {
	case INTEGER:
		p.pos++
		val, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, p.errorAt(tok, ok, "integer literal %q out of range", tok.Lexeme)
		}
		return &NumberLit{Value: val}, nil
	case IDENTIFIER:
		p.pos++
		return &Identifier{Name: tok.Lexeme}, nil
	default:
		return nil, p.errorAt(tok, ok, "expected number or identifier, found %s", describe(tok, ok))
	}
}

// parseExpr handles atom ("+" atom)?
func (p *Parser) parseExpr() (Expr, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); !ok || tok.Type != PLUS {
		return left, nil
	}
	p.pos++ // +
	right, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	return &BinaryAdd{Left: left, Right: right}, nil
}

// parseVarDecl parses the remainder of  let name = expr;
// The "let" keyword must already have been consumed.
func (p *Parser) parseVarDecl() (Stmt, error) {
	nameTok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	initExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &VarDecl{Name: nameTok.Lexeme, Init: initExpr}, nil
}

// parsePrint parses the remainder of  print(expr);
// The "print" keyword must already have been consumed.
func (p *Parser) parsePrint() (Stmt, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: expr}, nil
}

func (p *Parser) parseStatement() (Stmt, error) {
	tok, ok := p.peek()
	switch {
	case ok && tok.Type == LET:
		p.pos++
		return p.parseVarDecl()
	case ok && tok.Type == PRINT:
		p.pos++
		return p.parsePrint()
	default:
		return nil, p.errorAt(tok, ok, "unknown statement starting with %s", describe(tok, ok))
	}
}

// Parse builds a Program from tokens. It stops at the first syntax error and
// returns no partial tree.
func Parse(tokens []Token) (*Program, error) {
	p := NewParser(tokens)
	prog := &Program{}
	for !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}
