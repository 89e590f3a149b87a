package lang

import "unicode"

// keywords lists the reserved words in match order. A keyword is matched as a
// prefix, so "letter" scans as LET followed by IDENTIFIER("ter").
var keywords = []struct {
	text string
	tt   TokenType
}{
	{"let", LET},
	{"print", PRINT},
}

// symbols maps each single-character symbol to its TokenType.
var symbols = map[rune]TokenType{
	'=': ASSIGN,
	';': SEMICOLON,
	'+': PLUS,
	'(': LPAREN,
	')': RPAREN,
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0, line: 1}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *Lexer) hasPrefix(s string) bool {
	i := l.pos
	for _, r := range s {
		if i >= len(l.src) || l.src[i] != r {
			return false
		}
		i++
	}
	return true
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWordChar(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

// scanWord collects a keyword or identifier token.
// The first character must still be at l.peek().
func (l *Lexer) scanWord() Token {
	line := l.line
	for _, kw := range keywords {
		if l.hasPrefix(kw.text) {
			l.pos += len(kw.text)
			return Token{Type: kw.tt, Lexeme: kw.text, Line: line}
		}
	}
	start := l.pos
	for l.pos < len(l.src) && isWordChar(l.peek()) {
		l.advance()
	}
	return Token{Type: IDENTIFIER, Lexeme: string(l.src[start:l.pos]), Line: line}
}

// scanInt collects a run of decimal digits.
func (l *Lexer) scanInt() Token {
	line := l.line
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.advance()
	}
	return Token{Type: INTEGER, Lexeme: string(l.src[start:l.pos]), Line: line}
}

// nextToken returns the next token, skipping whitespace and any rune that
// starts no token. ok is false once the input is exhausted.
func (l *Lexer) nextToken() (tok Token, ok bool) {
	for l.pos < len(l.src) {
		ch := l.peek()
		switch {
		case unicode.IsSpace(ch):
			l.advance()
		case isIdentStart(ch):
			return l.scanWord(), true
		case isDigit(ch):
			return l.scanInt(), true
		default:
			line := l.line
			l.advance()
			if tt, found := symbols[ch]; found {
				return Token{Type: tt, Lexeme: string(ch), Line: line}, true
			}
		}
	}
	return Token{}, false
}

// Scan tokenises src. It never fails: characters that start no token are
// dropped, so "let x@ = 1;" scans the same as "let x = 1;".
func Scan(src string) []Token {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, ok := l.nextToken()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
