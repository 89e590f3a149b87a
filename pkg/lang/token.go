package lang

import "fmt"

// TokenType identifies the category of a scanned token.
type TokenType int

const (
	// Keywords
	LET TokenType = iota // "let"
	PRINT                // "print"

	// Literals
	IDENTIFIER // variable name
	INTEGER    // decimal integer literal

	// Symbols
	ASSIGN    // =
	SEMICOLON // ;
	PLUS      // +
	LPAREN    // (
	RPAREN    // )
)

var tokenNames = [...]string{
	LET:        "LET",
	PRINT:      "PRINT",
	IDENTIFIER: "IDENTIFIER",
	INTEGER:    "INTEGER",
	ASSIGN:     "ASSIGN",
	SEMICOLON:  "SEMICOLON",
	PLUS:       "PLUS",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by Scan.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d", t.Type, t.Lexeme, t.Line)
}
