package lang

import (
	"reflect"
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "Empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "Only Whitespace",
			input:    " \t\n\r\n",
			expected: nil,
		},
		{
			name:  "Symbols",
			input: "= ; + ( )",
			expected: []Token{
				{Type: ASSIGN, Lexeme: "=", Line: 1},
				{Type: SEMICOLON, Lexeme: ";", Line: 1},
				{Type: PLUS, Lexeme: "+", Line: 1},
				{Type: LPAREN, Lexeme: "(", Line: 1},
				{Type: RPAREN, Lexeme: ")", Line: 1},
			},
		},
		{
			name:  "Keywords and Identifiers",
			input: "let print variableName _under_score x1",
			expected: []Token{
				{Type: LET, Lexeme: "let", Line: 1},
				{Type: PRINT, Lexeme: "print", Line: 1},
				{Type: IDENTIFIER, Lexeme: "variableName", Line: 1},
				{Type: IDENTIFIER, Lexeme: "_under_score", Line: 1},
				{Type: IDENTIFIER, Lexeme: "x1", Line: 1},
			},
		},
		{
			name:  "Keyword Prefix Wins",
			input: "letter printer",
			expected: []Token{
				{Type: LET, Lexeme: "let", Line: 1},
				{Type: IDENTIFIER, Lexeme: "ter", Line: 1},
				{Type: PRINT, Lexeme: "print", Line: 1},
				{Type: IDENTIFIER, Lexeme: "er", Line: 1},
			},
		},
		{
			name:  "Keyword Inside Identifier",
			input: "xlet _print",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "xlet", Line: 1},
				{Type: IDENTIFIER, Lexeme: "_print", Line: 1},
			},
		},
		{
			name:  "Integers",
			input: "123 0 007",
			expected: []Token{
				{Type: INTEGER, Lexeme: "123", Line: 1},
				{Type: INTEGER, Lexeme: "0", Line: 1},
				{Type: INTEGER, Lexeme: "007", Line: 1},
			},
		},
		{
			name:  "Digits Then Letters",
			input: "12abc",
			expected: []Token{
				{Type: INTEGER, Lexeme: "12", Line: 1},
				{Type: IDENTIFIER, Lexeme: "abc", Line: 1},
			},
		},
		{
			name:  "Adjacent Tokens",
			input: "print(x+1);",
			expected: []Token{
				{Type: PRINT, Lexeme: "print", Line: 1},
				{Type: LPAREN, Lexeme: "(", Line: 1},
				{Type: IDENTIFIER, Lexeme: "x", Line: 1},
				{Type: PLUS, Lexeme: "+", Line: 1},
				{Type: INTEGER, Lexeme: "1", Line: 1},
				{Type: RPAREN, Lexeme: ")", Line: 1},
				{Type: SEMICOLON, Lexeme: ";", Line: 1},
			},
		},
		{
			name:  "Lines",
			input: "let x = 1;\n\nprint(x);",
			expected: []Token{
				{Type: LET, Lexeme: "let", Line: 1},
				{Type: IDENTIFIER, Lexeme: "x", Line: 1},
				{Type: ASSIGN, Lexeme: "=", Line: 1},
				{Type: INTEGER, Lexeme: "1", Line: 1},
				{Type: SEMICOLON, Lexeme: ";", Line: 1},
				{Type: PRINT, Lexeme: "print", Line: 3},
				{Type: LPAREN, Lexeme: "(", Line: 3},
				{Type: IDENTIFIER, Lexeme: "x", Line: 3},
				{Type: RPAREN, Lexeme: ")", Line: 3},
				{Type: SEMICOLON, Lexeme: ";", Line: 3},
			},
		},
		{
			name:  "Unknown Characters Are Skipped",
			input: "x@ - # y",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "x", Line: 1},
				{Type: IDENTIFIER, Lexeme: "y", Line: 1},
			},
		},
		{
			name:  "Non-ASCII Letters Are Skipped",
			input: "héllo",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "h", Line: 1},
				{Type: IDENTIFIER, Lexeme: "llo", Line: 1},
			},
		},
		{
			name:     "Only Unknown Characters",
			input:    "@#$%-*/",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Scan() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestScanSkipsSameAsClean(t *testing.T) {
	dirty := Scan("let x@ = 1; print(x);")
	clean := Scan("let x = 1; print(x);")
	if !reflect.DeepEqual(dirty, clean) {
		t.Errorf("Scan with stray characters = %v, want %v", dirty, clean)
	}
}

func TestTokenTypeString(t *testing.T) {
	if got := SEMICOLON.String(); got != "SEMICOLON" {
		t.Errorf("SEMICOLON.String() = %q", got)
	}
	if got := TokenType(99).String(); got != "TokenType(99)" {
		t.Errorf("TokenType(99).String() = %q", got)
	}
}
