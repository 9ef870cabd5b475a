package lex

import (
	"strings"
)

// Lexer splits a command line into whitespace separated words. Field values
// such as emails are taken verbatim, so any non-blank run is one token.
type Lexer struct {
	input   string
	pos     int
	readPos int
	ch      byte
}

func New(input string) *Lexer {
	l := &Lexer{
		input:   input,
		pos:     0,
		readPos: 0,
		ch:      0,
	}
	l.readChar()
	return l
}

func (l *Lexer) NextToken() Token {
	l.skipWhiteSpaces()

	if l.ch == 0 {
		return Token{Kind: END, Value: ""}
	}

	word := l.readWord()
	switch {
	case word[0] == '.':
		return Token{Kind: META, Value: word}
	case isInteger(word):
		return Token{Kind: INT, Value: word}
	case !isPrintable(word):
		return Token{Kind: INVALID, Value: word}
	default:
		return Token{Kind: KeyIdentKind(word), Value: word}
	}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func (l *Lexer) skipWhiteSpaces() {
	for isSpace(l.ch) {
		l.readChar()
	}
}

func (l *Lexer) readWord() string {
	start := l.pos
	for l.ch != 0 && !isSpace(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func isNumber(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isInteger accepts an optional leading minus followed by digits
func isInteger(word string) bool {
	digits := strings.TrimPrefix(word, "-")
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !isNumber(digits[i]) {
			return false
		}
	}
	return true
}

func isPrintable(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 0x20 || word[i] == 0x7f {
			return false
		}
	}
	return true
}

// KeyIdentKind classifies a word. Keywords are lower case only; any word
// starting with insert is the insert keyword, select must match exactly.
func KeyIdentKind(str string) TokenKind {
	switch {
	case strings.HasPrefix(str, "insert"):
		return INSERT
	case str == "select":
		return SELECT
	default:
		return IDENT
	}
}
