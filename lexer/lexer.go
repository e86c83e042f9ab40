/*
File    : beach/lexer/lexer.go
Package : lexer
*/

// Package lexer turns beach source text into a stream of token.Token values.
// It is a supporting collaborator of the core (spec.md calls it out of
// scope beyond its output contract), implemented here in the teacher's
// hand-written-scanner idiom so the pipeline is runnable end to end.
package lexer

import "github.com/MalachiMackie/beach-lang-sub000/token"

// Lexer scans beach source one byte at a time, tracking line and column for
// error reporting. There is no backtracking; NextToken always consumes
// forward.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	lex := &Lexer{
		Src:       src,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
	if lex.SrcLength > 0 {
		lex.Current = src[0]
	}
	return lex
}

// Peek returns the byte after Current without advancing, or 0 at end of
// input.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance consumes Current and moves to the next byte, updating line/column.
func (lex *Lexer) Advance() {
	if lex.Current == '\n' {
		lex.Line++
		lex.Column = 1
	} else {
		lex.Column++
	}
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		return
	}
	lex.Current = lex.Src[lex.Position]
}

func (lex *Lexer) atEnd() bool {
	return lex.Position >= lex.SrcLength
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func (lex *Lexer) skipWhitespace() {
	for !lex.atEnd() && isWhitespace(lex.Current) {
		lex.Advance()
	}
}

// NextToken returns the next token in the stream, or a token.EOF token once
// the input is exhausted. An unrecognised character produces a token.INVALID
// token carrying that character as its literal (spec.md §6).
func (lex *Lexer) NextToken() token.Token {
	lex.skipWhitespace()

	if lex.atEnd() {
		return token.NewAt(token.EOF, "", lex.Line, lex.Column)
	}

	line, column := lex.Line, lex.Column

	switch {
	case lex.Current == '(':
		lex.Advance()
		return token.NewAt(token.LEFT_PAREN, "(", line, column)
	case lex.Current == ')':
		lex.Advance()
		return token.NewAt(token.RIGHT_PAREN, ")", line, column)
	case lex.Current == '{':
		lex.Advance()
		return token.NewAt(token.LEFT_BRACE, "{", line, column)
	case lex.Current == '}':
		lex.Advance()
		return token.NewAt(token.RIGHT_BRACE, "}", line, column)
	case lex.Current == ',':
		lex.Advance()
		return token.NewAt(token.COMMA, ",", line, column)
	case lex.Current == ';':
		lex.Advance()
		return token.NewAt(token.SEMICOLON, ";", line, column)
	case lex.Current == '=':
		lex.Advance()
		return token.NewAt(token.ASSIGN, "=", line, column)
	case lex.Current == '+':
		lex.Advance()
		return token.NewAt(token.PLUS, "+", line, column)
	case lex.Current == '!':
		lex.Advance()
		return token.NewAt(token.NOT, "!", line, column)
	case lex.Current == '-':
		if lex.Peek() == '>' {
			lex.Advance()
			lex.Advance()
			return token.NewAt(token.ARROW, "->", line, column)
		}
		literal := string(lex.Current)
		lex.Advance()
		return token.NewAt(token.INVALID, literal, line, column)
	case lex.Current == '>':
		lex.Advance()
		return token.NewAt(token.RIGHT_ANGLE, ">", line, column)
	case isDigit(lex.Current):
		return lex.readUInt(line, column)
	case isAlpha(lex.Current):
		return lex.readIdentifier(line, column)
	default:
		literal := string(lex.Current)
		lex.Advance()
		return token.NewAt(token.INVALID, literal, line, column)
	}
}

func (lex *Lexer) readUInt(line, column int) token.Token {
	start := lex.Position
	for !lex.atEnd() && isDigit(lex.Current) {
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]
	return token.NewAt(token.UINT_LITERAL, literal, line, column)
}

func (lex *Lexer) readIdentifier(line, column int) token.Token {
	start := lex.Position
	for !lex.atEnd() && isAlphanumeric(lex.Current) {
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]

	if token.TypeKeywords[literal] {
		return token.NewAt(token.TYPE_KEY, literal, line, column)
	}

	return token.NewAt(token.LookupIdentifier(literal), literal, line, column)
}
