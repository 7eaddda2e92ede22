// SPDX-License-Identifier: MIT
package lexer

// REF: https://go.dev/talks/2011/lex.slide

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

type (
	// ValidationFunction type for functions that validate rune identities
	ValidationFunction func(rune) bool

	// Lexer is a forward-only cursor over an immutable source string.
	//
	// The cursor offers a single rune of lookahead ([Lexer.Peek]) & consumption ([Lexer.Next]);
	// there is no way to step back. A Lexer is owned by a single caller & is not safe for
	// concurrent use.
	Lexer struct {
		cfg Config

		// c is a channel for communicating lexed Items.
		c chan Item

		// source is the input being scanned.
		source string

		// pos is the byte offset of the next rune.
		pos int
		// start is the byte offset of the Item being lexed.
		start int
	}
)

// Lexing errors.
var (
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrUnknownToken  = errors.New("unknown token")
)

// Improves on performance compared to ORs for the common ASCII case.
var whitespace = [utf8.RuneSelf]bool{
	' ':  true,
	'\t': true,
	'\n': true,
	'\v': true,
	'\f': true,
	'\r': true,
}

// New creates a new cursor for the source string.
func New(source string, opts ...Option) *Lexer {
	l := &Lexer{
		cfg:    Config{BufferSize: defBufferSize, Logger: defLogger},
		source: source,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Source obtains the string being scanned.
func (l *Lexer) Source() string { return l.source }

// Pos obtains the byte offset of the next rune.
func (l *Lexer) Pos() int { return l.pos }

// EOF reports whether the source has been fully consumed.
func (l *Lexer) EOF() bool { return l.pos >= len(l.source) }

// Peek returns the next rune without consuming it.
//
// [EmptyRune] is returned at the end of the source.
func (l *Lexer) Peek() rune {
	if l.pos >= len(l.source) {
		return EmptyRune
	}

	if b := l.source[l.pos]; b < utf8.RuneSelf {
		return rune(b)
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos:])

	return r
}

// Next consumes & returns the next rune.
//
// An ErrUnexpectedEOF is returned at the end of the source.
func (l *Lexer) Next() (r rune, err error) {
	if l.pos >= len(l.source) {
		err = ErrUnexpectedEOF
		return
	}

	if b := l.source[l.pos]; b < utf8.RuneSelf {
		l.pos++
		return rune(b), nil
	}

	var size int
	r, size = utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size

	return
}

// AcceptWhile consumes runes while condition is true, returning the amount consumed.
func (l *Lexer) AcceptWhile(fn ValidationFunction) (accepted int) {
	for !l.EOF() && fn(l.Peek()) {
		_, _ = l.Next()
		accepted++
	}

	return
}

// SkipWhitespace consumes runes while they are whitespace.
func (l *Lexer) SkipWhitespace() {
	for l.pos < len(l.source) {
		if b := l.source[l.pos]; b < utf8.RuneSelf {
			if !whitespace[b] {
				return
			}
			l.pos++

			continue
		}

		r, size := utf8.DecodeRuneInString(l.source[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

// IsWhitespace reports whether r is whitespace as defined by Unicode's White Space property.
func IsWhitespace(r rune) bool {
	if r >= 0 && r < utf8.RuneSelf {
		return whitespace[r]
	}

	return unicode.IsSpace(r)
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsOperator reports whether r is one of the arithmetic operator symbols.
func IsOperator(r rune) bool { return r == '+' || r == '-' || r == '*' || r == '/' }
