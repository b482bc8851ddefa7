package tson

import (
	"bytes"
	"unicode/utf8"
)

const eof = -1

// scanner is a positional cursor over an immutable input buffer. It exposes
// the lexical primitives the grammar rules compose: peek, next,
// skipWhitespace and matchLiteral. It borrows the buffer for its lifetime
// and never mutates it.
type scanner struct {
	input []byte
	pos   int
}

func newScanner(input []byte) *scanner {
	return &scanner{input: input}
}

// next returns the next rune in the input, consuming it. It returns eof when
// the input is exhausted. A malformed UTF-8 byte decodes as utf8.RuneError
// of width one, matching the stdlib convention.
func (s *scanner) next() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	r, w := utf8.DecodeRune(s.input[s.pos:])
	s.pos += w
	return r
}

// peek returns, but does not consume, the next rune in the input.
func (s *scanner) peek() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	r, _ := utf8.DecodeRune(s.input[s.pos:])
	return r
}

// skipWhitespace consumes a maximal run of whitespace. It is a no-op if the
// next rune is not whitespace.
func (s *scanner) skipWhitespace() {
	for isWhitespace(s.peek()) {
		s.pos++
	}
}

// matchLiteral consumes text if it appears at the current position exactly;
// otherwise it leaves the position unchanged and reports no match.
func (s *scanner) matchLiteral(text string) bool {
	if !bytes.HasPrefix(s.input[s.pos:], []byte(text)) {
		return false
	}
	s.pos += len(text)
	return true
}

// offset returns the current byte offset into the input.
func (s *scanner) offset() int {
	return s.pos
}

// span returns the raw input between two byte offsets. The returned slice
// aliases the input buffer.
func (s *scanner) span(start, end int) []byte {
	return s.input[start:end]
}

// word returns, without consuming, the run of letters and digits starting at
// the current position. It is used to report bad keywords.
func (s *scanner) word() string {
	i := s.pos
	for i < len(s.input) {
		r, w := utf8.DecodeRune(s.input[i:])
		if !isIdentifierRune(r) {
			break
		}
		i += w
	}
	return string(s.input[s.pos:i])
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isIdentifierRune(c rune) bool {
	if c >= 'a' && c <= 'z' {
		return true
	}
	if c >= 'A' && c <= 'Z' {
		return true
	}
	return isDigit(c)
}
