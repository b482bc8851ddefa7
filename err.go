package tson

import "fmt"

// A UsageError is returned when the library is used in an inappropriate way,
// for example asking the text writer to serialize a value TSON cannot
// represent.
type UsageError struct {
	API string
	Msg string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("tson: usage error in %v: %v", e.API, e.Msg)
}

// An UnexpectedEOFError is returned when the input ends in the middle of a
// grammar production.
type UnexpectedEOFError struct {
	Offset int
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("tson: unexpected end of input (offset %v)", e.Offset)
}

// An UnexpectedRuneError is returned when the parser encounters a rune that
// does not begin or continue any grammar alternative.
type UnexpectedRuneError struct {
	Rune   rune
	Offset int
}

func (e *UnexpectedRuneError) Error() string {
	return fmt.Sprintf("tson: unexpected rune %q (offset %v)", e.Rune, e.Offset)
}

// An UnexpectedTokenError is returned when a keyword position holds something
// that is not one of the keywords true, false, Some or None.
type UnexpectedTokenError struct {
	Token  string
	Offset int
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("tson: unexpected token '%v' (offset %v)", e.Token, e.Offset)
}

// An InvalidNumberError is returned when a numeric literal is malformed, for
// example a bare '-' or a '.' with no following digits.
type InvalidNumberError struct {
	Offset int
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("tson: invalid number (offset %v)", e.Offset)
}

// An InvalidEscapeError is returned when a string or char literal contains an
// escape sequence outside the recognized set.
type InvalidEscapeError struct {
	Rune   rune
	Offset int
}

func (e *InvalidEscapeError) Error() string {
	return fmt.Sprintf("tson: invalid escape sequence '\\%c' (offset %v)", e.Rune, e.Offset)
}

// An UnterminatedLiteralError is returned when a string or char literal is
// missing its closing delimiter. The offset is that of the opening delimiter.
type UnterminatedLiteralError struct {
	Offset int
}

func (e *UnterminatedLiteralError) Error() string {
	return fmt.Sprintf("tson: unterminated literal (offset %v)", e.Offset)
}

// A TrailingInputError is returned when characters other than whitespace
// remain after a complete top-level value has been recognized.
type TrailingInputError struct {
	Offset int
}

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("tson: trailing input after value (offset %v)", e.Offset)
}

// A DuplicateKeyError is returned when an object repeats a member key. The
// offset is that of the second occurrence.
type DuplicateKeyError struct {
	Key    string
	Offset int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("tson: duplicate object key %q (offset %v)", e.Key, e.Offset)
}

// A MaxDepthError is returned when the nesting of lists, objects and
// optionals exceeds the parser's depth limit.
type MaxDepthError struct {
	Offset int
}

func (e *MaxDepthError) Error() string {
	return fmt.Sprintf("tson: maximum nesting depth exceeded (offset %v)", e.Offset)
}
