package tson

import "bytes"

// This file contains the textual types: String and Char.

// String is a Unicode text literal of arbitrary length. When the literal
// contains no escape sequences its contents are a view into the parsed input
// buffer; escapes force a decoded private copy. Callers see the same shape
// either way.
type String struct {
	text []byte
}

// NewString constructs a String holding a copy of val.
func NewString(val string) String {
	return String{text: []byte(val)}
}

// Value returns the string contents as an owned Go string.
func (s String) Value() string {
	return string(s.text)
}

// Text returns the string contents without copying. The result may alias the
// buffer the value was parsed from and must not be modified.
func (s String) Text() []byte {
	return s.text
}

// Type satisfies Value.
func (String) Type() Type {
	return StringType
}

// Equal satisfies Value.
func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && bytes.Equal(s.text, o.text)
}

// Char is a literal holding exactly one Unicode scalar value. It is
// syntactically distinct from a one-character String.
type Char struct {
	value rune
}

// NewChar constructs a Char holding val.
func NewChar(val rune) Char {
	return Char{value: val}
}

func (c Char) Value() rune {
	return c.value
}

// Type satisfies Value.
func (Char) Type() Type {
	return CharType
}

// Equal satisfies Value.
func (c Char) Equal(other Value) bool {
	o, ok := other.(Char)
	return ok && c.value == o.value
}
