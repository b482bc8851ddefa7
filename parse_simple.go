package tson

import (
	"strconv"
	"unicode/utf8"
)

// This file contains the leaf productions: string, char, boolean and float.

// parseString recognizes a double-quoted string literal.
func (p *parser) parseString() (Value, error) {
	text, err := p.parseStringText()
	if err != nil {
		return nil, err
	}
	return String{text: text}, nil
}

// parseStringText scans a double-quoted literal and returns its decoded
// contents. While no escape has been seen the contents are returned as a
// view into the input buffer; the first escape forces a private copy, since
// the decoded text is no longer a substring of the input. Raw newlines are
// not permitted inside the literal.
func (p *parser) parseStringText() ([]byte, error) {
	openOffset := p.scn.offset()
	p.scn.next() // consume '"'
	start := p.scn.offset()

	var buf []byte // nil until an escape forces a copy
	for {
		switch c := p.scn.peek(); {
		case c == eof || c == '\n':
			return nil, &UnterminatedLiteralError{Offset: openOffset}

		case c == '"':
			span := p.scn.span(start, p.scn.offset())
			p.scn.next()
			if buf == nil {
				return span, nil
			}
			return buf, nil

		case c == '\\':
			if buf == nil {
				buf = append(buf, p.scn.span(start, p.scn.offset())...)
			}
			r, err := p.readEscape()
			if err != nil {
				return nil, err
			}
			buf = utf8.AppendRune(buf, r)

		default:
			p.scn.next()
			if buf != nil {
				buf = utf8.AppendRune(buf, c)
			}
		}
	}
}

// parseChar recognizes a single-quoted literal holding exactly one scalar
// value or one escape sequence. Empty ('') and multi-character ('ab')
// literals are syntax errors.
func (p *parser) parseChar() (Value, error) {
	openOffset := p.scn.offset()
	p.scn.next() // consume '\''

	var r rune
	switch c := p.scn.peek(); {
	case c == eof || c == '\n':
		return nil, &UnterminatedLiteralError{Offset: openOffset}
	case c == '\'':
		return nil, &UnexpectedRuneError{Rune: c, Offset: p.scn.offset()}
	case c == '\\':
		var err error
		if r, err = p.readEscape(); err != nil {
			return nil, err
		}
	default:
		p.scn.next()
		r = c
	}

	switch c := p.scn.peek(); {
	case c == eof:
		return nil, &UnterminatedLiteralError{Offset: openOffset}
	case c != '\'':
		return nil, &UnexpectedRuneError{Rune: c, Offset: p.scn.offset()}
	}
	p.scn.next()

	return Char{value: r}, nil
}

// parseBool recognizes the literals true and false. Nothing else is
// accepted; in particular there are no case-insensitive variants.
func (p *parser) parseBool() (Value, error) {
	offset := p.scn.offset()

	if p.scn.matchLiteral("true") {
		return Bool{value: true}, nil
	}
	if p.scn.matchLiteral("false") {
		return Bool{value: false}, nil
	}
	return nil, &UnexpectedTokenError{Token: p.scn.word(), Offset: offset}
}

// parseFloat recognizes '-'? digit+ ('.' digit+)? (('e'|'E') ('+'|'-')?
// digit+)? and converts the span with the standard decimal parse. The
// grammar is checked before conversion, so strconv's looser forms (hex
// floats, inf, a leading '+') are never reached.
func (p *parser) parseFloat() (Value, error) {
	start := p.scn.offset()

	if p.scn.peek() == '-' {
		p.scn.next()
	}
	if !p.scanDigits() {
		return nil, &InvalidNumberError{Offset: start}
	}

	if p.scn.peek() == '.' {
		p.scn.next()
		if !p.scanDigits() {
			return nil, &InvalidNumberError{Offset: start}
		}
	}

	if c := p.scn.peek(); c == 'e' || c == 'E' {
		p.scn.next()
		if c := p.scn.peek(); c == '+' || c == '-' {
			p.scn.next()
		}
		if !p.scanDigits() {
			return nil, &InvalidNumberError{Offset: start}
		}
	}

	span := p.scn.span(start, p.scn.offset())
	val, err := strconv.ParseFloat(string(span), 64)
	if err != nil {
		return nil, &InvalidNumberError{Offset: start}
	}
	return Float{value: val}, nil
}

// scanDigits consumes a run of decimal digits, reporting whether there was
// at least one.
func (p *parser) scanDigits() bool {
	n := 0
	for isDigit(p.scn.peek()) {
		p.scn.next()
		n++
	}
	return n > 0
}
