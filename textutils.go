package tson

import (
	"fmt"
	"io"
	"unicode/utf16"
)

// The escape set shared by string and char literals:
//
//	\"  \'  \\  \/  \0  \b  \f  \n  \r  \t  \uXXXX
//
// A \uXXXX escape encoding a UTF-16 high surrogate must be followed by a
// second \uXXXX escape encoding the low surrogate; the pair decodes to one
// scalar value.

// readEscape decodes one escape sequence. The scanner must be positioned on
// the backslash; on return it is positioned past the sequence.
func (p *parser) readEscape() (rune, error) {
	offset := p.scn.offset()
	p.scn.next() // consume '\\'

	c := p.scn.next()
	switch c {
	case eof:
		return 0, &UnexpectedEOFError{Offset: p.scn.offset()}
	case '"':
		return '"', nil
	case '\'':
		return '\'', nil
	case '\\':
		return '\\', nil
	case '/':
		return '/', nil
	case '0':
		return '\x00', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		r, err := p.readHexEscape(4)
		if err != nil {
			return 0, err
		}
		if !utf16.IsSurrogate(r) {
			return r, nil
		}
		if p.scn.matchLiteral("\\u") {
			r2, err := p.readHexEscape(4)
			if err != nil {
				return 0, err
			}
			if dec := utf16.DecodeRune(r, r2); dec != 0xFFFD {
				return dec, nil
			}
		}
		return 0, &InvalidEscapeError{Rune: 'u', Offset: offset}
	}

	return 0, &InvalidEscapeError{Rune: c, Offset: offset}
}

// readHexEscape reads length hex digits and returns the rune they encode.
func (p *parser) readHexEscape(length int) (rune, error) {
	val := rune(0)
	for i := 0; i < length; i++ {
		offset := p.scn.offset()
		c := p.scn.next()
		if c == eof {
			return 0, &UnexpectedEOFError{Offset: offset}
		}
		d, ok := fromHex(c)
		if !ok {
			return 0, &InvalidEscapeError{Rune: c, Offset: offset}
		}
		val = val<<4 | rune(d)
	}
	return val, nil
}

func fromHex(c rune) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return 10 + int(c-'a'), true
	case c >= 'A' && c <= 'F':
		return 10 + int(c-'A'), true
	}
	return 0, false
}

// Write the given text out between quote delimiters, escaping any characters
// that need escaping. The quote itself is escaped only when it delimits the
// literal being written.
func writeEscapedText(text []byte, quote byte, out io.Writer) error {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < 0x20 || c == '\\' || c == quote {
			if err := writeEscapedChar(c, out); err != nil {
				return err
			}
		} else {
			if err := writeRawChar(c, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// Write out the given character in escaped form.
func writeEscapedChar(c byte, out io.Writer) error {
	switch c {
	case 0:
		return writeRawString("\\0", out)
	case '\b':
		return writeRawString("\\b", out)
	case '\f':
		return writeRawString("\\f", out)
	case '\n':
		return writeRawString("\\n", out)
	case '\r':
		return writeRawString("\\r", out)
	case '\t':
		return writeRawString("\\t", out)
	case '\'':
		return writeRawString("\\'", out)
	case '"':
		return writeRawString("\\\"", out)
	case '\\':
		return writeRawString("\\\\", out)
	default:
		return writeRawString(fmt.Sprintf("\\u%04x", c), out)
	}
}

// Write the given string out to the given writer.
func writeRawString(s string, out io.Writer) error {
	_, err := io.WriteString(out, s)
	return err
}

// Write the given character out to the given writer.
func writeRawChar(c byte, out io.Writer) error {
	_, err := out.Write([]byte{c})
	return err
}
