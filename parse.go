package tson

import (
	"io"

	"github.com/pkg/errors"
)

// maxNestingDepth bounds recursion through lists, objects and optionals so
// that pathologically nested input fails with a MaxDepthError instead of
// exhausting the stack.
const maxNestingDepth = 256

// Parse parses a single TSON value from input and returns the resulting
// tree. Leading and trailing whitespace are tolerated; any other trailing
// bytes make the parse fail with a TrailingInputError. On failure no partial
// tree is returned.
//
// String values in the returned tree may reference input directly, so the
// tree must not outlive the buffer and the buffer must not be modified while
// the tree is in use.
func Parse(input []byte) (Value, error) {
	p := &parser{scn: newScanner(input)}

	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	p.scn.skipWhitespace()
	if p.scn.peek() != eof {
		return nil, &TrailingInputError{Offset: p.scn.offset()}
	}
	return v, nil
}

// ParseString is Parse for a string input.
func ParseString(input string) (Value, error) {
	return Parse([]byte(input))
}

// ParseReader reads all of in and parses the contents as a single TSON
// value. The entire input is held in memory for the lifetime of the
// returned tree.
func ParseReader(in io.Reader) (Value, error) {
	input, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read tson text to parse")
	}
	return Parse(input)
}

type parser struct {
	scn   *scanner
	depth int
}

// parseValue recognizes one value of any kind. It skips leading whitespace
// and dispatches on the next rune; each alternative starts with a rune no
// other alternative can start with.
func (p *parser) parseValue() (Value, error) {
	p.scn.skipWhitespace()

	switch c := p.scn.peek(); {
	case c == eof:
		return nil, &UnexpectedEOFError{Offset: p.scn.offset()}
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseList()
	case c == 'S' || c == 'N':
		return p.parseOptional()
	case c == '"':
		return p.parseString()
	case c == '\'':
		return p.parseChar()
	case c == 't' || c == 'f':
		return p.parseBool()
	case c == '-' || isDigit(c):
		return p.parseFloat()
	default:
		return nil, &UnexpectedRuneError{Rune: c, Offset: p.scn.offset()}
	}
}

// push records entry into a nested production, failing once the depth limit
// is hit. Every successful push is paired with a deferred pop.
func (p *parser) push() error {
	p.depth++
	if p.depth > maxNestingDepth {
		return &MaxDepthError{Offset: p.scn.offset()}
	}
	return nil
}

func (p *parser) pop() {
	p.depth--
}
