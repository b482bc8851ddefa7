package tson

import (
	"bytes"
	"io"
	"math"
	"sort"
	"strconv"
	"unicode/utf8"
)

// TextWriterOpts defines a set of bit flag options for the text writer.
type TextWriterOpts uint8

const (
	// TextWriterPretty emits each list element and object member on its own
	// line, indented two spaces per nesting level.
	TextWriterPretty TextWriterOpts = 1
)

// WriteText writes the compact text form of v to out. Object members are
// written in sorted key order so that output is deterministic; member order
// carries no meaning in TSON.
func WriteText(v Value, out io.Writer) error {
	return WriteTextOpts(v, out, 0)
}

// WriteTextOpts writes the text form of v to out with the given options.
func WriteTextOpts(v Value, out io.Writer, opts TextWriterOpts) error {
	w := &textWriter{out: out, opts: opts}
	return w.write(v)
}

// Text returns the compact text form of v. Parsing the result yields a tree
// structurally equal to v.
func Text(v Value) ([]byte, error) {
	buf := bytes.Buffer{}
	if err := WriteText(v, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// textWriter walks a Value tree, emitting human-readable text.
type textWriter struct {
	out   io.Writer
	opts  TextWriterOpts
	depth int
}

func (w *textWriter) write(v Value) error {
	switch val := v.(type) {
	case Float:
		return w.writeFloat(val)
	case Bool:
		if val.Value() {
			return writeRawString("true", w.out)
		}
		return writeRawString("false", w.out)
	case String:
		return w.writeString(val)
	case Char:
		return w.writeChar(val)
	case List:
		return w.writeList(val)
	case Optional:
		return w.writeOptional(val)
	case Object:
		return w.writeObject(val)
	default:
		return &UsageError{API: "tson.WriteText", Msg: "not a tson value"}
	}
}

func (w *textWriter) writeFloat(f Float) error {
	val := f.Value()
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return &UsageError{API: "tson.WriteText", Msg: "float has no tson text form"}
	}
	return writeRawString(strconv.FormatFloat(val, 'g', -1, 64), w.out)
}

func (w *textWriter) writeString(s String) error {
	if err := writeRawChar('"', w.out); err != nil {
		return err
	}
	if err := writeEscapedText(s.Text(), '"', w.out); err != nil {
		return err
	}
	return writeRawChar('"', w.out)
}

func (w *textWriter) writeChar(c Char) error {
	if err := writeRawChar('\'', w.out); err != nil {
		return err
	}

	r := c.Value()
	if r < 0x20 || r == '\\' || r == '\'' {
		if err := writeEscapedChar(byte(r), w.out); err != nil {
			return err
		}
	} else {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		if _, err := w.out.Write(buf[:n]); err != nil {
			return err
		}
	}

	return writeRawChar('\'', w.out)
}

func (w *textWriter) writeList(l List) error {
	values := l.Values()
	if len(values) == 0 {
		return writeRawString("[]", w.out)
	}

	if err := w.begin('['); err != nil {
		return err
	}
	for i, v := range values {
		if err := w.separate(i); err != nil {
			return err
		}
		if err := w.write(v); err != nil {
			return err
		}
	}
	return w.end(']')
}

func (w *textWriter) writeOptional(o Optional) error {
	if o.IsNone() {
		return writeRawString("None", w.out)
	}
	if err := writeRawString("Some(", w.out); err != nil {
		return err
	}
	if err := w.write(o.Value()); err != nil {
		return err
	}
	return writeRawChar(')', w.out)
}

func (w *textWriter) writeObject(o Object) error {
	fields := o.Fields()
	if len(fields) == 0 {
		return writeRawString("{}", w.out)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := w.begin('{'); err != nil {
		return err
	}
	for i, k := range keys {
		if err := w.separate(i); err != nil {
			return err
		}
		if err := w.writeString(NewString(k)); err != nil {
			return err
		}
		if err := writeRawString(": ", w.out); err != nil {
			return err
		}
		if err := w.write(fields[k]); err != nil {
			return err
		}
	}
	return w.end('}')
}

// begin opens a container and, when pretty-printing, increases the indent.
func (w *textWriter) begin(c byte) error {
	w.depth++
	return writeRawChar(c, w.out)
}

// separate writes what belongs between the previous element (if any) and the
// next: a comma, and a line break with indentation when pretty-printing.
func (w *textWriter) separate(i int) error {
	if i > 0 {
		if err := writeRawChar(',', w.out); err != nil {
			return err
		}
		if w.opts&TextWriterPretty == 0 {
			return writeRawChar(' ', w.out)
		}
	}
	if w.opts&TextWriterPretty != 0 {
		return w.newline()
	}
	return nil
}

// end closes a container, dropping back to the enclosing indent first when
// pretty-printing.
func (w *textWriter) end(c byte) error {
	w.depth--
	if w.opts&TextWriterPretty != 0 {
		if err := w.newline(); err != nil {
			return err
		}
	}
	return writeRawChar(c, w.out)
}

func (w *textWriter) newline() error {
	if err := writeRawChar('\n', w.out); err != nil {
		return err
	}
	for i := 0; i < w.depth; i++ {
		if err := writeRawString("  ", w.out); err != nil {
			return err
		}
	}
	return nil
}
