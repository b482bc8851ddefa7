package tson

// A Value is one node of a parsed TSON tree. Values are immutable once
// constructed; a parse either produces a complete tree or no tree at all.
//
// Values that contain text (String, and the keys of an Object) may reference
// the buffer they were parsed from rather than holding a copy, so a Value
// must not outlive the input it was parsed from.
type Value interface {
	// Type returns the Type of the Value.
	Type() Type

	// Equal reports whether this Value is structurally equal to other.
	// Lists compare element-wise in order; objects compare by key set,
	// ignoring member order.
	Equal(other Value) bool
}

// Float is a 64-bit floating-point value. TSON has a single numeric kind, so
// integer literals parse as Floats too.
type Float struct {
	value float64
}

// NewFloat constructs a Float holding val.
func NewFloat(val float64) Float {
	return Float{value: val}
}

func (f Float) Value() float64 {
	return f.value
}

// Type satisfies Value.
func (Float) Type() Type {
	return FloatType
}

// Equal satisfies Value.
func (f Float) Equal(other Value) bool {
	o, ok := other.(Float)
	return ok && f.value == o.value
}

// Bool is a boolean value, the literal true or false.
type Bool struct {
	value bool
}

// NewBool constructs a Bool holding val.
func NewBool(val bool) Bool {
	return Bool{value: val}
}

func (b Bool) Value() bool {
	return b.value
}

// Type satisfies Value.
func (Bool) Type() Type {
	return BoolType
}

// Equal satisfies Value.
func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && b.value == o.value
}
