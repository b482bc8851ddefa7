package tson

// A Type represents the type of a TSON Value.
type Type uint8

const (
	// NoType is the zero value of Type. No Value returns it; it exists so
	// that the zero value is distinguishable from a real type.
	NoType Type = iota

	// FloatType is the type of a TSON numeric value. All numeric literals,
	// including ones written without a fractional part, are 64-bit floats.
	FloatType

	// BoolType is the type of a TSON boolean, true or false.
	BoolType

	// StringType is the type of a double-quoted Unicode string.
	StringType

	// CharType is the type of a single-quoted literal holding exactly one
	// Unicode scalar value.
	CharType

	// ListType is the type of a list, recursively containing zero or more
	// TSON values in significant order.
	ListType

	// OptionalType is the type of an explicit optionality wrapper: either
	// None, or Some(v) for a contained value v. TSON has no null; this is
	// its replacement.
	OptionalType

	// ObjectType is the type of an object, mapping unique string keys to
	// TSON values. Member order is not part of the data model.
	ObjectType
)

// String implements fmt.Stringer for Type.
func (t Type) String() string {
	switch t {
	case NoType:
		return "none"
	case FloatType:
		return "float"
	case BoolType:
		return "bool"
	case StringType:
		return "string"
	case CharType:
		return "char"
	case ListType:
		return "list"
	case OptionalType:
		return "optional"
	case ObjectType:
		return "object"
	default:
		return "<unknown type>"
	}
}
