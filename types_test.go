package tson

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	for expected, typ := range map[string]Type{
		"none":           NoType,
		"float":          FloatType,
		"bool":           BoolType,
		"string":         StringType,
		"char":           CharType,
		"list":           ListType,
		"optional":       OptionalType,
		"object":         ObjectType,
		"<unknown type>": Type(99),
	} {
		assert.Equal(t, expected, typ.String())
	}
}

func TestValueTypes(t *testing.T) {
	assert.Equal(t, FloatType, NewFloat(1).Type())
	assert.Equal(t, BoolType, NewBool(true).Type())
	assert.Equal(t, StringType, NewString("x").Type())
	assert.Equal(t, CharType, NewChar('x').Type())
	assert.Equal(t, ListType, NewList().Type())
	assert.Equal(t, OptionalType, None().Type())
	assert.Equal(t, OptionalType, Some(NewFloat(1)).Type())
	assert.Equal(t, ObjectType, NewObject(nil).Type())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Value
		expected bool
	}{
		{"equal floats", NewFloat(2.2), NewFloat(2.2), true},
		{"unequal floats", NewFloat(2.2), NewFloat(2.3), false},
		{"equal bools", NewBool(true), NewBool(true), true},
		{"unequal bools", NewBool(true), NewBool(false), false},
		{"equal strings", NewString("hey"), NewString("hey"), true},
		{"unequal strings", NewString("hey"), NewString("hej"), false},
		{"equal chars", NewChar('a'), NewChar('a'), true},
		{"unequal chars", NewChar('a'), NewChar('b'), false},
		{"char is not a one-rune string", NewChar('a'), NewString("a"), false},
		{"bool is not a float", NewBool(true), NewFloat(1), false},
		{"none equals none", None(), None(), true},
		{"none is not some", None(), Some(NewFloat(1)), false},
		{"equal somes", Some(NewFloat(1)), Some(NewFloat(1)), true},
		{"unequal somes", Some(NewFloat(1)), Some(NewFloat(2)), false},
		{"value is not its wrapping", NewFloat(1), Some(NewFloat(1)), false},
		{"empty lists", NewList(), NewList(), true},
		{
			"list order is significant",
			NewList(NewFloat(1), NewFloat(2)),
			NewList(NewFloat(2), NewFloat(1)),
			false,
		},
		{
			"equal lists",
			NewList(NewFloat(1), NewChar('z')),
			NewList(NewFloat(1), NewChar('z')),
			true,
		},
		{
			"prefix list is not equal",
			NewList(NewFloat(1)),
			NewList(NewFloat(1), NewFloat(2)),
			false,
		},
		{
			"equal objects",
			NewObject(map[string]Value{"a": NewFloat(1), "b": None()}),
			NewObject(map[string]Value{"b": None(), "a": NewFloat(1)}),
			true,
		},
		{
			"differing object values",
			NewObject(map[string]Value{"a": NewFloat(1)}),
			NewObject(map[string]Value{"a": NewFloat(2)}),
			false,
		},
		{
			"differing object keys",
			NewObject(map[string]Value{"a": NewFloat(1)}),
			NewObject(map[string]Value{"b": NewFloat(1)}),
			false,
		},
		{
			"subset object is not equal",
			NewObject(map[string]Value{"a": NewFloat(1)}),
			NewObject(map[string]Value{"a": NewFloat(1), "b": None()}),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
			assert.Equal(t, tt.expected, tt.b.Equal(tt.a), "Equal must be symmetric")
		})
	}
}

// Member order in the source text never affects equality of parsed objects.
func TestEqualIgnoresMemberOrder(t *testing.T) {
	a, err := ParseString(`{ "error_code": Some(400), "body": None }`)
	require.NoError(t, err)
	b, err := ParseString(`{ "body": None, "error_code": Some(400) }`)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

// Parsing the same input twice yields structurally equal trees, checked both
// with Equal and with a field-level diff.
func TestReparseIdempotence(t *testing.T) {
	text := `{ "error_code": None, "body": Some({ "response": "bleblebleble", "tags": ['a', 1.5, [true]] }) }`

	v1, err := ParseString(text)
	require.NoError(t, err)
	v2, err := ParseString(text)
	require.NoError(t, err)

	assert.True(t, v1.Equal(v2))

	diff := cmp.Diff(v1, v2, cmp.AllowUnexported(
		Float{}, Bool{}, String{}, Char{}, List{}, Optional{}, Object{},
	))
	assert.Empty(t, diff)
}

func TestObjectAccessors(t *testing.T) {
	obj := NewObject(map[string]Value{"a": NewFloat(1)})

	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, NewFloat(1), v)

	_, ok = obj.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, 1, obj.Len())
	assert.Equal(t, 1, len(obj.Fields()))
}

func TestListAccessors(t *testing.T) {
	l := NewList(NewFloat(1), NewFloat(2))
	assert.Equal(t, 2, l.Len())
	require.Len(t, l.Values(), 2)
	assert.Equal(t, NewFloat(2), l.Values()[1])
}

func TestOptionalAccessors(t *testing.T) {
	assert.True(t, None().IsNone())
	assert.Nil(t, None().Value())

	s := Some(NewChar('a'))
	assert.False(t, s.IsNone())
	assert.Equal(t, NewChar('a'), s.Value())
}
