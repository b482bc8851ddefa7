package tson

// This file contains the recursive types: List, Optional and Object.

// List is an ordered sequence of zero or more Values. Order is significant
// and preserved.
type List struct {
	values []Value
}

// NewList constructs a List of the given values.
func NewList(values ...Value) List {
	return List{values: values}
}

// Values returns the elements of the list in order.
func (l List) Values() []Value {
	return l.values
}

// Len returns the number of elements in the list.
func (l List) Len() int {
	return len(l.values)
}

// Type satisfies Value.
func (List) Type() Type {
	return ListType
}

// Equal satisfies Value.
func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(l.values) != len(o.values) {
		return false
	}
	for i, v := range l.values {
		if !v.Equal(o.values[i]) {
			return false
		}
	}
	return true
}

// Optional is TSON's replacement for null: either None, carrying nothing, or
// Some(v), exclusively owning a contained value v.
type Optional struct {
	child Value
}

// Some constructs a present Optional wrapping child, which must be non-nil.
func Some(child Value) Optional {
	return Optional{child: child}
}

// None constructs an absent Optional.
func None() Optional {
	return Optional{}
}

// IsNone reports whether the Optional is absent.
func (o Optional) IsNone() bool {
	return o.child == nil
}

// Value returns the contained value, or nil if the Optional is None.
func (o Optional) Value() Value {
	return o.child
}

// Type satisfies Value.
func (Optional) Type() Type {
	return OptionalType
}

// Equal satisfies Value.
func (o Optional) Equal(other Value) bool {
	v, ok := other.(Optional)
	if !ok {
		return false
	}
	if o.child == nil || v.child == nil {
		return o.child == nil && v.child == nil
	}
	return o.child.Equal(v.child)
}

// Object maps unique string keys to Values. Iteration order is not part of
// the data model; two objects with the same members are equal regardless of
// the order their members were written in.
type Object struct {
	fields map[string]Value
}

// NewObject constructs an Object over the given fields. The map is retained,
// not copied; the caller must not mutate it afterwards.
func NewObject(fields map[string]Value) Object {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Object{fields: fields}
}

// Get returns the value for key, and whether the key is present.
func (o Object) Get(key string) (Value, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// Fields returns the members of the object. The map must not be modified.
func (o Object) Fields() map[string]Value {
	return o.fields
}

// Len returns the number of members in the object.
func (o Object) Len() int {
	return len(o.fields)
}

// Type satisfies Value.
func (Object) Type() Type {
	return ObjectType
}

// Equal satisfies Value.
func (o Object) Equal(other Value) bool {
	v, ok := other.(Object)
	if !ok || len(o.fields) != len(v.fields) {
		return false
	}
	for k, val := range o.fields {
		oval, present := v.fields[k]
		if !present || !val.Equal(oval) {
			return false
		}
	}
	return true
}
