/*
Package tson parses and serializes TSON, a JSON-like data-interchange format
that replaces null with an explicit optionality construct (Some(x) / None)
and adds a single-character type alongside strings.

Parsing a buffer yields a tree of Values:

	v, err := tson.ParseString(`{ "error_code": Some(400), "body": None }`)
	if err != nil {
		// err describes the first offending offset; no partial tree exists.
	}
	obj := v.(tson.Object)
	code, _ := obj.Get("error_code")

The parser is a pure, synchronous function: it holds no state between calls
and concurrent parses need no coordination. String values reference the
input buffer directly when they contain no escape sequences, so a parsed
tree must not outlive its input.

WriteText and Text perform the reverse transformation, emitting canonical
text that re-parses to a structurally equal tree.
*/
package tson
