// Package shape validates structured shape definitions.
//
// A definition is JSON-like: a string (a shape expression), a mapping of
// property name to definition (an object shape), or a sequence of
// definitions (a tuple shape). Validate walks the structure, parses every
// string leaf with an expr.Parser, and returns either a fully validated
// Shape tree or every problem found, each attributed to its path
// (e.g. "name.middle" or "tags[2]").
//
// Validation is pure: it reads the definition, never mutates it, and the
// returned Shape shares no containers with the input.
package shape
