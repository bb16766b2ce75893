// Package value classifies arbitrary Go runtime values for shape checking.
//
// Values reach the checker as whatever the caller decoded: encoding/json
// output (map[string]any, []any, float64, json.Number), yaml.v3 output
// (int, map[string]any), CUE-decoded values, or hand-built Go maps and
// slices. This package maps all of them onto a small set of kinds so the
// keyword predicates and the structural checker never type-switch on
// concrete Go types themselves.
//
// Key conventions:
//   - Untyped nil and nil pointers are Null
//   - Undefined is an explicit sentinel; a missing map key reads as Undefined
//   - Maps are objects only when their key type is string
//   - Object keys are always visited in RFC 8785 order (SortedKeys)
//
// The package also owns canonical JSON and content hashing, used to
// identify stored definitions.
package value
