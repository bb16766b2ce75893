// Package keyword is the fixed registry of built-in shape keywords.
//
// A keyword names a primitive runtime predicate ("string", "number",
// "null", ...). The registry is process-wide and read-only; expressions
// resolve a name here before trying Space members, so a keyword always
// wins over a member of the same name.
package keyword
