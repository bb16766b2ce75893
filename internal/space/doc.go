// Package space resolves named, mutually recursive shape definitions.
//
// A Space is built once from a mapping of type name to definition. Every
// member is validated up front with the full set of member names as the
// reference context, so members may refer to each other and to
// themselves without either side being built first. A failed Build
// reports every problem across every member and produces no Space.
//
// # Lazy expansion
//
// Building never expands references. Checking a value expands a
// reference only when the value reaches it, and every expansion that
// continues past a reference must descend into a child of the value (an
// array element, a property, a tuple slot). A reference chain that
// returns to a name without descending, such as
//
//	a: "a|string"
//
// is cut at the repeated name: that branch fails and the remaining union
// members still apply, so "a" accepts strings.
//
// # Objects
//
// Object shapes are closed: unexpected keys are mismatches unless the
// Space is built WithOpenObjects. A key missing from the value is
// allowed only when its property shape accepts undefined ("foo?",
// "undefined", "any", ...).
//
// # Keyword shadowing
//
// A member named like a built-in keyword is permitted but unreachable
// from expressions, where the keyword wins. TypeOf still finds it by
// name. WithStrictNames turns such members into build errors.
//
// # Thread safety
//
// A built Space is immutable. TypeOf, Check and all accessors are safe
// for concurrent use; the only shared mutable state is the expression
// cache, which is internally locked.
package space
