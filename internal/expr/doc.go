// Package expr parses shape expressions.
//
// A shape expression is a string such as "string|number[]?". The grammar
// is deliberately tiny:
//
//	expression := union "?"?
//	union      := list ("|" list)*
//	list       := atom "[]"*
//	atom       := KEYWORD | MEMBER
//
// Parsing is suffix/infix splitting in a fixed order, loosest first:
//  1. a trailing "?" wraps everything before it in Optional
//  2. the first "|" splits into a left and right half, left validated first
//  3. a trailing "[]" wraps everything before it in List
//  4. a keyword name becomes Keyword
//  5. a name known to the active Names becomes Reference
//
// Anything else fails with a *FragmentError naming the smallest fragment
// that did not parse, so "string|numbr[]?" reports "numbr".
//
// No whitespace is trimmed: "string | number" reports the fragment
// "string ".
package expr
