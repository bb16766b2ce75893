package expr

import "strings"

// Node is a parsed shape expression.
// Implemented by Keyword, Reference, List, Union and Optional.
type Node interface {
	// String renders the node back to expression syntax.
	String() string
	node()
}

// Keyword is a built-in primitive name.
type Keyword struct {
	Name string
}

// Reference names another member of the enclosing Space.
type Reference struct {
	Name string
}

// List is item[].
type List struct {
	Item Node
}

// Union is A|B|C. Members keep their written order.
type Union struct {
	Members []Node
}

// Optional is inner?; it admits an absent value in addition to inner.
type Optional struct {
	Inner Node
}

func (Keyword) node()   {}
func (Reference) node() {}
func (List) node()      {}
func (Union) node()     {}
func (Optional) node()  {}

func (n Keyword) String() string   { return n.Name }
func (n Reference) String() string { return n.Name }
func (n List) String() string      { return n.Item.String() + "[]" }
func (n Optional) String() string  { return n.Inner.String() + "?" }

func (n Union) String() string {
	parts := make([]string, len(n.Members))
	for i, m := range n.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, "|")
}

// IsOptional reports whether n is syntactically Optional at its root.
func IsOptional(n Node) bool {
	_, ok := n.(Optional)
	return ok
}

// References returns the member names n refers to, in written order,
// without duplicates.
func References(n Node) []string {
	var refs []string
	seen := map[string]bool{}
	var walk func(Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case Reference:
			if !seen[n.Name] {
				seen[n.Name] = true
				refs = append(refs, n.Name)
			}
		case List:
			walk(n.Item)
		case Optional:
			walk(n.Inner)
		case Union:
			for _, m := range n.Members {
				walk(m)
			}
		}
	}
	walk(n)
	return refs
}
