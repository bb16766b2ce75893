package shape

import "github.com/roach88/shapespace/internal/expr"

// Shape is a validated definition.
// Implemented by *Expr, *Object and *Tuple.
type Shape interface {
	// Definition renders the shape back to its JSON-like definition, with
	// every expression in canonical form.
	Definition() any
	shape()
}

// Expr is a leaf holding a parsed expression.
type Expr struct {
	Node expr.Node
}

// Object is a keyed shape. Properties are sorted by key.
type Object struct {
	Properties []Property
}

// Property is one key of an Object.
type Property struct {
	Key   string
	Shape Shape

	// Optional is set when the property's own expression is Optional
	// ("foo?"): the key belongs to the shape but its value may be absent.
	Optional bool
}

// Tuple is a fixed-length positional shape.
type Tuple struct {
	Elements []Shape
}

func (*Expr) shape()   {}
func (*Object) shape() {}
func (*Tuple) shape()  {}

func (s *Expr) Definition() any {
	return s.Node.String()
}

func (s *Object) Definition() any {
	out := make(map[string]any, len(s.Properties))
	for _, p := range s.Properties {
		out[p.Key] = p.Shape.Definition()
	}
	return out
}

func (s *Tuple) Definition() any {
	out := make([]any, len(s.Elements))
	for i, e := range s.Elements {
		out[i] = e.Definition()
	}
	return out
}

// Property returns the property named key.
func (s *Object) Property(key string) (Property, bool) {
	for _, p := range s.Properties {
		if p.Key == key {
			return p, true
		}
	}
	return Property{}, false
}

// References returns every member name referenced anywhere in s, in
// traversal order, without duplicates.
func References(s Shape) []string {
	var refs []string
	seen := map[string]bool{}
	var walk func(Shape)
	walk = func(s Shape) {
		switch s := s.(type) {
		case *Expr:
			for _, r := range expr.References(s.Node) {
				if !seen[r] {
					seen[r] = true
					refs = append(refs, r)
				}
			}
		case *Object:
			for _, p := range s.Properties {
				walk(p.Shape)
			}
		case *Tuple:
			for _, e := range s.Elements {
				walk(e)
			}
		}
	}
	walk(s)
	return refs
}
