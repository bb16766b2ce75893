package space

import (
	"github.com/roach88/shapespace/internal/shape"
)

// Rule is the checkable form of a member or inline definition.
// Rules are immutable and may be used concurrently.
type Rule struct {
	space *Space
	shape shape.Shape
	name  string
}

// Name returns the member name, or "" for an inline definition.
func (r *Rule) Name() string {
	return r.name
}

// Shape returns the validated shape behind the rule.
func (r *Rule) Shape() shape.Shape {
	return r.shape
}

// Definition returns the canonical definition the rule checks.
func (r *Rule) Definition() any {
	return r.shape.Definition()
}

// Accepts reports whether v fits the rule.
func (r *Rule) Accepts(v any) bool {
	return r.Check(v) == nil
}

// Check verifies v, returning nil or every mismatch found as Mismatches.
func (r *Rule) Check(v any) error {
	c := checker{space: r.space}
	var errs Mismatches
	if r.name != "" {
		errs = c.reference(r.name, v, nil, nil)
	} else {
		errs = c.shape(r.shape, v, nil, nil)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// String returns the member name, or the rendered definition for an
// inline rule.
func (r *Rule) String() string {
	if r.name != "" {
		return r.name
	}
	if e, ok := r.shape.(*shape.Expr); ok {
		return e.Node.String()
	}
	return "<" + kindOfShape(r.shape) + ">"
}

func kindOfShape(s shape.Shape) string {
	switch s.(type) {
	case *shape.Object:
		return "object"
	case *shape.Tuple:
		return "tuple"
	default:
		return "expression"
	}
}
