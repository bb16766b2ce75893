package space

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/shapespace/internal/expr"
	"github.com/roach88/shapespace/internal/keyword"
	"github.com/roach88/shapespace/internal/shape"
	"github.com/roach88/shapespace/internal/value"
)

// checker walks a value and a shape together.
//
// pending holds the references expanded since the last descent into
// the value. Every descent (property, element, tuple slot) starts with
// an empty set, so recursion is bounded by the depth of the value.
type checker struct {
	space *Space
}

func mismatch(path shape.Path, format string, args ...any) Mismatches {
	return Mismatches{{Path: path, Message: fmt.Sprintf(format, args...)}}
}

func (c checker) shape(s shape.Shape, v any, path shape.Path, pending []string) Mismatches {
	switch s := s.(type) {
	case *shape.Expr:
		return c.node(s.Node, v, path, pending)
	case *shape.Object:
		return c.object(s, v, path)
	case *shape.Tuple:
		return c.tuple(s, v, path)
	default:
		return mismatch(path, "unsupported shape %T", s)
	}
}

func (c checker) node(n expr.Node, v any, path shape.Path, pending []string) Mismatches {
	switch n := n.(type) {
	case expr.Keyword:
		pred, _ := keyword.Lookup(n.Name)
		if pred(v) {
			return nil
		}
		return mismatch(path, "expected %s, got %s", n.Name, value.Of(v))

	case expr.Reference:
		return c.reference(n.Name, v, path, pending)

	case expr.Optional:
		if value.IsUndefined(v) {
			return nil
		}
		return c.node(n.Inner, v, path, pending)

	case expr.List:
		if value.Of(v) != value.KindArray {
			return mismatch(path, "expected list, got %s", value.Of(v))
		}
		var errs Mismatches
		for i, elem := range value.Elements(v) {
			errs = append(errs, c.node(n.Item, elem, path.Index(i), nil)...)
		}
		return errs

	case expr.Union:
		for _, m := range n.Members {
			if len(c.node(m, v, path, pending)) == 0 {
				return nil
			}
		}
		alts := make([]string, len(n.Members))
		for i, m := range n.Members {
			alts[i] = m.String()
		}
		return mismatch(path, "expected one of {%s}, value matched none", strings.Join(alts, ", "))

	default:
		return mismatch(path, "unsupported expression %T", n)
	}
}

func (c checker) reference(name string, v any, path shape.Path, pending []string) Mismatches {
	if slices.Contains(pending, name) {
		return mismatch(path, "reference %s cycles without consuming the value", name)
	}
	target, ok := c.space.members[name]
	if !ok {
		// Unreachable for a built Space: references are validated by Build.
		return mismatch(path, "unknown type %q", name)
	}
	next := make([]string, len(pending), len(pending)+1)
	copy(next, pending)
	return c.shape(target, v, path, append(next, name))
}

func (c checker) object(s *shape.Object, v any, path shape.Path) Mismatches {
	if k := value.Of(v); k != value.KindObject {
		return mismatch(path, "expected object, got %s", k)
	}

	var errs Mismatches
	for _, p := range s.Properties {
		child, present := value.Get(v, p.Key)
		found := c.shape(p.Shape, child, path.Key(p.Key), nil)
		if len(found) == 0 {
			continue
		}
		if !present {
			errs = append(errs, mismatch(path, "missing required key %q", p.Key)...)
			continue
		}
		errs = append(errs, found...)
	}

	if !c.space.open {
		for _, k := range value.Keys(v) {
			if _, declared := s.Property(k); declared {
				continue
			}
			if _, present := value.Get(v, k); !present {
				continue
			}
			errs = append(errs, mismatch(path, "unexpected key %q", k)...)
		}
	}
	return errs
}

func (c checker) tuple(s *shape.Tuple, v any, path shape.Path) Mismatches {
	if k := value.Of(v); k != value.KindArray {
		return mismatch(path, "expected tuple, got %s", k)
	}
	elems := value.Elements(v)
	if len(elems) != len(s.Elements) {
		return mismatch(path, "expected tuple of length %d, got length %d", len(s.Elements), len(elems))
	}
	var errs Mismatches
	for i, e := range s.Elements {
		errs = append(errs, c.shape(e, elems[i], path.Index(i), nil)...)
	}
	return errs
}
