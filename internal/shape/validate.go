package shape

import (
	"reflect"

	"github.com/roach88/shapespace/internal/expr"
	"github.com/roach88/shapespace/internal/value"
)

// ExprParser parses one expression. *expr.Parser implements it.
type ExprParser interface {
	Parse(expression string) (expr.Node, error)
}

// Validator checks definitions against a fixed expression parser.
type Validator struct {
	parser ExprParser
}

// NewValidator creates a validator that parses leaves with p.
func NewValidator(p ExprParser) *Validator {
	return &Validator{parser: p}
}

// Validate validates def with references resolved against names, which
// may be nil. It is shorthand for NewValidator(expr.NewParser(names)).
func Validate(def any, names expr.Names) (Shape, error) {
	return NewValidator(expr.NewParser(names)).Validate(def)
}

// Validate walks def and returns its Shape.
// Returns all errors found (does not fail-fast) as Errors.
func (v *Validator) Validate(def any) (Shape, error) {
	var errs Errors
	s := v.walk(def, nil, &errs)
	if len(errs) > 0 {
		return nil, errs
	}
	return s, nil
}

func (v *Validator) walk(def any, path Path, errs *Errors) Shape {
	if s, ok := def.(string); ok {
		n, err := v.parser.Parse(s)
		if err != nil {
			*errs = append(*errs, &PathedError{Path: path, Err: err})
			return nil
		}
		return &Expr{Node: n}
	}

	switch value.Of(def) {
	case value.KindString:
		// Named string types that missed the fast path above.
		return v.walk(stringOf(def), path, errs)

	case value.KindObject:
		keys := value.Keys(def)
		obj := &Object{Properties: make([]Property, 0, len(keys))}
		for _, k := range keys {
			child, _ := value.Get(def, k)
			s := v.walk(child, path.Key(k), errs)
			if s == nil {
				continue
			}
			prop := Property{Key: k, Shape: s}
			if e, ok := s.(*Expr); ok {
				prop.Optional = expr.IsOptional(e.Node)
			}
			obj.Properties = append(obj.Properties, prop)
		}
		return obj

	case value.KindArray:
		elems := value.Elements(def)
		tup := &Tuple{Elements: make([]Shape, 0, len(elems))}
		for i, elem := range elems {
			if s := v.walk(elem, path.Index(i), errs); s != nil {
				tup.Elements = append(tup.Elements, s)
			}
		}
		return tup

	default:
		*errs = append(*errs, &PathedError{Path: path, Err: &LeafError{Value: def}})
		return nil
	}
}

// stringOf converts a value of a named string type to string.
func stringOf(v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	return rv.String()
}
