package keyword

import (
	"slices"

	"github.com/roach88/shapespace/internal/value"
)

// Predicate reports whether a runtime value has a primitive shape.
type Predicate func(v any) bool

func kindIs(kinds ...value.Kind) Predicate {
	return func(v any) bool {
		return slices.Contains(kinds, value.Of(v))
	}
}

func boolIs(want bool) Predicate {
	return func(v any) bool {
		b, ok := v.(bool)
		return ok && b == want
	}
}

var registry = map[string]Predicate{
	"any":       func(any) bool { return true },
	"unknown":   func(any) bool { return true },
	"never":     func(any) bool { return false },
	"undefined": kindIs(value.KindUndefined),
	"void":      kindIs(value.KindUndefined),
	"null":      kindIs(value.KindNull),
	"boolean":   kindIs(value.KindBoolean),
	"true":      boolIs(true),
	"false":     boolIs(false),
	"number":    kindIs(value.KindNumber),
	"bigint":    kindIs(value.KindBigInt),
	"string":    kindIs(value.KindString),
	"object":    kindIs(value.KindObject, value.KindArray, value.KindFunction),
	"function":  kindIs(value.KindFunction),
}

// Lookup returns the predicate registered under name.
func Lookup(name string) (Predicate, bool) {
	p, ok := registry[name]
	return p, ok
}

// Is reports whether name is a built-in keyword.
func Is(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns every keyword in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
