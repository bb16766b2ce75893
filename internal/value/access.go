package value

import (
	"reflect"
	"slices"
	"unicode/utf16"
)

// Keys returns the keys of an object value in RFC 8785 order.
// Returns nil when v is not an object.
func Keys(v any) []string {
	if m, ok := v.(map[string]any); ok {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		return SortedKeys(keys)
	}

	rv, ok := indirect(v)
	if !ok || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	keys := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	return SortedKeys(keys)
}

// Get returns the property key of an object value. A missing key, or a
// key explicitly holding Undefined, reports ok=false and returns Undefined.
func Get(v any, key string) (any, bool) {
	if m, ok := v.(map[string]any); ok {
		got, found := m[key]
		if !found || IsUndefined(got) {
			return Undefined, false
		}
		return got, true
	}

	rv, ok := indirect(v)
	if !ok || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return Undefined, false
	}
	got := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !got.IsValid() {
		return Undefined, false
	}
	out := got.Interface()
	if IsUndefined(out) {
		return Undefined, false
	}
	return out, true
}

// Elements returns the elements of an array value.
// Returns nil when v is not an array.
func Elements(v any) []any {
	if arr, ok := v.([]any); ok {
		return arr
	}

	rv, ok := indirect(v)
	if !ok || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// SortedKeys sorts keys in place in RFC 8785 order (UTF-16 code units)
// and returns them.
// Go's default string ordering compares UTF-8 bytes, which differs for
// characters outside the BMP.
func SortedKeys(keys []string) []string {
	slices.SortFunc(keys, compareKeysRFC8785)
	return keys
}

// compareKeysRFC8785 compares strings by UTF-16 code units.
func compareKeysRFC8785(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	minLen := min(len(a16), len(b16))
	for i := 0; i < minLen; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(a16) < len(b16):
		return -1
	case len(a16) > len(b16):
		return 1
	default:
		return 0
	}
}
