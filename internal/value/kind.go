package value

import (
	"encoding/json"
	"math/big"
	"reflect"
)

// Kind is the coarse runtime shape of a value.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindBigInt
	KindString
	KindArray
	KindObject
	KindFunction
	KindOther
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBoolean:   "boolean",
	KindNumber:    "number",
	KindBigInt:    "bigint",
	KindString:    "string",
	KindArray:     "array",
	KindObject:    "object",
	KindFunction:  "function",
	KindOther:     "other",
}

// String returns the lowercase kind name used in mismatch messages.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "other"
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks an absent value. Get returns it for missing keys, and
// callers may pass it directly to check a top-level absence.
var Undefined any = undefined{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// Of classifies v.
func Of(v any) Kind {
	// Fast paths for decoder output.
	switch val := v.(type) {
	case nil:
		return KindNull
	case undefined:
		return KindUndefined
	case string:
		return KindString
	case bool:
		return KindBoolean
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return KindNumber
	case *big.Int:
		if val == nil {
			return KindNull
		}
		return KindBigInt
	case big.Int:
		return KindBigInt
	case *big.Float:
		if val == nil {
			return KindNull
		}
		return KindNumber
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	}

	rv, ok := indirect(v)
	if !ok {
		return KindNull
	}
	switch rv.Kind() {
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindObject
		}
		return KindOther
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Func:
		return KindFunction
	default:
		return KindOther
	}
}

// indirect dereferences pointers and interfaces. ok is false when a nil
// is reached.
func indirect(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}
