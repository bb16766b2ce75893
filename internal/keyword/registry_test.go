package keyword

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/shapespace/internal/value"
)

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 14)
	for _, required := range []string{"string", "number", "boolean", "null", "any"} {
		assert.Contains(t, names, required)
	}
	assert.IsIncreasing(t, names)
}

func TestIs(t *testing.T) {
	assert.True(t, Is("string"))
	assert.False(t, Is("String"))
	assert.False(t, Is("user"))
	assert.False(t, Is(""))
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("numbr")
	assert.False(t, ok)
}

func TestPredicates(t *testing.T) {
	samples := map[string]any{
		"undefined": value.Undefined,
		"null":      nil,
		"true":      true,
		"false":     false,
		"int":       42,
		"float":     1.5,
		"bigint":    big.NewInt(1),
		"string":    "s",
		"array":     []any{},
		"object":    map[string]any{},
		"function":  func() {},
	}

	accepts := map[string][]string{
		"any":       {"undefined", "null", "true", "false", "int", "float", "bigint", "string", "array", "object", "function"},
		"unknown":   {"undefined", "null", "true", "false", "int", "float", "bigint", "string", "array", "object", "function"},
		"never":     {},
		"undefined": {"undefined"},
		"void":      {"undefined"},
		"null":      {"null"},
		"boolean":   {"true", "false"},
		"true":      {"true"},
		"false":     {"false"},
		"number":    {"int", "float"},
		"bigint":    {"bigint"},
		"string":    {"string"},
		"object":    {"array", "object", "function"},
		"function":  {"function"},
	}
	require.Len(t, accepts, len(Names()), "every keyword has an expectation")

	for kw, want := range accepts {
		pred, ok := Lookup(kw)
		require.True(t, ok, kw)
		for sample, v := range samples {
			assert.Equal(t, contains(want, sample), pred(v), "%s(%s)", kw, sample)
		}
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
