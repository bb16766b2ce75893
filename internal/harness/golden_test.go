package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Scenarios(t *testing.T) {
	for _, name := range []string{
		"self_reference",
		"mutual_cycles",
		"malformed_definitions",
		"inline_definitions",
	} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
			require.NoError(t, err)

			result, err := RunWithGolden(t, s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestMarshalTrace_Canonical(t *testing.T) {
	result := NewResult()
	result.AddTrace(TraceEvent{
		Type:      EventBuild,
		Seq:       0,
		Members:   []string{"a"},
		Recursive: [][]string{},
		Outcome:   "ok",
	})
	result.AddTrace(TraceEvent{
		Type:    EventCheck,
		Seq:     1,
		Case:    "c",
		Target:  "a",
		Outcome: ExpectReject,
		Errors:  []string{`unexpected key "<b>"`},
	})

	got, err := MarshalTrace("demo", result)
	require.NoError(t, err)
	assert.Equal(t,
		`{"scenario_name":"demo","trace":[`+
			`{"members":["a"],"outcome":"ok","recursive":[],"seq":0,"type":"build"},`+
			`{"case":"c","errors":["unexpected key \"<b>\""],"outcome":"reject","seq":1,"target":"a","type":"check"}]}`,
		string(got))
}
