// Package harness runs conformance scenarios against Spaces.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	space:                    # inline members
//	  category:
//	    name: "string"
//	    subcategories: "category[]"
//	space_files:              # merged with space; relative to the scenario file
//	  - defs/social.yaml
//	options:
//	  open_objects: false
//	  strict_names: false
//	build:                    # optional; defaults to ok: true
//	  ok: false
//	  errors:
//	    - "broken: numbr is not a valid expression."
//	cases:
//	  - name: leaf category
//	    type: category        # or definition: <inline definition>
//	    value: {name: A, subcategories: []}
//	    expect: accept        # or reject
//	    errors:               # expected mismatch messages (subset match)
//	      - 'subcategories[0]: unexpected key "subsandwiches"'
//
// A case with absent: true checks the undefined value instead of value.
//
// # Trace
//
// Run records one build event followed by one check event per case.
// Events carry a logical sequence number rather than timestamps, so a
// scenario's trace is identical across runs and can be compared against a
// golden file with RunWithGolden.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/self_reference.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
