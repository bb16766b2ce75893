// Package loader reads Space member definitions from files.
//
// A definition file holds one top-level mapping from member name to
// shape definition. Three formats are accepted, chosen by extension:
//
//	.json        encoding/json
//	.yaml, .yml  gopkg.in/yaml.v3
//	.cue         cuelang.org/go (concrete values only)
//
// LoadDir merges every definition file under a directory into one
// member mapping; a member defined in two files is an error. BuildFile
// and BuildDir hand the result to space.Build.
//
// The loader only decodes. Whether the decoded definitions are valid
// shapes is decided by space.Build.
package loader
