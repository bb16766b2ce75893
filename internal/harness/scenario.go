package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a Space and the values
// it should accept or reject.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Space holds inline member definitions.
	Space map[string]any `yaml:"space,omitempty"`

	// SpaceFiles lists definition files merged into Space.
	// Paths are relative to the scenario file location.
	SpaceFiles []string `yaml:"space_files,omitempty"`

	// Options configures the Space build.
	Options Options `yaml:"options,omitempty"`

	// Build is the expected build outcome. Nil means the build must succeed.
	Build *BuildExpectation `yaml:"build,omitempty"`

	// Cases are value checks run against the built Space.
	Cases []Case `yaml:"cases,omitempty"`
}

// Options mirrors the space build options.
type Options struct {
	OpenObjects bool `yaml:"open_objects,omitempty"`
	StrictNames bool `yaml:"strict_names,omitempty"`
}

// BuildExpectation describes the expected result of building the Space.
type BuildExpectation struct {
	OK bool `yaml:"ok"`

	// Errors are expected build error messages (subset match).
	Errors []string `yaml:"errors,omitempty"`
}

// Case is one value check.
type Case struct {
	Name string `yaml:"name"`

	// Type names the member to check against. Exactly one of Type and
	// Definition is set.
	Type string `yaml:"type,omitempty"`

	// Definition is an inline definition resolved against the Space.
	Definition any `yaml:"definition,omitempty"`

	// Value is the value to check.
	Value any `yaml:"value,omitempty"`

	// Absent checks the undefined value; Value must be unset.
	Absent bool `yaml:"absent,omitempty"`

	// Expect is ExpectAccept or ExpectReject.
	Expect string `yaml:"expect"`

	// Errors are expected mismatch messages (subset match). Only valid
	// with ExpectReject.
	Errors []string `yaml:"errors,omitempty"`
}

// Expectation constants.
const (
	ExpectAccept = "accept"
	ExpectReject = "reject"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
// Space file paths are resolved relative to the scenario file.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithBasePath(path, filepath.Dir(path))
}

// LoadScenarioWithBasePath reads and parses a scenario YAML file,
// resolving space file paths relative to the provided base path.
func LoadScenarioWithBasePath(path, basePath string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "case:" vs "cases:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i, file := range scenario.SpaceFiles {
		if !filepath.IsAbs(file) && basePath != "" {
			scenario.SpaceFiles[i] = filepath.Join(basePath, file)
		}
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Space) == 0 && len(s.SpaceFiles) == 0 {
		return fmt.Errorf("space or space_files is required")
	}

	for _, file := range s.SpaceFiles {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			return fmt.Errorf("space file not found: %s", file)
		}
	}

	buildOK := s.Build == nil || s.Build.OK
	if s.Build != nil && s.Build.OK && len(s.Build.Errors) > 0 {
		return fmt.Errorf("build: errors require ok: false")
	}
	if !buildOK && len(s.Cases) > 0 {
		return fmt.Errorf("cases cannot run when the build is expected to fail")
	}
	if buildOK && len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required when the build is expected to succeed")
	}

	for i := range s.Cases {
		if err := validateCase(i, &s.Cases[i]); err != nil {
			return err
		}
	}

	return nil
}

// validateCase validates a single case.
func validateCase(index int, c *Case) error {
	if c.Name == "" {
		return fmt.Errorf("cases[%d]: name is required", index)
	}
	if (c.Type == "") == (c.Definition == nil) {
		return fmt.Errorf("cases[%d]: exactly one of type and definition is required", index)
	}
	if c.Absent && c.Value != nil {
		return fmt.Errorf("cases[%d]: absent and value are mutually exclusive", index)
	}

	switch c.Expect {
	case ExpectAccept:
		if len(c.Errors) > 0 {
			return fmt.Errorf("cases[%d]: errors are only valid with expect: reject", index)
		}
	case ExpectReject:
	case "":
		return fmt.Errorf("cases[%d]: expect is required", index)
	default:
		return fmt.Errorf("cases[%d]: unknown expectation %q", index, c.Expect)
	}

	return nil
}
