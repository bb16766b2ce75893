package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/roach88/shapespace/internal/loader"
	"github.com/roach88/shapespace/internal/space"
	"github.com/roach88/shapespace/internal/value"
)

// Harness is the scenario execution engine.
type Harness struct {
	logger *slog.Logger
	seq    int64
}

// Run executes a test scenario and returns the result.
//
// Execution flow:
// 1. Merge inline members with space_files
// 2. Build the Space and compare against the build expectation
// 3. Check every case and compare against its expectation
// 4. Return result with pass/fail, trace, and errors
//
// Expectation failures are reported in the Result. Run returns an error
// only when the scenario itself cannot be executed.
func Run(scenario *Scenario) (*Result, error) {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}
	return h.run(scenario)
}

func (h *Harness) next() int64 {
	s := h.seq
	h.seq++
	return s
}

func (h *Harness) run(scenario *Scenario) (*Result, error) {
	members, err := mergeMembers(scenario)
	if err != nil {
		return nil, err
	}

	opts := []space.Option{space.WithLogger(h.logger)}
	if scenario.Options.OpenObjects {
		opts = append(opts, space.WithOpenObjects())
	}
	if scenario.Options.StrictNames {
		opts = append(opts, space.WithStrictNames())
	}

	result := NewResult()
	sp, buildErr := space.Build(members, opts...)
	if buildErr != nil && !space.IsBuildError(buildErr) {
		return nil, fmt.Errorf("build space: %w", buildErr)
	}
	h.recordBuild(scenario, members, sp, buildErr, result)
	if sp == nil {
		return result, nil
	}

	for i := range scenario.Cases {
		if err := h.runCase(sp, i, &scenario.Cases[i], result); err != nil {
			return nil, err
		}
	}

	h.logger.Info("scenario completed",
		"scenario", scenario.Name,
		"cases", len(scenario.Cases),
		"pass", result.Pass,
	)
	return result, nil
}

// mergeMembers combines inline members with members from space_files.
func mergeMembers(scenario *Scenario) (map[string]any, error) {
	members := make(map[string]any, len(scenario.Space))
	for name, def := range scenario.Space {
		members[name] = def
	}
	for _, file := range scenario.SpaceFiles {
		loaded, err := loader.LoadFile(file)
		if err != nil {
			return nil, fmt.Errorf("load space file: %w", err)
		}
		for name, def := range loaded {
			if _, dup := members[name]; dup {
				return nil, fmt.Errorf("member %q defined more than once (in %s)", name, file)
			}
			members[name] = def
		}
	}
	return members, nil
}

func (h *Harness) recordBuild(scenario *Scenario, members map[string]any, sp *space.Space, buildErr error, result *Result) {
	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	slices.Sort(names)

	event := TraceEvent{
		Type:    EventBuild,
		Seq:     h.next(),
		Members: names,
	}
	var messages []string
	if sp != nil {
		event.Outcome = "ok"
		event.Recursive = sp.Recursive()
	} else {
		var be *space.BuildError
		errors.As(buildErr, &be)
		messages = be.Messages()
		event.Outcome = "error"
		event.Errors = messages
	}
	result.AddTrace(event)

	expectOK := scenario.Build == nil || scenario.Build.OK
	switch {
	case expectOK && sp == nil:
		result.AddError(fmt.Sprintf("build: expected success, got %d error(s): %s",
			len(messages), strings.Join(messages, "; ")))
	case !expectOK && sp != nil:
		result.AddError("build: expected failure, got success")
	case !expectOK:
		for _, want := range missing(scenario.Build.Errors, messages) {
			result.AddError(fmt.Sprintf("build: expected error %q not reported", want))
		}
	}
}

func (h *Harness) runCase(sp *space.Space, index int, c *Case, result *Result) error {
	var (
		rule *space.Rule
		err  error
	)
	if c.Type != "" {
		rule, err = sp.TypeOf(c.Type)
	} else {
		rule, err = sp.TypeOfDefinition(c.Definition)
	}
	if err != nil {
		return fmt.Errorf("cases[%d] %s: %w", index, c.Name, err)
	}

	v := c.Value
	if c.Absent {
		v = value.Undefined
	}

	event := TraceEvent{
		Type:    EventCheck,
		Seq:     h.next(),
		Case:    c.Name,
		Target:  rule.String(),
		Outcome: ExpectAccept,
	}
	var messages []string
	if checkErr := rule.Check(v); checkErr != nil {
		var ms space.Mismatches
		if !errors.As(checkErr, &ms) {
			return fmt.Errorf("cases[%d] %s: %w", index, c.Name, checkErr)
		}
		for _, m := range ms {
			messages = append(messages, m.Error())
		}
		event.Outcome = ExpectReject
		event.Errors = messages
	}
	result.AddTrace(event)

	if event.Outcome != c.Expect {
		msg := fmt.Sprintf("case %q: expected %s, got %s", c.Name, c.Expect, event.Outcome)
		if len(messages) > 0 {
			msg += ": " + strings.Join(messages, "; ")
		}
		result.AddError(msg)
		return nil
	}
	for _, want := range missing(c.Errors, messages) {
		result.AddError(fmt.Sprintf("case %q: expected error %q not reported", c.Name, want))
	}

	h.logger.Debug("case checked",
		"case", c.Name,
		"target", event.Target,
		"outcome", event.Outcome,
	)
	return nil
}

// missing returns the entries of want not found in got.
func missing(want, got []string) []string {
	var out []string
	for _, w := range want {
		if !slices.Contains(got, w) {
			out = append(out, w)
		}
	}
	return out
}
