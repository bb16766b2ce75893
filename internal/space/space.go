package space

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/roach88/shapespace/internal/expr"
	"github.com/roach88/shapespace/internal/keyword"
	"github.com/roach88/shapespace/internal/shape"
)

// Space is a validated, immutable set of named shape definitions.
type Space struct {
	members   map[string]shape.Shape
	names     []string
	parser    *expr.Parser
	validator *shape.Validator
	recursive [][]string
	open      bool
	logger    *slog.Logger
}

// nameSet is the reference context handed to the parser during Build,
// before any Space exists.
type nameSet map[string]struct{}

func (n nameSet) Has(name string) bool {
	_, ok := n[name]
	return ok
}

// Build validates every member of members and returns the resulting
// Space. Each definition may reference any member name, its own
// included. On failure Build returns a *BuildError carrying every
// problem found, with paths starting at the member name.
func Build(members map[string]any, opts ...Option) (*Space, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	names := make([]string, 0, len(members))
	set := make(nameSet, len(members))
	for name := range members {
		names = append(names, name)
		set[name] = struct{}{}
	}
	slices.Sort(names)

	parser := expr.NewParser(set, expr.WithCacheSize(cfg.cacheSize))
	validator := shape.NewValidator(parser)

	var errs shape.Errors
	shapes := make(map[string]shape.Shape, len(members))
	for _, name := range names {
		root := shape.Path{}.Key(name)
		if keyword.Is(name) {
			if cfg.strictNames {
				errs = append(errs, &shape.PathedError{Path: root, Err: &ShadowError{Name: name}})
				continue
			}
			cfg.logger.Warn("member shadows built-in keyword", "name", name)
		}

		s, err := validator.Validate(members[name])
		if err != nil {
			var verrs shape.Errors
			if !errors.As(err, &verrs) {
				errs = append(errs, &shape.PathedError{Path: root, Err: err})
				continue
			}
			for _, pe := range verrs {
				errs = append(errs, pe.Prefix(root))
			}
			continue
		}
		shapes[name] = s
	}
	if len(errs) > 0 {
		return nil, &BuildError{Errors: errs}
	}

	sp := &Space{
		members:   shapes,
		names:     names,
		parser:    parser,
		validator: validator,
		open:      cfg.openObjects,
		logger:    cfg.logger,
	}
	sp.recursive = recursiveGroups(sp.referenceGraph())

	cfg.logger.Debug("space built",
		"members", len(names),
		"recursive_groups", len(sp.recursive),
	)
	return sp, nil
}

// MustBuild is like Build but panics on error. Intended for tests and
// package-level fixtures.
func MustBuild(members map[string]any, opts ...Option) *Space {
	s, err := Build(members, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Has reports whether name is a member. A nil Space has no members.
func (s *Space) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[name]
	return ok
}

// Names returns the member names in sorted order.
func (s *Space) Names() []string {
	return slices.Clone(s.names)
}

// Definition returns the canonical definition of the named member.
func (s *Space) Definition(name string) (any, bool) {
	sh, ok := s.members[name]
	if !ok {
		return nil, false
	}
	return sh.Definition(), true
}

// Describe returns every member's canonical definition, keyed by name.
// Expressions are re-rendered, so "string | number" style input never
// survives and unions keep their written order.
func (s *Space) Describe() map[string]any {
	out := make(map[string]any, len(s.members))
	for name, sh := range s.members {
		out[name] = sh.Definition()
	}
	return out
}

// Recursive returns the groups of members that reach themselves through
// references: mutually recursive sets and self-referencing members.
// Groups and the names inside them are sorted.
func (s *Space) Recursive() [][]string {
	out := make([][]string, len(s.recursive))
	for i, g := range s.recursive {
		out[i] = slices.Clone(g)
	}
	return out
}

// TypeOf returns the rule for the named member. Keyword shadowing does
// not apply here: a member named "string" is found by name.
func (s *Space) TypeOf(name string) (*Rule, error) {
	sh, ok := s.members[name]
	if !ok {
		return nil, &UnknownTypeError{Name: name}
	}
	return &Rule{space: s, shape: sh, name: name}, nil
}

// TypeOfDefinition validates an inline definition against the Space's
// names and returns its rule. Errors are shape.Errors, as from
// shape.Validate.
func (s *Space) TypeOfDefinition(def any) (*Rule, error) {
	sh, err := s.validator.Validate(def)
	if err != nil {
		return nil, err
	}
	return &Rule{space: s, shape: sh}, nil
}

// Check verifies v against the named member. It returns nil, an
// *UnknownTypeError, or Mismatches.
func (s *Space) Check(v any, name string) error {
	r, err := s.TypeOf(name)
	if err != nil {
		return err
	}
	return r.Check(v)
}

// CheckDefinition verifies v against an inline definition.
func (s *Space) CheckDefinition(v any, def any) error {
	r, err := s.TypeOfDefinition(def)
	if err != nil {
		return err
	}
	return r.Check(v)
}

func (s *Space) referenceGraph() referenceGraph {
	graph := make(referenceGraph, len(s.members))
	for _, name := range s.names {
		graph[name] = shape.References(s.members[name])
	}
	return graph
}
