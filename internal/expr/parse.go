package expr

import (
	"strings"

	"github.com/roach88/shapespace/internal/keyword"
)

// Names resolves non-keyword atoms. A nil Names resolves nothing.
type Names interface {
	Has(name string) bool
}

// Parse validates expression and returns its AST. names may be nil when
// no Space is active.
func Parse(expression string, names Names) (Node, error) {
	n, err := parseFragment(expression, names)
	if err != nil {
		err.Expression = expression
		return nil, err
	}
	return n, nil
}

// MustParse is like Parse but panics on error.
// Use only in tests or for expressions known to be valid.
func MustParse(expression string, names Names) Node {
	n, err := Parse(expression, names)
	if err != nil {
		panic(err)
	}
	return n
}

func parseFragment(fragment string, names Names) (Node, *FragmentError) {
	if inner, ok := strings.CutSuffix(fragment, "?"); ok {
		n, err := parseFragment(inner, names)
		if err != nil {
			return nil, err
		}
		return Optional{Inner: n}, nil
	}

	if left, right, ok := strings.Cut(fragment, "|"); ok {
		l, err := parseFragment(left, names)
		if err != nil {
			return nil, err
		}
		r, err := parseFragment(right, names)
		if err != nil {
			return nil, err
		}
		return union(l, r), nil
	}

	if item, ok := strings.CutSuffix(fragment, "[]"); ok {
		n, err := parseFragment(item, names)
		if err != nil {
			return nil, err
		}
		return List{Item: n}, nil
	}

	if keyword.Is(fragment) {
		return Keyword{Name: fragment}, nil
	}
	if names != nil && names.Has(fragment) {
		return Reference{Name: fragment}, nil
	}
	return nil, &FragmentError{Fragment: fragment}
}

// union flattens nested unions so A|B|C is one Union of three members.
func union(nodes ...Node) Union {
	var members []Node
	for _, n := range nodes {
		if u, ok := n.(Union); ok {
			members = append(members, u.Members...)
			continue
		}
		members = append(members, n)
	}
	return Union{Members: members}
}
