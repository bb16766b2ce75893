package shape

import (
	"strconv"
	"strings"
)

// Segment is one step of a Path: an object key or an array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path locates a definition leaf or a value inside a nested structure.
// Paths are values; the append helpers never share backing arrays.
type Path []Segment

// Key returns a copy of p extended by an object key.
func (p Path) Key(k string) Path {
	return p.with(Segment{Key: k})
}

// Index returns a copy of p extended by an array index.
func (p Path) Index(i int) Path {
	return p.with(Segment{Index: i, IsIndex: true})
}

func (p Path) with(s Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, s)
}

// String renders keys dot-separated and indices bracketed:
// "users[0].name". The root path renders as "".
func (p Path) String() string {
	var sb strings.Builder
	for i, s := range p {
		if s.IsIndex {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(s.Index))
			sb.WriteByte(']')
			continue
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(s.Key)
	}
	return sb.String()
}
