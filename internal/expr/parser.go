package expr

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of parsed expressions a Parser retains.
const DefaultCacheSize = 512

// Parser parses expressions against a fixed set of Names and memoizes
// results, including failures.
//
// Thread-safety: a Parser is safe for concurrent use. The cache is a
// locked LRU and a cached result is immutable once published.
type Parser struct {
	names Names
	cache *lru.Cache[string, parsed]
}

type parsed struct {
	node Node
	err  *FragmentError
}

// ParserOption configures a Parser.
type ParserOption func(*parserConfig)

type parserConfig struct {
	cacheSize int
}

// WithCacheSize sets how many expressions the parser memoizes.
// A size of zero or less disables caching.
func WithCacheSize(size int) ParserOption {
	return func(c *parserConfig) {
		c.cacheSize = size
	}
}

// NewParser creates a parser resolving references against names.
// names may be nil.
func NewParser(names Names, opts ...ParserOption) *Parser {
	cfg := parserConfig{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{names: names}
	if cfg.cacheSize > 0 {
		// lru.New only fails for non-positive sizes.
		p.cache, _ = lru.New[string, parsed](cfg.cacheSize)
	}
	return p
}

// Parse validates expression, consulting the cache first.
func (p *Parser) Parse(expression string) (Node, error) {
	if p.cache != nil {
		if hit, ok := p.cache.Get(expression); ok {
			return hit.result()
		}
	}

	n, err := parseFragment(expression, p.names)
	if err != nil {
		err.Expression = expression
	}
	res := parsed{node: n, err: err}
	if p.cache != nil {
		p.cache.Add(expression, res)
	}
	return res.result()
}

// Cached reports how many expressions are currently memoized.
func (p *Parser) Cached() int {
	if p.cache == nil {
		return 0
	}
	return p.cache.Len()
}

func (r parsed) result() (Node, error) {
	if r.err != nil {
		// Hand out a copy so callers cannot mutate the cached error.
		errCopy := *r.err
		return nil, &errCopy
	}
	return r.node, nil
}
