package lang

import (
	"context"
	"io"
	"log/slog"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// cache memoizes compiled trees by source text for one builder.
// Entries are bucketed by the xxh3 hash of the source; the full source is
// compared on lookup.
type cache struct {
	entries map[uint64][]cacheEntry
	size    int
}

type cacheEntry struct {
	expr   Expr
	source string
}

func newCache() *cache {
	return &cache{entries: make(map[uint64][]cacheEntry)}
}

func (c *cache) load(source string) (Expr, bool) {
	for _, e := range c.entries[xxh3.HashString(source)] {
		if e.source == source {
			return e.expr, true
		}
	}

	return nil, false
}

func (c *cache) store(source string, expr Expr) {
	key := xxh3.HashString(source)

	for i, e := range c.entries[key] {
		if e.source == source {
			c.entries[key][i].expr = expr

			return
		}
	}

	c.entries[key] = append(c.entries[key], cacheEntry{expr: expr, source: source})
	c.size++
}

func (c *cache) clear() {
	clear(c.entries)
	c.size = 0
}

// CacheLen returns the number of compiled trees currently memoized.
func (b *Builder) CacheLen() int {
	if b.cache == nil {
		return 0
	}

	return b.cache.size
}

// ParseReader compiles the entire content of r as one source.
// Newlines are insignificant; separate statements with ';'.
func (b *Builder) ParseReader(ctx context.Context, r io.Reader) (Expr, error) {
	// Prefetch input while earlier chunks are consumed.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	b.logger.TraceContext(ctx, "read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true),
	)

	return b.ParseContext(ctx, string(data))
}
