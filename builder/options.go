// Package builder: functional options.
//
// Options are functional (Option func(*config)). Option constructors
// validate and panic on meaningless inputs; generators never panic.
// No hidden globals; everything flows through config.

package builder

import "strconv"

// Option customizes a Build call by mutating the config before
// construction begins. Applying N options costs O(N).
type Option func(*config)

// config carries the resolved construction policy.
type config struct {
	idFn     func(int) string     // index -> node label
	weightFn func(i, j int) int64 // edge (i -> j) -> weight
	weighted bool                 // emit weighted edge records
}

// defaultConfig resolves the deterministic defaults: labels "v0", "v1", …
// and, when weights are enabled without an explicit function, weight 1 on
// every edge.
func defaultConfig() config {
	return config{
		idFn:     func(i int) string { return "v" + strconv.Itoa(i) },
		weightFn: func(int, int) int64 { return 1 },
	}
}

// WithIDScheme sets the deterministic node label generator: index -> label.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// WithWeighted makes generators emit weighted edge records using the
// configured weight function (constant 1 unless WithWeightFn overrides it).
func WithWeighted() Option {
	return func(c *config) {
		c.weighted = true
	}
}

// WithWeightFn sets the per-edge weight generator, receiving the endpoint
// indices of each emitted edge, and implies WithWeighted. The function must
// be pure to preserve determinism. Panics on nil.
func WithWeightFn(fn func(i, j int) int64) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
		c.weighted = true
	}
}
