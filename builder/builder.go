// Package builder: the Build entry point shared by all generators.

package builder

import (
	"fmt"

	"github.com/Moaesaycto/General-Directed-Weighted-Graph/gdwg"
)

// Constructor applies one topology onto the given graph using the resolved
// configuration. Implementations only call the public gdwg surface and
// return sentinel errors wrapped with method context.
type Constructor func(g *gdwg.Graph[string, int64], cfg config) error

// Build constructs a fresh graph, applies the options left to right, and
// runs the constructor on it. On error the partially built graph is
// discarded and nil is returned.
func Build(c Constructor, opts ...Option) (*gdwg.Graph[string, int64], error) {
	if c == nil {
		return nil, ErrNilConstructor
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	g := gdwg.New[string, int64]()
	if err := c(g, cfg); err != nil {
		return nil, err
	}

	return g, nil
}

// addNodes inserts labels 0..n-1 via the configured scheme.
func addNodes(g *gdwg.Graph[string, int64], cfg config, n int) {
	for i := 0; i < n; i++ {
		g.InsertNode(cfg.idFn(i))
	}
}

// addEdge emits one edge i -> j honoring the weight policy. A rejected
// duplicate means the labeling scheme collapsed two indices onto one label;
// generators tolerate it and keep the single record.
func addEdge(g *gdwg.Graph[string, int64], cfg config, method string, i, j int) error {
	var err error
	if cfg.weighted {
		_, err = g.InsertEdge(cfg.idFn(i), cfg.idFn(j), cfg.weightFn(i, j))
	} else {
		_, err = g.InsertEdge(cfg.idFn(i), cfg.idFn(j))
	}
	if err != nil {
		return fmt.Errorf("%s: InsertEdge(%s, %s): %w", method, cfg.idFn(i), cfg.idFn(j), err)
	}

	return nil
}
