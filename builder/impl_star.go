// Package builder: Star(n) generator.
//
// Contract:
//   - n >= 2 (else ErrTooFewNodes).
//   - Node 0 is the hub; edges 0 -> i are emitted for i = 1..n-1 in
//     increasing order.

package builder

import (
	"fmt"

	"github.com/Moaesaycto/General-Directed-Weighted-Graph/gdwg"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor building the outward star S_n with the hub at
// index 0.
func Star(n int) Constructor {
	return func(g *gdwg.Graph[string, int64], cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
