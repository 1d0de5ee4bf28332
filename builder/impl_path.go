// Package builder: Path(n) generator.
//
// Contract:
//   - n >= 2 (else ErrTooFewNodes).
//   - Nodes are labeled in ascending index order 0..n-1.
//   - Edges (i-1) -> i are emitted for i = 1..n-1 in increasing order.

package builder

import (
	"fmt"

	"github.com/Moaesaycto/General-Directed-Weighted-Graph/gdwg"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor building the directed path P_n:
// v0 -> v1 -> ... -> v(n-1).
func Path(n int) Constructor {
	return func(g *gdwg.Graph[string, int64], cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
