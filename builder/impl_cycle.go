// Package builder: Cycle(n) generator.
//
// Contract:
//   - n >= 3 (else ErrTooFewNodes).
//   - Emits the path edges 0 -> 1 -> ... -> (n-1) plus the closing edge
//     (n-1) -> 0, all in stable order.

package builder

import (
	"fmt"

	"github.com/Moaesaycto/General-Directed-Weighted-Graph/gdwg"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor building the directed cycle C_n.
func Cycle(n int) Constructor {
	return func(g *gdwg.Graph[string, int64], cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}
		addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i-1, i); err != nil {
				return err
			}
		}

		return addEdge(g, cfg, methodCycle, n-1, 0)
	}
}
