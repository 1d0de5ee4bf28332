// Package builder: Complete(n) generator.
//
// Contract:
//   - n >= 2 (else ErrTooFewNodes).
//   - Emits every ordered pair i -> j, i != j, in lexicographic (i, j)
//     order: n*(n-1) directed edges, no self-loops.

package builder

import (
	"fmt"

	"github.com/Moaesaycto/General-Directed-Weighted-Graph/gdwg"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor building the complete directed graph K_n
// (both directions of every pair).
func Complete(n int) Constructor {
	return func(g *gdwg.Graph[string, int64], cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}
		addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
