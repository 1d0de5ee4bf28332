// Package builder constructs deterministic graph topologies on top of the
// gdwg container: paths, cycles, complete graphs, and stars.
//
// What
//
//   - Constructor values describe a topology; Build applies one to a fresh
//     gdwg.Graph[string, int64] configured by functional options.
//   - Node labels come from a deterministic labeling scheme (WithIDScheme);
//     weights come from a deterministic per-edge function (WithWeightFn).
//   - Unweighted topologies (the default) emit unweighted edge records.
//
// Why
//
//   - Tests and examples need reproducible fixtures; every generator emits
//     nodes and edges in a fixed order, so two Build calls with the same
//     options always produce Equal graphs.
//
// Error policy
//
//	Only sentinel errors are exposed; branch with errors.Is. Option
//	constructors validate their inputs and panic on programmer error
//	(nil functions); generators themselves never panic.
//
// Usage
//
//	g, err := builder.Build(builder.Cycle(4),
//	    builder.WithWeightFn(func(i, j int) int64 { return int64(i + j) }))
//	if err != nil {
//	    // errors.Is(err, builder.ErrTooFewNodes)
//	}
//	fmt.Print(g)
package builder
