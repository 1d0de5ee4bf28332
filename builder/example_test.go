package builder_test

import (
	"fmt"

	"github.com/Moaesaycto/General-Directed-Weighted-Graph/builder"
)

// ExampleBuild constructs a weighted cycle and renders it canonically.
func ExampleBuild() {
	g, err := builder.Build(builder.Cycle(3),
		builder.WithWeightFn(func(i, j int) int64 { return int64(i + j) }))
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	fmt.Print(g)

	// Output:
	//
	// v0 (
	//   v0 -> v1 | W | 1
	// )
	// v1 (
	//   v1 -> v2 | W | 3
	// )
	// v2 (
	//   v2 -> v0 | W | 2
	// )
}

// ExampleBuild_star shows an unweighted hub-and-spoke fixture.
func ExampleBuild_star() {
	g, _ := builder.Build(builder.Star(4))
	out, _ := g.Connections("v0")
	fmt.Println(out)

	// Output:
	// [v1 v2 v3]
}
