package generator_test

import (
	"fmt"

	"github.com/katalvlaran/areabuilder/generator"
)

// ExampleGenerator_GenerateChallengeSet builds the opening level and prints
// the kind of every challenge.
func ExampleGenerator_GenerateChallengeSet() {
	g, err := generator.New(generator.WithSeed(2024))
	if err != nil {
		fmt.Println(err)
		return
	}

	n, _ := generator.ChallengeCount(0)
	set, err := g.GenerateChallengeSet(0, n)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range set {
		fmt.Println(c.Kind())
	}
	// Output:
	// build
	// build
	// build
	// findArea
	// findArea
	// findArea
}
