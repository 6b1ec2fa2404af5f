// Package challenge defines the puzzle values produced by the generator and
// the primitives used to keep consecutive puzzles from looking alike.
//
// A Challenge is a tagged union of two kinds:
//
//   - Build: BuildSpec (area, optional perimeter, optional colour ratio),
//     a kit of user shapes and an example SolutionSpec.
//   - FindArea: a perimeter.Shape background and a kit of user shapes.
//
// Exactly one of BuildSpec / BackgroundShape is set; Kind reports which.
//
// IsSimilar is the domain equivalence ("a student would see these as the
// same puzzle") and History is the bounded rolling memory it is checked
// against.
package challenge
