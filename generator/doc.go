// Package generator synthesizes sets of area/perimeter puzzles for the six
// levels of the area-building game.
//
// The package offers the following key components:
//
//   - Generator: owns the RNG, the three cyclic palettes and the challenge
//     history. One Generator should live as long as the game session so that
//     colour cycling and repetition avoidance span level transitions.
//   - Configuration primitives:
//     – Option:                  a function that mutates config before use.
//     – WithBoard:               board size in unit cells and unit length.
//     – WithSeed / WithRand:     reproducible randomness.
//     – WithRetryLimit:          uniqueness attempts before the history is halved.
//     – WithMaxSamplingAttempts: cap on every rejection-sampling loop.
//     – WithLogger:              logrus sink for diagnostics.
//   - Archetypes (impl_*.go): one method per puzzle kind. Each samples integer
//     parameters by bounded rejection sampling, builds a perimeter.Shape or an
//     example challenge.SolutionSpec, and attaches a shapekit kit.
//   - Uniqueness: generateUnique re-draws an archetype until the result is not
//     challenge.IsSimilar to anything in the history. After more than
//     RetryLimit consecutive failures the oldest half of the history is
//     dropped and the attempt counter resets.
//   - Level assembler: GenerateChallengeSet(level, n) runs a fixed recipe per
//     level, applies per-level post-processing and checks the count.
//
// Guarantees:
//
//   - Build example solutions are self-verified: one 4-connected region, on
//     the board, area (and perimeter, colour ratio) equal to the BuildSpec.
//   - Colour-ratio fractions are always in lowest terms.
//   - Every sampling loop is bounded; exhaustion surfaces ErrSamplingExhausted.
//
// Errors:
//
//   - ErrUnsupportedLevel:  level outside Levels().
//   - ErrCountMismatch:     numChallenges differs from the level's recipe.
//   - ErrSamplingExhausted: a rejection-sampling loop hit its cap.
//   - ErrEmptyRange:        a sampling range is empty (misconfigured board).
//   - ErrInvalidSolution:   an example solution failed self-verification.
//   - ErrOffBoard:          a generated shape does not fit on the board.
//
// Concurrency: a Generator is not safe for concurrent use.
package generator
