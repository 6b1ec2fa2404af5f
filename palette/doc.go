// Package palette hands out colours for generated challenges.
//
// A Chooser cycles through a shuffled list. When the list is exhausted it is
// reshuffled, and the first element of the new cycle is never equal to the
// last element of the previous one, so the same colour is never handed out
// twice in a row across a cycle boundary.
//
// Three catalogues are provided: FindAreaColors for "find the area"
// backgrounds, BuildColors for single-colour build challenges and ColorPairs
// for two-colour (proportional) build challenges.
package palette
