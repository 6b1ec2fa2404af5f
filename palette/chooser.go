package palette

import (
	"errors"
	"fmt"
)

// ErrEmptyPalette indicates a Chooser was created without items.
var ErrEmptyPalette = errors.New("palette: at least one item is required")

// ErrNilShuffler indicates a Chooser was created without a shuffle source.
var ErrNilShuffler = errors.New("palette: shuffler is required")

// maxReshuffles bounds the re-draws performed at a cycle boundary.
const maxReshuffles = 16

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Chooser is a cyclic dispenser over a fixed set of items.
// It is not safe for concurrent use.
type Chooser[T comparable] struct {
	items  []T
	cursor int
	rng    Shuffler
}

// NewChooser copies items, shuffles them once and returns a Chooser.
func NewChooser[T comparable](rng Shuffler, items ...T) (*Chooser[T], error) {
	if rng == nil {
		return nil, fmt.Errorf("NewChooser: %w", ErrNilShuffler)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("NewChooser: %w", ErrEmptyPalette)
	}
	c := &Chooser[T]{items: append([]T(nil), items...), rng: rng}
	c.shuffle()
	return c, nil
}

// Next returns the next item, reshuffling first when the cycle is exhausted.
func (c *Chooser[T]) Next() T {
	if c.cursor >= len(c.items) {
		c.reshuffle()
	}
	v := c.items[c.cursor]
	c.cursor++
	return v
}

// Len is the number of items per cycle.
func (c *Chooser[T]) Len() int { return len(c.items) }

// reshuffle starts a new cycle whose first item differs from the last item
// of the cycle just exhausted.
func (c *Chooser[T]) reshuffle() {
	last := c.items[len(c.items)-1]
	c.cursor = 0
	c.shuffle()
	if len(c.items) < 2 {
		return
	}
	for i := 0; i < maxReshuffles && c.items[0] == last; i++ {
		c.shuffle()
	}
	if c.items[0] != last {
		return
	}
	// still unlucky: promote the first differing item
	for i := 1; i < len(c.items); i++ {
		if c.items[i] != last {
			c.items[0], c.items[i] = c.items[i], c.items[0]
			return
		}
	}
}

func (c *Chooser[T]) shuffle() {
	c.rng.Shuffle(len(c.items), func(i, j int) { c.items[i], c.items[j] = c.items[j], c.items[i] })
}
