// Package generator - bounded rejection sampling over the injected Source.
//
// Every archetype draws its integer parameters through a sampler so that:
//   - all ranges are inclusive and checked (empty range ⇒ ErrEmptyRange);
//   - every accept/reject loop is capped (cap hit ⇒ ErrSamplingExhausted);
//   - the first error is sticky, later draws are no-ops returning lo.
//
// Concurrency: a sampler borrows the Generator's Source and inherits its
// single-goroutine contract.
package generator

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type sampler struct {
	src    Source
	log    logrus.FieldLogger
	method string
	limit  int
	err    error
}

func (g *Generator) newSampler(method string) *sampler {
	return &sampler{
		src:    g.src,
		log:    g.log,
		method: method,
		limit:  g.cfg.maxSampling,
	}
}

// intBetween draws uniformly from [lo,hi].
// Complexity: O(1).
func (s *sampler) intBetween(lo, hi int) int {
	if s.err != nil {
		return lo
	}
	if hi < lo {
		s.err = fmt.Errorf("%s: [%d,%d]: %w", s.method, lo, hi, ErrEmptyRange)
		return lo
	}
	return lo + s.src.Intn(hi-lo+1)
}

// evenBetween draws uniformly from the even integers in [lo,hi].
func (s *sampler) evenBetween(lo, hi int) int {
	first, last := lo+lo&1, hi-hi&1
	if s.err == nil && last < first {
		s.err = fmt.Errorf("%s: no even value in [%d,%d]: %w", s.method, lo, hi, ErrEmptyRange)
	}
	if s.err != nil {
		return first
	}
	return first + 2*s.src.Intn((last-first)/2+1)
}

// retry calls draw until it accepts, an error is recorded, or the cap is hit.
func (s *sampler) retry(draw func() bool) {
	for i := 0; i < s.limit; i++ {
		ok := draw()
		if s.err != nil || ok {
			return
		}
	}
	s.err = fmt.Errorf("%s: no acceptable draw in %d attempts: %w", s.method, s.limit, ErrSamplingExhausted)
	s.log.WithFields(logrus.Fields{
		"archetype": s.method,
		"attempts":  s.limit,
	}).Warn("rejection sampling exhausted")
}

// pick returns a uniformly chosen element of items.
func pick[T any](s *sampler, items []T) T {
	var zero T
	if len(items) == 0 {
		if s.err == nil {
			s.err = fmt.Errorf("%s: pick from empty set: %w", s.method, ErrEmptyRange)
		}
		return zero
	}
	return items[s.intBetween(0, len(items)-1)]
}

// within reports lo <= v <= hi.
func within(v, lo, hi int) bool { return v >= lo && v <= hi }
