// SPDX-License-Identifier: MIT
// Package: areabuilder/generator
//
// config.go — internal configuration and defaults.
//
// Defaults:
//   • board          = 12×8 unit cells, unit length 32 view units
//   • src            = math/rand seeded from the clock (use WithSeed in tests)
//   • retryLimit     = 12
//   • maxSampling    = 10000 draws per rejection-sampling loop
//   • log            = logrus.StandardLogger()
//
// newConfig applies options in order (later overrides earlier).

package generator

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Board geometry defaults and minima.
const (
	DefaultBoardWidth  = 12
	DefaultBoardHeight = 8
	DefaultUnitLength  = 32.0

	// MinBoardWidth and MinBoardHeight keep every archetype's sampling
	// ranges non-empty.
	MinBoardWidth  = 12
	MinBoardHeight = 8
)

// Retry defaults.
const (
	DefaultRetryLimit          = 12
	DefaultMaxSamplingAttempts = 10000
)

// Board is the playing area in unit cells plus the unit cell side length in
// view units.
type Board struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	UnitLength float64 `json:"unitLength"`
}

// DefaultBoard returns the 12×8 board with 32-unit cells.
func DefaultBoard() Board {
	return Board{Width: DefaultBoardWidth, Height: DefaultBoardHeight, UnitLength: DefaultUnitLength}
}

// Source is the injected randomness. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type config struct {
	board       Board
	src         Source
	retryLimit  int
	maxSampling int
	log         logrus.FieldLogger
}

func newConfig(opts ...Option) config {
	cfg := config{
		board:       DefaultBoard(),
		retryLimit:  DefaultRetryLimit,
		maxSampling: DefaultMaxSamplingAttempts,
		log:         logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.src == nil {
		cfg.src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
