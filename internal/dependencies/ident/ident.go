package ident

import (
	"fmt"

	"github.com/futevolucao/futevolucao-go/internal/dependencies/clock"
	"github.com/futevolucao/futevolucao-go/internal/dependencies/random"
)

const (
	suffixLength   = 9
	suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Generator produces unique string identifiers for players and matches
type Generator interface {
	NewID() string
}

// TimeRandom generates ids of the form "<epoch-millis>-<random base36>".
// The time component keeps ids roughly sortable; the suffix makes
// collisions within the same millisecond overwhelmingly unlikely.
type TimeRandom struct {
	clock  clock.Clock
	random random.Random
}

// New creates a TimeRandom generator
func New(clk clock.Clock, rnd random.Random) *TimeRandom {
	return &TimeRandom{clock: clk, random: rnd}
}

// NewID returns a fresh identifier
func (g *TimeRandom) NewID() string {
	return fmt.Sprintf("%d-%s", g.clock.Now().UnixMilli(), g.random.String(suffixLength, suffixAlphabet))
}
