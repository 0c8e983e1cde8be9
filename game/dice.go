package game

import (
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

// DieRoller supplies the pyramid's randomness: which colored die comes out
// next and what face it shows. Injected so tests and simulations can supply
// deterministic sequences.
type DieRoller interface {
	// Roll returns a die face, 1 to 3.
	Roll() int
	// Pick chooses the next die to come out of the pyramid from the colors
	// not yet rolled this leg. remaining is never empty.
	Pick(remaining []Color) Color
}

type frandRoller struct{}

// NewRoller returns the default die source, backed by a fast CSPRNG.
func NewRoller() DieRoller {
	return frandRoller{}
}

func (frandRoller) Roll() int {
	return 1 + frand.Intn(3)
}

func (frandRoller) Pick(remaining []Color) Color {
	return remaining[frand.Intn(len(remaining))]
}

type seededRoller struct {
	rng *rand.Rand
}

// NewSeededRoller returns a deterministic die source for a given seed.
func NewSeededRoller(seed uint64) DieRoller {
	return &seededRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *seededRoller) Roll() int {
	return 1 + r.rng.Intn(3)
}

func (r *seededRoller) Pick(remaining []Color) Color {
	return remaining[r.rng.Intn(len(remaining))]
}
