package arrivals

import (
	"fmt"
	"log/slog"
	"math/rand"

	"elevsim/src/types"
)

// RandomArrivals generates a fixed number of people every round with uniformly drawn
// origin and destination floors.
type RandomArrivals struct {
	maxFloor  int
	numPeople int
	rng       *rand.Rand
}

// NewRandomArrivals returns a generator producing numPeople people per round.
// The generator draws from rng only, so a seeded rng gives a reproducible run.
func NewRandomArrivals(maxFloor, numPeople int, rng *rand.Rand) (*RandomArrivals, error) {
	if maxFloor < 2 {
		return nil, fmt.Errorf("random arrivals need at least 2 floors, got %d", maxFloor)
	}
	if numPeople < 0 {
		return nil, fmt.Errorf("random arrivals need a non-negative people count, got %d", numPeople)
	}
	if rng == nil {
		return nil, fmt.Errorf("random arrivals need a random source")
	}
	slog.Debug("Random arrivals initialized", "maxFloor", maxFloor, "numPeople", numPeople)
	return &RandomArrivals{maxFloor: maxFloor, numPeople: numPeople, rng: rng}, nil
}

// NewEmptyArrivals returns a generator that never produces anyone.
func NewEmptyArrivals(maxFloor int, rng *rand.Rand) (*RandomArrivals, error) {
	return NewRandomArrivals(maxFloor, 0, rng)
}

func (r *RandomArrivals) Generate(round int) map[int][]*types.Person {
	arrivals := make(map[int][]*types.Person)
	for i := 0; i < r.numPeople; i++ {
		origin := 1 + r.rng.Intn(r.maxFloor)
		// Draw from the remaining floors and skip over the origin
		destination := 1 + r.rng.Intn(r.maxFloor-1)
		if destination >= origin {
			destination++
		}
		arrivals[origin] = append(arrivals[origin], types.NewPerson(origin, destination))
	}
	slog.Debug("Generated random arrivals", "round", round, "people", r.numPeople)
	return arrivals
}
