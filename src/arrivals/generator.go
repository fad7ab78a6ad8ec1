// Package arrivals contains the algorithms that decide who enters the building each round.
package arrivals

import (
	"elevsim/src/types"
)

// Generator produces the people arriving at the given round, keyed by the floor they arrive on.
// Floors without arrivals may be left out of the returned map.
type Generator interface {
	Generate(round int) map[int][]*types.Person
}
