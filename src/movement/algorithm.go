// Package movement contains the algorithms deciding how elevators move each round.
package movement

import (
	"fmt"
	"math/rand"

	"github.com/samber/lo"

	"elevsim/src/types"
)

// Algorithm decides one direction per elevator, in the order the elevators are given.
// Implementations must not return a direction taking an elevator below floor 1 or above maxFloor,
// and must not modify the elevators or the waiting map.
type Algorithm interface {
	MoveElevators(elevators []*types.Elevator, waiting map[int][]*types.Person, maxFloor int) []types.Direction
}

// Names accepted by ParseAlgorithm.
const (
	RandomName         = "random"
	PushyPassengerName = "pushy_passenger"
	ShortSightedName   = "short_sighted"
)

// ParseAlgorithm returns the algorithm registered under name.
func ParseAlgorithm(name string, rng *rand.Rand) (Algorithm, error) {
	switch name {
	case RandomName:
		return NewRandomAlgorithm(rng)
	case PushyPassengerName:
		return PushyPassenger{}, nil
	case ShortSightedName:
		return ShortSighted{}, nil
	}
	return nil, fmt.Errorf("unknown moving algorithm %q", name)
}

// getDirection returns the direction leading from one floor towards another.
func getDirection(from, to int) types.Direction {
	if from < to {
		return types.DirUp
	}
	if from > to {
		return types.DirDown
	}
	return types.DirStay
}

// bounded turns dir into DirStay if it would leave floors 1..maxFloor.
func bounded(floor, maxFloor int, dir types.Direction) types.Direction {
	target := lo.Clamp(floor+int(dir), 1, maxFloor)
	return types.Direction(target - floor)
}

// lowestWaitingFloor returns the lowest floor with someone waiting, or false if nobody waits.
func lowestWaitingFloor(waiting map[int][]*types.Person, maxFloor int) (int, bool) {
	for floor := 1; floor <= maxFloor; floor++ {
		if len(waiting[floor]) > 0 {
			return floor, true
		}
	}
	return 0, false
}

// nearestWaitingFloor returns the floor with someone waiting closest to from.
// The lower floor wins ties.
func nearestWaitingFloor(waiting map[int][]*types.Person, from, maxFloor int) (int, bool) {
	nearest, found := 0, false
	for floor := 1; floor <= maxFloor; floor++ {
		if len(waiting[floor]) == 0 {
			continue
		}
		if !found || abs(floor-from) < abs(nearest-from) {
			nearest, found = floor, true
		}
	}
	return nearest, found
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
