package movement

import (
	"errors"
	"math/rand"

	"elevsim/src/types"
)

// RandomAlgorithm picks a direction uniformly among those that keep the elevator in the building.
type RandomAlgorithm struct {
	rng *rand.Rand
}

func NewRandomAlgorithm(rng *rand.Rand) (*RandomAlgorithm, error) {
	if rng == nil {
		return nil, errors.New("random algorithm needs a random source")
	}
	return &RandomAlgorithm{rng: rng}, nil
}

func (r *RandomAlgorithm) MoveElevators(elevators []*types.Elevator, _ map[int][]*types.Person, maxFloor int) []types.Direction {
	dirs := make([]types.Direction, len(elevators))
	for i, elevator := range elevators {
		options := allowedDirections(elevator.Floor, maxFloor)
		dirs[i] = options[r.rng.Intn(len(options))]
	}
	return dirs
}

func allowedDirections(floor, maxFloor int) []types.Direction {
	options := make([]types.Direction, 0, 3)
	if floor < maxFloor {
		options = append(options, types.DirUp)
	}
	options = append(options, types.DirStay)
	if floor > 1 {
		options = append(options, types.DirDown)
	}
	return options
}
