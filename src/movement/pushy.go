package movement

import "elevsim/src/types"

// PushyPassenger serves the first passenger who boarded.
//  1. If the elevator is empty, move towards the lowest floor where someone is waiting.
//  2. Otherwise move towards the destination of the earliest boarded passenger.
type PushyPassenger struct{}

func (PushyPassenger) MoveElevators(elevators []*types.Elevator, waiting map[int][]*types.Person, maxFloor int) []types.Direction {
	dirs := make([]types.Direction, len(elevators))
	for i, elevator := range elevators {
		if len(elevator.Passengers) > 0 {
			dirs[i] = getDirection(elevator.Floor, elevator.Passengers[0].Destination)
		} else if floor, ok := lowestWaitingFloor(waiting, maxFloor); ok {
			dirs[i] = getDirection(elevator.Floor, floor)
		} else {
			dirs[i] = types.DirStay
		}
		dirs[i] = bounded(elevator.Floor, maxFloor, dirs[i])
	}
	return dirs
}
