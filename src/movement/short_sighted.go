package movement

import "elevsim/src/types"

// ShortSighted always heads for the closest target.
//  1. If the elevator is empty, move towards the closest floor where someone is waiting,
//     preferring the lower floor on ties.
//  2. Otherwise move towards the closest passenger destination. Boarding order does not matter,
//     except that the earliest boarded passenger wins ties.
type ShortSighted struct{}

func (ShortSighted) MoveElevators(elevators []*types.Elevator, waiting map[int][]*types.Person, maxFloor int) []types.Direction {
	dirs := make([]types.Direction, len(elevators))
	for i, elevator := range elevators {
		if len(elevator.Passengers) > 0 {
			dirs[i] = getDirection(elevator.Floor, nearestDestination(elevator))
		} else if floor, ok := nearestWaitingFloor(waiting, elevator.Floor, maxFloor); ok {
			dirs[i] = getDirection(elevator.Floor, floor)
		} else {
			dirs[i] = types.DirStay
		}
		dirs[i] = bounded(elevator.Floor, maxFloor, dirs[i])
	}
	return dirs
}

func nearestDestination(elevator *types.Elevator) int {
	nearest := elevator.Passengers[0].Destination
	for _, p := range elevator.Passengers[1:] {
		if abs(p.Destination-elevator.Floor) < abs(nearest-elevator.Floor) {
			nearest = p.Destination
		}
	}
	return nearest
}
