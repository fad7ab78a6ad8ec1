package utils

import (
	"slices"

	"github.com/samber/lo"

	"elevsim/src/types"
)

// ForEachWaiting is a helper function that reduces indentation when performing an action on all
// waiting people. Floors are visited in ascending order, people in arrival order.
func ForEachWaiting(waiting map[int][]*types.Person, action func(floor int, p *types.Person)) {
	floors := lo.Keys(waiting)
	slices.Sort(floors)
	for _, floor := range floors {
		for _, p := range waiting[floor] {
			action(floor, p)
		}
	}
}

// CountWaiting returns the number of people waiting on all floors.
func CountWaiting(waiting map[int][]*types.Person) int {
	return lo.SumBy(lo.Values(waiting), func(people []*types.Person) int { return len(people) })
}

// CountRiding returns the number of people inside the elevators.
func CountRiding(elevators []*types.Elevator) int {
	return lo.SumBy(elevators, func(e *types.Elevator) int { return len(e.Passengers) })
}
