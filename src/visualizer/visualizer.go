// Package visualizer holds the observers the simulation reports to while it runs.
// Observers receive copies of the simulation state and cannot change the run.
package visualizer

import (
	"time"

	"elevsim/src/types"
)

// Visualizer is notified at fixed points of every round.
type Visualizer interface {
	RoundStarted(round int)
	ShowArrivals(arrivals map[int][]*types.Person)
	ShowBoarding(p *types.Person, e *types.Elevator)
	ShowDisembarking(p *types.Person, e *types.Elevator)
	ShowMoves(elevators []*types.Elevator, dirs []types.Direction)
	Wait(d time.Duration)
}

// Nop ignores every notification.
type Nop struct{}

func (Nop) RoundStarted(int)                                {}
func (Nop) ShowArrivals(map[int][]*types.Person)            {}
func (Nop) ShowBoarding(*types.Person, *types.Elevator)     {}
func (Nop) ShowDisembarking(*types.Person, *types.Elevator) {}
func (Nop) ShowMoves([]*types.Elevator, []types.Direction)  {}
func (Nop) Wait(time.Duration)                              {}
