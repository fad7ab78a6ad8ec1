// Package sim runs the round based building simulation.
//
// Every round executes the same phases in a fixed order:
//  1. Arrival: new people join the end of the queue on their floor
//  2. Disembark: passengers at their destination leave and are counted as completed
//  3. Board: waiting people enter the elevator on their floor, first come first served
//  4. Move: the moving algorithm picks a direction per elevator and the elevators move
//  5. Bookkeeping: everyone still in the building ages by one round
package sim

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tiendc/go-deepcopy"

	"elevsim/src/arrivals"
	"elevsim/src/movement"
	"elevsim/src/types"
	"elevsim/src/utils"
	"elevsim/src/visualizer"
)

var (
	ErrInvalidConfig    = errors.New("invalid simulation config")
	ErrInvalidDirection = errors.New("direction leaves the building")
	ErrInvalidArrival   = errors.New("arrival outside the building")
)

// Settings describes the building and the algorithms driving a Simulation.
type Settings struct {
	NumFloors        int
	NumElevators     int
	ElevatorCapacity int
	Arrivals         arrivals.Generator
	Algorithm        movement.Algorithm
	Visualizer       visualizer.Visualizer // Nop if nil
	Pace             time.Duration         // Passed to Visualizer.Wait after every round
}

// Simulation owns the elevators and the people waiting on each floor.
// It is not safe for concurrent use.
type Simulation struct {
	settings  Settings
	elevators []*types.Elevator
	waiting   map[int][]*types.Person
	stats     stats
}

// New validates settings and returns a simulation of an empty building with every elevator on floor 1.
func New(settings Settings) (*Simulation, error) {
	switch {
	case settings.NumFloors < 2:
		return nil, fmt.Errorf("need at least 2 floors, got %d: %w", settings.NumFloors, ErrInvalidConfig)
	case settings.NumElevators < 1:
		return nil, fmt.Errorf("need at least 1 elevator, got %d: %w", settings.NumElevators, ErrInvalidConfig)
	case settings.ElevatorCapacity < 1:
		return nil, fmt.Errorf("elevator capacity must be at least 1, got %d: %w", settings.ElevatorCapacity, ErrInvalidConfig)
	case settings.Arrivals == nil:
		return nil, fmt.Errorf("missing arrival generator: %w", ErrInvalidConfig)
	case settings.Algorithm == nil:
		return nil, fmt.Errorf("missing moving algorithm: %w", ErrInvalidConfig)
	}
	if settings.Visualizer == nil {
		settings.Visualizer = visualizer.Nop{}
	}

	s := &Simulation{settings: settings}
	s.Reset()
	slog.Debug("Simulation initialized",
		"floors", settings.NumFloors,
		"elevators", settings.NumElevators,
		"capacity", settings.ElevatorCapacity)
	return s, nil
}

// Reset empties the building and clears the statistics.
func (s *Simulation) Reset() {
	s.elevators = make([]*types.Elevator, s.settings.NumElevators)
	for i := range s.elevators {
		s.elevators[i] = types.NewElevator(s.settings.ElevatorCapacity)
	}
	s.waiting = make(map[int][]*types.Person, s.settings.NumFloors)
	for floor := 1; floor <= s.settings.NumFloors; floor++ {
		s.waiting[floor] = []*types.Person{}
	}
	s.stats = stats{}
}

// Run executes numRounds rounds and returns the statistics of everything run so far.
// Rounds are numbered from zero and continue where a previous Run stopped.
func (s *Simulation) Run(numRounds int) (Results, error) {
	if numRounds < 1 {
		return Results{}, fmt.Errorf("need at least 1 round, got %d: %w", numRounds, ErrInvalidConfig)
	}
	slog.Info("Simulation started", "rounds", numRounds)

	for i := 0; i < numRounds; i++ {
		if err := s.round(s.stats.rounds); err != nil {
			return s.stats.results(), err
		}
	}

	results := s.stats.results()
	slog.Info("Simulation finished",
		"rounds", results.NumIterations,
		"generated", results.TotalPeople,
		"completed", results.PeopleCompleted,
		"avgTime", results.AvgTime)
	return results, nil
}

func (s *Simulation) round(round int) error {
	vis := s.settings.Visualizer
	vis.RoundStarted(round)

	if err := s.generateArrivals(round); err != nil {
		return fmt.Errorf("round %d: %w", round, err)
	}
	s.handleLeaving()
	if err := s.handleBoarding(); err != nil {
		return fmt.Errorf("round %d: %w", round, err)
	}
	if err := s.moveElevators(); err != nil {
		return fmt.Errorf("round %d: %w", round, err)
	}
	s.age()

	s.stats.rounds++
	vis.Wait(s.settings.Pace)
	return nil
}

// generateArrivals adds the round's new people to the back of their floor queue.
func (s *Simulation) generateArrivals(round int) error {
	arriving := s.settings.Arrivals.Generate(round)
	var err error
	utils.ForEachWaiting(arriving, func(floor int, p *types.Person) {
		if err == nil && !s.validArrival(floor, p) {
			err = fmt.Errorf("%v on floor %d: %w", p, floor, ErrInvalidArrival)
		}
	})
	if err != nil {
		return err
	}

	count := 0
	utils.ForEachWaiting(arriving, func(floor int, p *types.Person) {
		s.waiting[floor] = append(s.waiting[floor], p)
		count++
	})
	s.stats.generated += count
	slog.Debug("Arrivals generated", "round", round, "people", count)
	s.settings.Visualizer.ShowArrivals(snapshot(arriving))
	return nil
}

func (s *Simulation) validArrival(floor int, p *types.Person) bool {
	return p != nil &&
		floor >= 1 && floor <= s.settings.NumFloors &&
		p.Origin == floor && p.Floor == floor &&
		p.Destination >= 1 && p.Destination <= s.settings.NumFloors &&
		p.Destination != p.Origin
}

// handleLeaving removes every passenger standing at their destination.
func (s *Simulation) handleLeaving() {
	for i, elevator := range s.elevators {
		for _, p := range elevator.Disembark() {
			s.stats.complete(p.TransitRounds)
			slog.Debug("Person disembarked", "elevator", i, "floor", elevator.Floor, "transitRounds", p.TransitRounds)
			s.settings.Visualizer.ShowDisembarking(snapshot(p), snapshot(elevator))
		}
	}
}

// handleBoarding fills every elevator from the front of the queue on its floor.
func (s *Simulation) handleBoarding() error {
	for i, elevator := range s.elevators {
		queue := s.waiting[elevator.Floor]
		for len(queue) > 0 && !elevator.Full() {
			p := queue[0]
			if err := elevator.Board(p); err != nil {
				return err
			}
			queue[0] = nil
			queue = queue[1:]
			slog.Debug("Person boarded", "elevator", i, "floor", elevator.Floor)
			s.settings.Visualizer.ShowBoarding(snapshot(p), snapshot(elevator))
		}
		s.waiting[elevator.Floor] = queue
	}
	return nil
}

// moveElevators asks the moving algorithm for directions and applies them.
// The algorithm only sees copies, so all state changes happen here.
func (s *Simulation) moveElevators() error {
	dirs := s.settings.Algorithm.MoveElevators(s.Elevators(), s.Waiting(), s.settings.NumFloors)
	if len(dirs) != len(s.elevators) {
		return fmt.Errorf("got %d directions for %d elevators: %w", len(dirs), len(s.elevators), ErrInvalidDirection)
	}
	for i, dir := range dirs {
		target := s.elevators[i].Floor + int(dir)
		if dir < types.DirDown || dir > types.DirUp || target < 1 || target > s.settings.NumFloors {
			return fmt.Errorf("elevator %d at floor %d cannot move %v: %w", i, s.elevators[i].Floor, dir, ErrInvalidDirection)
		}
	}
	for i, dir := range dirs {
		s.elevators[i].Move(dir)
	}
	slog.Debug("Elevators moved", "directions", dirs)
	s.settings.Visualizer.ShowMoves(s.Elevators(), dirs)
	return nil
}

// age advances the counters of everyone still in the building.
func (s *Simulation) age() {
	tick := func(p *types.Person) {
		p.TransitRounds++
		if !p.Arrived() {
			p.WaitRounds++
		}
	}
	for _, elevator := range s.elevators {
		for _, p := range elevator.Passengers {
			tick(p)
		}
	}
	utils.ForEachWaiting(s.waiting, func(_ int, p *types.Person) { tick(p) })
}

// Elevators returns a copy of the elevators and their passengers.
func (s *Simulation) Elevators() []*types.Elevator {
	return snapshot(s.elevators)
}

// Waiting returns a copy of the people waiting on each floor.
func (s *Simulation) Waiting() map[int][]*types.Person {
	return snapshot(s.waiting)
}

// InSystem returns the number of people waiting and riding.
func (s *Simulation) InSystem() (waiting, riding int) {
	return utils.CountWaiting(s.waiting), utils.CountRiding(s.elevators)
}

// Results returns the statistics of all rounds run so far.
func (s *Simulation) Results() Results {
	return s.stats.results()
}

// snapshot returns a deep copy of v. Observers and algorithms get snapshots so they cannot
// change the simulation.
func snapshot[T any](v T) T {
	var clone T
	if err := deepcopy.Copy(&clone, &v); err != nil {
		panic(err)
	}
	return clone
}
