package types

import (
	"errors"
	"fmt"
)

var ErrCapacityExceeded = errors.New("elevator capacity exceeded")

// Elevator carries at most Capacity passengers. Passengers are kept in boarding order.
type Elevator struct {
	Floor      int
	Capacity   int
	Passengers []*Person
}

// NewElevator returns an empty elevator on floor 1.
func NewElevator(capacity int) *Elevator {
	return &Elevator{
		Floor:      1,
		Capacity:   capacity,
		Passengers: []*Person{},
	}
}

func (e *Elevator) Full() bool {
	return len(e.Passengers) >= e.Capacity
}

func (e *Elevator) SpareCapacity() int {
	return max(e.Capacity-len(e.Passengers), 0)
}

// Fullness returns the occupied fraction (0..1) of the elevator.
func (e *Elevator) Fullness() float64 {
	if e.Capacity == 0 {
		return 0
	}
	return float64(len(e.Passengers)) / float64(e.Capacity)
}

// Board appends p to the passengers and moves p onto the elevator's floor.
func (e *Elevator) Board(p *Person) error {
	if e.Full() {
		return fmt.Errorf("boarding %v at floor %d (capacity %d): %w", p, e.Floor, e.Capacity, ErrCapacityExceeded)
	}
	p.Floor = e.Floor
	e.Passengers = append(e.Passengers, p)
	return nil
}

// Disembark removes and returns every passenger that has arrived.
// Remaining passengers keep their boarding order.
func (e *Elevator) Disembark() []*Person {
	var left []*Person
	remaining := e.Passengers[:0]
	for _, p := range e.Passengers {
		if p.Arrived() {
			left = append(left, p)
		} else {
			remaining = append(remaining, p)
		}
	}
	clear(e.Passengers[len(remaining):])
	e.Passengers = remaining
	return left
}

// Move shifts the elevator and its passengers one floor in dir.
func (e *Elevator) Move(dir Direction) {
	if dir == DirStay {
		return
	}
	e.Floor += int(dir)
	for _, p := range e.Passengers {
		p.Floor += int(dir)
	}
}
