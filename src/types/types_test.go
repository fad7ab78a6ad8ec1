package types

import (
	"errors"
	"testing"
)

func TestAngerLevel(t *testing.T) {
	testCases := []struct {
		waitRounds int
		expected   int
	}{
		{0, 0}, {2, 0},
		{3, 1}, {4, 1},
		{5, 2}, {6, 2},
		{7, 3}, {8, 3},
		{9, 4}, {50, 4},
	}
	for _, tc := range testCases {
		p := NewPerson(1, 2)
		p.WaitRounds = tc.waitRounds
		if got := p.AngerLevel(); got != tc.expected {
			t.Errorf("AngerLevel with %d rounds waited = %d, expected %d", tc.waitRounds, got, tc.expected)
		}
	}
}

func TestAngerLevelIsMonotonic(t *testing.T) {
	p := NewPerson(1, 5)
	last := p.AngerLevel()
	for round := 0; round < 20; round++ {
		p.WaitRounds++
		level := p.AngerLevel()
		if level < last {
			t.Fatalf("Anger level dropped from %d to %d after %d rounds", last, level, p.WaitRounds)
		}
		last = level
	}
	if last != 4 {
		t.Errorf("Expected anger level 4 after 20 rounds, got %d", last)
	}
	if p.WaitRounds != 20 {
		t.Errorf("AngerLevel changed WaitRounds to %d", p.WaitRounds)
	}
}

func TestPersonArrived(t *testing.T) {
	p := NewPerson(2, 4)
	if p.Arrived() {
		t.Fatal("Person arrived before moving")
	}
	if p.Floor != p.Origin {
		t.Fatalf("Expected tracked floor %d, got %d", p.Origin, p.Floor)
	}
	p.Floor = 4
	if !p.Arrived() {
		t.Error("Person at destination not detected as arrived")
	}
	if p.Origin != 2 {
		t.Errorf("Origin changed to %d", p.Origin)
	}
}

func TestBoardRespectsCapacity(t *testing.T) {
	e := NewElevator(2)
	if e.Floor != 1 || len(e.Passengers) != 0 {
		t.Fatalf("New elevator at floor %d with %d passengers", e.Floor, len(e.Passengers))
	}
	for i := 0; i < 2; i++ {
		if err := e.Board(NewPerson(1, 3)); err != nil {
			t.Fatalf("Board %d failed: %v", i, err)
		}
	}
	if !e.Full() || e.SpareCapacity() != 0 || e.Fullness() != 1 {
		t.Errorf("Expected full elevator, got %d/%d", len(e.Passengers), e.Capacity)
	}
	err := e.Board(NewPerson(1, 3))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Expected ErrCapacityExceeded, got %v", err)
	}
	if len(e.Passengers) != 2 {
		t.Errorf("Overfull elevator holds %d passengers", len(e.Passengers))
	}
}

func TestMoveCarriesPassengers(t *testing.T) {
	e := NewElevator(3)
	p := NewPerson(1, 3)
	_ = e.Board(p)

	e.Move(DirUp)
	if e.Floor != 2 || p.Floor != 2 {
		t.Errorf("After Up: elevator %d, passenger %d", e.Floor, p.Floor)
	}
	e.Move(DirStay)
	if e.Floor != 2 || p.Floor != 2 {
		t.Errorf("After Stay: elevator %d, passenger %d", e.Floor, p.Floor)
	}
	e.Move(DirDown)
	if e.Floor != 1 || p.Floor != 1 {
		t.Errorf("After Down: elevator %d, passenger %d", e.Floor, p.Floor)
	}
}

func TestDisembarkKeepsOrder(t *testing.T) {
	e := NewElevator(4)
	p1, p2, p3, p4 := NewPerson(1, 2), NewPerson(1, 3), NewPerson(1, 2), NewPerson(1, 4)
	for _, p := range []*Person{p1, p2, p3, p4} {
		_ = e.Board(p)
	}
	e.Move(DirUp)

	left := e.Disembark()
	if len(left) != 2 || left[0] != p1 || left[1] != p3 {
		t.Fatalf("Expected p1 and p3 to leave, got %v", left)
	}
	if len(e.Passengers) != 2 || e.Passengers[0] != p2 || e.Passengers[1] != p4 {
		t.Errorf("Expected p2, p4 to remain in order, got %v", e.Passengers)
	}
	if left := e.Disembark(); len(left) != 0 {
		t.Errorf("Nobody should leave twice, got %v", left)
	}
}

func TestDirectionString(t *testing.T) {
	for dir, expected := range map[Direction]string{DirUp: "Up", DirDown: "Down", DirStay: "Stay", Direction(5): "Unknown"} {
		if dir.String() != expected {
			t.Errorf("Direction(%d).String() = %q, expected %q", int(dir), dir.String(), expected)
		}
	}
}
