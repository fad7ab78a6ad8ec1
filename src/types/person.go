package types

import "fmt"

// Person is a rider in the building.
//   - Origin is the floor the person arrived on and never changes
//   - Floor tracks where the person currently is, waiting or riding
type Person struct {
	Origin        int
	Destination   int
	Floor         int
	WaitRounds    int
	TransitRounds int
}

func NewPerson(origin, destination int) *Person {
	return &Person{
		Origin:      origin,
		Destination: destination,
		Floor:       origin,
	}
}

// Arrived reports whether the person is at their destination.
func (p *Person) Arrived() bool {
	return p.Floor == p.Destination
}

// AngerLevel maps the rounds spent waiting to a level between 0 and 4.
//   - 0: 0-2 rounds
//   - 1: 3-4 rounds
//   - 2: 5-6 rounds
//   - 3: 7-8 rounds
//   - 4: 9 or more rounds
func (p *Person) AngerLevel() int {
	switch {
	case p.WaitRounds < 3:
		return 0
	case p.WaitRounds < 5:
		return 1
	case p.WaitRounds < 7:
		return 2
	case p.WaitRounds < 9:
		return 3
	default:
		return 4
	}
}

func (p *Person) String() string {
	return fmt.Sprintf("Person(%d->%d @%d)", p.Origin, p.Destination, p.Floor)
}
