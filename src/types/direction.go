package types

// Direction is the move an elevator makes in one round.
type Direction int

const (
	DirUp   Direction = 1
	DirStay Direction = 0
	DirDown Direction = -1
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirStay:
		return "Stay"
	}
	return "Unknown"
}
