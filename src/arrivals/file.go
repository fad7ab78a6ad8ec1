package arrivals

import (
	"fmt"
	"log/slog"

	"elevsim/src/types"
)

// FileArrivals replays a fixed schedule of arrivals.
type FileArrivals struct {
	maxFloor int
	byRound  map[int][]Trip
}

// NewFileArrivals validates the records against the building and indexes them by round.
// Records sharing a round are merged in the order they were given.
func NewFileArrivals(maxFloor int, records []Record) (*FileArrivals, error) {
	if maxFloor < 2 {
		return nil, fmt.Errorf("file arrivals need at least 2 floors, got %d", maxFloor)
	}
	byRound := make(map[int][]Trip)
	for _, record := range records {
		if record.Round < 0 {
			return nil, fmt.Errorf("negative round %d: %w", record.Round, ErrMalformedSchedule)
		}
		for _, trip := range record.Trips {
			if err := validateTrip(trip, maxFloor); err != nil {
				return nil, fmt.Errorf("round %d: %w", record.Round, err)
			}
		}
		byRound[record.Round] = append(byRound[record.Round], record.Trips...)
	}
	slog.Debug("File arrivals initialized", "maxFloor", maxFloor, "rounds", len(byRound))
	return &FileArrivals{maxFloor: maxFloor, byRound: byRound}, nil
}

// NewFileArrivalsFromPath loads the schedule at path and builds a FileArrivals from it.
func NewFileArrivalsFromPath(maxFloor int, path string) (*FileArrivals, error) {
	records, err := LoadSchedule(path)
	if err != nil {
		return nil, err
	}
	return NewFileArrivals(maxFloor, records)
}

func (f *FileArrivals) Generate(round int) map[int][]*types.Person {
	arrivals := make(map[int][]*types.Person)
	for _, trip := range f.byRound[round] {
		arrivals[trip.Origin] = append(arrivals[trip.Origin], types.NewPerson(trip.Origin, trip.Destination))
	}
	return arrivals
}

// Total returns the number of people in the whole schedule.
func (f *FileArrivals) Total() int {
	total := 0
	for _, trips := range f.byRound {
		total += len(trips)
	}
	return total
}

func validateTrip(trip Trip, maxFloor int) error {
	switch {
	case trip.Origin < 1 || trip.Origin > maxFloor:
		return fmt.Errorf("origin %d outside floors 1..%d: %w", trip.Origin, maxFloor, ErrMalformedSchedule)
	case trip.Destination < 1 || trip.Destination > maxFloor:
		return fmt.Errorf("destination %d outside floors 1..%d: %w", trip.Destination, maxFloor, ErrMalformedSchedule)
	case trip.Origin == trip.Destination:
		return fmt.Errorf("origin and destination are both %d: %w", trip.Origin, ErrMalformedSchedule)
	}
	return nil
}
