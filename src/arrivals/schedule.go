package arrivals

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrMalformedSchedule = errors.New("malformed arrival schedule")

// Trip is one person's origin and destination floor.
type Trip struct {
	Origin      int
	Destination int
}

// Record is one schedule line: the trips starting at Round.
type Record struct {
	Round int
	Trips []Trip
}

// LoadSchedule reads schedule records from the CSV file at path.
func LoadSchedule(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening schedule: %w", err)
	}
	defer file.Close()
	return ParseSchedule(file)
}

// ParseSchedule reads lines of the form "round, origin, destination, origin, destination, ...".
//   - every line holds an odd number of integers
//   - blank lines are skipped
//   - whitespace around values is ignored
func ParseSchedule(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []Record
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedSchedule, err)
		}
		line, _ := reader.FieldPos(0)
		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			continue
		}
		if len(fields)%2 == 0 {
			return nil, fmt.Errorf("line %d: expected an odd number of values, got %d: %w", line, len(fields), ErrMalformedSchedule)
		}

		values := make([]int, len(fields))
		for i, field := range fields {
			value, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("line %d: value %q is not an integer: %w", line, field, ErrMalformedSchedule)
			}
			values[i] = value
		}
		if values[0] < 0 {
			return nil, fmt.Errorf("line %d: negative round %d: %w", line, values[0], ErrMalformedSchedule)
		}

		record := Record{Round: values[0]}
		for i := 1; i < len(values); i += 2 {
			record.Trips = append(record.Trips, Trip{Origin: values[i], Destination: values[i+1]})
		}
		records = append(records, record)
	}
	return records, nil
}
