package sim

// NoData is reported for transit times when nobody reached their destination.
const NoData = -1

// Results summarizes a run. Times are counted in rounds.
type Results struct {
	NumIterations   int
	TotalPeople     int
	PeopleCompleted int
	MaxTime         int
	MinTime         int
	AvgTime         int
}

// HasData reports whether at least one person completed their trip.
func (r Results) HasData() bool {
	return r.PeopleCompleted > 0
}

// stats accumulates the raw counters during a run.
type stats struct {
	rounds    int
	generated int
	completed int
	maxTime   int
	minTime   int
	totalTime int
}

// complete records a person reaching their destination after transit rounds.
// The first completion initializes both extremes.
func (s *stats) complete(transit int) {
	if s.completed == 0 {
		s.minTime, s.maxTime = transit, transit
	} else {
		s.minTime = min(s.minTime, transit)
		s.maxTime = max(s.maxTime, transit)
	}
	s.completed++
	s.totalTime += transit
}

func (s *stats) results() Results {
	r := Results{
		NumIterations:   s.rounds,
		TotalPeople:     s.generated,
		PeopleCompleted: s.completed,
		MaxTime:         NoData,
		MinTime:         NoData,
		AvgTime:         NoData,
	}
	if s.completed > 0 {
		r.MaxTime = s.maxTime
		r.MinTime = s.minTime
		r.AvgTime = s.totalTime / s.completed
	}
	return r
}
