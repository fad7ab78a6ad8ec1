package visualizer

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"elevsim/src/timer"
	"elevsim/src/types"
)

// Logger renders every notification as a structured log line and paces rounds with a timer.
type Logger struct {
	logger *slog.Logger
	pacer  *timer.Pacer
}

// NewLogger returns a Logger writing to logger, or to the default logger if nil.
func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{logger: logger, pacer: timer.NewPacer()}
}

func (l *Logger) RoundStarted(round int) {
	l.logger.Info("Round started", "round", round)
}

func (l *Logger) ShowArrivals(arrivals map[int][]*types.Person) {
	floors := lo.Filter(lo.Keys(arrivals), func(floor int, _ int) bool { return len(arrivals[floor]) > 0 })
	slices.Sort(floors)
	for _, floor := range floors {
		l.logger.Info("People arrived",
			"floor", floor,
			"destinations", formatDestinations(arrivals[floor]))
	}
}

func (l *Logger) ShowBoarding(p *types.Person, e *types.Elevator) {
	l.logger.Info("Person boarded",
		"person", p,
		"floor", e.Floor,
		"passengers", fmt.Sprintf("%d/%d", len(e.Passengers), e.Capacity),
		"fullness", e.Fullness(),
		"spare", e.SpareCapacity(),
		"anger", p.AngerLevel())
}

func (l *Logger) ShowDisembarking(p *types.Person, e *types.Elevator) {
	l.logger.Info("Person disembarked",
		"person", p,
		"floor", e.Floor,
		"transitRounds", p.TransitRounds,
		"anger", p.AngerLevel())
}

func (l *Logger) ShowMoves(elevators []*types.Elevator, dirs []types.Direction) {
	for i, e := range elevators {
		l.logger.Info("Elevator moved",
			"elevator", i,
			"direction", dirs[i],
			"floor", e.Floor,
			"passengers", len(e.Passengers))
	}
}

func (l *Logger) Wait(d time.Duration) {
	l.pacer.Wait(d)
}

func formatDestinations(people []*types.Person) string {
	dests := lo.Map(people, func(p *types.Person, _ int) string { return fmt.Sprint(p.Destination) })
	return strings.Join(dests, ",")
}
