package timer

import (
	"log/slog"
	"time"
)

// Pacer blocks between rounds so a run can be followed by a person reading the log.
// One timer is reused for every wait.
type Pacer struct {
	timer *time.Timer
}

func NewPacer() *Pacer {
	t := time.NewTimer(time.Hour)
	t.Stop()
	return &Pacer{timer: t}
}

// Wait blocks for d. Non-positive durations return immediately.
func (p *Pacer) Wait(d time.Duration) {
	if d <= 0 {
		return
	}
	resetTimer(p.timer, d)
	<-p.timer.C
	slog.Debug("Pacer timed out", "duration", d)
}

// Stops the timer and resets it.
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
