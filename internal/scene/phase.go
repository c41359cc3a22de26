package scene

import "time"

// Phase is the page state. It only moves forward.
type Phase int

const (
	Proposal Phase = iota
	Celebration
)

func (p Phase) String() string {
	switch p {
	case Proposal:
		return "proposal"
	case Celebration:
		return "celebration"
	}
	return "unknown"
}

// Stopwatch measures how long the "No" button has been running away.
type Stopwatch struct {
	start, stop time.Time
}

func (s *Stopwatch) Start(now time.Time) {
	if s.start.IsZero() {
		s.start = now
	}
}

func (s *Stopwatch) Stop(now time.Time) {
	if !s.start.IsZero() && s.stop.IsZero() {
		s.stop = now
	}
}

func (s *Stopwatch) Started() bool { return !s.start.IsZero() }

func (s *Stopwatch) Elapsed(now time.Time) time.Duration {
	switch {
	case s.start.IsZero():
		return 0
	case !s.stop.IsZero():
		return s.stop.Sub(s.start)
	}
	return now.Sub(s.start)
}
