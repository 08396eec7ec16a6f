package timer

import (
	"time"

	"go.uber.org/zap"
)

// Track returns a function that logs the elapsed time at debug level when run.
// Usage: defer timer.Track(logger, "admin stats")()
func Track(logger *zap.Logger, name string) func() {
	start := time.Now()
	return func() {
		logger.Debug("timing", zap.String("op", name), zap.Duration("took", time.Since(start)))
	}
}

// Stopwatch measures several steps within one function.
type Stopwatch struct {
	logger *zap.Logger
	name   string
	start  time.Time
	last   time.Time
}

// NewStopwatch starts the clock.
func NewStopwatch(logger *zap.Logger, name string) *Stopwatch {
	now := time.Now()
	return &Stopwatch{logger: logger, name: name, start: now, last: now}
}

// Lap logs the time taken since the previous Lap and returns it.
func (s *Stopwatch) Lap(step string) time.Duration {
	now := time.Now()
	elapsed := now.Sub(s.last)
	s.last = now
	s.logger.Debug("timing step",
		zap.String("op", s.name),
		zap.String("step", step),
		zap.Duration("took", elapsed),
		zap.Duration("total", now.Sub(s.start)),
	)
	return elapsed
}

// Total logs and returns the time since the stopwatch started.
func (s *Stopwatch) Total() time.Duration {
	total := time.Since(s.start)
	s.logger.Debug("timing total", zap.String("op", s.name), zap.Duration("took", total))
	return total
}
