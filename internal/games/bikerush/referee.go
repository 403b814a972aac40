package bikerush

import "github.com/vovakirdan/bike-rush/internal/config"

// Status is the level's position in its state machine.
type Status int

const (
	StatusRunning Status = iota
	StatusComplete
	StatusFailed
)

// String returns a lower-case name for logs.
func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusFailed:
		return "failed"
	default:
		return "running"
	}
}

// Reason records why a level ended.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonFinished
	ReasonTimeout
	ReasonCrash
)

// String returns a lower-case name for logs.
func (r Reason) String() string {
	switch r {
	case ReasonFinished:
		return "finished"
	case ReasonTimeout:
		return "timeout"
	case ReasonCrash:
		return "crash"
	default:
		return "none"
	}
}

// Level is the timer, the distance covered and the terminal state.
type Level struct {
	Elapsed   float64 // ms since level start, frozen while paused
	Duration  float64
	Distance  float64
	Target    float64
	Status    Status
	Reason    Reason
	CrashedOn Kind // Valid when Reason is ReasonCrash
}

func newLevel(cfg config.LevelConfig) Level {
	return Level{
		Duration: cfg.DurationMS,
		Target:   cfg.TargetDistance,
	}
}

// Terminal reports whether the level has ended.
func (l *Level) Terminal() bool {
	return l.Status != StatusRunning
}

// Remaining returns the ms left on the timer, never negative.
func (l *Level) Remaining() float64 {
	if l.Elapsed >= l.Duration {
		return 0
	}
	return l.Duration - l.Elapsed
}

// advance adds covered distance. Negative amounts are ignored.
func (l *Level) advance(d float64) {
	if d > 0 {
		l.Distance += d
	}
}

// end performs the single terminal transition. Later calls are no-ops.
func (l *Level) end(status Status, reason Reason) bool {
	if l.Terminal() {
		return false
	}
	l.Status = status
	l.Reason = reason
	return true
}

// Referee applies collision penalties and ends the level on timeout, crash or
// reaching the target distance.
type Referee struct {
	slow      float64
	slowHeavy float64
}

// NewReferee creates a referee from the level tuning.
func NewReferee(cfg config.BikeRushConfig) Referee {
	return Referee{
		slow:      cfg.Obstacles.SlowFactor,
		slowHeavy: cfg.Obstacles.SlowHeavyFactor,
	}
}

// CheckTimeout fails a running level whose timer has run out.
func (r Referee) CheckTimeout(l *Level) bool {
	if !l.Terminal() && l.Elapsed >= l.Duration {
		return l.end(StatusFailed, ReasonTimeout)
	}
	return false
}

// CheckWin completes a running level that reached its target distance.
func (r Referee) CheckWin(l *Level) bool {
	if !l.Terminal() && l.Distance >= l.Target {
		return l.end(StatusComplete, ReasonFinished)
	}
	return false
}

// Resolve applies each hit obstacle's damage to the bike and retires it.
// Every reported obstacle is retired, even after a crash ended the level.
func (r Referee) Resolve(l *Level, b *Bike, a *Arena, hits []ID) {
	for _, id := range hits {
		o, ok := a.Get(id)
		if !ok {
			continue
		}
		r.apply(l, b, o)
		a.Remove(id)
	}
}

func (r Referee) apply(l *Level, b *Bike, o *Obstacle) {
	switch o.Damage {
	case DamageCrash:
		if l.end(StatusFailed, ReasonCrash) {
			l.CrashedOn = o.Kind
		}
	case DamageSlow:
		b.Speed *= r.slow
	case DamageSlowHeavy:
		b.Speed *= r.slowHeavy
	}
}
