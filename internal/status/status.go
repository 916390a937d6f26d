// Package status provides a thread-safe status tracker for the wifi-led
// daemon. It is read by the HTTP handlers while the reflector loop writes it.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/wifi-led/internal/logic"
)

// Config contains daemon configuration for display.
// The pre-shared key is deliberately absent.
type Config struct {
	FlashMs   int64
	HoldMs    int64
	Interface string
	SSID      string
	LEDPin    int
	HTTPAddr  string
	SerialDev string
	BaudRate  int
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	Phase       logic.Phase
	LED         bool
	PhaseSince  time.Time
	Counts      logic.Counts
	StartTime   time.Time
	Now         time.Time
	LastPollErr string
	Config      Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			Phase:      logic.PhaseSearching,
			PhaseSince: startTime,
			StartTime:  startTime,
			Config:     cfg,
		},
	}
}

// Update sets phase, LED level, phase-entry time, and transition counts.
// Called from the reflector loop on every tick.
func (t *Tracker) Update(phase logic.Phase, led bool, phaseSince time.Time, counts logic.Counts) {
	t.mu.Lock()
	t.snap.Phase = phase
	t.snap.LED = led
	t.snap.PhaseSince = phaseSince
	t.snap.Counts = counts
	t.mu.Unlock()
}

// SetPollError records the last status-poll error ("" clears it).
func (t *Tracker) SetPollError(msg string) {
	t.mu.Lock()
	t.snap.LastPollErr = msg
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
