// Package logic contains the pure status-reflector state machine.
// This package has NO external dependencies (no netlink, GPIO, OS, or
// time.Sleep). Time is always injectable via time.Time parameters.
package logic

import "time"

// Phase represents the logical state of the reflector.
type Phase string

const (
	// PhaseSearching means the association status did not read connected
	// on the last sample. The LED flashes.
	PhaseSearching Phase = "SEARCHING"

	// PhaseConnected means the last sample read connected. The LED holds HIGH.
	PhaseConnected Phase = "CONNECTED"
)

// Input represents a single sample of the association status.
type Input struct {
	Connected bool // true = the platform reports an established association
	Time      time.Time
}

// Output is the result of one reflector step: the level to drive on the
// LED pin and the delay until the next sample.
type Output struct {
	Phase Phase
	LED   bool // true = HIGH
	Next  time.Duration

	// Transition is non-nil when this step changed phase.
	Transition *Transition
}

// Transition records a phase change with its timestamp.
type Transition struct {
	Timestamp time.Time
	From      Phase
	To        Phase
}

// Counts tracks the number of phase transitions since startup.
type Counts struct {
	Connects    int // SEARCHING -> CONNECTED
	Disconnects int // CONNECTED -> SEARCHING
}
