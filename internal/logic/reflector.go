package logic

import "time"

// Reflector maps sampled association status onto an LED level with an
// explicit timed state machine. Each Step consumes one status sample and
// returns the pin level plus the delay until the next sample, so the
// 200ms/1000ms cadences live in data rather than in blocking sleeps.
type Reflector struct {
	flashPeriod time.Duration // per-phase toggle period while SEARCHING
	holdPeriod  time.Duration // re-drive period while CONNECTED

	phase     Phase
	ledOn     bool
	enteredAt time.Time
	counts    Counts
}

// NewReflector creates a reflector in the SEARCHING phase. The startTime
// stamps the initial phase entry; flashPeriod and holdPeriod set the
// SEARCHING and CONNECTED cadences.
func NewReflector(flashPeriod, holdPeriod time.Duration, startTime time.Time) *Reflector {
	return &Reflector{
		flashPeriod: flashPeriod,
		holdPeriod:  holdPeriod,
		phase:       PhaseSearching,
		enteredAt:   startTime,
	}
}

// Step consumes one association-status sample and returns the LED level to
// drive and the delay until the next sample. The branch is re-evaluated on
// every call purely from the sample: no hysteresis, no debounce. A flap is
// reflected on the very next step.
func (r *Reflector) Step(input Input) Output {
	target := PhaseSearching
	if input.Connected {
		target = PhaseConnected
	}

	var transition *Transition
	if target != r.phase {
		transition = &Transition{Timestamp: input.Time, From: r.phase, To: target}
		r.phase = target
		r.enteredAt = input.Time
		if target == PhaseConnected {
			r.counts.Connects++
		} else {
			r.counts.Disconnects++
		}
		// Both phases begin with the LED driven HIGH.
		r.ledOn = true
	} else if r.phase == PhaseSearching {
		r.ledOn = !r.ledOn
	} else {
		r.ledOn = true
	}

	next := r.holdPeriod
	if r.phase == PhaseSearching {
		next = r.flashPeriod
	}

	return Output{
		Phase:      r.phase,
		LED:        r.ledOn,
		Next:       next,
		Transition: transition,
	}
}

// Phase returns the current phase.
func (r *Reflector) Phase() Phase {
	return r.phase
}

// LED returns the level currently driven on the pin.
func (r *Reflector) LED() bool {
	return r.ledOn
}

// PhaseEnteredAt returns the timestamp of the last phase transition, or the
// start time if no transition has occurred.
func (r *Reflector) PhaseEnteredAt() time.Time {
	return r.enteredAt
}

// CountsSnapshot returns the transition counts since startup.
func (r *Reflector) CountsSnapshot() Counts {
	return r.counts
}
