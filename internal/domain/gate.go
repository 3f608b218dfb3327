package domain

import "strings"

// RunGateState is the per-date state of the run completion gate. Finishing a
// day is allowed only in GateNotRequired or GateSatisfied.
type RunGateState string

const (
	GateNotRequired RunGateState = "not_required"
	GatePending     RunGateState = "pending"
	GateSatisfied   RunGateState = "satisfied"
)

// Open reports whether the gate permits advancing the day cursor.
func (s RunGateState) Open() bool {
	return s != GatePending
}

// EvaluateRunGate computes the gate state for a day. The durable completion
// marker always satisfies the gate; a draft with both distance and time also
// satisfies it, but only until the draft is cleared.
func EvaluateRunGate(requiresRun, markerSet bool, distance, timeText string) RunGateState {
	if !requiresRun {
		return GateNotRequired
	}
	if markerSet {
		return GateSatisfied
	}
	if strings.TrimSpace(distance) != "" && strings.TrimSpace(timeText) != "" {
		return GateSatisfied
	}
	return GatePending
}
