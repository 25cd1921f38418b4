package retention

import "math/rand"

// SessionMode distinguishes ordinary adaptive practice from mastery
// assessment, which never mixes in retention probes.
type SessionMode string

const (
	ModeAdaptive          SessionMode = "adaptive"
	ModeMasteryAssessment SessionMode = "mastery-assessment"
)

// Probe cadence: one probe every 5 to 7 ordinary items, at least 3 probes
// per adaptive session.
const (
	minProbeGap      = 5
	probeGapSpread   = 3 // gap drawn uniformly from [5, 7]
	MinProbesPerTest = 3
)

// ProbeState tracks probe scheduling across one session.
type ProbeState struct {
	mode         SessionMode
	rng          *rand.Rand
	sinceProbe   int
	probesServed int
	nextGap      int
}

// NewProbeState returns probe scheduling state for a session.
func NewProbeState(mode SessionMode, rng *rand.Rand) *ProbeState {
	ps := &ProbeState{mode: mode, rng: rng}
	ps.nextGap = ps.drawGap()
	return ps
}

func (ps *ProbeState) drawGap() int {
	if ps.rng == nil {
		return minProbeGap
	}
	return minProbeGap + ps.rng.Intn(probeGapSpread)
}

// ShouldInsertProbe reports whether the next administered item should be a
// retention probe instead of an ordinary adaptive item. Call once per item
// slot; ordinary slots advance the gap counter.
func (ps *ProbeState) ShouldInsertProbe() bool {
	if ps.mode == ModeMasteryAssessment {
		return false
	}
	ps.sinceProbe++
	if ps.sinceProbe < ps.nextGap {
		return false
	}
	ps.sinceProbe = 0
	ps.nextGap = ps.drawGap()
	ps.probesServed++
	return true
}

// ProbesServed returns how many probes have been scheduled so far.
func (ps *ProbeState) ProbesServed() int {
	return ps.probesServed
}

// NeedsMoreProbes reports whether the session has not yet met the minimum
// probe quota.
func (ps *ProbeState) NeedsMoreProbes() bool {
	return ps.mode != ModeMasteryAssessment && ps.probesServed < MinProbesPerTest
}
