package springmass

import (
	"fmt"
	"time"
)

// StepStats counts what happened during one Step.
type StepStats struct {
	// mass pairs that passed the sweep and mask tests
	PairsTested int
	Overlaps    int
	Rejected    int
	Bounces     int
	Separations int
	Coincident  int

	PlaneContacts int
	PlaneBounces  int

	UnboundSprings int

	StepTime time.Duration
}

func (stats *StepStats) record(outcome CollisionOutcome) {
	if outcome == CollisionNone {
		return
	}
	stats.Overlaps++
	switch outcome {
	case CollisionRejected:
		stats.Rejected++
	case CollisionBounce:
		stats.Bounces++
	case CollisionSeparate:
		stats.Separations++
	case CollisionCoincident:
		stats.Coincident++
	}
}

func (stats StepStats) String() string {
	return fmt.Sprintf("pairs=%d overlaps=%d rejected=%d bounces=%d separations=%d plane_contacts=%d plane_bounces=%d in %v",
		stats.PairsTested, stats.Overlaps, stats.Rejected, stats.Bounces, stats.Separations,
		stats.PlaneContacts, stats.PlaneBounces, stats.StepTime)
}
