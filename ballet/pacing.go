package ballet

import (
	"context"
	"time"
)

// PacingMode selects how the choreographer waits between waypoints.
type PacingMode int

const (
	// FixedBeat waits exactly Beat after every dispatch, regardless of
	// device feedback. Deterministic, never blocks on a bad status
	// feed; this is the default.
	FixedBeat PacingMode = iota

	// ArrivalGated polls the device until it reports being within
	// ArrivalThresholdMM of the target, bounded by ArrivalTimeout.
	// On timeout the routine advances anyway.
	ArrivalGated
)

func (m PacingMode) String() string {
	switch m {
	case FixedBeat:
		return "fixed_beat"
	case ArrivalGated:
		return "arrival_gated"
	}
	return "unknown"
}

// Pacing defaults. The threshold matches the robot's own goal
// tolerance; the timeout bounds the worst-case wait per step.
const (
	DefaultArrivalThresholdMM = 250
	DefaultArrivalTimeout     = 8 * time.Second
	DefaultPollInterval       = 200 * time.Millisecond
)

// PacingConfig is the per-dance wait policy.
type PacingConfig struct {
	Mode               PacingMode
	Beat               time.Duration
	ArrivalThresholdMM float64
	ArrivalTimeout     time.Duration
	PollInterval       time.Duration
}

// DefaultPacing returns fixed-beat pacing at the given beat.
func DefaultPacing(beat time.Duration) PacingConfig {
	return PacingConfig{
		Mode:               FixedBeat,
		Beat:               beat,
		ArrivalThresholdMM: DefaultArrivalThresholdMM,
		ArrivalTimeout:     DefaultArrivalTimeout,
		PollInterval:       DefaultPollInterval,
	}
}

// Wait blocks according to the policy after target was dispatched.
// The bool reports whether arrival was confirmed; in fixed-beat mode
// it is always true. A false return with nil error means the gate
// timed out and the dance should advance with a notice.
//
// Status errors and missing fields are treated as "not yet arrived",
// never as failures: a flaky position feed must not stall or abort the
// routine. The only error returned is context cancellation.
func (p PacingConfig) Wait(ctx context.Context, clk Clock, dev Device, target Point) (bool, error) {
	if p.Mode == FixedBeat {
		if p.Beat <= 0 {
			return true, ctx.Err()
		}
		return true, clk.Sleep(ctx, p.Beat)
	}

	poll := p.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	deadline := clk.Now().Add(p.ArrivalTimeout)
	for {
		if nearTarget(ctx, dev, target, p.ArrivalThresholdMM) {
			return true, nil
		}
		remaining := deadline.Sub(clk.Now())
		if remaining <= 0 {
			return false, nil
		}
		if remaining < poll {
			poll = remaining
		}
		if err := clk.Sleep(ctx, poll); err != nil {
			return false, err
		}
	}
}

// nearTarget reports whether the device claims to be within threshold
// of target. Unknown is not arrived: any status error or absent field
// simply answers false.
func nearTarget(ctx context.Context, dev Device, target Point, threshold float64) bool {
	st, err := dev.Status(ctx)
	if err != nil {
		return false
	}
	if st.DistanceToGoal != nil {
		return *st.DistanceToGoal <= threshold
	}
	if st.Position != nil {
		return st.Position.Distance(target) <= threshold
	}
	return false
}
