package ballet

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// RunStatus is the dispatch loop's state machine.
type RunStatus int

const (
	Idle RunStatus = iota
	Centering
	Dancing
	Complete
	Aborted
)

func (s RunStatus) String() string {
	switch s {
	case Idle:
		return "idle"
	case Centering:
		return "centering"
	case Dancing:
		return "dancing"
	case Complete:
		return "complete"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// Send retry bounds. Transient device errors get one more attempt
// after a short fixed backoff, then the run aborts.
const (
	maxSendAttempts = 2
	sendRetryDelay  = 250 * time.Millisecond
)

// DanceRun is the transient record of one dance execution. Created
// when the dance starts, mutated by the loop, discarded at command
// end; nothing is persisted.
type DanceRun struct {
	ID             uuid.UUID
	Pattern        Pattern
	Transform      Transform
	Pacing         PacingConfig
	StepsCompleted int
	StepsTotal     int
	Status         RunStatus
	Err            error
}

// Choreographer turns a pattern into motion: generate waypoints,
// transform them into the device frame, then send each one and wait
// per the pacing policy. One dance runs to completion or abort before
// another may start; never run two against the same device.
type Choreographer struct {
	dev Device
	cfg Config

	// Clock and Logger may be replaced before the first dance. Tests
	// inject a fake clock; a nil logger falls back to log.Default().
	Clock  Clock
	Logger *log.Logger
}

func NewChoreographer(dev Device, cfg Config) *Choreographer {
	return &Choreographer{
		dev:   dev,
		cfg:   cfg,
		Clock: SystemClock{},
	}
}

func (c *Choreographer) logf(format string, args ...any) {
	l := c.Logger
	if l == nil {
		l = log.Default()
	}
	l.Printf(format, args...)
}

// ResolveCenter picks the dance center: the explicit argument wins,
// then the configured default, then the device's last known position,
// then the hardcoded safe fallback. The source is always reported so
// the operator knows where the robot is about to go.
func (c *Choreographer) ResolveCenter(ctx context.Context, explicit *Point) (Point, string) {
	if explicit != nil {
		return *explicit, "argument"
	}
	if c.cfg.DefaultCenter != nil {
		return *c.cfg.DefaultCenter, "config"
	}
	if st, err := c.dev.Status(ctx); err == nil && st.Position != nil {
		return *st.Position, "device position"
	}
	return FallbackCenter, "fallback"
}

// Dance executes one pattern against the device. The returned DanceRun
// always reports how far the routine got, even on error.
func (c *Choreographer) Dance(ctx context.Context, pat Pattern, tr Transform, pacing PacingConfig) (*DanceRun, error) {
	run := &DanceRun{
		ID:        uuid.New(),
		Pattern:   pat,
		Transform: tr,
		Pacing:    pacing,
		Status:    Centering,
	}

	pts, err := pat.Waypoints()
	if err != nil {
		return c.abort(run, err)
	}
	pts, err = tr.Apply(pat.Center, pts)
	if err != nil {
		return c.abort(run, err)
	}
	run.StepsTotal = len(pts)
	run.Status = Dancing
	c.logf("run %s: dancing %s, %d waypoints around (%.0f, %.0f), %s pacing",
		run.ID, pat.Kind, run.StepsTotal, pat.Center.X, pat.Center.Y, pacing.Mode)

	for i, wp := range pts {
		if ctx.Err() != nil {
			return c.abort(run, fmt.Errorf("interrupted: %w", ctx.Err()))
		}
		c.logf("run %s: step %d/%d -> (%.0f, %.0f)", run.ID, i+1, run.StepsTotal, wp.X, wp.Y)
		if err := c.sendWithRetry(ctx, wp); err != nil {
			return c.abort(run, fmt.Errorf("step %d/%d: %w", i+1, run.StepsTotal, err))
		}
		run.StepsCompleted = i + 1
		if i == len(pts)-1 {
			break // no wait after the final waypoint
		}
		arrived, err := pacing.Wait(ctx, c.Clock, c.dev, wp)
		if err != nil {
			return c.abort(run, fmt.Errorf("interrupted: %w", err))
		}
		if !arrived {
			c.logf("run %s: step %d/%d: could not confirm arrival within %v, moving on",
				run.ID, i+1, run.StepsTotal, pacing.ArrivalTimeout)
		}
	}

	run.Status = Complete
	c.logf("run %s: complete, %d/%d steps", run.ID, run.StepsCompleted, run.StepsTotal)
	return run, nil
}

// GoTo sends a single waypoint with the same bounded retry the dance
// loop uses.
func (c *Choreographer) GoTo(ctx context.Context, p Point) error {
	if !p.Finite() {
		return fmt.Errorf("%w: non-finite target", ErrInvalidParameter)
	}
	return c.sendWithRetry(ctx, p)
}

// sendWithRetry is a bounded attempt loop, not an unbounded one: at
// most maxSendAttempts sends with a fixed backoff between them.
func (c *Choreographer) sendWithRetry(ctx context.Context, p Point) error {
	var last error
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		last = c.dev.SendGoto(ctx, p)
		if last == nil {
			return nil
		}
		if attempt < maxSendAttempts {
			c.logf("send (%.0f, %.0f) attempt %d failed: %v, retrying", p.X, p.Y, attempt, last)
			if err := c.Clock.Sleep(ctx, sendRetryDelay); err != nil {
				return fmt.Errorf("interrupted: %w", err)
			}
		}
	}
	return last
}

func (c *Choreographer) abort(run *DanceRun, err error) (*DanceRun, error) {
	run.Status = Aborted
	run.Err = err
	c.logf("run %s: aborted after %d/%d steps: %v", run.ID, run.StepsCompleted, run.StepsTotal, err)
	return run, err
}
