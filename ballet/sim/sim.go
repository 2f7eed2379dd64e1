// Package sim is an offline stand-in for a real vacuum: a Device that
// glides toward whatever target it was last sent. It lets the CLI and
// tests run full dances with no robot and no cloud account.
package sim

import (
	"context"
	"fmt"

	"github.com/Shane-Neeley/vacuum-ballet/ballet"
)

// Device simulates a vacuum in map-frame millimeters. It is meant for
// the single dispatch loop only, same as a real device.
type Device struct {
	pos    ballet.Point
	target *ballet.Point

	// SpeedMM is how far the sim advances toward its target per Status
	// query, standing in for time passing between polls.
	SpeedMM float64

	// FailSends fails the next n SendGoto calls with a not-reachable
	// error, for exercising the retry path.
	FailSends int

	// Garbled makes Status report a malformed feed, the failure mode
	// that used to stall arrival gating.
	Garbled bool

	Beeps   int
	battery int
	state   string
}

// New places a simulated vacuum at start.
func New(start ballet.Point) *Device {
	return &Device{pos: start, SpeedMM: 400, battery: 87, state: "idle"}
}

// Position reports where the sim currently is.
func (d *Device) Position() ballet.Point { return d.pos }

func (d *Device) SendGoto(ctx context.Context, p ballet.Point) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.FailSends > 0 {
		d.FailSends--
		return fmt.Errorf("sim: %w", ballet.ErrNotReachable)
	}
	if !p.Finite() {
		return fmt.Errorf("sim: %w", ballet.ErrNotReachable)
	}
	t := p
	d.target = &t
	d.state = "navigating"
	return nil
}

func (d *Device) Status(ctx context.Context) (ballet.DeviceStatus, error) {
	if err := ctx.Err(); err != nil {
		return ballet.DeviceStatus{}, err
	}
	if d.Garbled {
		return ballet.DeviceStatus{}, fmt.Errorf("sim: %w", ballet.ErrStatusParse)
	}
	d.advance()
	pos := d.pos
	st := ballet.DeviceStatus{
		Position: &pos,
		Battery:  intPtr(d.battery),
		State:    d.state,
	}
	if d.target != nil {
		dist := d.pos.Distance(*d.target)
		st.DistanceToGoal = &dist
	}
	return st, nil
}

func (d *Device) Beep(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.Beeps++
	return nil
}

func (d *Device) Clean(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.target = nil
	d.state = "cleaning"
	return nil
}

func (d *Device) Dock(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.target = nil
	d.state = "returning to dock"
	return nil
}

// advance moves the sim one SpeedMM increment toward its target.
func (d *Device) advance() {
	if d.target == nil {
		return
	}
	dist := d.pos.Distance(*d.target)
	if dist <= d.SpeedMM {
		d.pos = *d.target
		d.target = nil
		d.state = "idle"
		return
	}
	frac := d.SpeedMM / dist
	d.pos = ballet.Point{
		X: d.pos.X + (d.target.X-d.pos.X)*frac,
		Y: d.pos.Y + (d.target.Y-d.pos.Y)*frac,
	}
}

func intPtr(v int) *int { return &v }
