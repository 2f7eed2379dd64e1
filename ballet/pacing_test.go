package ballet

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// fakeClock advances instantly on Sleep so pacing tests never block.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if d > 0 {
		c.now = c.now.Add(d)
		c.slept = append(c.slept, d)
	}
	return ctx.Err()
}

func (c *fakeClock) total() time.Duration {
	var sum time.Duration
	for _, d := range c.slept {
		sum += d
	}
	return sum
}

// fakeDevice scripts send results per call and delegates status to a
// function.
type fakeDevice struct {
	sent     []Point
	sendErrs []error
	onSend   func(call int)
	statusFn func() (DeviceStatus, error)
	beeps    int
}

func (d *fakeDevice) SendGoto(ctx context.Context, p Point) error {
	call := len(d.sent)
	d.sent = append(d.sent, p)
	if d.onSend != nil {
		d.onSend(call)
	}
	if call < len(d.sendErrs) {
		return d.sendErrs[call]
	}
	return nil
}

func (d *fakeDevice) Status(ctx context.Context) (DeviceStatus, error) {
	if d.statusFn != nil {
		return d.statusFn()
	}
	return DeviceStatus{}, nil
}

func (d *fakeDevice) Beep(ctx context.Context) error  { d.beeps++; return nil }
func (d *fakeDevice) Clean(ctx context.Context) error { return nil }
func (d *fakeDevice) Dock(ctx context.Context) error  { return nil }

func TestFixedBeatWaits(t *testing.T) {
	clk := newFakeClock()
	p := DefaultPacing(600 * time.Millisecond)
	arrived, err := p.Wait(context.Background(), clk, &fakeDevice{}, Point{})
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !arrived {
		t.Error("fixed beat should always report arrived")
	}
	if clk.total() != 600*time.Millisecond {
		t.Errorf("slept %v, want 600ms", clk.total())
	}
}

func TestFixedBeatZeroNoSleep(t *testing.T) {
	clk := newFakeClock()
	p := DefaultPacing(0)
	if _, err := p.Wait(context.Background(), clk, &fakeDevice{}, Point{}); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if len(clk.slept) != 0 {
		t.Errorf("slept %v with zero beat", clk.slept)
	}
}

func TestArrivalGatedAdvancesAfterTimeout(t *testing.T) {
	// A status feed that never parses must not stall or abort the
	// routine; the step advances after exactly the timeout.
	feeds := []func() (DeviceStatus, error){
		func() (DeviceStatus, error) { return DeviceStatus{}, nil },
		func() (DeviceStatus, error) {
			return DeviceStatus{}, fmt.Errorf("bad frame: %w", ErrStatusParse)
		},
	}
	for i, feed := range feeds {
		clk := newFakeClock()
		p := PacingConfig{
			Mode:               ArrivalGated,
			ArrivalThresholdMM: 250,
			ArrivalTimeout:     2 * time.Second,
			PollInterval:       200 * time.Millisecond,
		}
		arrived, err := p.Wait(context.Background(), clk, &fakeDevice{statusFn: feed}, Point{X: 1000})
		if err != nil {
			t.Fatalf("feed %d: Wait: %v", i, err)
		}
		if arrived {
			t.Errorf("feed %d: reported arrived with no usable status", i)
		}
		if clk.total() != 2*time.Second {
			t.Errorf("feed %d: waited %v, want exactly 2s", i, clk.total())
		}
	}
}

func TestArrivalGatedExactThresholdCounts(t *testing.T) {
	pos := Point{X: 1250, Y: 2000}
	dev := &fakeDevice{statusFn: func() (DeviceStatus, error) {
		return DeviceStatus{Position: &pos}, nil
	}}
	clk := newFakeClock()
	p := PacingConfig{
		Mode:               ArrivalGated,
		ArrivalThresholdMM: 250,
		ArrivalTimeout:     time.Second,
		PollInterval:       200 * time.Millisecond,
	}
	arrived, err := p.Wait(context.Background(), clk, dev, Point{X: 1000, Y: 2000})
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !arrived {
		t.Error("exactly threshold distance should count as arrived")
	}
	if len(clk.slept) != 0 {
		t.Errorf("slept %v before first check", clk.slept)
	}
}

func TestArrivalGatedPrefersDistanceField(t *testing.T) {
	dist := 100.0
	far := Point{X: 90000, Y: 90000}
	dev := &fakeDevice{statusFn: func() (DeviceStatus, error) {
		// Position says far away; the device's own goal distance wins.
		return DeviceStatus{Position: &far, DistanceToGoal: &dist}, nil
	}}
	p := PacingConfig{
		Mode:               ArrivalGated,
		ArrivalThresholdMM: 250,
		ArrivalTimeout:     time.Second,
		PollInterval:       200 * time.Millisecond,
	}
	arrived, err := p.Wait(context.Background(), newFakeClock(), dev, Point{})
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !arrived {
		t.Error("distance-to-goal within threshold should count as arrived")
	}
}

func TestArrivalGatedArrivesMidPoll(t *testing.T) {
	calls := 0
	near := Point{X: 40, Y: 0}
	dev := &fakeDevice{statusFn: func() (DeviceStatus, error) {
		calls++
		if calls < 3 {
			return DeviceStatus{}, nil
		}
		return DeviceStatus{Position: &near}, nil
	}}
	clk := newFakeClock()
	p := PacingConfig{
		Mode:               ArrivalGated,
		ArrivalThresholdMM: 250,
		ArrivalTimeout:     5 * time.Second,
		PollInterval:       200 * time.Millisecond,
	}
	arrived, err := p.Wait(context.Background(), clk, dev, Point{})
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !arrived {
		t.Error("should arrive once the feed reports a near position")
	}
	if clk.total() != 400*time.Millisecond {
		t.Errorf("waited %v, want 400ms (two polls)", clk.total())
	}
}

func TestWaitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := DefaultPacing(600 * time.Millisecond)
	if _, err := p.Wait(ctx, newFakeClock(), &fakeDevice{}, Point{}); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
