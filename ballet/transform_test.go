package ballet

import (
	"errors"
	"math"
	"testing"
)

func TestIdentityTransform(t *testing.T) {
	pts, err := CirclePath(Point{X: 500, Y: 500}, 300, 12)
	if err != nil {
		t.Fatalf("CirclePath: %v", err)
	}
	out, err := Transform{}.Apply(Point{X: 500, Y: 500}, pts)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for i := range pts {
		if out[i] != pts[i] {
			t.Errorf("point %d changed: %+v -> %+v", i, pts[i], out[i])
		}
	}
}

func TestRotate180RoundTrip(t *testing.T) {
	center := Point{X: 1000, Y: 2000}
	pts, err := CirclePath(center, 400, 8)
	if err != nil {
		t.Fatalf("CirclePath: %v", err)
	}
	there, err := Transform{RotateDeg: 180}.Apply(center, pts)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	back, err := Transform{RotateDeg: -180}.Apply(center, there)
	if err != nil {
		t.Fatalf("Apply back: %v", err)
	}
	for i := range pts {
		if math.Abs(back[i].X-pts[i].X) > tolMM || math.Abs(back[i].Y-pts[i].Y) > tolMM {
			t.Errorf("point %d: got %+v, want %+v", i, back[i], pts[i])
		}
	}
}

func TestRotate90Clockwise(t *testing.T) {
	out, err := Transform{RotateDeg: 90}.Apply(Point{}, []Point{{X: 100, Y: 0}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// Clockwise in a y-up frame: east goes south.
	if math.Abs(out[0].X-0) > tolMM || math.Abs(out[0].Y-(-100)) > tolMM {
		t.Errorf("got (%g, %g), want (0, -100)", out[0].X, out[0].Y)
	}
}

// Rotation and flip do not commute; the contract is rotate first, then
// flip. (100,50) rotated 90° clockwise is (50,-100); flipping x then
// gives (-50,-100). Flipping first would give (50,100) instead.
func TestRotateThenFlipOrder(t *testing.T) {
	out, err := Transform{RotateDeg: 90, FlipX: true}.Apply(Point{}, []Point{{X: 100, Y: 50}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if math.Abs(out[0].X-(-50)) > tolMM || math.Abs(out[0].Y-(-100)) > tolMM {
		t.Errorf("got (%g, %g), want (-50, -100)", out[0].X, out[0].Y)
	}
}

func TestApplyInverseRecovers(t *testing.T) {
	center := Point{X: 32000, Y: 27000}
	pts, err := LissajousPath(center, 600, 3, 2, math.Pi/2, 16)
	if err != nil {
		t.Fatalf("LissajousPath: %v", err)
	}
	tr := Transform{RotateDeg: 37.5, FlipX: true, FlipY: true}
	mapped, err := tr.Apply(center, pts)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	back, err := tr.ApplyInverse(center, mapped)
	if err != nil {
		t.Fatalf("ApplyInverse: %v", err)
	}
	for i := range pts {
		if math.Abs(back[i].X-pts[i].X) > tolMM || math.Abs(back[i].Y-pts[i].Y) > tolMM {
			t.Errorf("point %d: got %+v, want %+v", i, back[i], pts[i])
		}
	}
}

func TestTransformRejectsNonFinite(t *testing.T) {
	if _, err := (Transform{RotateDeg: math.NaN()}).Apply(Point{}, []Point{{1, 1}}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("NaN rotation: got %v, want ErrInvalidParameter", err)
	}
	tr := Transform{RotateDeg: 45}
	if _, err := tr.Apply(Point{}, []Point{{X: math.Inf(1), Y: 0}}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("infinite point: got %v, want ErrInvalidParameter", err)
	}
}
