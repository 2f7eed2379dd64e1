package ballet

import (
	"fmt"
	"math"
	"math/rand"
)

// Kind names a dance pattern family.
type Kind string

const (
	Circle      Kind = "circle"
	Square      Kind = "square"
	FigureEight Kind = "figure8"
	Lissajous   Kind = "liss"
	Spin        Kind = "spin"
	SpinCrazy   Kind = "spin_crazy"
)

// Kinds lists every pattern name the dance command accepts.
func Kinds() []Kind {
	return []Kind{Circle, Square, FigureEight, Lissajous, Spin, SpinCrazy}
}

// ParseKind resolves a CLI pattern name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown pattern %q", ErrInvalidParameter, name)
}

// Spin patterns ignore the requested size and use a tight fixed radius,
// well under the safety clamp. spin_crazy trades radius for revolutions.
const (
	spinRadiusMM     = 150
	spinRevs         = 3
	spinStepsPerRev  = 8
	crazyRadiusMM    = 80
	crazyRevs        = 5
	crazyStepsPerRev = 12
	crazyJitterSeed  = 42
	crazyJitterMaxMM = 40
	defaultLissFreqA = 3
	defaultLissFreqB = 2
)

// Pattern is one fully-parameterized dance: a pattern family plus the
// center, size and sampling parameters its generator needs.
type Pattern struct {
	Kind   Kind
	Center Point
	// Size is the radius (circle, figure8, liss) or half-width
	// (square) in millimeters, already clamped by BuildPattern.
	Size  float64
	Steps int
	// Lissajous frequency ratio and phase offset.
	FreqA int
	FreqB int
	Phase float64
}

// BuildPattern validates and clamps the requested size and fills in
// per-family sampling defaults. The second return reports whether the
// size was clamped, so the caller can surface a notice.
func BuildPattern(cfg Config, kind Kind, center Point, sizeMM float64) (Pattern, bool, error) {
	if !center.Finite() {
		return Pattern{}, false, fmt.Errorf("%w: non-finite center", ErrInvalidParameter)
	}
	if sizeMM <= 0 {
		return Pattern{}, false, fmt.Errorf("%w: size must be positive, got %g", ErrInvalidParameter, sizeMM)
	}
	size, clamped := cfg.ClampRadius(sizeMM)
	p := Pattern{
		Kind:   kind,
		Center: center,
		Size:   size,
		FreqA:  defaultLissFreqA,
		FreqB:  defaultLissFreqB,
		Phase:  math.Pi / 2,
	}
	switch kind {
	case Circle:
		p.Steps = 20
	case Square:
		p.Steps = 5
	case FigureEight:
		p.Steps = 24
	case Lissajous:
		p.Steps = 32
	case Spin:
		p.Steps = spinRevs * spinStepsPerRev
	case SpinCrazy:
		p.Steps = crazyRevs * crazyStepsPerRev
	default:
		return Pattern{}, false, fmt.Errorf("%w: unknown pattern %q", ErrInvalidParameter, kind)
	}
	return p, clamped, nil
}

// Waypoints produces the ordered waypoint sequence for p. The sequence
// is finite and non-empty; whether it closes on itself is defined per
// family (a square always does).
func (p Pattern) Waypoints() ([]Point, error) {
	switch p.Kind {
	case Circle:
		return CirclePath(p.Center, p.Size, p.Steps)
	case Square:
		return SquarePath(p.Center, p.Size)
	case FigureEight:
		return FigureEightPath(p.Center, p.Size, p.Steps)
	case Lissajous:
		return LissajousPath(p.Center, p.Size, p.FreqA, p.FreqB, p.Phase, p.Steps)
	case Spin:
		return spinPath(p.Center, spinRadiusMM, spinRevs, spinStepsPerRev, 0)
	case SpinCrazy:
		return spinPath(p.Center, crazyRadiusMM, crazyRevs, crazyStepsPerRev, crazyJitterMaxMM)
	}
	return nil, fmt.Errorf("%w: unknown pattern %q", ErrInvalidParameter, p.Kind)
}

// CirclePath samples n points evenly spaced by angle around center.
func CirclePath(center Point, radius float64, n int) ([]Point, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive, got %g", ErrInvalidParameter, radius)
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: circle needs at least 3 points, got %d", ErrInvalidParameter, n)
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{
			X: center.X + radius*math.Cos(t),
			Y: center.Y + radius*math.Sin(t),
		}
	}
	return pts, nil
}

// SquarePath returns the four corners of a square of half-width half,
// traversed clockwise and closed: the final point repeats the first so
// the robot returns to where it started.
func SquarePath(center Point, half float64) ([]Point, error) {
	if half <= 0 {
		return nil, fmt.Errorf("%w: half-width must be positive, got %g", ErrInvalidParameter, half)
	}
	return []Point{
		{X: center.X - half, Y: center.Y - half},
		{X: center.X + half, Y: center.Y - half},
		{X: center.X + half, Y: center.Y + half},
		{X: center.X - half, Y: center.Y + half},
		{X: center.X - half, Y: center.Y - half},
	}, nil
}

// FigureEightPath traces two tangent circular lobes of radius size/2
// centered at center ± (size/2, 0). Each lobe starts at the shared
// tangent point, so the concatenated path has no jump larger than one
// sampling step.
func FigureEightPath(center Point, size float64, n int) ([]Point, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %g", ErrInvalidParameter, size)
	}
	if n < 8 {
		return nil, fmt.Errorf("%w: figure8 needs at least 8 points, got %d", ErrInvalidParameter, n)
	}
	r := size / 2
	half := n / 2
	pts := make([]Point, 0, half*2)
	// Right lobe, counterclockwise from the tangent point at center.
	for i := 0; i < half; i++ {
		t := math.Pi + 2*math.Pi*float64(i)/float64(half)
		pts = append(pts, Point{
			X: center.X + r + r*math.Cos(t),
			Y: center.Y + r*math.Sin(t),
		})
	}
	// Left lobe, clockwise, again starting at the tangent point.
	for i := 0; i < half; i++ {
		t := -2 * math.Pi * float64(i) / float64(half)
		pts = append(pts, Point{
			X: center.X - r + r*math.Cos(t),
			Y: center.Y + r*math.Sin(t),
		})
	}
	return pts, nil
}

// LissajousPath samples x = ax·sin(a·t+δ), y = ay·sin(b·t) over one
// period. Amplitudes are 0.8/0.6 of size so no sample can land farther
// than size from center.
func LissajousPath(center Point, size float64, a, b int, delta float64, n int) ([]Point, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %g", ErrInvalidParameter, size)
	}
	if a < 1 || b < 1 {
		return nil, fmt.Errorf("%w: frequency ratios must be positive, got %d:%d", ErrInvalidParameter, a, b)
	}
	if n < 4 {
		return nil, fmt.Errorf("%w: lissajous needs at least 4 points, got %d", ErrInvalidParameter, n)
	}
	ax, ay := 0.8*size, 0.6*size
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{
			X: center.X + ax*math.Sin(float64(a)*t+delta),
			Y: center.Y + ay*math.Sin(float64(b)*t),
		}
	}
	return pts, nil
}

// spinPath is a tight circle repeated for several revolutions. When
// jitter is non-zero each point is nudged by a seeded random offset, so
// the chaos is reproducible run to run.
func spinPath(center Point, radius float64, revs, stepsPerRev int, jitter float64) ([]Point, error) {
	rng := rand.New(rand.NewSource(crazyJitterSeed))
	n := revs * stepsPerRev
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(stepsPerRev)
		p := Point{
			X: center.X + radius*math.Cos(t),
			Y: center.Y + radius*math.Sin(t),
		}
		if jitter > 0 {
			p.X += (rng.Float64()*2 - 1) * jitter
			p.Y += (rng.Float64()*2 - 1) * jitter
		}
		pts[i] = p
	}
	return pts, nil
}

// RandomPattern picks a pattern family using r, so a seeded source
// gives a reproducible "surprise me" dance.
func RandomPattern(r *rand.Rand, cfg Config, center Point, sizeMM float64) (Pattern, bool, error) {
	kinds := Kinds()
	return BuildPattern(cfg, kinds[r.Intn(len(kinds))], center, sizeMM)
}

// CleanPath is the tidy-up routine: one closed square lap around
// center. Kept as its own name because the clean command uses it
// directly.
func CleanPath(center Point, half float64) ([]Point, error) {
	return SquarePath(center, half)
}
