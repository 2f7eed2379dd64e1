package ballet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Transform reconciles the robot's map frame with the operator's
// mental frame: rotate every point about the dance center, then
// optionally negate the x or y offset.
//
// The order is fixed — rotate first, then flip. The two do not commute
// for arbitrary angles, so swapping them would silently change paths.
type Transform struct {
	// RotateDeg is the rotation angle in degrees, clockwise positive.
	RotateDeg float64
	FlipX     bool
	FlipY     bool
}

// IsIdentity reports whether applying t would leave every point
// unchanged.
func (t Transform) IsIdentity() bool {
	return t.RotateDeg == 0 && !t.FlipX && !t.FlipY
}

// matrix builds the combined flip·rotate matrix. Clockwise rotation in
// a y-up frame, flips as axis negations.
func (t Transform) matrix() *mat.Dense {
	rad := t.RotateDeg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	r := mat.NewDense(2, 2, []float64{c, s, -s, c})
	fx, fy := 1.0, 1.0
	if t.FlipX {
		fx = -1
	}
	if t.FlipY {
		fy = -1
	}
	f := mat.NewDense(2, 2, []float64{fx, 0, 0, fy})
	var m mat.Dense
	m.Mul(f, r)
	return &m
}

// Apply maps pts from the generator frame into the device frame,
// returning a new sequence. Pure; the input is never mutated.
func (t Transform) Apply(center Point, pts []Point) ([]Point, error) {
	if math.IsNaN(t.RotateDeg) || math.IsInf(t.RotateDeg, 0) {
		return nil, fmt.Errorf("%w: non-finite rotation", ErrInvalidParameter)
	}
	if t.IsIdentity() {
		out := make([]Point, len(pts))
		copy(out, pts)
		return out, nil
	}
	return applyMatrix(t.matrix(), center, pts)
}

// ApplyInverse undoes Apply: points mapped through t and back through
// ApplyInverse recover the originals within floating-point tolerance.
// The combined matrix has determinant ±1, so inversion cannot fail for
// finite input.
func (t Transform) ApplyInverse(center Point, pts []Point) ([]Point, error) {
	if math.IsNaN(t.RotateDeg) || math.IsInf(t.RotateDeg, 0) {
		return nil, fmt.Errorf("%w: non-finite rotation", ErrInvalidParameter)
	}
	if t.IsIdentity() {
		out := make([]Point, len(pts))
		copy(out, pts)
		return out, nil
	}
	var inv mat.Dense
	if err := inv.Inverse(t.matrix()); err != nil {
		return nil, fmt.Errorf("%w: singular transform", ErrInvalidParameter)
	}
	return applyMatrix(&inv, center, pts)
}

func applyMatrix(m *mat.Dense, center Point, pts []Point) ([]Point, error) {
	out := make([]Point, len(pts))
	var w mat.VecDense
	for i, p := range pts {
		if !p.Finite() {
			return nil, fmt.Errorf("%w: non-finite point at index %d", ErrInvalidParameter, i)
		}
		v := mat.NewVecDense(2, []float64{p.X - center.X, p.Y - center.Y})
		w.MulVec(m, v)
		out[i] = Point{X: center.X + w.AtVec(0), Y: center.Y + w.AtVec(1)}
	}
	return out, nil
}
