package ballet

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

var (
	traceBG   = color.RGBA{R: 0x0a, G: 0x0a, B: 0x1a, A: 0xff}
	tracePath = color.RGBA{R: 0x44, G: 0x88, B: 0xff, A: 0xff}
	traceDot  = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	traceHome = color.RGBA{R: 0x44, G: 0xff, B: 0x44, A: 0xff}
)

// RenderTrace draws a waypoint sequence as a preview image: path
// segments between consecutive waypoints, a dot per waypoint, the
// first waypoint highlighted. Useful for eyeballing a pattern before
// letting the robot loose on it.
func RenderTrace(pts []Point, width, height int) (*image.RGBA, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("%w: empty waypoint sequence", ErrInvalidParameter)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, traceBG)
		}
	}

	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	spanX, spanY := maxX-minX, maxY-minY
	span := math.Max(math.Max(spanX, spanY), 1)
	scale := math.Min(float64(width), float64(height)) * 0.9 / span

	// Map mm to pixels, y flipped so map-north is up.
	toCanvas := func(p Point) (float64, float64) {
		cx := float64(width)/2 + (p.X-(minX+spanX/2))*scale
		cy := float64(height)/2 - (p.Y-(minY+spanY/2))*scale
		return cx, cy
	}

	for i := 1; i < len(pts); i++ {
		x0, y0 := toCanvas(pts[i-1])
		x1, y1 := toCanvas(pts[i])
		drawSegment(img, x0, y0, x1, y1, tracePath)
	}
	for i := len(pts) - 1; i >= 0; i-- {
		x, y := toCanvas(pts[i])
		c := traceDot
		if i == 0 {
			c = traceHome
		}
		fillDot(img, x, y, 4, c)
	}
	return img, nil
}

func drawSegment(img *image.RGBA, x0, y0, x1, y1 float64, col color.RGBA) {
	steps := int(math.Ceil(math.Hypot(x1-x0, y1-y0)))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		fillDot(img, x0+(x1-x0)*t, y0+(y1-y0)*t, 1, col)
	}
}

func fillDot(img *image.RGBA, cx, cy, radius float64, col color.RGBA) {
	bounds := img.Bounds()
	r2 := radius * radius
	for y := int(math.Floor(cy - radius)); y <= int(math.Ceil(cy+radius)); y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		dy := float64(y) + 0.5 - cy
		for x := int(math.Floor(cx - radius)); x <= int(math.Ceil(cx+radius)); x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, col)
			}
		}
	}
}
