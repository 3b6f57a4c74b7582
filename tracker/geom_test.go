package tracker

import (
	"image"
	"math"
	"testing"
)

// almostEqual checks if two float64 values are approximately equal
func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestAxisThroughDistance(t *testing.T) {

	const tolerance = 1e-6

	tests := []struct {
		name     string
		origin   image.Point
		angleDeg float64
		point    image.Point
		want     float64
	}{
		{
			name:     "origin on axis",
			origin:   image.Pt(100, 100),
			angleDeg: 5.0,
			point:    image.Pt(100, 100),
			want:     0,
		},
		{
			name:     "vertical offset flat axis",
			origin:   image.Pt(100, 100),
			angleDeg: 0,
			point:    image.Pt(250, 110),
			want:     10,
		},
		{
			name:     "vertical offset tilted axis",
			origin:   image.Pt(100, 100),
			angleDeg: 5.0,
			point:    image.Pt(100, 110),
			want:     10 * math.Cos(5.0*math.Pi/180.0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			axis := axisThrough(tc.origin, tc.angleDeg)
			got := axis.Distance(tc.point)

			if !almostEqual(got, tc.want, tolerance) {
				t.Errorf("distance = %f, want %f", got, tc.want)
			}
		})
	}
}

func TestSearchQuadVertexOrder(t *testing.T) {

	// flat axis so the band is a plain horizontal strip
	q := searchQuad(image.Pt(160, 90), 0, 320, 15)

	want := Quad{
		image.Pt(0, 75),
		image.Pt(320, 75),
		image.Pt(320, 105),
		image.Pt(0, 105),
	}

	if q != want {
		t.Errorf("quad = %v, want %v", q, want)
	}
}

func TestSearchQuadTiltedAxis(t *testing.T) {

	c := image.Pt(160, 90)
	angle := 5.0
	q := searchQuad(c, angle, 320, 15)

	tan := math.Tan(angle * math.Pi / 180.0)
	deltaLeft := int(float64(c.X) * tan)
	deltaRight := int(float64(320-c.X) * tan)

	// left edge vertices sit below the centroid, right edge vertices above,
	// both offset by the buffer
	if q[0].Y != c.Y+deltaLeft-15 || q[3].Y != c.Y+deltaLeft+15 {
		t.Errorf("left span = [%d, %d], want [%d, %d]",
			q[0].Y, q[3].Y, c.Y+deltaLeft-15, c.Y+deltaLeft+15)
	}

	if q[1].Y != c.Y-deltaRight-15 || q[2].Y != c.Y-deltaRight+15 {
		t.Errorf("right span = [%d, %d], want [%d, %d]",
			q[1].Y, q[2].Y, c.Y-deltaRight-15, c.Y-deltaRight+15)
	}

	if q[0].X != 0 || q[3].X != 0 || q[1].X != 320 || q[2].X != 320 {
		t.Errorf("quad x coordinates wrong: %v", q)
	}
}

func TestLeadingEdgeY(t *testing.T) {

	if got := leadingEdgeY(image.Pt(200, 90), 0); got != 90 {
		t.Errorf("flat axis leading edge = %d, want 90", got)
	}

	want := 90 + int(200*math.Tan(5.0*math.Pi/180.0))
	if got := leadingEdgeY(image.Pt(200, 90), 5.0); got != want {
		t.Errorf("tilted axis leading edge = %d, want %d", got, want)
	}
}

func TestInCaptureBand(t *testing.T) {

	q := searchQuad(image.Pt(160, 90), 0, 320, 15)

	tests := []struct {
		y    int
		want bool
	}{
		{74, false},
		{75, true}, // inclusive top
		{90, true},
		{105, true}, // inclusive bottom
		{106, false},
	}

	for _, tc := range tests {
		if got := inCaptureBand(tc.y, q); got != tc.want {
			t.Errorf("inCaptureBand(%d) = %v, want %v", tc.y, got, tc.want)
		}
	}
}
