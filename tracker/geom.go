package tracker

import (
	"image"
	"math"
)

// Line is a line in standard form A*x + B*y = C
type Line struct {
	A, B, C float64
}

// axisThrough returns the line passing through p at the given angle in
// degrees.  Angles are measured in image coordinates where y grows downward,
// so the slope is negated
func axisThrough(p image.Point, angleDeg float64) Line {
	a := math.Tan(-angleDeg * math.Pi / 180.0)
	b := -1.0
	return Line{
		A: a,
		B: b,
		C: a*float64(p.X) + b*float64(p.Y),
	}
}

// Distance returns the perpendicular distance from p to the line
func (l Line) Distance(p image.Point) float64 {
	return math.Abs(l.A*float64(p.X)+l.B*float64(p.Y)-l.C) /
		math.Sqrt(l.A*l.A+l.B*l.B)
}

// Quad is an ordered quadrilateral.  Vertex order is upper left, upper
// right, lower right, lower left.  Polygon filling and the capture band
// span query both rely on this ordering
type Quad [4]image.Point

// searchQuad returns the capture band quadrilateral for a wave whose current
// centroid is c.  The band spans the full frame width, follows the fixed
// travel axis, and extends buffer pixels above and below it
func searchQuad(c image.Point, angleDeg float64, frameWidth, buffer int) Quad {

	tan := math.Tan(angleDeg * math.Pi / 180.0)

	// vertical offsets of the axis at the left and right frame edges
	deltaLeft := int(float64(c.X) * tan)
	deltaRight := int(float64(frameWidth-c.X) * tan)

	return Quad{
		image.Pt(0, c.Y+deltaLeft-buffer),
		image.Pt(frameWidth, c.Y-deltaRight-buffer),
		image.Pt(frameWidth, c.Y-deltaRight+buffer),
		image.Pt(0, c.Y+deltaLeft+buffer),
	}
}

// leadingEdgeY projects the centroid c forward along the fixed travel axis
// to the left edge of the frame and returns the y coordinate of the
// projection
func leadingEdgeY(c image.Point, angleDeg float64) int {
	tan := math.Tan(angleDeg * math.Pi / 180.0)
	return c.Y + int(float64(c.X)*tan)
}

// inCaptureBand reports whether the y coordinate of a forward projection
// falls inside the quadrilateral's vertical span at the left frame edge.
// Two waves whose projections land in each other's bands are treated as
// sections of the same physical wave
func inCaptureBand(y int, q Quad) bool {
	return y >= q[0].Y && y <= q[3].Y
}
