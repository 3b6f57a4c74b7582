package tracker

import (
	"image"

	"gocv.io/x/gocv"
)

// testConfig returns tracking constants sized for fast synthetic scenarios.
// The flat axis keeps expected coordinates easy to reason about
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.AxisAngleDegrees = 0
	cfg.HistoryLength = 5
	cfg.DisplacementThreshold = 10
	cfg.MassThreshold = 300
	return cfg
}

// rectContour traces the dense boundary of the axis aligned rectangle with
// top left corner (x0, y0) and the given pixel width and height, in the
// same form a chain approximation free contour trace produces
func rectContour(x0, y0, w, h int) []image.Point {

	x1 := x0 + w - 1
	y1 := y0 + h - 1

	var pts []image.Point

	for x := x0; x <= x1; x++ {
		pts = append(pts, image.Pt(x, y0))
	}
	for y := y0 + 1; y <= y1; y++ {
		pts = append(pts, image.Pt(x1, y))
	}
	for x := x1 - 1; x >= x0; x-- {
		pts = append(pts, image.Pt(x, y1))
	}
	for y := y1 - 1; y > y0; y-- {
		pts = append(pts, image.Pt(x0, y))
	}

	return pts
}

// makeMask builds a binary mask of the configured frame size with the given
// rectangles filled as foreground.  The caller owns the returned Mat
func makeMask(cfg Config, blobs ...image.Rectangle) gocv.Mat {

	mask := gocv.Zeros(cfg.FrameHeight, cfg.FrameWidth, gocv.MatTypeCV8UC1)

	for _, b := range blobs {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				mask.SetUCharAt(y, x, 255)
			}
		}
	}

	return mask
}
