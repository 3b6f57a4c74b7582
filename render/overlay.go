/*
Package render draws wave tracking results onto video frames: the bounding
quadrilateral and identity label of each tracked wave, and the trail of its
centroid history.  It is presentation only and has no effect on tracking.
*/
package render

import (
	"fmt"
	"image"
	"image/color"

	clipper "github.com/ctessum/go.clipper"
	"gocv.io/x/gocv"

	"github.com/citrusvanilla/go-wavetrack/tracker"
)

// boxLabel holds the label rendering details of a wave so labels can be
// drawn as the top most layer
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// WaveBoxes draws the bounding quadrilateral and id label of each wave.
// Quadrilaterals from the minimum area rectangle fit can poke outside the
// frame, so they are clipped to the frame bounds before drawing
func WaveBoxes(img *gocv.Mat, waves []*tracker.Wave, font Font, lineThickness int) {

	boxLabels := make([]boxLabel, 0)

	for _, w := range waves {

		useClr := waveColor(w.ID())

		poly := clipToFrame(w.BoundingQuad(), img.Cols(), img.Rows())

		for i := range poly {
			gocv.Line(img, poly[i], poly[(i+1)%len(poly)], useClr, lineThickness)
		}

		// anchor the label at the top most vertex
		anchor := poly[0]
		for _, p := range poly[1:] {
			if p.Y < anchor.Y {
				anchor = p
			}
		}

		text := fmt.Sprintf("wave %d", w.ID())
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		labelPosition := image.Pt(anchor.X+font.LeftPad, anchor.Y-font.BottomPad)

		bRect := image.Rect(anchor.X,
			anchor.Y-textSize.Y-font.TopPad-font.BottomPad,
			anchor.X+textSize.X+font.LeftPad+font.RightPad, anchor.Y)

		boxLabels = append(boxLabels, boxLabel{
			rect:    bRect,
			clr:     useClr,
			text:    text,
			textPos: labelPosition,
		})
	}

	// draw all labels last so they sit on top of the quadrilateral lines
	for _, box := range boxLabels {
		gocv.Rectangle(img, box.rect, box.clr, -1)

		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}

// TrailStyle defines the parameters used for rendering wave trails
type TrailStyle struct {
	// LineSame defines if the color of the trail line should be the same
	// color as that of the wave.  If set to false the color at LineColor
	// is used
	LineSame      bool
	LineColor     color.RGBA
	LineThickness int
	// CircleSame defines if the color of the current centroid circle should
	// be the same color as that of the wave.  If set to false the color at
	// CircleColor is used
	CircleSame   bool
	CircleColor  color.RGBA
	CircleRadius int
}

// DefaultTrailStyle returns default trail style settings
func DefaultTrailStyle() TrailStyle {
	return TrailStyle{
		LineSame:      true,
		LineColor:     Yellow,
		LineThickness: 1,
		CircleSame:    false,
		CircleColor:   Pink,
		CircleRadius:  2,
	}
}

// Trails draws each wave's centroid history as a trail line ending in a
// circle at the current centroid.  History entries recorded while the
// wave's representation was empty are skipped
func Trails(img *gocv.Mat, waves []*tracker.Wave, style TrailStyle) {

	for _, w := range waves {

		objClr := waveColor(w.ID())

		lineClr := objClr
		circleClr := objClr

		if !style.LineSame {
			lineClr = style.LineColor
		}

		if !style.CircleSame {
			circleClr = style.CircleColor
		}

		var prev *image.Point

		for _, c := range w.CentroidHistory() {
			if c.X < 0 || c.Y < 0 {
				continue
			}
			c := c
			if prev != nil {
				gocv.Line(img, *prev, c, lineClr, style.LineThickness)
			}
			prev = &c
		}

		if prev != nil {
			gocv.Circle(img, *prev, style.CircleRadius, circleClr, -1)
		}
	}
}

// clipToFrame intersects a quadrilateral with the frame rectangle and
// returns the resulting polygon.  The input quadrilateral is returned
// unchanged if the intersection is empty or fails
func clipToFrame(quad tracker.Quad, width, height int) []image.Point {

	subject := make(clipper.Path, 0, len(quad))
	for _, p := range quad {
		subject = append(subject, &clipper.IntPoint{
			X: clipper.CInt(p.X), Y: clipper.CInt(p.Y)})
	}

	frame := clipper.Path{
		&clipper.IntPoint{X: 0, Y: 0},
		&clipper.IntPoint{X: clipper.CInt(width - 1), Y: 0},
		&clipper.IntPoint{X: clipper.CInt(width - 1), Y: clipper.CInt(height - 1)},
		&clipper.IntPoint{X: 0, Y: clipper.CInt(height - 1)},
	}

	c := clipper.NewClipper(clipper.IoNone)
	c.AddPath(subject, clipper.PtSubject, true)
	c.AddPath(frame, clipper.PtClip, true)

	solution, ok := c.Execute1(clipper.CtIntersection, clipper.PftNonZero,
		clipper.PftNonZero)

	if !ok || len(solution) == 0 || len(solution[0]) == 0 {
		return quad[:]
	}

	poly := make([]image.Point, 0, len(solution[0]))
	for _, p := range solution[0] {
		poly = append(poly, image.Pt(int(p.X), int(p.Y)))
	}

	return poly
}
