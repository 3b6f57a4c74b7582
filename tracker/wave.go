package tracker

import (
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/stat"
)

// deathAlive is the sentinel death frame of a wave that is still alive
const deathAlive = -1

// centroidInvalid is the centroid sentinel used while a wave's
// representation is empty
var centroidInvalid = image.Pt(-1, -1)

// Wave is a single tracked wave.  It is created from an accepted contour and
// updated once per frame by the Tracker.  All methods prefixed with Update
// advance the wave's state for the current frame and must run in the order
// defined by Advance, as later steps depend on earlier ones.
type Wave struct {
	// id is the unique wave identifier issued at creation
	id int64
	// birth is the frame number the wave was created on
	birth int
	// death is the frame number the wave disappeared on, or deathAlive
	death int
	// axisAngle is the fixed travel axis angle in degrees
	axisAngle float64
	// originalAxis is the travel axis through the birth centroid.  It is the
	// reference line displacement is measured against and never changes
	originalAxis Line
	// points is the wave's current representation, the foreground pixels
	// inside its capture band
	points []image.Point
	// centroid is the center of mass of points, or centroidInvalid
	centroid image.Point
	// centroidHistory is a bounded FIFO of centroids, newest last
	centroidHistory []image.Point
	// searchQuad is the capture band to look for the representation in
	searchQuad Quad
	// boundingQuad bounds the representation for display purposes.  It goes
	// stale when the representation is empty
	boundingQuad Quad
	// displacement is the current orthogonal distance to originalAxis
	displacement int
	// maxDisplacement is the running maximum displacement
	maxDisplacement int
	// displacementHistory is a bounded FIFO of displacements, newest last
	displacementHistory []int
	// mass is the current representation pixel count
	mass int
	// maxMass is the running maximum mass
	maxMass int
	// recognized latches true once mass and displacement evidence have both
	// crossed their thresholds.  It never reverts
	recognized bool

	cfg Config
}

// NewWave creates a wave from an accepted contour.  The contour's points
// seed the initial representation, so the wave is born with a valid
// centroid, axis, capture band and mass.  The id must come from the
// tracker's IDGenerator
func NewWave(contour []image.Point, frameNumber int, id int64, cfg Config) *Wave {

	w := &Wave{
		id:        id,
		birth:     frameNumber,
		death:     deathAlive,
		axisAngle: cfg.AxisAngleDegrees,
		points:    contour,
		cfg:       cfg,
	}

	w.UpdateCentroid()
	w.originalAxis = axisThrough(w.centroid, w.axisAngle)
	w.UpdateSearchQuad()
	w.UpdateBoundingQuad()
	w.UpdateMass()

	return w
}

// Advance runs the wave's full per-frame update sequence against the given
// binary mask.  The eight steps always all run, even when this frame sets
// the wave's death, as death only affects removal and not the current
// frame's bookkeeping
func (w *Wave) Advance(mask gocv.Mat, frameNumber int, finalFrame bool) {
	w.UpdateSearchQuad()
	w.UpdateRepresentation(mask)
	w.UpdateDeath(frameNumber, finalFrame)
	w.UpdateCentroid()
	w.UpdateBoundingQuad()
	w.UpdateDisplacement()
	w.UpdateMass()
	w.UpdateRecognized()
}

// UpdateSearchQuad recomputes the capture band from the current centroid,
// the fixed travel axis and the frame width
func (w *Wave) UpdateSearchQuad() {
	w.searchQuad = searchQuad(w.centroid, w.axisAngle, w.cfg.FrameWidth,
		w.cfg.SearchRegionBuffer)
}

// UpdateRepresentation replaces the wave's points with the foreground pixels
// of mask that fall inside the capture band.  The result may be empty
func (w *Wave) UpdateRepresentation(mask gocv.Mat) {

	// rasterize the capture band polygon
	region := gocv.Zeros(w.cfg.FrameHeight, w.cfg.FrameWidth, gocv.MatTypeCV8UC1)
	defer region.Close()

	quad := gocv.NewPointsVectorFromPoints([][]image.Point{w.searchQuad[:]})
	defer quad.Close()

	gocv.FillPoly(&region, quad, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	// mask the frame with the capture band
	masked := gocv.NewMat()
	defer masked.Close()

	gocv.BitwiseAnd(mask, region, &masked)

	// collect the non zero pixels.  Only rows the band can touch need to be
	// scanned
	minY := w.searchQuad[0].Y
	if w.searchQuad[1].Y < minY {
		minY = w.searchQuad[1].Y
	}
	maxY := w.searchQuad[3].Y
	if w.searchQuad[2].Y > maxY {
		maxY = w.searchQuad[2].Y
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > w.cfg.FrameHeight-1 {
		maxY = w.cfg.FrameHeight - 1
	}

	w.points = nil

	for y := minY; y <= maxY; y++ {
		for x := 0; x < w.cfg.FrameWidth; x++ {
			if masked.GetUCharAt(y, x) != 0 {
				w.points = append(w.points, image.Pt(x, y))
			}
		}
	}
}

// UpdateDeath sets the wave's death frame if its representation is empty, or
// unconditionally on the stream's final frame so every live wave is flushed
// at stream end.  Death is one shot and irreversible
func (w *Wave) UpdateDeath(frameNumber int, finalFrame bool) {
	if w.death != deathAlive {
		return
	}
	if len(w.points) == 0 || finalFrame {
		w.death = frameNumber
	}
}

// UpdateCentroid recomputes the center of mass of the representation with
// integer truncation, or resets it to the invalid sentinel when the
// representation is empty, and appends the result to the bounded history
func (w *Wave) UpdateCentroid() {

	w.centroid = centroidInvalid

	if len(w.points) > 0 {
		sumX, sumY := 0, 0
		for _, p := range w.points {
			sumX += p.X
			sumY += p.Y
		}
		w.centroid = image.Pt(sumX/len(w.points), sumY/len(w.points))
	}

	w.centroidHistory = append(w.centroidHistory, w.centroid)

	if len(w.centroidHistory) > w.cfg.HistoryLength {
		w.centroidHistory = w.centroidHistory[1:]
	}
}

// UpdateBoundingQuad recomputes the display bounding quadrilateral as the
// minimum area rotated rectangle over the representation after discarding
// points more than three standard deviations from the mean.  The quad is
// left unchanged while the representation is empty
func (w *Wave) UpdateBoundingQuad() {

	if len(w.points) == 0 {
		return
	}

	kept := w.points

	if len(w.points) > 1 {
		xs := make([]float64, len(w.points))
		ys := make([]float64, len(w.points))
		for i, p := range w.points {
			xs[i] = float64(p.X)
			ys[i] = float64(p.Y)
		}

		meanX, stdX := stat.MeanStdDev(xs, nil)
		meanY, stdY := stat.MeanStdDev(ys, nil)

		kept = make([]image.Point, 0, len(w.points))
		for _, p := range w.points {
			if math.Abs(float64(p.X)-meanX) <= 3*stdX &&
				math.Abs(float64(p.Y)-meanY) <= 3*stdY {
				kept = append(kept, p)
			}
		}

		if len(kept) == 0 {
			kept = w.points
		}
	}

	pv := gocv.NewPointVectorFromPoints(kept)
	defer pv.Close()

	rect := gocv.MinAreaRect(pv)
	copy(w.boundingQuad[:], rect.Points)
}

// UpdateDisplacement recomputes the orthogonal distance from the centroid to
// the wave's original axis, folds it into the running maximum and appends it
// to the bounded history.  While the centroid is invalid the previous
// instantaneous value carries forward unchanged
func (w *Wave) UpdateDisplacement() {

	if w.centroid != centroidInvalid {
		w.displacement = int(w.originalAxis.Distance(w.centroid))
	}

	if w.displacement > w.maxDisplacement {
		w.maxDisplacement = w.displacement
	}

	w.displacementHistory = append(w.displacementHistory, w.displacement)

	if len(w.displacementHistory) > w.cfg.HistoryLength {
		w.displacementHistory = w.displacementHistory[1:]
	}
}

// UpdateMass recomputes the representation pixel count and folds it into the
// running maximum
func (w *Wave) UpdateMass() {

	w.mass = len(w.points)

	if w.mass > w.maxMass {
		w.maxMass = w.mass
	}
}

// UpdateRecognized latches the wave as recognized once both running maxima
// have crossed their thresholds.  A recognized wave is never re-evaluated
func (w *Wave) UpdateRecognized() {
	if !w.recognized &&
		w.maxDisplacement >= w.cfg.DisplacementThreshold &&
		w.maxMass >= w.cfg.MassThreshold {
		w.recognized = true
	}
}

// ID returns the unique wave identifier
func (w *Wave) ID() int64 {
	return w.id
}

// Birth returns the frame number the wave was created on
func (w *Wave) Birth() int {
	return w.birth
}

// Death returns the frame number the wave died on, or -1 while it is alive
func (w *Wave) Death() int {
	return w.death
}

// Alive reports whether the wave's death frame is still unset
func (w *Wave) Alive() bool {
	return w.death == deathAlive
}

// Recognized reports whether the wave has crossed both recognition
// thresholds at some point in its life
func (w *Wave) Recognized() bool {
	return w.recognized
}

// Centroid returns the current center of mass, or (-1,-1) while the
// representation is empty
func (w *Wave) Centroid() image.Point {
	return w.centroid
}

// CentroidHistory returns the bounded centroid history, newest last
func (w *Wave) CentroidHistory() []image.Point {
	return w.centroidHistory
}

// SearchQuad returns the current capture band
func (w *Wave) SearchQuad() Quad {
	return w.searchQuad
}

// BoundingQuad returns the display bounding quadrilateral
func (w *Wave) BoundingQuad() Quad {
	return w.boundingQuad
}

// Displacement returns the current orthogonal displacement in pixels
func (w *Wave) Displacement() int {
	return w.displacement
}

// MaxDisplacement returns the running maximum displacement
func (w *Wave) MaxDisplacement() int {
	return w.maxDisplacement
}

// DisplacementHistory returns the bounded displacement history, newest last
func (w *Wave) DisplacementHistory() []int {
	return w.displacementHistory
}

// Mass returns the current representation pixel count
func (w *Wave) Mass() int {
	return w.mass
}

// MaxMass returns the running maximum mass
func (w *Wave) MaxMass() int {
	return w.maxMass
}
