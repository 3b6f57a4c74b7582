/*
Package preprocess turns raw video frames into the binary foreground masks
consumed by the wave tracker.  Frames are downscaled to the analysis
resolution, foreground is separated from the scene background with a
mixture of gaussians model, and the mask is denoised with a morphological
open.
*/
package preprocess

import (
	"image"

	"gocv.io/x/gocv"
)

const (
	// background model history length in frames
	bgHistory = 300
	// squared mahalanobis distance threshold for marking a pixel foreground
	bgVarThreshold = 16
	// side of the square structuring element used for denoising
	kernelSize = 5
)

// Preprocessor owns the background model and scratch Mats used to produce
// analysis masks.  It is not safe for concurrent use and must be Closed
// when finished with.
type Preprocessor struct {
	// width and height are the analysis frame dimensions masks are
	// produced at
	width  int
	height int
	// bg is the mixture of gaussians scene background model
	bg gocv.BackgroundSubtractorMOG2
	// kernel is the structuring element for the morphological open
	kernel gocv.Mat
	// resized is a scratch Mat reused between frames
	resized gocv.Mat
}

// New returns a preprocessor producing masks at the given analysis
// resolution.  Shadow detection is disabled so the mask stays strictly
// binary
func New(width, height int) *Preprocessor {
	return &Preprocessor{
		width:   width,
		height:  height,
		bg:      gocv.NewBackgroundSubtractorMOG2WithParams(bgHistory, bgVarThreshold, false),
		kernel:  gocv.GetStructuringElement(gocv.MorphRect, image.Pt(kernelSize, kernelSize)),
		resized: gocv.NewMat(),
	}
}

// Apply produces the binary foreground mask for one frame.  The frame is
// downscaled to the analysis resolution, run through the background model
// and denoised.  Repeated calls must receive frames in stream order as the
// background model is stateful
func (p *Preprocessor) Apply(frame gocv.Mat, mask *gocv.Mat) {

	gocv.Resize(frame, &p.resized, image.Pt(p.width, p.height), 0, 0,
		gocv.InterpolationLinear)

	p.bg.Apply(p.resized, mask)

	gocv.MorphologyEx(*mask, mask, gocv.MorphOpen, p.kernel)
}

// Close frees the background model and scratch Mats
func (p *Preprocessor) Close() error {

	if err := p.bg.Close(); err != nil {
		return err
	}

	if err := p.kernel.Close(); err != nil {
		return err
	}

	return p.resized.Close()
}
