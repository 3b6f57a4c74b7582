/*
wavetrack analyzes surf footage and reports the waves it recognized.

Each frame of the input video is preprocessed into a binary foreground
mask, candidate waves are detected in the mask, and the tracking engine
follows them across frames until they disappear.  Waves whose accumulated
mass and displacement crossed the recognition thresholds are reported at
the end of the run.  An annotated video of the analysis masks with wave
overlays can optionally be written out.
*/
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
	"golang.org/x/image/font"

	"github.com/citrusvanilla/go-wavetrack/preprocess"
	"github.com/citrusvanilla/go-wavetrack/render"
	"github.com/citrusvanilla/go-wavetrack/tracker"
)

// bannerFontSize is the point size of the optional TTF overlay banner
const bannerFontSize = 12

func main() {

	inFile := flag.String("i", "tstreet.mp4", "input video file to analyze")
	outFile := flag.String("o", "", "optional output video file with tracking overlay")
	ttfFont := flag.String("f", "", "optional TTF font file for the overlay banner")
	dispThresh := flag.Int("d", 0, "displacement recognition threshold in pixels (0 uses the default)")
	massThresh := flag.Int("m", 0, "mass recognition threshold in pixels (0 uses the default)")

	flag.Parse()

	cfg := tracker.DefaultConfig()

	if *dispThresh > 0 {
		cfg.DisplacementThreshold = *dispThresh
	}
	if *massThresh > 0 {
		cfg.MassThreshold = *massThresh
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).
		With("session", uuid.NewString())

	if err := run(logger, cfg, *inFile, *outFile, *ttfFont); err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}

// run performs the full analysis of one video file
func run(logger *slog.Logger, cfg tracker.Config, inFile, outFile,
	ttfFont string) error {

	video, err := gocv.VideoCaptureFile(inFile)

	if err != nil {
		return errors.Wrapf(err, "opening input video %s", inFile)
	}

	defer video.Close()

	totalFrames := int(video.Get(gocv.VideoCaptureFrameCount))
	fps := video.Get(gocv.VideoCaptureFPS)

	// optional annotated output video at the analysis resolution
	var writer *gocv.VideoWriter

	if outFile != "" {
		writer, err = gocv.VideoWriterFile(outFile, "mp4v", fps,
			cfg.FrameWidth, cfg.FrameHeight, true)

		if err != nil {
			return errors.Wrapf(err, "opening output video %s", outFile)
		}

		defer writer.Close()
	}

	// optional TTF face for the overlay banner
	var face font.Face

	if ttfFont != "" {
		face, err = render.LoadFace(ttfFont, bannerFontSize)

		if err != nil {
			return errors.Wrap(err, "loading banner font")
		}
	}

	pre := preprocess.New(cfg.FrameWidth, cfg.FrameHeight)
	defer pre.Close()

	filter := tracker.NewShapeFilter(cfg, tracker.NewIDGenerator())
	trk := tracker.NewTracker(cfg)

	frame := gocv.NewMat()
	defer frame.Close()

	mask := gocv.NewMat()
	defer mask.Close()

	vis := gocv.NewMat()
	defer vis.Close()

	logger.Info("starting analysis", "file", inFile,
		"frames", totalFrames, "fps", fps)

	start := time.Now()
	frameNumber := 1

	for {
		if ok := video.Read(&frame); !ok {
			break
		}

		if frame.Empty() {
			continue
		}

		pre.Apply(frame, &mask)

		sections := filter.DetectSections(mask, frameNumber)

		trk.ProcessFrame(mask, sections, frameNumber, totalFrames)

		if writer != nil {
			if err := writeOverlay(writer, mask, &vis, trk, face,
				frameNumber); err != nil {
				return err
			}
		}

		if frameNumber%100 == 0 {
			elapsed := time.Since(start)
			logger.Info("progress", "frames", frameNumber,
				"fps", float64(frameNumber)/elapsed.Seconds(),
				"tracking", len(trk.Tracked()))
		}

		frameNumber++
	}

	elapsed := time.Since(start)
	processed := frameNumber - 1
	recognized := trk.Recognized()

	logger.Info("analysis complete",
		"frames", processed,
		"elapsed", elapsed,
		"fps", float64(processed)/elapsed.Seconds(),
		"waves", len(recognized))

	for _, w := range recognized {
		logger.Info("recognized wave",
			"id", w.ID(),
			"birth", w.Birth(),
			"death", w.Death(),
			"max_mass", w.MaxMass(),
			"max_displacement", w.MaxDisplacement())
	}

	return nil
}

// writeOverlay renders the tracking state onto the analysis mask and writes
// the result to the output video
func writeOverlay(writer *gocv.VideoWriter, mask gocv.Mat, vis *gocv.Mat,
	trk *tracker.Tracker, face font.Face, frameNumber int) error {

	gocv.CvtColor(mask, vis, gocv.ColorGrayToBGR)

	render.WaveBoxes(vis, trk.Tracked(), render.DefaultFont(), 1)
	render.Trails(vis, trk.Tracked(), render.DefaultTrailStyle())

	if face != nil {
		banner := fmt.Sprintf("frame %d  tracking %d", frameNumber,
			len(trk.Tracked()))

		if err := render.TTFText(vis, face, banner, 8, 16, render.White); err != nil {
			return errors.Wrap(err, "drawing banner")
		}
	}

	if err := writer.Write(*vis); err != nil {
		return errors.Wrap(err, "writing output frame")
	}

	return nil
}
