// Package scanner simulates QR detection on camera frames.
//
// The brightness heuristic here is an explicit placeholder, not a
// decoder: it declares a "scan" whenever enough of the frame is dark
// and fabricates a table id. A real QR library can be swapped in by
// implementing Detector.
package scanner

import (
	"image"
	"math/rand"
	"strconv"
)

// Detector turns a camera frame into a table id. ok is false while no
// code is recognized in the frame.
type Detector interface {
	Detect(frame image.Image) (tableID string, ok bool)
}

const (
	// brightnessCutoff splits pixels into dark and bright on the
	// average of their RGB channels (0-255 scale).
	brightnessCutoff = 128
	// darkFraction is the share of dark pixels that counts as a
	// detected code.
	darkFraction = 0.15
)

// BrightnessDetector is the placeholder implementation: it samples
// frame brightness and invents a two-digit table id on a hit.
type BrightnessDetector struct {
	// TableID overrides the random id when non-empty. Used by tests
	// and demo seeding.
	TableID string
}

func (d BrightnessDetector) Detect(frame image.Image) (string, bool) {
	bounds := frame.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return "", false
	}

	dark := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := frame.At(x, y).RGBA()
			// RGBA returns 16-bit channels; scale down to 0-255.
			brightness := (r>>8 + g>>8 + b>>8) / 3
			if brightness < brightnessCutoff {
				dark++
			}
		}
	}

	if float64(dark)/float64(total) < darkFraction {
		return "", false
	}
	if d.TableID != "" {
		return d.TableID, true
	}
	return randomTableID(), true
}

// randomTableID fabricates a two-digit table number (10-99), matching
// the demo QR codes printed on the tables.
func randomTableID() string {
	return strconv.Itoa(rand.Intn(90) + 10)
}
