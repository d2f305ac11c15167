// Package boxes validates detection records and converts their normalized
// 0-1000 coordinates into pixel and percentage rectangles.
package boxes

import (
	"fmt"

	"github.com/yingzhe/fishdetect/pkg/types"
)

// Scale is the fixed size of the normalized coordinate space the model
// reports boxes in.
const Scale = 1000

// Valid reports whether a detection record is structurally well-formed:
// box_2d present with exactly 4 coordinates. Value ranges and y2>y1/x2>x1
// ordering are deliberately not checked; out-of-range boxes pass through
// the transformers unclamped.
func Valid(d types.Detection) bool {
	return len(d.Box2D) == 4
}

// ValidateAll is the all-or-nothing gate for one image's detection set.
// The first malformed record rejects the entire set. An empty set is valid.
func ValidateAll(dets []types.Detection) error {
	for i, d := range dets {
		if !Valid(d) {
			return fmt.Errorf("record %d: box_2d must have 4 coordinates, got %d", i, len(d.Box2D))
		}
	}
	return nil
}

// ToPixels scales a normalized [y1,x1,y2,x2] box to absolute pixel
// coordinates for an image of the given dimensions. Fractions truncate
// toward zero.
func ToPixels(box []float64, width, height int) types.PixelRect {
	return types.PixelRect{
		Y1: int(box[0] / Scale * float64(height)),
		X1: int(box[1] / Scale * float64(width)),
		Y2: int(box[2] / Scale * float64(height)),
		X2: int(box[3] / Scale * float64(width)),
	}
}

// ToPercent converts a normalized [y1,x1,y2,x2] box to the percentage
// units (0-100) Label Studio expects. The result is independent of the
// image's pixel dimensions. An inverted box yields a negative width or
// height, passed through uncorrected.
func ToPercent(box []float64) types.PercentRect {
	y1, x1, y2, x2 := box[0], box[1], box[2], box[3]
	return types.PercentRect{
		X:      x1 / Scale * 100,
		Y:      y1 / Scale * 100,
		Width:  (x2 - x1) / Scale * 100,
		Height: (y2 - y1) / Scale * 100,
	}
}
