package render

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/yingzhe/fishdetect/pkg/types"
)

var background = color.NRGBA{R: 10, G: 10, B: 10, A: 255}

func TestAnnotateDrawsRectangle(t *testing.T) {
	img := imaging.New(100, 100, background)
	dets := []types.Detection{{Label: "fish", Box2D: []float64{0, 0, 1000, 1000}}}

	out := Annotate(img, dets)

	// full-image box: the top edge must be stroked lime
	if got := out.NRGBAAt(50, 0); got != lime {
		t.Errorf("top edge pixel = %+v, want lime", got)
	}
	if got := out.NRGBAAt(50, 3); got != lime {
		t.Errorf("stroke must be 4 pixels wide, pixel at y=3 = %+v", got)
	}
	if got := out.NRGBAAt(50, 50); got != background {
		t.Errorf("box interior must stay untouched, got %+v", got)
	}
}

func TestAnnotateLeavesOriginalUntouched(t *testing.T) {
	img := imaging.New(50, 50, background)
	Annotate(img, []types.Detection{{Label: "fish", Box2D: []float64{0, 0, 1000, 1000}}})

	if got := img.NRGBAAt(25, 0); got != background {
		t.Errorf("Annotate must draw on a copy, original pixel = %+v", got)
	}
}

func TestAnnotateOutOfRangeBox(t *testing.T) {
	img := imaging.New(50, 50, background)
	dets := []types.Detection{
		{Label: "fish", Box2D: []float64{-200, -200, 1500, 1500}},
		{Label: "fish", Box2D: []float64{800, 800, 300, 300}}, // inverted
	}

	// out-of-range and inverted boxes are clipped, never a panic
	out := Annotate(img, dets)
	if out == nil {
		t.Fatal("Annotate returned nil")
	}
}

func TestAnnotateEmptyLabel(t *testing.T) {
	img := imaging.New(50, 50, background)
	out := Annotate(img, []types.Detection{{Box2D: []float64{100, 100, 900, 900}}})
	if out == nil {
		t.Fatal("Annotate returned nil")
	}
}
