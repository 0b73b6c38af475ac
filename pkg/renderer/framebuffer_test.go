package renderer

import (
	"image"
	"testing"

	"github.com/corewave/pathtracer/pkg/core"
)

func TestFramebuffer_MergePlacesTileAtItsBounds(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	bounds := image.Rect(1, 1, 3, 3)
	tile := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1),
	}
	fb.Merge(bounds, tile)

	if !fb.At(1, 1).Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("expected top-left of merged tile at (1,1), got %v", fb.At(1, 1))
	}
	if !fb.At(2, 2).Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("expected bottom-right of merged tile at (2,2), got %v", fb.At(2, 2))
	}
	if !fb.At(0, 0).Equals(core.Vec3{}) {
		t.Errorf("expected untouched pixel to remain black, got %v", fb.At(0, 0))
	}
}

func TestEncodeComponent_ClampsAndGammaCorrects(t *testing.T) {
	cases := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{-1, 0},
		{1, 255},
		{2, 255},
		{0.25, 128}, // sqrt(0.25) = 0.5 -> 256*0.5 = 128
	}
	for _, c := range cases {
		if got := encodeComponent(c.in); got != c.want {
			t.Errorf("encodeComponent(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFramebuffer_ToRGBAHasFullyOpaqueAlpha(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(0, 0, core.NewVec3(1, 1, 1))
	img := fb.ToRGBA()

	if img.RGBAAt(0, 0).A != 255 {
		t.Errorf("expected opaque alpha, got %d", img.RGBAAt(0, 0).A)
	}
	if img.RGBAAt(0, 0).R != 255 {
		t.Errorf("expected white pixel to encode to 255, got %d", img.RGBAAt(0, 0).R)
	}
}
