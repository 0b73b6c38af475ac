package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/corewave/pathtracer/pkg/core"
)

// Framebuffer is the RGB32F accumulation target a render assembles into: one
// linear-light Vec3 per pixel, written once per pixel by the sequential
// tile reduction and never touched concurrently.
type Framebuffer struct {
	Width, Height int
	pixels        []core.Vec3
}

// NewFramebuffer allocates a black width x height framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, pixels: make([]core.Vec3, width*height)}
}

// Set writes the color at (x,y).
func (f *Framebuffer) Set(x, y int, c core.Vec3) {
	f.pixels[y*f.Width+x] = c
}

// At returns the color at (x,y).
func (f *Framebuffer) At(x, y int) core.Vec3 {
	return f.pixels[y*f.Width+x]
}

// Merge copies a tile's pixels (row-major within bounds) into the
// framebuffer. Tiles partition the image, so repeated calls across a
// render's tiles never overlap; this is the render's single point of
// sequential reduction and must not be called concurrently.
func (f *Framebuffer) Merge(bounds image.Rectangle, tilePixels []core.Vec3) {
	tileWidth := bounds.Dx()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			f.Set(x, y, tilePixels[(y-bounds.Min.Y)*tileWidth+(x-bounds.Min.X)])
		}
	}
}

// ToRGBA encodes the framebuffer as 8-bit sRGB via the gamma-2
// approximation: clamp each component to [0,1], take its square root, scale
// by 256 and truncate, capping at 255.
func (f *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: encodeComponent(c.X),
				G: encodeComponent(c.Y),
				B: encodeComponent(c.Z),
				A: 255,
			})
		}
	}
	return img
}

func encodeComponent(c float64) uint8 {
	clamped := math.Min(1, math.Max(0, c))
	scaled := math.Min(256, 256*math.Sqrt(clamped))
	if scaled > 255 {
		scaled = 255
	}
	return uint8(scaled)
}
