package texture

import "github.com/corewave/pathtracer/pkg/core"

// Image is a texture backed by a decoded pixel buffer. Sampling clamps UV
// to [0,1] (no wraparound) and inverts V, since image row 0 is the top of
// the image but v=0 is conventionally the bottom of a texture.
type Image struct {
	Width, Height int
	Pixels        []core.Vec3 // row-major, Pixels[y*Width+x]
}

// NewImage wraps a decoded pixel buffer as a Texture.
func NewImage(width, height int, pixels []core.Vec3) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

func (img *Image) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	u := clamp01(uv.X)
	v := 1.0 - clamp01(uv.Y)

	x := int(u * float64(img.Width))
	y := int(v * float64(img.Height))

	if x >= img.Width {
		x = img.Width - 1
	}
	if y >= img.Height {
		y = img.Height - 1
	}

	return img.Pixels[y*img.Width+x]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
