// Package loaders reads scene assets from disk: Wavefront OBJ/MTL meshes
// and materials (obj.go, mtl.go), and PNG/JPEG/BMP/TIFF image textures
// (image.go). Parse failures are reported as *ParseError so a caller can
// show which file and line misbehaved.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG with image.Decode
	_ "image/png"  // register PNG with image.Decode
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/texture"
)

func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
	image.RegisterFormat("tiff", "II*\x00", tiff.Decode, tiff.DecodeConfig)
	image.RegisterFormat("tiff", "MM\x00*", tiff.Decode, tiff.DecodeConfig)
}

// OpenImage decodes a PNG, JPEG, BMP, or TIFF file (format auto-detected
// from its header; the stdlib decoders are tried first, falling back to
// golang.org/x/image's BMP/TIFF decoders) into an RGB32F pixel buffer and
// wraps it as a texture.Texture.
func OpenImage(filename string) (*texture.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loaders: opening image %q: %w", filename, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("loaders: decoding image %q: %w", filename, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return texture.NewImage(width, height, pixels), nil
}
