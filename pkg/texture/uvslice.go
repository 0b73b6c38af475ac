package texture

import "github.com/corewave/pathtracer/pkg/core"

// UVSlice flattens a 3D-point-driven texture onto a 2D surface by ignoring
// the point argument and treating (u,v) as (x,y,0) - used to reuse a
// procedural 3D texture (e.g. Perlin marble) as a UV-mapped one.
type UVSlice struct {
	Source Texture
}

// NewUVSlice wraps source so Value is driven by (u,v,0) instead of point.
func NewUVSlice(source Texture) *UVSlice {
	return &UVSlice{Source: source}
}

func (s *UVSlice) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Source.Value(uv, core.NewVec3(uv.X, uv.Y, 0))
}
