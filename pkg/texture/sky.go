package texture

import (
	"math"

	"github.com/corewave/pathtracer/pkg/core"
)

// Sky is a vertical gradient between a horizon and zenith color, sampled by
// the v-component of a ray direction mapped to [0,1] UV space. Used as the
// background for rays that escape the scene.
type Sky struct {
	Horizon, Zenith core.Vec3
}

// NewSky builds a sky gradient from horizon (v=0) to zenith (v=1) color.
func NewSky(horizon, zenith core.Vec3) *Sky {
	return &Sky{Horizon: horizon, Zenith: zenith}
}

func (s *Sky) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	a := 0.5 * (1 - math.Cos(uv.Y*math.Pi))
	return s.Horizon.Multiply(1 - a).Add(s.Zenith.Multiply(a))
}
