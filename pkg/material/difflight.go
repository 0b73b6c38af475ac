package material

import (
	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/texture"
)

// DiffuseLight is an area-light material: it absorbs every incoming ray and
// emits Emission, but only out of its front face, so a light's back side
// stays dark the way a physical fixture's housing does.
type DiffuseLight struct {
	Emission texture.Texture
}

// NewDiffuseLight creates a diffuse light material with a uniform color.
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: texture.NewSolid(emission)}
}

// NewDiffuseLightTexture creates a diffuse light material backed by any
// texture, e.g. an Image for a projected pattern.
func NewDiffuseLightTexture(emission texture.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitContext, sampler *core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit HitContext, scattered core.Ray) float64 {
	return 0
}

func (d *DiffuseLight) Emit(rayIn core.Ray, hit HitContext) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emission.Value(hit.UV, hit.Point)
}

func (d *DiffuseLight) IsEmissive() bool { return true }
