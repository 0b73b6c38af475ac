package material

import (
	"math"

	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/pdf"
	"github.com/corewave/pathtracer/pkg/texture"
)

// Isotropic is the phase function for a homogeneous participating medium:
// it scatters uniformly in all directions, independent of the incoming ray.
type Isotropic struct {
	Albedo texture.Texture
}

// NewIsotropic creates an isotropic phase function with a uniform color.
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolid(albedo)}
}

// NewIsotropicTexture creates an isotropic phase function backed by any
// texture.
func NewIsotropicTexture(albedo texture.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func (iso *Isotropic) Scatter(rayIn core.Ray, hit HitContext, sampler *core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: iso.Albedo.Value(hit.UV, hit.Point),
		PDF:         pdf.UniformSpherePDF{},
	}, true
}

// ScatteringPDF is constant over the sphere of directions: 1/(4*pi).
func (iso *Isotropic) ScatteringPDF(rayIn core.Ray, hit HitContext, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}

func (iso *Isotropic) Emit(rayIn core.Ray, hit HitContext) core.Vec3 { return core.Vec3{} }
func (iso *Isotropic) IsEmissive() bool                              { return false }
