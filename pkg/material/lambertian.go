package material

import (
	"math"

	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/pdf"
	"github.com/corewave/pathtracer/pkg/texture"
)

// Lambertian is a perfectly diffuse surface: rather than sampling its own
// scatter direction, it hands the caller a CosinePDF so the estimator can
// mix it with light-importance sampling.
type Lambertian struct {
	Albedo texture.Texture
}

// NewLambertian creates a Lambertian material with a uniform color.
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolid(albedo)}
}

// NewLambertianTexture creates a Lambertian material backed by any texture.
func NewLambertianTexture(albedo texture.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func (l *Lambertian) Scatter(rayIn core.Ray, hit HitContext, sampler *core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: l.Albedo.Value(hit.UV, hit.Point),
		PDF:         pdf.NewCosinePDF(hit.Normal),
	}, true
}

// ScatteringPDF returns cos(theta)/pi for the angle between the surface
// normal and the scattered direction, clamped to zero below the horizon.
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit HitContext, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

func (l *Lambertian) Emit(rayIn core.Ray, hit HitContext) core.Vec3 { return core.Vec3{} }
func (l *Lambertian) IsEmissive() bool                              { return false }
