package material

import (
	"math"

	"github.com/corewave/pathtracer/pkg/core"
)

// Dielectric is a transparent material like glass or water: it reflects or
// refracts an incoming ray, weighted by Schlick's Fresnel approximation.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric material with the given index of
// refraction (e.g. 1.5 for glass, 1.33 for water).
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

func (d *Dielectric) Scatter(rayIn core.Ray, hit HitContext, sampler *core.Sampler) (ScatterRecord, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	} else {
		refractionRatio = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Float64() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refractVector(unitDirection, hit.Normal, refractionRatio)
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)

	return ScatterRecord{
		Attenuation: attenuation,
		IsSpecular:  true,
		SpecularRay: scattered,
	}, true
}

// ScatteringPDF is never consulted: Dielectric always returns a specular
// ScatterRecord.
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit HitContext, scattered core.Ray) float64 {
	return 0
}

func (d *Dielectric) Emit(rayIn core.Ray, hit HitContext) core.Vec3 { return core.Vec3{} }
func (d *Dielectric) IsEmissive() bool                              { return false }

// refractVector computes the refraction of uv through a surface with
// normal n via Snell's law, given the ratio of refractive indices.
func refractVector(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance is the Fresnel reflectance via Schlick's approximation.
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
