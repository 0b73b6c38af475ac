package material

import "github.com/corewave/pathtracer/pkg/core"

// Metal is a specular reflector, optionally fuzzed by perturbing the
// perfect reflection direction within a sphere of radius Fuzz.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a metal material, clamping fuzz to [0,1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Scatter(rayIn core.Ray, hit HitContext, sampler *core.Sampler) (ScatterRecord, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzz))
	}

	scattered := core.NewRayAtTime(hit.Point, reflected, rayIn.Time)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterRecord{}, false
	}

	return ScatterRecord{
		Attenuation: m.Albedo,
		IsSpecular:  true,
		SpecularRay: scattered,
	}, true
}

// ScatteringPDF is never consulted for a specular material: the estimator
// takes the SpecularRay from Scatter directly instead of importance
// sampling against a PDF.
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit HitContext, scattered core.Ray) float64 {
	return 0
}

func (m *Metal) Emit(rayIn core.Ray, hit HitContext) core.Vec3 { return core.Vec3{} }
func (m *Metal) IsEmissive() bool                              { return false }

// reflect computes the reflection of v off a surface with normal n.
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
