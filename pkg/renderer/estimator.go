// Package renderer drives the parallel tiled render loop: the radiance
// estimator that walks a single ray to a color, the tile scheduler and
// worker pool that fan it out across goroutines, and the framebuffer that
// assembles tile results into a gamma-corrected 8-bit image.
package renderer

import (
	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/geometry"
	"github.com/corewave/pathtracer/pkg/pdf"
	"github.com/corewave/pathtracer/pkg/texture"
)

// Estimator evaluates the radiance arriving along a ray, bounded by a fixed
// maximum bounce depth. It is immutable and safe to share across workers;
// all per-call randomness comes from the sampler passed to Estimate.
type Estimator struct {
	World      geometry.Primitive
	Lights     geometry.Collection
	Background texture.Texture
	MaxDepth   int
}

// NewEstimator builds an estimator over a built scene's BVH and lights.
func NewEstimator(world geometry.Primitive, lights geometry.Collection, background texture.Texture, maxDepth int) *Estimator {
	return &Estimator{World: world, Lights: lights, Background: background, MaxDepth: maxDepth}
}

// Estimate returns the radiance along ray r. The recursive estimator of
// spec §4.7 is unrolled into a loop: each bounce multiplies an accumulated
// path throughput and, for specular bounces, replaces the ray in place;
// only diffuse bounces draw a new direction from the mixture PDF. This
// avoids recursion depth growing with MaxDepth.
func (e *Estimator) Estimate(r core.Ray, sampler *core.Sampler) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)
	ray := r

	for depth := e.MaxDepth; depth > 0; depth-- {
		hit, ok := e.World.Hit(ray, 0.001, maxT)
		if !ok {
			radiance = radiance.Add(throughput.MultiplyVec(e.missColor(ray)))
			return radiance
		}

		emitted := hit.Material.Emit(ray, hit.HitContext)
		radiance = radiance.Add(throughput.MultiplyVec(emitted))

		scatter, scattered := hit.Material.Scatter(ray, hit.HitContext, sampler)
		if !scattered {
			return radiance
		}

		if scatter.IsSpecular {
			throughput = throughput.MultiplyVec(scatter.Attenuation)
			ray = scatter.SpecularRay
			continue
		}

		mixture := e.mixturePDF(scatter.PDF, hit.Point)
		direction := mixture.Generate(sampler)
		nextRay := core.NewRayAtTime(hit.Point, direction, ray.Time).WithSampler(sampler)

		pdfVal := mixture.Value(direction)
		if pdfVal <= 0 {
			return radiance
		}
		scatteringPDF := hit.Material.ScatteringPDF(ray, hit.HitContext, nextRay)
		if scatteringPDF <= 0 {
			return radiance
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation).Multiply(scatteringPDF / pdfVal)
		ray = nextRay
	}

	return radiance
}

// mixturePDF builds the 50/50 mixture of the material's own PDF and a
// light-importance PDF over the scene's lights, or the material PDF with
// itself when there are no lights to importance-sample.
func (e *Estimator) mixturePDF(materialPDF pdf.PDF, origin core.Vec3) pdf.PDF {
	if len(e.Lights) == 0 {
		return pdf.NewMixturePDF(materialPDF, materialPDF)
	}
	lightPDF := pdf.NewHittablePDF(e.Lights, origin)
	return pdf.NewMixturePDF(lightPDF, materialPDF)
}

// missColor evaluates the background for a ray that escaped the scene,
// keyed on the v-coordinate of the spherically-mapped ray direction.
func (e *Estimator) missColor(ray core.Ray) core.Vec3 {
	if e.Background == nil {
		return core.Vec3{}
	}
	uv := core.DirectionToSphereUV(ray.Direction)
	return e.Background.Value(uv, core.Vec3{})
}

// maxT bounds the estimator's intersection search; nothing in a finite
// scene lies beyond it.
const maxT = 1e9
