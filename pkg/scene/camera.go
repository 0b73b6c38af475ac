package scene

import (
	"math"

	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/texture"
)

// Camera describes the viewpoint a Scene is rendered from: position,
// orientation, field of view, and the lens parameters that produce
// depth-of-field blur.
type Camera struct {
	LookFrom, LookAt, Up core.Vec3
	VFov                 float64 // vertical field of view, degrees
	AspectRatio          float64
	ImageWidth           int
	DefocusAngle         float64 // degrees; 0 disables depth of field
	FocusDist            float64
	Background           texture.Texture
}

// NewCamera builds a Camera looking from lookFrom to lookAt, with Up and a
// default sky background the caller can override afterward.
func NewCamera(lookFrom, lookAt core.Vec3, vfov, aspectRatio float64, imageWidth int) Camera {
	return Camera{
		LookFrom:    lookFrom,
		LookAt:      lookAt,
		Up:          core.NewVec3(0, 1, 0),
		VFov:        vfov,
		AspectRatio: aspectRatio,
		ImageWidth:  imageWidth,
		FocusDist:   lookFrom.Subtract(lookAt).Length(),
		Background:  texture.NewSky(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0)),
	}
}

// ImageHeight derives the image height from ImageWidth and AspectRatio,
// floored to at least 1 pixel.
func (c Camera) ImageHeight() int {
	h := int(float64(c.ImageWidth) / c.AspectRatio)
	if h < 1 {
		h = 1
	}
	return h
}

// Renderer is the fixed, read-only per-pixel geometry derived once from a
// Camera and a pass's sampling parameters. Every tile worker shares one
// Renderer value for the duration of a render.
type Renderer struct {
	ImageWidth, ImageHeight int
	SamplesPerPixel         int
	MaxDepth                int
	Background              texture.Texture

	center                     core.Vec3
	pixel00                    core.Vec3
	pixelDeltaU, pixelDeltaV   core.Vec3
	defocusAngle               float64
	defocusDiskU, defocusDiskV core.Vec3
	sqrtSpp                    int
	recipSqrtSpp               float64
}

// NewRenderer derives pixel geometry, defocus disk basis, and the
// stratified-sampling grid resolution from a Camera and requested sampling
// budget. samplesPerPixel is rounded down to the nearest perfect square, per
// the sqrt(spp) x sqrt(spp) stratification grid.
func NewRenderer(cam Camera, samplesPerPixel, maxDepth int) *Renderer {
	imageHeight := cam.ImageHeight()

	theta := cam.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cam.FocusDist
	viewportWidth := viewportHeight * (float64(cam.ImageWidth) / float64(imageHeight))

	w := cam.LookFrom.Subtract(cam.LookAt).Normalize()
	u := cam.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(cam.ImageWidth))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(imageHeight))

	viewportUpperLeft := cam.LookFrom.
		Subtract(w.Multiply(cam.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := cam.FocusDist * math.Tan(cam.DefocusAngle/2*math.Pi/180)

	sqrtSpp := int(math.Sqrt(float64(samplesPerPixel)))
	if sqrtSpp < 1 {
		sqrtSpp = 1
	}

	background := cam.Background
	if background == nil {
		background = texture.NewSky(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0))
	}

	return &Renderer{
		ImageWidth:      cam.ImageWidth,
		ImageHeight:     imageHeight,
		SamplesPerPixel: sqrtSpp * sqrtSpp,
		MaxDepth:        maxDepth,
		Background:      background,
		center:          cam.LookFrom,
		pixel00:         pixel00,
		pixelDeltaU:     pixelDeltaU,
		pixelDeltaV:     pixelDeltaV,
		defocusAngle:    cam.DefocusAngle,
		defocusDiskU:    u.Multiply(defocusRadius),
		defocusDiskV:    v.Multiply(defocusRadius),
		sqrtSpp:         sqrtSpp,
		recipSqrtSpp:    1.0 / float64(sqrtSpp),
	}
}

// SqrtSpp returns the stratified grid resolution (SamplesPerPixel = SqrtSpp^2).
func (r *Renderer) SqrtSpp() int { return r.sqrtSpp }

// Ray builds the primary ray for pixel (i, j), stratum (si, sj) of the
// sqrtSpp x sqrtSpp grid within that pixel. The ray carries sampler so a
// stochastic primitive hit downstream (ConstantMedium) has a randomness
// source.
func (r *Renderer) Ray(i, j, si, sj int, sampler *core.Sampler) core.Ray {
	offset := r.sampleStratum(si, sj, sampler)
	pixelSample := r.pixel00.
		Add(r.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(r.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := r.center
	if r.defocusAngle > 0 {
		origin = r.defocusDiskSample(sampler)
	}
	direction := pixelSample.Subtract(origin)
	time := sampler.Float64()

	return core.NewRayAtTime(origin, direction, time).WithSampler(sampler)
}

func (r *Renderer) sampleStratum(si, sj int, sampler *core.Sampler) core.Vec2 {
	px := (float64(si)+sampler.Float64())*r.recipSqrtSpp - 0.5
	py := (float64(sj)+sampler.Float64())*r.recipSqrtSpp - 0.5
	return core.NewVec2(px, py)
}

func (r *Renderer) defocusDiskSample(sampler *core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return r.center.Add(r.defocusDiskU.Multiply(p.X)).Add(r.defocusDiskV.Multiply(p.Y))
}
