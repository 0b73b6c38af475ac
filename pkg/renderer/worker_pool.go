package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/corewave/pathtracer/pkg/core"
	"github.com/corewave/pathtracer/pkg/scene"
)

// TileTask is one unit of work handed to a worker.
type TileTask struct {
	Bounds image.Rectangle
}

// TileResult is a rendered tile's pixels (row-major within Bounds) paired
// with the bounds they belong to, so the sequential reducer knows where to
// place them.
type TileResult struct {
	Bounds image.Rectangle
	Pixels []core.Vec3
}

// Progress is a coarse atomic counter of tiles completed out of a render's
// total, safe to poll from any goroutine while the render is in flight.
type Progress struct {
	completed int64
	total     int64
}

// NewProgress creates a counter for a render of the given total tile count.
// Render overwrites Total once it has split the image, so 0 is an
// acceptable placeholder before a render starts.
func NewProgress(total int) *Progress {
	return &Progress{total: int64(total)}
}

// Completed returns the number of tiles finished so far.
func (p *Progress) Completed() int { return int(atomic.LoadInt64(&p.completed)) }

// Total returns the render's total tile count.
func (p *Progress) Total() int { return int(atomic.LoadInt64(&p.total)) }

func (p *Progress) increment() { atomic.AddInt64(&p.completed, 1) }

// RenderPool drives a fixed-size pool of worker goroutines over an image's
// tiles. Each worker owns its own PRNG stream and renders tiles to
// completion independently; a single sequential reducer drains completed
// tiles into the framebuffer, so the only shared mutable state is the
// result channel itself.
type RenderPool struct {
	estimator  *Estimator
	renderer   *scene.Renderer
	numWorkers int
	newSampler func(workerID int) *core.Sampler
}

// NewRenderPool builds a pool with numWorkers goroutines (or runtime.NumCPU
// if numWorkers <= 0), each seeded from the wall clock so runs are not
// bit-reproducible across threads, per the renderer's randomness model.
func NewRenderPool(estimator *Estimator, r *scene.Renderer, numWorkers int) *RenderPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &RenderPool{
		estimator:  estimator,
		renderer:   r,
		numWorkers: numWorkers,
		newSampler: func(workerID int) *core.Sampler {
			seed := time.Now().UnixNano() ^ int64(workerID)<<32
			return core.NewSampler(rand.New(rand.NewSource(seed)))
		},
	}
}

// NewDeterministicRenderPool forces a single worker seeded explicitly, for
// tests and reference renders that need bit-reproducible output; ordinary
// multi-worker renders never guarantee this.
func NewDeterministicRenderPool(estimator *Estimator, r *scene.Renderer, seed int64) *RenderPool {
	return &RenderPool{
		estimator:  estimator,
		renderer:   r,
		numWorkers: 1,
		newSampler: func(workerID int) *core.Sampler {
			return core.NewSampler(rand.New(rand.NewSource(seed)))
		},
	}
}

// Render runs every tile of the image to completion and returns the
// assembled framebuffer. progress, if non-nil, is incremented once per
// completed tile; its Total() is set before any worker starts.
func (rp *RenderPool) Render(progress *Progress) *Framebuffer {
	tiles := SplitTiles(rp.renderer.ImageWidth, rp.renderer.ImageHeight)
	if progress != nil {
		atomic.StoreInt64(&progress.total, int64(len(tiles)))
	}

	tasks := make(chan TileTask, len(tiles))
	results := make(chan TileResult, len(tiles))
	for _, tile := range tiles {
		tasks <- TileTask{Bounds: tile.Bounds}
	}
	close(tasks)

	var wg sync.WaitGroup
	for w := 0; w < rp.numWorkers; w++ {
		wg.Add(1)
		go rp.runWorker(w, tasks, results, progress, &wg)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	fb := NewFramebuffer(rp.renderer.ImageWidth, rp.renderer.ImageHeight)
	for result := range results {
		fb.Merge(result.Bounds, result.Pixels)
	}
	return fb
}

func (rp *RenderPool) runWorker(id int, tasks <-chan TileTask, results chan<- TileResult, progress *Progress, wg *sync.WaitGroup) {
	defer wg.Done()
	sampler := rp.newSampler(id)
	for task := range tasks {
		results <- rp.renderTile(task.Bounds, sampler)
		if progress != nil {
			progress.increment()
		}
	}
}

// renderTile is a pure function of (bounds, estimator, camera): it reads
// only shared immutable state (the estimator's BVH/lights/background, the
// camera's derived geometry) and writes a freshly-allocated pixel slice, so
// concurrent calls across disjoint tiles never interfere.
func (rp *RenderPool) renderTile(bounds image.Rectangle, sampler *core.Sampler) TileResult {
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)
	sqrtSpp := rp.renderer.SqrtSpp()
	samples := float64(sqrtSpp * sqrtSpp)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sum := core.Vec3{}
			for si := 0; si < sqrtSpp; si++ {
				for sj := 0; sj < sqrtSpp; sj++ {
					ray := rp.renderer.Ray(x, y, si, sj, sampler)
					sum = sum.Add(rp.estimator.Estimate(ray, sampler))
				}
			}
			pixels[(y-bounds.Min.Y)*width+(x-bounds.Min.X)] = sum.Multiply(1.0 / samples)
		}
	}

	return TileResult{Bounds: bounds, Pixels: pixels}
}
