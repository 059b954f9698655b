// Package mapgen runs one generation: centroid sampling, region
// classification and the selected output branch.
package mapgen

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"biomemap/internal/biome"
	"biomemap/internal/core"
	"biomemap/internal/noise"
	"biomemap/internal/render"
	"biomemap/internal/terrain"
	"biomemap/internal/voronoi"
	pkgcore "biomemap/pkg/core"
)

// Random is the randomness a run consumes: integers for centroid placement
// and floats for the noise offset.
type Random interface {
	IntN(n int) int
	Range(lo, hi float64) float64
}

// Env carries the collaborators of a run. Nil fields fall back to defaults
// derived from the config seed; a nil Logger disables output.
type Env struct {
	RNG     Random
	Noise   noise.Field
	Emitter terrain.Emitter
	Logger  *log.Logger
}

// Result holds everything a run produced.
type Result struct {
	Config    Config
	Size      core.Size
	Offset    mgl64.Vec2
	Centroids *voronoi.CentroidSet
	Regions   *voronoi.RegionGrid

	// Collisions counts biomes whose centroid was overwritten by a later
	// biome drawing the same position.
	Collisions int

	// Image is set in direct and distance mode.
	Image *render.PixelBuffer
	// Blocks is set in terrain mode.
	Blocks []terrain.Block
}

// Generate validates its inputs and runs the pipeline. Any *ConfigError is
// returned before randomness is consumed.
func Generate(cfg Config, reg *biome.Registry, env Env) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := reg.Validate(); err != nil {
		return nil, &ConfigError{Field: "biomes", Err: err}
	}
	if env.RNG == nil {
		env.RNG = pkgcore.NewRNG(cfg.Seed)
	}
	if env.Noise == nil {
		env.Noise = noise.NewPerlin(cfg.Seed)
	}

	size := core.Size{W: cfg.Width, H: cfg.Height}
	res := &Result{Config: cfg, Size: size}
	res.Offset = noise.NewOffset(env.RNG)
	res.Centroids = voronoi.SampleCentroids(reg, size, env.RNG)
	res.Collisions = res.Centroids.Collisions()
	if res.Collisions > 0 && cfg.Diagnostics && env.Logger != nil {
		env.Logger.Printf("warning: %d centroid collision(s); %d of %d biomes have regions",
			res.Collisions, res.Centroids.Len(), reg.Len())
	}

	opts := voronoi.Options{}
	if cfg.Jitter > 0 {
		opts.Jitter = voronoi.Jitter{Amount: cfg.Jitter, Field: env.Noise}
	}
	res.Regions = voronoi.Classify(res.Centroids, size, opts)

	switch cfg.Mode {
	case ModeTerrain:
		buf := &terrain.Buffer{}
		var emit terrain.Emitter = buf
		if env.Emitter != nil {
			emit = terrain.Multi{buf, env.Emitter}
		}
		terrain.Synthesize(res.Regions, env.Noise, res.Offset, emit)
		res.Blocks = buf.Blocks
	case ModeDistance:
		res.Image = render.DistanceField(res.Centroids, size)
	default:
		res.Image = render.Direct(res.Regions)
	}

	if env.Logger != nil {
		env.Logger.Printf("generated %dx%d %s map: %d centroids, seed %d", size.W, size.H, cfg.Mode, res.Centroids.Len(), cfg.Seed)
	}
	return res, nil
}

// MaxHeight returns the tallest emitted block height, or 0 outside terrain
// mode.
func (r *Result) MaxHeight() int {
	max := 0
	for _, b := range r.Blocks {
		if b.Height > max {
			max = b.Height
		}
	}
	return max
}
