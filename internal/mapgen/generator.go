package mapgen

import (
	"log"

	"biomemap/internal/biome"
	"biomemap/internal/core"
	"biomemap/internal/terrain"
)

type resetter interface{ Reset() }

// Generator keeps a config and the latest result so interactive front ends
// can tweak parameters and regenerate.
type Generator struct {
	cfg     Config
	reg     *biome.Registry
	logger  *log.Logger
	emitter terrain.Emitter

	last *Result
	err  error
}

// NewGenerator returns a generator; call Regenerate to produce the first map.
func NewGenerator(cfg Config, reg *biome.Registry, logger *log.Logger) *Generator {
	return &Generator{cfg: cfg, reg: reg, logger: logger}
}

// SetEmitter forwards blocks of subsequent terrain runs to e.
func (g *Generator) SetEmitter(e terrain.Emitter) { g.emitter = e }

// Size reports the grid dimensions.
func (g *Generator) Size() core.Size { return core.Size{W: g.cfg.Width, H: g.cfg.Height} }

// Config returns the active configuration.
func (g *Generator) Config() Config { return g.cfg }

// Result returns the latest result, or nil if the last run failed.
func (g *Generator) Result() *Result { return g.last }

// Err returns the error of the latest run.
func (g *Generator) Err() error { return g.err }

// Reset sets the seed, zero included, and regenerates.
func (g *Generator) Reset(seed int64) {
	g.cfg.Seed = seed
	g.Regenerate()
}

// Regenerate reruns generation with the current configuration.
func (g *Generator) Regenerate() {
	if r, ok := g.emitter.(resetter); ok {
		r.Reset()
	}
	g.last, g.err = Generate(g.cfg, g.reg, Env{Emitter: g.emitter, Logger: g.logger})
	if g.err != nil && g.logger != nil {
		g.logger.Printf("generate: %v", g.err)
	}
}

// SetMode switches the output branch and regenerates.
func (g *Generator) SetMode(m Mode) {
	g.cfg.Mode = m
	g.Regenerate()
}

// Parameters reports the current configuration for display.
func (g *Generator) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				core.IntParam("w", "Width", g.cfg.Width),
				core.IntParam("h", "Height", g.cfg.Height),
				core.Int64Param("seed", "Seed", g.cfg.Seed),
				core.StringParam("mode", "Mode", string(g.cfg.Mode)),
			},
		},
		{
			Name: "Regions",
			Params: []core.Parameter{
				core.IntParam("biomes", "Biomes", g.reg.Len()),
				core.FloatParam("jitter", "Jitter", g.cfg.Jitter),
			},
		},
	}
	if g.last != nil {
		groups[1].Params = append(groups[1].Params,
			core.IntParam("centroids", "Centroids", g.last.Centroids.Len()),
			core.IntParam("collisions", "Collisions", g.last.Collisions),
		)
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters the HUD may adjust.
func (g *Generator) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1},
		{Key: "jitter", Label: "Jitter", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, HasMin: true, Max: 16, HasMax: true},
	}
}

// SetIntParameter updates an integer parameter and regenerates.
func (g *Generator) SetIntParameter(key string, value int) bool {
	switch key {
	case "seed":
		g.cfg.Seed = int64(value)
	default:
		return false
	}
	g.Regenerate()
	return true
}

// SetFloatParameter updates a float parameter and regenerates.
func (g *Generator) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "jitter":
		if value < 0 {
			return false
		}
		g.cfg.Jitter = value
	default:
		return false
	}
	g.Regenerate()
	return true
}
