package app

import (
	"flag"
	"fmt"
	"strings"

	"biomemap/internal/biome"
	"biomemap/internal/mapgen"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Seed   int64
	Mode   string
	Jitter float64
	Biomes string
	Scale  int
	Quiet  bool
	Set    KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := mapgen.DefaultConfig()
	return &Config{
		Width:  d.Width,
		Height: d.Height,
		Seed:   d.Seed,
		Mode:   string(d.Mode),
		Jitter: d.Jitter,
		Scale:  4,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "map width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "map height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for centroid placement and noise")
	fs.StringVar(&c.Mode, "mode", c.Mode, "output mode: direct, distance or terrain")
	fs.Float64Var(&c.Jitter, "jitter", c.Jitter, "noise displacement of region borders in cells (0 disables)")
	fs.StringVar(&c.Biomes, "biomes", c.Biomes, "YAML biome registry (built-in set when empty)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress diagnostics")
	fs.Var(&c.Set, "set", "generator override in key=value form (repeatable)")
}

// MapConfig converts the flags into a generator config. -set overrides are
// applied last.
func (c *Config) MapConfig() (mapgen.Config, error) {
	mode, err := mapgen.ParseMode(c.Mode)
	if err != nil {
		return mapgen.Config{}, &mapgen.ConfigError{Field: "mode", Err: err}
	}
	base := map[string]string{
		"w":           fmt.Sprint(c.Width),
		"h":           fmt.Sprint(c.Height),
		"seed":        fmt.Sprint(c.Seed),
		"mode":        string(mode),
		"jitter":      fmt.Sprint(c.Jitter),
		"diagnostics": fmt.Sprint(!c.Quiet),
	}
	for k, v := range c.Set.Map() {
		base[k] = v
	}
	cfg, err := mapgen.ParseMap(base)
	if err != nil {
		return mapgen.Config{}, err
	}
	return cfg, cfg.Validate()
}

// Registry loads the biome registry named by -biomes, or the built-in one.
func (c *Config) Registry() (*biome.Registry, error) {
	if c.Biomes == "" {
		return biome.Default(), nil
	}
	return biome.LoadFile(c.Biomes)
}
