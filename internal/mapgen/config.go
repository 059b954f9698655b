package mapgen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Mode selects which output a run produces.
type Mode string

const (
	// ModeDirect paints each cell with its region's biome color.
	ModeDirect Mode = "direct"
	// ModeDistance paints each cell gray by distance to its nearest centroid.
	ModeDistance Mode = "distance"
	// ModeTerrain synthesizes heights and emits blocks.
	ModeTerrain Mode = "terrain"
)

// Modes lists every supported mode in display order.
var Modes = []Mode{ModeDirect, ModeDistance, ModeTerrain}

// ParseMode resolves a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Next returns the mode after m, wrapping around.
func (m Mode) Next() Mode {
	for i, known := range Modes {
		if known == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return Modes[0]
}

// Config controls one generation run.
type Config struct {
	Width  int
	Height int
	Seed   int64
	Mode   Mode

	// Jitter displaces classification queries by up to this many cells using
	// noise. Zero keeps plain nearest-centroid regions.
	Jitter float64

	// Diagnostics enables warnings such as centroid collisions.
	Diagnostics bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       128,
		Height:      128,
		Seed:        42,
		Mode:        ModeDirect,
		Diagnostics: true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values keep their defaults and unknown keys are
// ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	for k, v := range cfg {
		_ = c.apply(k, v)
	}
	return c
}

// ParseMap is the strict form of FromMap. The first bad value or unknown key,
// in key order, is returned as a *ConfigError. Width and height errors use the
// same field names as Validate.
func ParseMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := c.apply(k, cfg[k]); err != nil {
			return c, err
		}
	}
	return c, nil
}

// apply sets one key. The config is left untouched when v is rejected.
func (c *Config) apply(key, v string) error {
	switch key {
	case "w", "h":
		field := "width"
		if key == "h" {
			field = "height"
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return &ConfigError{Field: field, Err: err}
		}
		if parsed <= 0 {
			return &ConfigError{Field: field, Reason: fmt.Sprintf("must be positive, got %d", parsed)}
		}
		if key == "w" {
			c.Width = parsed
		} else {
			c.Height = parsed
		}
	case "seed":
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return &ConfigError{Field: key, Err: err}
		}
		c.Seed = parsed
	case "mode":
		parsed, err := ParseMode(v)
		if err != nil {
			return &ConfigError{Field: key, Err: err}
		}
		c.Mode = parsed
	case "jitter":
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return &ConfigError{Field: key, Err: err}
		}
		if parsed < 0 {
			return &ConfigError{Field: key, Reason: fmt.Sprintf("must not be negative, got %v", parsed)}
		}
		c.Jitter = parsed
	case "diagnostics":
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return &ConfigError{Field: key, Err: err}
		}
		c.Diagnostics = parsed
	default:
		return &ConfigError{Field: key, Reason: "unknown key"}
	}
	return nil
}

// Validate reports the first configuration problem, if any.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return &ConfigError{Field: "width", Reason: fmt.Sprintf("must be positive, got %d", c.Width)}
	}
	if c.Height <= 0 {
		return &ConfigError{Field: "height", Reason: fmt.Sprintf("must be positive, got %d", c.Height)}
	}
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return &ConfigError{Field: "mode", Reason: err.Error()}
	}
	if c.Jitter < 0 {
		return &ConfigError{Field: "jitter", Reason: fmt.Sprintf("must not be negative, got %v", c.Jitter)}
	}
	return nil
}
