package biome

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed biomes.schema.json
var schemaSource string

var registrySchema = jsonschema.MustCompileString("biomes.schema.json", schemaSource)

type fileDoc struct {
	Biomes []fileBiome `yaml:"biomes"`
}

type fileBiome struct {
	Name      string  `yaml:"name"`
	Color     string  `yaml:"color"`
	Height    int     `yaml:"height"`
	Frequency float64 `yaml:"frequency"`
}

// LoadFile reads a YAML biome registry from path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	reg, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// LoadYAML decodes a registry document, checks it against the embedded schema
// and returns the validated registry.
func LoadYAML(r io.Reader) (*Registry, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}
	var doc fileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode biomes: %w", err)
	}
	biomes := make([]*Biome, 0, len(doc.Biomes))
	for i, fb := range doc.Biomes {
		c, err := ParseColor(fb.Color)
		if err != nil {
			return nil, &InvalidBiomeError{Index: i, Name: fb.Name, Reason: err.Error()}
		}
		biomes = append(biomes, &Biome{Name: fb.Name, Color: c, Height: fb.Height, Frequency: fb.Frequency})
	}
	reg := New(biomes...)
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

// validateDocument converts the YAML tree to its JSON form so the schema
// validator sees the same value kinds it would for a JSON document.
func validateDocument(raw []byte) error {
	var tree any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("decode biomes: %w", err)
	}
	if tree == nil {
		return ErrEmptyRegistry
	}
	js, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("biomes: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(js))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("biomes: %w", err)
	}
	if err := registrySchema.Validate(v); err != nil {
		return fmt.Errorf("biomes schema: %w", err)
	}
	return nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
