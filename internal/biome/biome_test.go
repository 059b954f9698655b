package biome

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := New().Validate(); !errors.Is(err, ErrEmptyRegistry) {
		t.Fatalf("empty registry: got %v, want ErrEmptyRegistry", err)
	}

	bad := New(
		&Biome{Name: "ok", Height: 3, Frequency: 0.1},
		&Biome{Name: "flat", Height: 3, Frequency: 0},
	)
	var invalid *InvalidBiomeError
	if err := bad.Validate(); !errors.As(err, &invalid) {
		t.Fatalf("zero frequency: got %v, want InvalidBiomeError", err)
	}
	if invalid.Index != 1 || invalid.Name != "flat" {
		t.Fatalf("unexpected error detail %+v", invalid)
	}

	neg := New(&Biome{Name: "pit", Height: -1, Frequency: 1})
	if err := neg.Validate(); !errors.As(err, &invalid) {
		t.Fatalf("negative height: got %v, want InvalidBiomeError", err)
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("default registry invalid: %v", err)
	}
}

func TestRegistryKeepsIdentity(t *testing.T) {
	a := &Biome{Name: "a", Frequency: 1}
	b := &Biome{Name: "b", Frequency: 1}
	reg := New(a, b)
	if reg.Len() != 2 || reg.At(0) != a || reg.At(1) != b {
		t.Fatal("registry must preserve order and pointer identity")
	}
	if !reg.Contains(b) || reg.Contains(&Biome{Name: "b", Frequency: 1}) {
		t.Fatal("Contains must compare by identity")
	}
	all := reg.All()
	all[0] = nil
	if reg.At(0) != a {
		t.Fatal("All must return a copy")
	}
}

func TestLoadFile(t *testing.T) {
	reg, err := LoadFile("testdata/biomes.yaml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if reg.Len() != 3 {
		t.Fatalf("expected 3 biomes, got %d", reg.Len())
	}
	taiga := reg.At(1)
	if taiga.Name != "taiga" || taiga.Height != 12 || taiga.Frequency != 0.12 {
		t.Fatalf("unexpected taiga record %+v", taiga)
	}
	if taiga.Color != (color.RGBA{R: 0x2f, G: 0x5d, B: 0x48, A: 0xff}) {
		t.Fatalf("unexpected taiga color %+v", taiga.Color)
	}
	if reg.At(2).Color.A != 0xcc {
		t.Fatalf("expected explicit alpha 0xcc, got %#x", reg.At(2).Color.A)
	}
}

func TestLoadYAMLRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"empty list":      "biomes: []\n",
		"zero frequency":  "biomes:\n  - color: \"#ffffff\"\n    height: 1\n    frequency: 0\n",
		"negative height": "biomes:\n  - color: \"#ffffff\"\n    height: -2\n    frequency: 0.1\n",
		"bad color":       "biomes:\n  - color: red\n    height: 1\n    frequency: 0.1\n",
		"missing height":  "biomes:\n  - color: \"#ffffff\"\n    frequency: 0.1\n",
		"unknown field":   "biomes:\n  - color: \"#ffffff\"\n    height: 1\n    frequency: 0.1\n    depth: 3\n",
	}
	for name, doc := range cases {
		if _, err := LoadYAML(strings.NewReader(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := LoadYAML(strings.NewReader("")); !errors.Is(err, ErrEmptyRegistry) {
		t.Fatalf("empty document: got %v, want ErrEmptyRegistry", err)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0000")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("got %+v, want opaque red", c)
	}
	if _, err := ParseColor("#12345"); err == nil {
		t.Fatal("expected error for short color")
	}
	if _, err := ParseColor("#zzzzzz"); err == nil {
		t.Fatal("expected error for non-hex color")
	}
}

func TestLoadYAMLNumberKinds(t *testing.T) {
	doc := "biomes:\n  - name: reef\n    color: \"#208090\"\n    height: 7\n    frequency: 0.25\n  - name: shelf\n    color: \"#3090a0\"\n    height: 0\n    frequency: 1\n"
	reg, err := LoadYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if reg.Len() != 2 || reg.At(0).Height != 7 || reg.At(0).Frequency != 0.25 || reg.At(1).Frequency != 1 {
		t.Fatalf("unexpected registry %+v %+v", reg.At(0), reg.At(1))
	}

	fractional := "biomes:\n  - color: \"#ffffff\"\n    height: 2.5\n    frequency: 0.1\n"
	if _, err := LoadYAML(strings.NewReader(fractional)); err == nil {
		t.Fatal("expected fractional height to fail the integer check")
	}
}
