package water

import (
	"math"
	"slices"
	"testing"

	"terragen/internal/surfaces/terrain"
	pcore "terragen/pkg/core"
	"terragen/pkg/material"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 12
	cfg.Height = 12
	cfg.FieldSize = 8
	cfg.Amplitude = 0.5
	return cfg
}

func TestLayersAreDecorrelated(t *testing.T) {
	cfg := smallConfig()
	layers, err := Layers(3, cfg)
	if err != nil {
		t.Fatalf("Layers: %v", err)
	}
	if len(layers) != cfg.Layers {
		t.Fatalf("got %d layers", len(layers))
	}
	differs := false
	for x := float32(0); x < 40; x += 3.7 {
		a := layers[0](x, x/2) - cfg.SeaLevel
		b := layers[1](x, x/2) - cfg.SeaLevel - cfg.LayerSpacing
		if math.Abs(float64(a-b)) > 1e-4 {
			differs = true
		}
	}
	if !differs {
		t.Fatalf("translated layers sampled identical values")
	}
}

func TestLayersStayNearSeaLevel(t *testing.T) {
	cfg := smallConfig()
	layers, err := Layers(9, cfg)
	if err != nil {
		t.Fatalf("Layers: %v", err)
	}
	bound := float64(85*cfg.Amplitude) * 1.01
	for i, h := range layers {
		level := cfg.SeaLevel + float32(i)*cfg.LayerSpacing
		for x := float32(-50); x < 50; x += 4.3 {
			if d := math.Abs(float64(h(x, -x) - level)); d > bound {
				t.Fatalf("layer %d strays %f from its level", i, d)
			}
		}
	}
}

func TestGenerateOneArtifactPerLayer(t *testing.T) {
	cfg := smallConfig()
	arts, err := NewWithConfig(cfg).Generate(5)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(arts) != 4 {
		t.Fatalf("got %d artifacts", len(arts))
	}
	names := make([]string, len(arts))
	for i, a := range arts {
		names[i] = a.Name
		if a.Mesh == nil || len(a.Mesh.Colors) != 0 {
			t.Fatalf("layer %d mesh = %+v", i, a.Mesh)
		}
		if w, ok := a.Material.(material.Water); !ok || w.Layer != i {
			t.Fatalf("layer %d material = %#v", i, a.Material)
		}
	}
	if !slices.Equal(names, []string{"water/0", "water/1", "water/2", "water/3"}) {
		t.Fatalf("names = %v", names)
	}
}

func TestZeroLayers(t *testing.T) {
	arts, err := NewWithConfig(FromMap(map[string]string{"water_layers": "0"})).Generate(1)
	if err != nil || len(arts) != 0 {
		t.Fatalf("got %d artifacts, err %v", len(arts), err)
	}
}

func TestSwellIndependentOfTerrain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FieldSize = 100
	layers, err := Layers(42, cfg)
	if err != nil {
		t.Fatalf("Layers: %v", err)
	}
	ground, err := terrain.Heightmap(pcore.NewRNG(42), terrain.DefaultConfig())
	if err != nil {
		t.Fatalf("terrain.Heightmap: %v", err)
	}
	var worst float64
	for x := float32(-300); x < 300; x += 7.3 {
		y := x * 0.6
		d := math.Abs(float64(layers[0](x, y) - cfg.SeaLevel - cfg.Amplitude*ground(x, y)))
		worst = math.Max(worst, d)
	}
	if worst < 0.01 {
		t.Fatalf("water swell tracks the terrain (max deviation %g)", worst)
	}
}
