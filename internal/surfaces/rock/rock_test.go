package rock

import (
	"math"
	"testing"

	"terragen/internal/surfaces/terrain"
	"terragen/pkg/material"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Base.Width = 20
	cfg.Base.Height = 20
	cfg.Base.Unit = 4
	cfg.Base.FieldSize = 16
	cfg.Base.SmoothRadius = 1
	cfg.FieldSize = 8
	return cfg
}

func TestFromMapReadsBaseAndOverlay(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":              "30",
		"backend":        "perlin",
		"rock_lo":        "2",
		"rock_hi":        "1",
		"rock_amplitude": "0.5",
		"rock_sentinel":  "-50",
	})
	if cfg.Base.Width != 30 || cfg.Base.Backend != "perlin" || cfg.Base.Classify {
		t.Fatalf("base = %+v", cfg.Base)
	}
	if cfg.BandLo != 2 || cfg.BandHi != 2 || cfg.Amplitude != 0.5 || cfg.Sentinel != -50 {
		t.Fatalf("overlay = %+v", cfg)
	}
}

func TestOverlayConfinedToBand(t *testing.T) {
	const seed = 11
	cfg := smallConfig()

	base, err := terrain.NewWithConfig(cfg.Base).Generate(seed)
	if err != nil {
		t.Fatalf("terrain: %v", err)
	}
	lo, hi := base[0].Mesh.HeightRange()
	if hi == lo {
		t.Skip("flat terrain sample")
	}
	cfg.BandLo = lo + (hi-lo)/4
	cfg.BandHi = hi - (hi-lo)/4

	arts, err := NewWithConfig(cfg).Generate(seed)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	rock := arts[0].Mesh
	bound := 85*cfg.Amplitude*1.01 + 1e-3
	outside := 0
	for i, p := range rock.Positions {
		b := base[0].Mesh.Positions[i][1]
		if b < cfg.BandLo || b > cfg.BandHi {
			outside++
			if p[1] != cfg.Sentinel {
				t.Fatalf("vertex %d outside band at %f, want sentinel", i, p[1])
			}
			continue
		}
		if d := math.Abs(float64(p[1] - (b - cfg.Offset))); d > float64(bound) {
			t.Fatalf("vertex %d deviates %f from base", i, d)
		}
	}
	if outside == 0 {
		t.Fatalf("expected vertices outside the band")
	}
	if mat, ok := arts[0].Material.(material.Rock); !ok || mat.Cutoff <= cfg.Sentinel {
		t.Fatalf("material = %#v", arts[0].Material)
	}
}

func TestParameters(t *testing.T) {
	p, ok := New().Parameters().Lookup("rock_sentinel")
	if !ok || p.Value != "-1000" {
		t.Fatalf("sentinel parameter = %+v", p)
	}
}
