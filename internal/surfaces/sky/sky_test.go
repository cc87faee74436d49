package sky

import (
	"testing"

	pcore "terragen/pkg/core"
	"terragen/pkg/heightmap"
	"terragen/pkg/material"
	"terragen/pkg/noise"
	"terragen/pkg/volume"
)

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"sky_size":   "16",
		"sky_step":   "0.5",
		"sky_format": "rgba32f",
		"sky_bias":   "-1",
	})
	if cfg.Size != 16 || cfg.Step != 0.5 || cfg.Format != volume.RGBA32F {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.BiasScale != DefaultConfig().BiasScale {
		t.Fatalf("negative bias accepted: %v", cfg.BiasScale)
	}
}

func TestGeneratePacksDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 8
	arts, err := NewWithConfig(cfg).Generate(21)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(arts) != 1 || arts[0].Volume == nil || arts[0].Mesh != nil {
		t.Fatalf("unexpected artifacts %+v", arts)
	}
	tex := arts[0].Volume
	if len(tex.Bytes) != 8*8*8*4 {
		t.Fatalf("got %d bytes", len(tex.Bytes))
	}
	density, err := Density(21, cfg)
	if err != nil {
		t.Fatalf("Density: %v", err)
	}
	if got, want := tex.At(1, 2, 3), density(2, 4, 6); got != want {
		t.Fatalf("texel = %f, want %f", got, want)
	}
	mat, ok := arts[0].Material.(material.Sky)
	if !ok || mat.StepCount != 200 || mat.BoxMax[1] != cfg.BoxHalfHeight {
		t.Fatalf("material = %#v", arts[0].Material)
	}
}

func TestVerticalBiasSuppressesFarDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 8
	density, err := Density(4, cfg)
	if err != nil {
		t.Fatalf("Density: %v", err)
	}
	mid := float32(cfg.Size) * cfg.Step / 2
	for x := float32(0); x < 16; x += 2.5 {
		near, far := density(x, mid, x), density(x, mid+2000, x)
		if far > near-70 {
			t.Fatalf("bias too weak at x=%f: near %f far %f", x, near, far)
		}
	}
}

func TestDensityUsesOwnStream(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 8
	density, err := Density(42, cfg)
	if err != nil {
		t.Fatalf("Density: %v", err)
	}
	period := int(float32(cfg.Size) * cfg.Step)
	shared := heightmap.Layered3(heightmap.DefaultOctaves3(noise.NewField3D(period, pcore.NewRNG(42).Source()))...)
	mid := float32(cfg.Size) * cfg.Step / 2
	for x := float32(0.5); x < 16; x += 1.5 {
		if density(x, mid, x) != shared(x, mid, x) {
			return
		}
	}
	t.Fatalf("sky density was drawn from the scene seed directly")
}
