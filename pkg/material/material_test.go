package material

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"terragen/pkg/mesh"
)

func TestDefaultTerrainMirrorsClassifier(t *testing.T) {
	m := DefaultTerrain()
	th := mesh.DefaultThresholds()
	if m.SeaHeight != th.Sea || m.PeakHeight != th.Peak || m.CliffSlope != th.Steep {
		t.Fatalf("terrain material drifted from classifier thresholds: %+v", m)
	}
	if l := m.LightDir.Len(); math.Abs(float64(l)-1) > 1e-6 {
		t.Fatalf("light direction length %f", l)
	}
	if m.SeaColor != mesh.CategorySea.Color() {
		t.Fatalf("sea color %v", m.SeaColor)
	}
}

func TestDefaultSky(t *testing.T) {
	s := DefaultSky(2048, 200)
	if s.StepCount != 200 || s.NoiseScale != 0.03 || s.NoiseThresh != 10 {
		t.Fatalf("unexpected sky defaults %+v", s)
	}
	if s.BoxMax != (mgl32.Vec3{1024, 200, 1024}) || s.BoxMin != (mgl32.Vec3{-1024, -200, -1024}) {
		t.Fatalf("box = %v..%v", s.BoxMin, s.BoxMax)
	}
	if s.Sampler.AddressW != AddressRepeat || s.Sampler.Mag != FilterLinear {
		t.Fatalf("sampler = %+v", s.Sampler)
	}
}

func TestDefaultWaterLayer(t *testing.T) {
	if w := DefaultWater(3); w.Layer != 3 || w.Opacity <= 0 {
		t.Fatalf("water = %+v", w)
	}
}

func TestTerrainWithThresholds(t *testing.T) {
	th := mesh.Thresholds{Sea: -3, Peak: 9, Steep: 0.5, Flat: 0.9}
	m := DefaultTerrain().WithThresholds(th)
	if m.SeaHeight != -3 || m.PeakHeight != 9 || m.CliffSlope != 0.5 || m.SteepSlope != 0.9 {
		t.Fatalf("thresholds not applied: %+v", m)
	}
	if m.Ambient != DefaultTerrain().Ambient {
		t.Fatalf("unrelated fields changed")
	}
}

func TestDefaultRockCutoff(t *testing.T) {
	if r := DefaultRock(-500); r.Cutoff != -500 || r.Color[3] != 1 {
		t.Fatalf("rock = %+v", r)
	}
}
