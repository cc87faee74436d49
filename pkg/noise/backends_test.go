package noise

import (
	"errors"
	"math"
	"testing"

	"terragen/pkg/core"
)

func TestParseBackend(t *testing.T) {
	for in, want := range map[string]Backend{
		"gradient": BackendGradient,
		" Simplex": BackendSimplex,
		"PERLIN":   BackendPerlin,
	} {
		got, err := ParseBackend(in)
		if err != nil || got != want {
			t.Fatalf("ParseBackend(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseBackend("worley"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestBackendsDeterministicAndFinite(t *testing.T) {
	for _, b := range []Backend{BackendGradient, BackendSimplex, BackendPerlin} {
		s1, err := New2D(b, 64, core.NewRNG(5).Source())
		if err != nil {
			t.Fatalf("%s: %v", b, err)
		}
		s2, _ := New2D(b, 64, core.NewRNG(5).Source())
		v1, err := New3D(b, 16, core.NewRNG(5).Source())
		if err != nil {
			t.Fatalf("%s: %v", b, err)
		}
		v2, _ := New3D(b, 16, core.NewRNG(5).Source())
		for i := 0; i < 500; i++ {
			x, y, z := float32(i)*0.13-20, float32(i)*0.29-40, float32(i)*0.07
			a := s1.Sample(x, y)
			if a != s2.Sample(x, y) {
				t.Fatalf("%s 2D not deterministic at (%f,%f)", b, x, y)
			}
			if math.IsNaN(float64(a)) || math.Abs(float64(a)) > 1.05 {
				t.Fatalf("%s 2D value %f out of range", b, a)
			}
			c := v1.Sample(x, y, z)
			if c != v2.Sample(x, y, z) {
				t.Fatalf("%s 3D not deterministic at (%f,%f,%f)", b, x, y, z)
			}
			if math.IsNaN(float64(c)) || math.Abs(float64(c)) > 1.05 {
				t.Fatalf("%s 3D value %f out of range", b, c)
			}
		}
	}
}

func TestNewUnknownBackend(t *testing.T) {
	if _, err := New2D("value", 8, core.NewRNG(1).Source()); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
	if _, err := New3D("value", 8, core.NewRNG(1).Source()); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}
