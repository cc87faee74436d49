package noise

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Backend names a noise implementation that can stand behind an octave.
type Backend string

const (
	// BackendGradient is the lattice gradient noise in this package.
	BackendGradient Backend = "gradient"
	// BackendSimplex delegates to OpenSimplex.
	BackendSimplex Backend = "simplex"
	// BackendPerlin delegates to the classic permutation-table Perlin noise.
	BackendPerlin Backend = "perlin"
)

// ErrUnknownBackend is returned for backend names outside the known set.
var ErrUnknownBackend = errors.New("noise: unknown backend")

// ParseBackend resolves a case-insensitive backend name.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendGradient, BackendSimplex, BackendPerlin:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// New2D builds a planar sampler for the backend. Only the gradient backend
// honours size; the library backends derive their seed from rng.
func New2D(b Backend, size int, rng *rand.Rand) (Sampler2D, error) {
	switch b {
	case BackendGradient, "":
		return NewField2D(size, rng), nil
	case BackendSimplex:
		return NewSimplex2D(seedFrom(rng)), nil
	case BackendPerlin:
		return NewPerlin2D(seedFrom(rng)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, string(b))
	}
}

// New3D builds a volumetric sampler for the backend.
func New3D(b Backend, size int, rng *rand.Rand) (Sampler3D, error) {
	switch b {
	case BackendGradient, "":
		return NewField3D(size, rng), nil
	case BackendSimplex:
		return NewSimplex3D(seedFrom(rng)), nil
	case BackendPerlin:
		return NewPerlin3D(seedFrom(rng)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, string(b))
	}
}

func seedFrom(rng *rand.Rand) int64 {
	return int64(rng.Uint64() >> 1)
}

// Simplex2D adapts OpenSimplex to Sampler2D.
type Simplex2D struct{ n opensimplex.Noise32 }

// NewSimplex2D seeds an OpenSimplex generator.
func NewSimplex2D(seed int64) *Simplex2D {
	return &Simplex2D{n: opensimplex.New32(seed)}
}

// Sample evaluates OpenSimplex at (x, y).
func (s *Simplex2D) Sample(x, y float32) float32 { return s.n.Eval2(x, y) }

// Simplex3D adapts OpenSimplex to Sampler3D.
type Simplex3D struct{ n opensimplex.Noise32 }

// NewSimplex3D seeds an OpenSimplex generator.
func NewSimplex3D(seed int64) *Simplex3D {
	return &Simplex3D{n: opensimplex.New32(seed)}
}

// Sample evaluates OpenSimplex at (x, y, z).
func (s *Simplex3D) Sample(x, y, z float32) float32 { return s.n.Eval3(x, y, z) }

// Single-octave settings: one layer per Perlin instance, octave summation is
// done by the heightmap composer.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 1
)

// Perlin2D adapts go-perlin to Sampler2D.
type Perlin2D struct{ p *perlin.Perlin }

// NewPerlin2D seeds a single-octave Perlin generator.
func NewPerlin2D(seed int64) *Perlin2D {
	return &Perlin2D{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

// Sample evaluates Perlin noise at (x, y).
func (p *Perlin2D) Sample(x, y float32) float32 {
	return float32(p.p.Noise2D(float64(x), float64(y)))
}

// Perlin3D adapts go-perlin to Sampler3D.
type Perlin3D struct{ p *perlin.Perlin }

// NewPerlin3D seeds a single-octave Perlin generator.
func NewPerlin3D(seed int64) *Perlin3D {
	return &Perlin3D{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

// Sample evaluates Perlin noise at (x, y, z).
func (p *Perlin3D) Sample(x, y, z float32) float32 {
	return float32(p.p.Noise3D(float64(x), float64(y), float64(z)))
}
