package terrain

import (
	"fmt"

	"terragen/internal/core"
	pcore "terragen/pkg/core"
	"terragen/pkg/heightmap"
	"terragen/pkg/material"
	"terragen/pkg/mesh"
	"terragen/pkg/noise"
)

// Name is the registry key of the terrain surface.
const Name = "terrain"

// Surface generates the base terrain mesh.
type Surface struct {
	cfg Config
}

// New constructs a terrain surface using the default configuration.
func New() *Surface { return NewWithConfig(DefaultConfig()) }

// NewWithConfig constructs a terrain surface using the provided configuration.
func NewWithConfig(cfg Config) *Surface { return &Surface{cfg: cfg} }

func (s *Surface) Name() string { return Name }

// Config returns the configuration the surface was built with.
func (s *Surface) Config() Config { return s.cfg }

// Heightmap draws the terrain's noise fields from rng and layers them with
// the default octave table. Callers that need to reproduce the terrain pass
// a generator seeded exactly as Generate seeds it.
func Heightmap(rng *pcore.RNG, cfg Config) (heightmap.Func, error) {
	fields := make([]noise.Sampler2D, 0, cfg.Fields)
	for i := 0; i < cfg.Fields; i++ {
		f, err := noise.New2D(cfg.Backend, cfg.FieldSize, rng.Source())
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	octaves := heightmap.DefaultOctaves(fields...)
	if cfg.Amplitude != 1 {
		octaves = heightmap.ScaleAmplitudes(octaves, cfg.Amplitude)
	}
	return heightmap.Layered(octaves...), nil
}

// Generate builds the terrain mesh and its shading parameters.
func (s *Surface) Generate(seed int64) ([]core.Artifact, error) {
	h, err := Heightmap(pcore.NewRNG(seed), s.cfg)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	opts, err := s.cfg.MeshOptions()
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	m, err := mesh.Generate(opts, h)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	mat := material.DefaultTerrain().WithThresholds(s.cfg.Thresholds)
	mat.UseVertexRGB = s.cfg.Classify
	return []core.Artifact{{Name: Name, Mesh: m, Material: mat}}, nil
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Surface {
		return NewWithConfig(FromMap(cfg))
	})
}
