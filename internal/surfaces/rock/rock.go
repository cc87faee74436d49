// Package rock generates the exposed-rock overlay. The overlay rides on the
// terrain heightmap inside a height band and sinks to a sentinel elsewhere so
// the renderer can discard it.
package rock

import (
	"fmt"

	"terragen/internal/core"
	"terragen/internal/surfaces/terrain"
	pcore "terragen/pkg/core"
	"terragen/pkg/heightmap"
	"terragen/pkg/material"
	"terragen/pkg/mesh"
	"terragen/pkg/noise"
)

// Name is the registry key of the exposed-rock overlay.
const Name = "rock"

// Config controls the overlay. Base must match the terrain configuration for
// the overlay to line up with the terrain mesh.
type Config struct {
	Base terrain.Config

	BandLo    float32
	BandHi    float32
	Offset    float32
	Sentinel  float32
	FieldSize int
	Amplitude float32
}

// DefaultConfig places rock between the grass line and the peaks.
func DefaultConfig() Config {
	base := terrain.DefaultConfig()
	base.Classify = false
	return Config{
		Base:      base,
		BandLo:    4,
		BandHi:    24,
		Offset:    1.5,
		Sentinel:  -1000,
		FieldSize: 64,
		Amplitude: 0.08,
	}
}

// FromMap reads the terrain keys into Base and the rock_* keys into the
// overlay settings.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Base = terrain.FromMap(cfg)
	c.Base.Classify = false
	core.OverrideFloat32(cfg, "rock_lo", &c.BandLo, nil)
	core.OverrideFloat32(cfg, "rock_hi", &c.BandHi, nil)
	if c.BandHi < c.BandLo {
		c.BandHi = c.BandLo
	}
	core.OverrideFloat32(cfg, "rock_offset", &c.Offset, nil)
	core.OverrideFloat32(cfg, "rock_sentinel", &c.Sentinel, nil)
	core.OverrideInt(cfg, "rock_field_size", &c.FieldSize, core.Positive)
	core.OverrideFloat32(cfg, "rock_amplitude", &c.Amplitude, core.NonNegative)
	return c
}

// Surface generates the overlay from a fixed Config.
type Surface struct {
	cfg Config
}

// New returns a surface with the default configuration.
func New() *Surface { return NewWithConfig(DefaultConfig()) }

// NewWithConfig returns a surface for cfg.
func NewWithConfig(cfg Config) *Surface { return &Surface{cfg: cfg} }

// Name implements core.Surface.
func (s *Surface) Name() string { return Name }

// Config returns the configuration in use.
func (s *Surface) Config() Config { return s.cfg }

// Heightmap reproduces the terrain for seed and bands the overlay on top of
// it. The overlay's fields are drawn after the terrain's from the same stream.
func Heightmap(seed int64, cfg Config) (heightmap.Func, error) {
	rng := pcore.NewRNG(seed)
	base, err := terrain.Heightmap(rng, cfg.Base)
	if err != nil {
		return nil, err
	}
	field, err := noise.New2D(cfg.Base.Backend, cfg.FieldSize, rng.Source())
	if err != nil {
		return nil, err
	}
	overlay := heightmap.Layered(heightmap.ScaleAmplitudes(heightmap.DefaultOctaves(field), cfg.Amplitude)...)
	return heightmap.Band(base, cfg.BandLo, cfg.BandHi, cfg.Sentinel, cfg.Offset, overlay), nil
}

// Generate builds the overlay mesh and its discard material.
func (s *Surface) Generate(seed int64) ([]core.Artifact, error) {
	h, err := Heightmap(seed, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("rock: %w", err)
	}
	opts, err := s.cfg.Base.MeshOptions()
	if err != nil {
		return nil, fmt.Errorf("rock: %w", err)
	}
	m, err := mesh.Generate(opts, h)
	if err != nil {
		return nil, fmt.Errorf("rock: %w", err)
	}
	mat := material.DefaultRock(s.cfg.Sentinel / 2)
	return []core.Artifact{{Name: Name, Mesh: m, Material: mat}}, nil
}

// Parameters lists the overlay tunables; the terrain keys it shares are
// reported by the terrain surface.
func (s *Surface) Parameters() core.ParameterSnapshot {
	c := s.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rock",
			Params: []core.Parameter{
				core.Float32Param("rock_lo", "Band low", c.BandLo),
				core.Float32Param("rock_hi", "Band high", c.BandHi),
				core.Float32Param("rock_offset", "Offset", c.Offset),
				core.Float32Param("rock_sentinel", "Sentinel", c.Sentinel),
				core.IntParam("rock_field_size", "Field size", c.FieldSize),
				core.Float32Param("rock_amplitude", "Amplitude", c.Amplitude),
			},
		},
	}}
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Surface {
		return NewWithConfig(FromMap(cfg))
	})
}
