// Package water generates the stacked translucent water layers. Every layer
// samples one composed heightmap through a different domain translation so
// the layers do not move in lockstep.
package water

import (
	"fmt"

	"terragen/internal/core"
	pcore "terragen/pkg/core"
	"terragen/pkg/heightmap"
	"terragen/pkg/material"
	"terragen/pkg/mesh"
	"terragen/pkg/noise"
)

// Name is the registry key of the water layers.
const Name = "water"

// Config controls the water layers.
type Config struct {
	Width  int
	Height int
	Unit   float32

	Layers       int
	SeaLevel     float32
	LayerSpacing float32
	Shift        float32

	Backend   noise.Backend
	FieldSize int
	Amplitude float32
}

// DefaultConfig covers the default terrain footprint with four layers.
func DefaultConfig() Config {
	return Config{
		Width:        250,
		Height:       250,
		Unit:         4,
		Layers:       4,
		SeaLevel:     mesh.DefaultThresholds().Sea,
		LayerSpacing: 0.2,
		Shift:        1013,
		Backend:      noise.BackendGradient,
		FieldSize:    50,
		Amplitude:    0.02,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.OverrideInt(cfg, "water_w", &c.Width, core.Positive)
	core.OverrideInt(cfg, "water_h", &c.Height, core.Positive)
	core.OverrideFloat32(cfg, "water_unit", &c.Unit, core.Positive)
	core.OverrideInt(cfg, "water_layers", &c.Layers, core.NonNegative)
	core.OverrideFloat32(cfg, "sea", &c.SeaLevel, nil)
	core.OverrideFloat32(cfg, "water_spacing", &c.LayerSpacing, nil)
	core.OverrideFloat32(cfg, "water_shift", &c.Shift, nil)
	if v, ok := cfg["backend"]; ok {
		if b, err := noise.ParseBackend(v); err == nil {
			c.Backend = b
		}
	}
	core.OverrideInt(cfg, "water_field_size", &c.FieldSize, core.Positive)
	core.OverrideFloat32(cfg, "water_amplitude", &c.Amplitude, core.NonNegative)
	return c
}

// Surface generates the water layers from a fixed Config.
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

// Layers returns one heightmap per water layer. Layer i is the shared
// composition translated by (i·Shift, i·Shift/2) and raised i·LayerSpacing
// above sea level. The swell fields come from the water substream of seed,
// not from the terrain's.
func Layers(seed int64, cfg Config) ([]heightmap.Func, error) {
	rng := pcore.NewRNG(pcore.Stream(seed, Name))
	a, err := noise.New2D(cfg.Backend, cfg.FieldSize, rng.Source())
	if err != nil {
		return nil, err
	}
	b, err := noise.New2D(cfg.Backend, cfg.FieldSize, rng.Source())
	if err != nil {
		return nil, err
	}
	swell := heightmap.Layered(heightmap.ScaleAmplitudes(heightmap.DefaultOctaves(a, b), cfg.Amplitude)...)
	out := make([]heightmap.Func, cfg.Layers)
	for i := range out {
		k := float32(i)
		out[i] = heightmap.Offset(
			heightmap.Translate(swell, k*cfg.Shift, k*cfg.Shift/2),
			cfg.SeaLevel+k*cfg.LayerSpacing,
		)
	}
	return out, nil
}

// Generate builds one mesh per layer with its layer material.
func (s *Surface) Generate(seed int64) ([]core.Artifact, error) {
	layers, err := Layers(seed, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("water: %w", err)
	}
	opts := mesh.Options{
		Width:  s.cfg.Width,
		Height: s.cfg.Height,
		Unit:   s.cfg.Unit,
		Kernel: mesh.Box3(),
	}
	arts := make([]core.Artifact, 0, len(layers))
	for i, h := range layers {
		m, err := mesh.Generate(opts, h)
		if err != nil {
			return nil, fmt.Errorf("water layer %d: %w", i, err)
		}
		arts = append(arts, core.Artifact{
			Name:     fmt.Sprintf("%s/%d", Name, i),
			Mesh:     m,
			Material: material.DefaultWater(i),
		})
	}
	return arts, nil
}

// Parameters reports the current configuration grouped for the HUD.
func (s *Surface) Parameters() core.ParameterSnapshot {
	c := s.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Water",
			Params: []core.Parameter{
				core.IntParam("water_w", "Width", c.Width),
				core.IntParam("water_h", "Height", c.Height),
				core.Float32Param("water_unit", "Unit", c.Unit),
				core.IntParam("water_layers", "Layers", c.Layers),
				core.Float32Param("sea", "Sea level", c.SeaLevel),
				core.Float32Param("water_spacing", "Layer spacing", c.LayerSpacing),
				core.Float32Param("water_shift", "Layer shift", c.Shift),
				core.StringParam("backend", "Backend", string(c.Backend)),
				core.IntParam("water_field_size", "Field size", c.FieldSize),
				core.Float32Param("water_amplitude", "Amplitude", c.Amplitude),
			},
		},
	}}
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Surface {
		return NewWithConfig(FromMap(cfg))
	})
}
