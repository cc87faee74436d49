// Package sky packs the cloud density volume sampled by the ray-marched sky
// box.
package sky

import (
	"fmt"

	"terragen/internal/core"
	pcore "terragen/pkg/core"
	"terragen/pkg/heightmap"
	"terragen/pkg/material"
	"terragen/pkg/noise"
	"terragen/pkg/volume"
)

// Name is the registry key of the cloud volume.
const Name = "sky"

// Config controls the packed volume and the sky box it fills.
type Config struct {
	Size      int
	Step      float32
	Format    volume.Format
	Backend   noise.Backend
	BiasScale float32

	BoxWidth      float32
	BoxHalfHeight float32
}

// DefaultConfig packs a 64³ lattice with two world units per texel. The 3D
// field's period is the sampled span.
func DefaultConfig() Config {
	return Config{
		Size:          64,
		Step:          2,
		Format:        volume.R32F,
		Backend:       noise.BackendGradient,
		BiasScale:     16384,
		BoxWidth:      2048,
		BoxHalfHeight: 200,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.OverrideInt(cfg, "sky_size", &c.Size, core.Positive)
	core.OverrideFloat32(cfg, "sky_step", &c.Step, core.Positive)
	if v, ok := cfg["sky_format"]; ok {
		if f, err := volume.ParseFormat(v); err == nil {
			c.Format = f
		}
	}
	if v, ok := cfg["backend"]; ok {
		if b, err := noise.ParseBackend(v); err == nil {
			c.Backend = b
		}
	}
	core.OverrideFloat32(cfg, "sky_bias", &c.BiasScale, core.NonNegative)
	core.OverrideFloat32(cfg, "sky_width", &c.BoxWidth, core.Positive)
	core.OverrideFloat32(cfg, "sky_half_height", &c.BoxHalfHeight, core.Positive)
	return c
}

// Surface generates the sky from a fixed Config.
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

// Density layers the default octaves over one 3D field and fades density
// away from the middle of the volume. The field is drawn from the sky
// substream of seed.
func Density(seed int64, cfg Config) (heightmap.Func3, error) {
	period := int(float32(cfg.Size) * cfg.Step)
	field, err := noise.New3D(cfg.Backend, period, pcore.NewRNG(pcore.Stream(seed, Name)).Source())
	if err != nil {
		return nil, err
	}
	mid := float32(cfg.Size) * cfg.Step / 2
	return heightmap.Sum3(
		heightmap.Layered3(heightmap.DefaultOctaves3(field)...),
		heightmap.VerticalBias(mid, cfg.BiasScale),
	), nil
}

// Generate packs the density volume and the sky box material.
func (s *Surface) Generate(seed int64) ([]core.Artifact, error) {
	density, err := Density(seed, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("sky: %w", err)
	}
	tex, err := volume.Pack(s.cfg.Size, s.cfg.Step, density, s.cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("sky: %w", err)
	}
	mat := material.DefaultSky(s.cfg.BoxWidth, s.cfg.BoxHalfHeight)
	return []core.Artifact{{Name: Name, Volume: tex, Material: mat}}, nil
}

// Parameters reports the current configuration grouped for the HUD.
func (s *Surface) Parameters() core.ParameterSnapshot {
	c := s.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Sky",
			Params: []core.Parameter{
				core.IntParam("sky_size", "Lattice size", c.Size),
				core.Float32Param("sky_step", "Step", c.Step),
				core.StringParam("sky_format", "Format", c.Format.String()),
				core.StringParam("backend", "Backend", string(c.Backend)),
				core.Float32Param("sky_bias", "Vertical bias", c.BiasScale),
				core.Float32Param("sky_width", "Box width", c.BoxWidth),
				core.Float32Param("sky_half_height", "Box half height", c.BoxHalfHeight),
			},
		},
	}}
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Surface {
		return NewWithConfig(FromMap(cfg))
	})
}
