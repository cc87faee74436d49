package terrain

import (
	"terragen/internal/core"
	"terragen/pkg/mesh"
	"terragen/pkg/noise"
)

// Config controls the terrain heightmap and mesh pipeline.
type Config struct {
	Width  int
	Height int
	Unit   float32

	Backend   noise.Backend
	Fields    int
	FieldSize int
	Amplitude float32

	Kernel       string
	SmoothRadius int
	SmoothSigma  float32

	Classify   bool
	Thresholds mesh.Thresholds
}

// DefaultConfig returns the stock 1000×1000 terrain.
func DefaultConfig() Config {
	return Config{
		Width:        1000,
		Height:       1000,
		Unit:         1,
		Backend:      noise.BackendGradient,
		Fields:       2,
		FieldSize:    100,
		Amplitude:    1,
		Kernel:       "gaussian",
		SmoothRadius: 4,
		SmoothSigma:  3,
		Classify:     true,
		Thresholds:   mesh.DefaultThresholds(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.OverrideInt(cfg, "w", &c.Width, core.Positive)
	core.OverrideInt(cfg, "h", &c.Height, core.Positive)
	core.OverrideFloat32(cfg, "unit", &c.Unit, core.Positive)
	if v, ok := cfg["backend"]; ok {
		if b, err := noise.ParseBackend(v); err == nil {
			c.Backend = b
		}
	}
	core.OverrideInt(cfg, "fields", &c.Fields, core.Positive)
	core.OverrideInt(cfg, "field_size", &c.FieldSize, core.Positive)
	core.OverrideFloat32(cfg, "amplitude", &c.Amplitude, core.NonNegative)
	if v, ok := cfg["kernel"]; ok {
		if _, err := mesh.ParseKernel(v, 1, 1); err == nil {
			c.Kernel = v
		}
	}
	core.OverrideInt(cfg, "smooth_radius", &c.SmoothRadius, core.NonNegative)
	core.OverrideFloat32(cfg, "smooth_sigma", &c.SmoothSigma, core.Positive)
	core.OverrideBool(cfg, "classify", &c.Classify)
	core.OverrideFloat32(cfg, "sea", &c.Thresholds.Sea, nil)
	core.OverrideFloat32(cfg, "peak", &c.Thresholds.Peak, nil)
	core.OverrideFloat32(cfg, "steep", &c.Thresholds.Steep, nil)
	core.OverrideFloat32(cfg, "flat", &c.Thresholds.Flat, nil)
	if c.Thresholds.Peak < c.Thresholds.Sea {
		c.Thresholds.Peak = c.Thresholds.Sea
	}
	return c
}

// MeshOptions translates the config into mesh pipeline options.
func (c Config) MeshOptions() (mesh.Options, error) {
	k, err := mesh.ParseKernel(c.Kernel, c.SmoothRadius, c.SmoothSigma)
	if err != nil {
		return mesh.Options{}, err
	}
	return mesh.Options{
		Width:      c.Width,
		Height:     c.Height,
		Unit:       c.Unit,
		Kernel:     k,
		Classify:   c.Classify,
		Thresholds: c.Thresholds,
	}, nil
}
