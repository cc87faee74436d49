package mesh

import "terragen/pkg/heightmap"

// Options configures the full mesh pipeline.
type Options struct {
	Width  int
	Height int
	Unit   float32

	Kernel Kernel

	Classify   bool
	Thresholds Thresholds
}

// DefaultOptions returns a 1000×1000 unit grid smoothed with a radius-4,
// σ=3 Gaussian and classified with the default thresholds.
func DefaultOptions() Options {
	return Options{
		Width:      1000,
		Height:     1000,
		Unit:       1,
		Kernel:     Gaussian(4, 3),
		Classify:   true,
		Thresholds: DefaultThresholds(),
	}
}

// Generate runs build → face normals → smoothing → optional classification.
func Generate(opts Options, h heightmap.Func) (*Mesh, error) {
	m, err := Build(opts.Width, opts.Height, opts.Unit, h)
	if err != nil {
		return nil, err
	}
	if err := m.AccumulateFaceNormals(); err != nil {
		return nil, err
	}
	m.Smooth(opts.Kernel)
	if opts.Classify {
		m.Colorize(opts.Thresholds)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
