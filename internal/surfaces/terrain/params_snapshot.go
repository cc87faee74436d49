package terrain

import "terragen/internal/core"

// Parameters returns the current terrain tunables grouped for display.
func (s *Surface) Parameters() core.ParameterSnapshot {
	c := s.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "Height", c.Height),
				core.Float32Param("unit", "Unit", c.Unit),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				core.StringParam("backend", "Backend", string(c.Backend)),
				core.IntParam("fields", "Fields", c.Fields),
				core.IntParam("field_size", "Field size", c.FieldSize),
				core.Float32Param("amplitude", "Amplitude", c.Amplitude),
			},
		},
		{
			Name: "Normals",
			Params: []core.Parameter{
				core.StringParam("kernel", "Kernel", c.Kernel),
				core.IntParam("smooth_radius", "Smooth radius", c.SmoothRadius),
				core.Float32Param("smooth_sigma", "Smooth sigma", c.SmoothSigma),
			},
		},
		{
			Name: "Classifier",
			Params: []core.Parameter{
				core.BoolParam("classify", "Classify", c.Classify),
				core.Float32Param("sea", "Sea level", c.Thresholds.Sea),
				core.Float32Param("peak", "Peak height", c.Thresholds.Peak),
				core.Float32Param("steep", "Cliff slope", c.Thresholds.Steep),
				core.Float32Param("flat", "Flat slope", c.Thresholds.Flat),
			},
		},
	}}
}

// ParameterControls lists the tunables the preview HUD can nudge.
func (s *Surface) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "amplitude", Label: "Amplitude", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, HasMin: true, Max: 4, HasMax: true},
		{Key: "smooth_radius", Label: "Smooth radius", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 12, HasMax: true},
		{Key: "smooth_sigma", Label: "Smooth sigma", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, HasMin: true, Max: 12, HasMax: true},
		{Key: "sea", Label: "Sea level", Type: core.ParamTypeFloat, Step: 0.5},
		{Key: "peak", Label: "Peak height", Type: core.ParamTypeFloat, Step: 0.5},
	}
}
