package ui

import (
	"image"
	"math"
	"strconv"

	"terragen/internal/core"
)

// nextValue steps v once in direction and clamps it; ok is false when the
// clamp leaves the value unchanged.
func nextValue(ctrl core.ParameterControl, v float64, direction int) (float64, bool) {
	step := ctrl.Step
	if ctrl.Type == core.ParamTypeInt {
		step = math.Max(1, math.Round(step))
	} else if step <= 0 {
		step = 0.05
	}
	target := ctrl.Clamp(v + float64(direction)*step)
	if ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	return target, math.Abs(target-v) > 1e-9
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(v))
	}
	precision := 1
	switch {
	case ctrl.Step > 0 && ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step > 0 && ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
