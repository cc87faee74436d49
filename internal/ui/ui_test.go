package ui

import (
	"math"
	"strings"
	"testing"

	"terragen/internal/core"
	"terragen/pkg/mesh"
)

func TestNextValueClampsAndRounds(t *testing.T) {
	radius := core.ParameterControl{Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 3, HasMax: true}
	if v, ok := nextValue(radius, 2, 1); !ok || v != 3 {
		t.Fatalf("step up = %v %v", v, ok)
	}
	if _, ok := nextValue(radius, 3, 1); ok {
		t.Fatalf("stepping past max reported a change")
	}
	if _, ok := nextValue(radius, 0, -1); ok {
		t.Fatalf("stepping past min reported a change")
	}
	sigma := core.ParameterControl{Type: core.ParamTypeFloat}
	if v, ok := nextValue(sigma, 1, -1); !ok || math.Abs(v-0.95) > 1e-9 {
		t.Fatalf("default float step = %v %v", v, ok)
	}
}

func TestFormatValue(t *testing.T) {
	if got := formatValue(core.ParameterControl{Type: core.ParamTypeInt}, 4); got != "4" {
		t.Fatalf("int = %q", got)
	}
	if got := formatValue(core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.5}, 3); got != "3.0" {
		t.Fatalf("float = %q", got)
	}
	if got := formatValue(core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.005}, 0.25); got != "0.250" {
		t.Fatalf("fine float = %q", got)
	}
}

func TestSlopeSamplesStayOnGrid(t *testing.T) {
	samples, spacing := slopeSamples(1001, 1001, 360)
	if spacing < 6 || spacing > 64 || len(samples) == 0 {
		t.Fatalf("spacing %d, %d samples", spacing, len(samples))
	}
	for _, s := range samples {
		if s.vx < 0 || s.vx > 1000 || s.vy < 0 || s.vy > 1000 {
			t.Fatalf("sample off grid: %+v", s)
		}
	}
	if s, _ := slopeSamples(0, 4, 360); s != nil {
		t.Fatalf("empty grid produced samples")
	}
}

func TestDownhill(t *testing.T) {
	if _, _, steep := downhill(0, 1, 0); steep != 0 {
		t.Fatalf("flat steepness = %v", steep)
	}
	dx, dy, steep := downhill(0.6, 0.8, 0)
	if math.Abs(dx-1) > 1e-6 || dy != 0 || math.Abs(steep-0.2) > 1e-6 {
		t.Fatalf("downhill = %v %v %v", dx, dy, steep)
	}
}

func TestLegendRows(t *testing.T) {
	rows := legendRows(map[mesh.Category]int{mesh.CategorySea: 1, mesh.CategoryPeak: 3})
	if len(rows) != 5 {
		t.Fatalf("got %d rows", len(rows))
	}
	if !strings.HasPrefix(rows[0].label, "sea") || !strings.Contains(rows[0].label, "25.0%") {
		t.Fatalf("sea row = %q", rows[0].label)
	}
	if !strings.Contains(rows[4].label, "75.0%") {
		t.Fatalf("peak row = %q", rows[4].label)
	}
	if rows := legendRows(nil); !strings.Contains(rows[0].label, "0.0%") {
		t.Fatalf("empty histogram row = %q", rows[0].label)
	}
}
