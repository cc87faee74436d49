package ui

import (
	"fmt"
	"image/color"
	"math"

	"terragen/pkg/mesh"
)

type slopeSample struct {
	vx, vy int     // vertex grid coordinates
	sx, sy float64 // preview pixel centre before scaling
}

// slopeSamples spreads roughly target arrow anchors over a w×h vertex grid,
// centring the lattice.
func slopeSamples(w, h int, target float64) ([]slopeSample, int) {
	if w <= 0 || h <= 0 {
		return nil, 0
	}
	const (
		minSpacing = 6
		maxSpacing = 64
	)
	spacing := int(math.Sqrt(float64(w*h) / target))
	spacing = max(minSpacing, min(maxSpacing, spacing))

	countX := max(1, (w+spacing-1)/spacing)
	countY := max(1, (h+spacing-1)/spacing)
	startX := max(0, (w-1-(countX-1)*spacing)/2)
	startY := max(0, (h-1-(countY-1)*spacing)/2)

	out := make([]slopeSample, 0, countX*countY)
	for yi := 0; yi < countY; yi++ {
		y := min(h-1, startY+yi*spacing)
		for xi := 0; xi < countX; xi++ {
			x := min(w-1, startX+xi*spacing)
			out = append(out, slopeSample{vx: x, vy: y, sx: float64(x) + 0.5, sy: float64(y) + 0.5})
		}
	}
	return out, spacing
}

// downhill returns the unit horizontal direction a normal leans towards in
// preview space and how steep the surface is there, 0 for flat and 1 for
// vertical.
func downhill(nx, ny, nz float32) (dx, dy, steepness float64) {
	h := math.Hypot(float64(nx), float64(nz))
	if h < 1e-6 {
		return 0, 0, 0
	}
	steepness = clamp01(1 - math.Abs(float64(ny)))
	return float64(nx) / h, float64(nz) / h, steepness
}

type legendRow struct {
	label string
	color color.RGBA
}

// legendRows lists every category with its share of the histogram.
func legendRows(hist map[mesh.Category]int) []legendRow {
	total := 0
	for _, n := range hist {
		total += n
	}
	cats := []mesh.Category{mesh.CategorySea, mesh.CategoryCliff, mesh.CategoryFlat, mesh.CategorySlope, mesh.CategoryPeak}
	rows := make([]legendRow, 0, len(cats))
	for _, c := range cats {
		share := 0.0
		if total > 0 {
			share = 100 * float64(hist[c]) / float64(total)
		}
		col := c.Color()
		rows = append(rows, legendRow{
			label: fmt.Sprintf("%-5s %5.1f%%", c, share),
			color: color.RGBA{
				R: uint8(math.Round(float64(col[0]) * 255)),
				G: uint8(math.Round(float64(col[1]) * 255)),
				B: uint8(math.Round(float64(col[2]) * 255)),
				A: 255,
			},
		})
	}
	return rows
}

func interpolateColor(t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: uint8(math.Round(230 + 20*t)),
		G: uint8(math.Round(200 - 120*t)),
		B: uint8(math.Round(90 - 50*t)),
		A: uint8(math.Round(150 + 90*t)),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
