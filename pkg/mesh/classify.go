package mesh

import "github.com/go-gl/mathgl/mgl32"

// Category is the terrain class assigned to a vertex.
type Category uint8

const (
	CategorySea Category = iota
	CategoryCliff
	CategoryFlat
	CategorySlope
	CategoryPeak
)

var categoryNames = [...]string{"sea", "cliff", "flat", "slope", "peak"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Color returns the vertex color used for the category.
func (c Category) Color() mgl32.Vec4 {
	switch c {
	case CategorySea:
		return mgl32.Vec4{0.10, 0.25, 0.55, 1}
	case CategoryCliff:
		return mgl32.Vec4{0.45, 0.45, 0.45, 1}
	case CategoryFlat:
		return mgl32.Vec4{0.45, 0.75, 0.30, 1}
	case CategorySlope:
		return mgl32.Vec4{0.25, 0.55, 0.20, 1}
	case CategoryPeak:
		return mgl32.Vec4{0.95, 0.95, 0.97, 1}
	default:
		return mgl32.Vec4{1, 0, 1, 1}
	}
}

// Thresholds drive Classify. Sea and Peak are heights; Steep and Flat are
// bounds on the normal's Y component.
type Thresholds struct {
	Sea   float32
	Peak  float32
	Steep float32
	Flat  float32
}

// DefaultThresholds returns the standard ladder.
func DefaultThresholds() Thresholds {
	return Thresholds{Sea: -14.5, Peak: 24, Steep: 0.7, Flat: 0.98}
}

// Classify places a vertex of height h and normal Y component ny on the ladder
// sea → cliff → flat/slope → peak.
func Classify(h, ny float32, t Thresholds) Category {
	switch {
	case h < t.Sea:
		return CategorySea
	case ny < t.Steep:
		return CategoryCliff
	case h < t.Peak:
		if ny > t.Flat {
			return CategoryFlat
		}
		return CategorySlope
	default:
		return CategoryPeak
	}
}

// Colorize fills Colors from the current positions and normals.
func (m *Mesh) Colorize(t Thresholds) {
	if len(m.Colors) != len(m.Positions) {
		m.Colors = make([]mgl32.Vec4, len(m.Positions))
	}
	for i, p := range m.Positions {
		m.Colors[i] = Classify(p[1], m.Normals[i][1], t).Color()
	}
}

// Histogram counts vertices per category.
func (m *Mesh) Histogram(t Thresholds) map[Category]int {
	counts := make(map[Category]int, len(categoryNames))
	for i, p := range m.Positions {
		counts[Classify(p[1], m.Normals[i][1], t)]++
	}
	return counts
}
