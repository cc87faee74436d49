package mesh

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// AccumulateFaceNormals replaces Normals with the renormalized sum of the face
// normals around each vertex. Every adjacent face counts once, whatever its
// area or opening angle.
func (m *Mesh) AccumulateFaceNormals() error {
	if err := m.Validate(); err != nil {
		return err
	}
	acc := make([]mgl32.Vec3, len(m.Positions))
	touched := make([]bool, len(m.Positions))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		ia, ib, ic := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		touched[ia], touched[ib], touched[ic] = true, true, true
		a, b, c := m.Positions[ia], m.Positions[ib], m.Positions[ic]
		n, ok := normalize(c.Sub(a).Cross(a.Sub(b)))
		if !ok {
			continue
		}
		acc[ia] = acc[ia].Add(n)
		acc[ib] = acc[ib].Add(n)
		acc[ic] = acc[ic].Add(n)
	}

	untouched := 0
	for i, v := range acc {
		if len(m.Indices) > 0 && !touched[i] {
			untouched++
		}
		n, ok := normalize(v)
		if !ok {
			n = Up
		}
		m.Normals[i] = n
	}
	if untouched > 0 {
		return fmt.Errorf("%w: %d vertices outside every triangle", ErrDegenerateNormal, untouched)
	}
	return nil
}

// Kernel is a square convolution stencil of side 2·Radius+1. Weights are
// stored row by row (dy outer, dx inner) and need not sum to one.
type Kernel struct {
	Radius  int
	Weights []float32
}

// None disables smoothing.
func None() Kernel { return Kernel{} }

// Box3 is the 3×3 stencil {centre 4, edges 2, diagonals 1}.
func Box3() Kernel {
	return Kernel{Radius: 1, Weights: []float32{
		1, 2, 1,
		2, 4, 2,
		1, 2, 1,
	}}
}

// Gaussian builds an unnormalized stencil exp(−(dx²+dy²)/2σ²). Non-positive
// sigma falls back to one; negative radius to zero.
func Gaussian(radius int, sigma float32) Kernel {
	if radius < 0 {
		radius = 0
	}
	if !(sigma > 0) {
		sigma = 1
	}
	side := 2*radius + 1
	k := Kernel{Radius: radius, Weights: make([]float32, side*side)}
	den := 2 * float64(sigma) * float64(sigma)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			k.Weights[(dy+radius)*side+dx+radius] = float32(math.Exp(-d2 / den))
		}
	}
	return k
}

// ParseKernel resolves a kernel by name: "gaussian", "box" or "none".
func ParseKernel(kind string, radius int, sigma float32) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "gaussian", "":
		return Gaussian(radius, sigma), nil
	case "box":
		return Box3(), nil
	case "none":
		return None(), nil
	default:
		return Kernel{}, fmt.Errorf("mesh: unknown kernel %q", kind)
	}
}

// Weight returns the stencil weight at offset (dx, dy), zero outside it.
func (k Kernel) Weight(dx, dy int) float32 {
	if dx < -k.Radius || dx > k.Radius || dy < -k.Radius || dy > k.Radius {
		return 0
	}
	side := 2*k.Radius + 1
	if len(k.Weights) != side*side {
		return 0
	}
	return k.Weights[(dy+k.Radius)*side+dx+k.Radius]
}

// Smooth convolves Normals over the grid with k and renormalizes. Neighbours
// past the border are clamped to the edge vertex. An empty kernel leaves the
// normals untouched.
func (m *Mesh) Smooth(k Kernel) {
	side := 2*k.Radius + 1
	if len(k.Weights) == 0 || len(k.Weights) != side*side {
		return
	}
	out := make([]mgl32.Vec3, len(m.Normals))
	for xi := 0; xi <= m.Width; xi++ {
		for yi := 0; yi <= m.Height; yi++ {
			var sum mgl32.Vec3
			for dy := -k.Radius; dy <= k.Radius; dy++ {
				cy := clampInt(yi+dy, 0, m.Height)
				row := (dy + k.Radius) * side
				for dx := -k.Radius; dx <= k.Radius; dx++ {
					w := k.Weights[row+dx+k.Radius]
					if w == 0 {
						continue
					}
					cx := clampInt(xi+dx, 0, m.Width)
					sum = sum.Add(m.Normals[m.Index(cx, cy)].Mul(w))
				}
			}
			i := m.Index(xi, yi)
			n, ok := normalize(sum)
			if !ok {
				n = m.Normals[i]
			}
			out[i] = n
		}
	}
	m.Normals = out
}

// normalize scales v to unit length, reporting false for a zero or
// non-finite vector. The length is taken in float64 so axis-aligned inputs
// come back exact.
func normalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	x, y, z := float64(v[0]), float64(v[1]), float64(v[2])
	l := math.Sqrt(x*x + y*y + z*z)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl32.Vec3{}, false
	}
	return mgl32.Vec3{float32(x / l), float32(y / l), float32(z / l)}, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
