package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"terragen/pkg/heightmap"
)

var (
	// ErrInvalidGrid reports negative dimensions or an unusable cell size.
	ErrInvalidGrid = errors.New("mesh: invalid grid")
	// ErrGridTooLarge reports a grid whose vertices cannot be addressed by uint32 indices.
	ErrGridTooLarge = errors.New("mesh: grid too large")
	// ErrInvariant reports a buffer whose sizes or indices disagree with its grid.
	ErrInvariant = errors.New("mesh: invariant violated")
	// ErrDegenerateNormal reports vertices that no triangle contributed to.
	ErrDegenerateNormal = errors.New("mesh: degenerate normal")
)

// Up is the mesh's vertical axis and the placeholder normal.
var Up = mgl32.Vec3{0, 1, 0}

// Mesh is a (Width+1)×(Height+1) vertex grid centred on the origin, triangulated
// into two triangles per cell. Heights lie along Y.
type Mesh struct {
	Width  int
	Height int
	Unit   float32

	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	// Colors is either empty or holds one RGBA per vertex.
	Colors  []mgl32.Vec4
	Indices []uint32
}

// Index returns the vertex slot for grid coordinate (x, y).
func (m *Mesh) Index(x, y int) int { return x*(m.Height+1) + y }

// VertexCount is (Width+1)*(Height+1).
func (m *Mesh) VertexCount() int { return (m.Width + 1) * (m.Height + 1) }

// Build samples h over the grid and emits positions, placeholder normals and
// the index buffer. Vertex (xi, yi) sits at ((xi−width/2)·unit, h, (yi−height/2)·unit).
func Build(width, height int, unit float32, h heightmap.Func) (*Mesh, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, width, height)
	}
	if !(unit > 0) || math.IsInf(float64(unit), 0) {
		return nil, fmt.Errorf("%w: unit %v", ErrInvalidGrid, unit)
	}
	if h == nil {
		return nil, fmt.Errorf("%w: nil heightmap", ErrInvalidGrid)
	}
	vertices := (width + 1) * (height + 1)
	if uint64(vertices) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d vertices", ErrGridTooLarge, vertices)
	}

	m := &Mesh{
		Width:     width,
		Height:    height,
		Unit:      unit,
		Positions: make([]mgl32.Vec3, vertices),
		Normals:   make([]mgl32.Vec3, vertices),
		Indices:   make([]uint32, 0, width*height*6),
	}

	halfW, halfH := float32(width)/2, float32(height)/2
	for xi := 0; xi <= width; xi++ {
		x := (float32(xi) - halfW) * unit
		for yi := 0; yi <= height; yi++ {
			y := (float32(yi) - halfH) * unit
			i := m.Index(xi, yi)
			m.Positions[i] = mgl32.Vec3{x, h(x, y), y}
			m.Normals[i] = Up
			if xi == 0 || yi == 0 {
				continue
			}
			// Quad between (xi-1, yi-1) and (xi, yi).
			a := uint32(m.Index(xi-1, yi-1))
			b := uint32(m.Index(xi-1, yi))
			c := uint32(i)
			d := uint32(m.Index(xi, yi-1))
			m.Indices = append(m.Indices, a, b, c, c, d, a)
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks buffer sizes against the grid and that every index
// addresses a vertex.
func (m *Mesh) Validate() error {
	n := m.VertexCount()
	if len(m.Positions) != n {
		return fmt.Errorf("%w: %d positions, want %d", ErrInvariant, len(m.Positions), n)
	}
	if len(m.Normals) != n {
		return fmt.Errorf("%w: %d normals, want %d", ErrInvariant, len(m.Normals), n)
	}
	if len(m.Colors) != 0 && len(m.Colors) != n {
		return fmt.Errorf("%w: %d colors, want %d", ErrInvariant, len(m.Colors), n)
	}
	if want := m.Width * m.Height * 6; len(m.Indices) != want {
		return fmt.Errorf("%w: %d indices, want %d", ErrInvariant, len(m.Indices), want)
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d at %d out of range", ErrInvariant, idx, i)
		}
	}
	return nil
}

// HeightRange returns the lowest and highest vertex heights.
func (m *Mesh) HeightRange() (lo, hi float32) {
	if len(m.Positions) == 0 {
		return 0, 0
	}
	lo, hi = m.Positions[0][1], m.Positions[0][1]
	for _, p := range m.Positions[1:] {
		if p[1] < lo {
			lo = p[1]
		}
		if p[1] > hi {
			hi = p[1]
		}
	}
	return lo, hi
}
