package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"terragen/pkg/mesh"
	"terragen/pkg/volume"
)

// ViewMode selects how a mesh is flattened into the top-down preview.
type ViewMode uint8

const (
	ViewClasses ViewMode = iota
	ViewHeight
	ViewShaded
	ViewNormals
	viewModeCount
)

var viewModeNames = [...]string{"classes", "height", "shaded", "normals"}

func (v ViewMode) String() string {
	if int(v) < len(viewModeNames) {
		return viewModeNames[v]
	}
	return "unknown"
}

// Next cycles to the following view mode.
func (v ViewMode) Next() ViewMode { return (v + 1) % viewModeCount }

// MeshImageSize is the preview size of m: one pixel per vertex.
func MeshImageSize(m *mesh.Mesh) (int, int) { return m.Width + 1, m.Height + 1 }

// fillMeshRGBA writes one RGBA pixel per vertex of m into buf, row-major with
// the mesh x axis horizontal. Meshes without colors fall back to shading in
// ViewClasses.
func fillMeshRGBA(buf []byte, m *mesh.Mesh, mode ViewMode, light mgl32.Vec3) {
	w, h := MeshImageSize(m)
	if len(buf) < 4*w*h {
		return
	}
	lo, hi := m.HeightRange()
	span := hi - lo
	if mode == ViewClasses && len(m.Colors) != m.VertexCount() {
		mode = ViewShaded
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := m.Index(x, y)
			var c color.RGBA
			switch mode {
			case ViewClasses:
				c = vec4RGBA(m.Colors[i])
			case ViewHeight:
				v := float32(0)
				if span > 0 {
					v = (m.Positions[i][1] - lo) / span
				}
				c = gray(v)
			case ViewShaded:
				c = gray(0.15 + 0.85*max(0, m.Normals[i].Dot(light)))
			case ViewNormals:
				n := m.Normals[i]
				c = vec4RGBA(mgl32.Vec4{n[0]*0.5 + 0.5, n[1]*0.5 + 0.5, n[2]*0.5 + 0.5, 1})
			}
			base := 4 * (y*w + x)
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}

// fillSliceRGBA writes layer k of tex as grayscale, normalized over the
// layer's own range.
func fillSliceRGBA(buf []byte, tex *volume.Texture, k int) {
	s := int(tex.Dims[0])
	if len(buf) < 4*s*s || k < 0 || k >= int(tex.Dims[2]) {
		return
	}
	lo, hi := float32(math.Inf(1)), float32(math.Inf(-1))
	for j := 0; j < s; j++ {
		for i := 0; i < s; i++ {
			v := tex.At(i, j, k)
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	span := hi - lo
	for j := 0; j < s; j++ {
		for i := 0; i < s; i++ {
			v := float32(0)
			if span > 0 {
				v = (tex.At(i, j, k) - lo) / span
			}
			c := gray(v)
			base := 4 * (j*s + i)
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}

func gray(v float32) color.RGBA {
	g := to8(v)
	return color.RGBA{R: g, G: g, B: g, A: 255}
}

func vec4RGBA(c mgl32.Vec4) color.RGBA {
	return color.RGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

func to8(v float32) uint8 {
	return uint8(math.Round(float64(mgl32.Clamp(v, 0, 1)) * 255))
}
