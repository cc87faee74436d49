//go:build ebiten

package render

import (
	"terragen/pkg/mesh"
	"terragen/pkg/volume"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter keeps one RGBA image for a top-down preview and re-uploads it only
// when the source or the view mode changes.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	lastMesh  *mesh.Mesh
	lastTex   *volume.Texture
	lastLayer int
	lastMode  ViewMode
}

// NewPainter allocates a painter for a w×h preview.
func NewPainter(w, h int) *Painter {
	return &Painter{w: w, h: h, buf: make([]byte, 4*w*h), img: ebiten.NewImage(w, h), lastLayer: -1}
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }

// BlitMesh draws m top-down, scaled by scale.
func (p *Painter) BlitMesh(dst *ebiten.Image, m *mesh.Mesh, mode ViewMode, light mgl32.Vec3, scale float64) {
	if m == nil {
		return
	}
	if w, h := MeshImageSize(m); w != p.w || h != p.h {
		return
	}
	if m != p.lastMesh || mode != p.lastMode {
		fillMeshRGBA(p.buf, m, mode, light)
		p.img.WritePixels(p.buf)
		p.lastMesh, p.lastTex, p.lastMode = m, nil, mode
	}
	p.draw(dst, scale)
}

// BlitSlice draws layer k of tex as grayscale.
func (p *Painter) BlitSlice(dst *ebiten.Image, tex *volume.Texture, k int, scale float64) {
	if tex == nil || int(tex.Dims[0]) != p.w || int(tex.Dims[1]) != p.h {
		return
	}
	if tex != p.lastTex || k != p.lastLayer {
		fillSliceRGBA(p.buf, tex, k)
		p.img.WritePixels(p.buf)
		p.lastTex, p.lastMesh, p.lastLayer = tex, nil, k
	}
	p.draw(dst, scale)
}

func (p *Painter) draw(dst *ebiten.Image, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(p.img, op)
}
