//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"terragen/pkg/mesh"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional debugging visuals on top of the mesh preview: slope
// arrows (key 1) and the classifier legend (key 2).
type Overlay struct {
	showSlope  bool
	showLegend bool
	pixel      *ebiten.Image

	samples    []slopeSample
	spacing    int
	cacheW     int
	cacheH     int
	legend     []legendRow
	legendMesh *mesh.Mesh
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{showLegend: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSlope = !o.showSlope
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showLegend = !o.showLegend
	}
}

// Draw renders the enabled layers for m at the given preview scale.
func (o *Overlay) Draw(screen *ebiten.Image, m *mesh.Mesh, th mesh.Thresholds, scale float64) {
	if m == nil {
		return
	}
	if o.showSlope {
		o.drawSlopes(screen, m, scale)
	}
	if o.showLegend {
		o.drawLegend(screen, m, th)
	}
}

func (o *Overlay) drawSlopes(screen *ebiten.Image, m *mesh.Mesh, scale float64) {
	w, h := m.Width+1, m.Height+1
	if o.cacheW != w || o.cacheH != h {
		o.samples, o.spacing = slopeSamples(w, h, 360)
		o.cacheW, o.cacheH = w, h
	}
	const (
		calmThreshold = 0.02
		headAngle     = math.Pi / 6
	)
	span := float64(o.spacing) * scale
	for _, s := range o.samples {
		n := m.Normals[m.Index(s.vx, s.vy)]
		dx, dy, steep := downhill(n[0], n[1], n[2])
		cx, cy := s.sx*scale, s.sy*scale
		if steep < calmThreshold {
			o.drawPoint(screen, cx, cy, math.Max(1, span*0.15), color.RGBA{R: 90, G: 130, B: 170, A: 120})
			continue
		}
		length := span * (0.3 + 0.4*math.Sqrt(steep))
		headLength := length * 0.3
		tipX, tipY := cx+dx*length*0.6, cy+dy*length*0.6
		tailX, tailY := cx-dx*length*0.4, cy-dy*length*0.4
		thickness := math.Max(1, scale*(0.65+0.4*steep))
		col := interpolateColor(steep)
		o.drawLine(screen, tailX, tailY, tipX-dx*headLength, tipY-dy*headLength, thickness, col)

		angle := math.Atan2(dy, dx)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle+headAngle)*headLength, tipY-math.Sin(angle+headAngle)*headLength, thickness*0.85, col)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle-headAngle)*headLength, tipY-math.Sin(angle-headAngle)*headLength, thickness*0.85, col)
	}
}

func (o *Overlay) drawLegend(screen *ebiten.Image, m *mesh.Mesh, th mesh.Thresholds) {
	if m != o.legendMesh {
		o.legend = legendRows(m.Histogram(th))
		o.legendMesh = m
	}
	face := basicfont.Face7x13
	const (
		x      = 10
		top    = 10
		row    = 16
		swatch = 10
	)
	o.drawRect(screen, x-4, top-4, 130, float64(len(o.legend)*row+8), color.RGBA{R: 10, G: 10, B: 14, A: 180})
	for i, r := range o.legend {
		y := top + i*row
		o.drawRect(screen, x, float64(y+2), swatch, swatch, r.color)
		text.Draw(screen, r.label, face, x+swatch+6, y+12, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	o.drawRect(screen, x-size*0.5, y-size*0.5, size, size, col)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 || thickness <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
