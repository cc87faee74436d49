//go:build ebiten

package app

import (
	"fmt"
	"time"

	"terragen/internal/core"
	"terragen/internal/render"
	"terragen/internal/ui"
	"terragen/pkg/material"
	"terragen/pkg/mesh"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a generation session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	mode       render.ViewMode
	light      mgl32.Vec3
	scale      float64
	panelWidth int
}

// New constructs a Game previewing the session's surface.
func New(session *Session, scale float64, panelWidth int) *Game {
	g := &Game{
		session:    session,
		overlay:    ui.NewOverlay(),
		light:      material.DefaultTerrain().LightDir,
		scale:      scale,
		panelWidth: panelWidth,
	}
	g.hud = ui.NewHUD(session.Surface(), panelWidth, g.apply)
	return g
}

func (g *Game) apply(key, value string) {
	start := time.Now()
	if err := g.session.Apply(key, value); err != nil {
		g.hud.SetStatus(err.Error())
		return
	}
	g.hud.SetStatus(fmt.Sprintf("%s=%s in %s", key, value, time.Since(start).Round(time.Millisecond)))
}

func (g *Game) reseed(seed int64) {
	if err := g.session.Reseed(seed); err != nil {
		g.hud.SetStatus(err.Error())
		return
	}
	g.hud.SetStatus(fmt.Sprintf("seed %d", seed))
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reseed(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.mode = g.mode.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.session.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.session.StepLayer(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.session.StepLayer(-1)
	}
	g.overlay.Update()
	w, _ := g.previewSize()
	g.hud.Update(g.session.Snapshot(), w)
	return nil
}

// Draw renders the current artifact and the panel.
func (g *Game) Draw(screen *ebiten.Image) {
	a, ok := g.session.Current()
	if !ok {
		return
	}
	w, h := artifactSize(a)
	if g.painter == nil {
		g.painter = render.NewPainter(w, h)
	} else if pw, ph := g.painter.Size(); pw != w || ph != h {
		g.painter = render.NewPainter(w, h)
	}
	switch {
	case a.Mesh != nil:
		g.painter.BlitMesh(screen, a.Mesh, g.mode, g.light, g.scale)
		g.overlay.Draw(screen, a.Mesh, g.thresholds(a), g.scale)
	case a.Volume != nil:
		g.painter.BlitSlice(screen, a.Volume, g.session.Layer(), g.scale)
	}
	pw, ph := g.previewSize()
	g.hud.Draw(screen, pw, ph)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.previewSize()
	return w + g.panelWidth, max(h, 480)
}

func (g *Game) previewSize() (int, int) {
	a, ok := g.session.Current()
	if !ok {
		return 0, 0
	}
	w, h := artifactSize(a)
	return int(float64(w) * g.scale), int(float64(h) * g.scale)
}

func (g *Game) thresholds(a core.Artifact) mesh.Thresholds {
	if m, ok := a.Material.(material.Terrain); ok {
		return mesh.Thresholds{Sea: m.SeaHeight, Peak: m.PeakHeight, Steep: m.CliffSlope, Flat: m.SteepSlope}
	}
	return mesh.DefaultThresholds()
}
