//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"terragen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// ApplyFunc receives a HUD adjustment as a FromMap-style key/value pair.
type ApplyFunc func(key, value string)

// HUD renders the parameter panel to the right of the preview.
type HUD struct {
	title    string
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	controls []hudControlState
	apply    ApplyFunc
	offsetX  int
	status   string
}

// NewHUD constructs a HUD for the surface's adjustable controls. Adjustments
// are reported through apply; the caller regenerates and feeds the new
// snapshot back through Update.
func NewHUD(surface core.Surface, width int, apply ApplyFunc) *HUD {
	h := &HUD{title: "Controls", width: max(width, 0), apply: apply}
	if surface != nil && surface.Name() != "" {
		h.title = fmt.Sprintf("%s controls", surface.Name())
	}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := surface.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
		h.layoutControls()
	}
	return h
}

// SetStatus shows a one-line message under the controls.
func (h *HUD) SetStatus(s string) {
	if h != nil {
		h.status = s
	}
}

// Update refreshes the displayed values and handles clicks.
func (h *HUD) Update(snapshot core.ParameterSnapshot, panelOffsetX int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			continue
		}
		state.number = parsed
		state.value = formatValue(state.control, parsed)
		state.hasValue = true
	}
	h.handleInput()
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.apply == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	px := mx - h.offsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		switch {
		case pointInRect(px, my, state.minusRect):
			h.adjust(state, -1)
			return
		case pointInRect(px, my, state.plusRect):
			h.adjust(state, 1)
			return
		}
	}
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	target, ok := nextValue(state.control, state.number, direction)
	if !ok {
		return
	}
	state.number = target
	state.value = formatValue(state.control, target)
	if state.control.Type == core.ParamTypeInt {
		h.apply(state.control.Key, strconv.Itoa(int(target)))
		return
	}
	h.apply(state.control.Key, strconv.FormatFloat(target, 'f', -1, 64))
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, canDown := nextValue(state.control, state.number, -1)
		_, canUp := nextValue(state.control, state.number, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && canDown)
		h.drawButton(state.plusRect, "+", state.hasValue && canUp)
	}
	if h.status != "" {
		y := controlsTop + len(h.controls)*lineHeight + labelBaseline
		text.Draw(h.panel, h.status, face, panelPadding, y, color.RGBA{R: 170, G: 190, B: 170, A: 255})
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	number   float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)
