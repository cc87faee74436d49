//go:build !ebiten

package ui

import "terragen/internal/core"

// ApplyFunc receives a HUD adjustment as a FromMap-style key/value pair.
type ApplyFunc func(key, value string)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Surface, int, ApplyFunc) *HUD { return nil }

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(string) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(core.ParameterSnapshot, int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
