package app

import (
	"fmt"
	"maps"

	"terragen/internal/core"
)

// Session owns the surface being previewed and its latest artifacts. Every
// change of seed or override regenerates synchronously.
type Session struct {
	name      string
	seed      int64
	overrides map[string]string
	factory   core.Factory

	surface   core.Surface
	artifacts []core.Artifact
	current   int
	layer     int
}

// NewSession looks up name in the surface registry and generates it once.
func NewSession(name string, seed int64, overrides map[string]string) (*Session, error) {
	factory, ok := core.Surfaces()[name]
	if !ok {
		return nil, fmt.Errorf("unknown surface %q (have %v)", name, core.SurfaceNames())
	}
	s := &Session{name: name, seed: seed, overrides: maps.Clone(overrides), factory: factory}
	if s.overrides == nil {
		s.overrides = map[string]string{}
	}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate rebuilds the surface from the overrides and generates it with
// the current seed. On failure the previous artifacts are kept.
func (s *Session) Regenerate() error {
	surface := s.factory(maps.Clone(s.overrides))
	arts, err := surface.Generate(s.seed)
	if err != nil {
		return err
	}
	s.surface = surface
	s.artifacts = arts
	if s.current >= len(arts) {
		s.current = 0
	}
	return nil
}

// Reseed regenerates with a new seed.
func (s *Session) Reseed(seed int64) error {
	s.seed = seed
	return s.Regenerate()
}

// Apply sets one override and regenerates. A failed regeneration restores
// the previous value.
func (s *Session) Apply(key, value string) error {
	prev, had := s.overrides[key]
	s.overrides[key] = value
	if err := s.Regenerate(); err != nil {
		if had {
			s.overrides[key] = prev
		} else {
			delete(s.overrides, key)
		}
		return err
	}
	return nil
}

func (s *Session) Seed() int64           { return s.seed }
func (s *Session) Surface() core.Surface { return s.surface }

// Snapshot returns the surface's parameters, or an empty snapshot when it
// exposes none.
func (s *Session) Snapshot() core.ParameterSnapshot {
	if p, ok := s.surface.(core.ParameterProvider); ok {
		return p.Parameters()
	}
	return core.ParameterSnapshot{}
}

// Current returns the artifact being previewed.
func (s *Session) Current() (core.Artifact, bool) {
	if len(s.artifacts) == 0 {
		return core.Artifact{}, false
	}
	return s.artifacts[s.current], true
}

// Next cycles to the following artifact.
func (s *Session) Next() {
	if len(s.artifacts) > 0 {
		s.current = (s.current + 1) % len(s.artifacts)
	}
}

// Layer is the volume slice shown for volumetric artifacts.
func (s *Session) Layer() int { return s.layer }

// StepLayer moves the volume slice by delta, wrapping within the depth of
// the current volume.
func (s *Session) StepLayer(delta int) {
	a, ok := s.Current()
	if !ok || a.Volume == nil {
		return
	}
	depth := int(a.Volume.Dims[2])
	s.layer = ((s.layer+delta)%depth + depth) % depth
}

// artifactSize is the preview size of a: one pixel per vertex, or one per
// texel of a volume slice.
func artifactSize(a core.Artifact) (int, int) {
	switch {
	case a.Mesh != nil:
		return a.Mesh.Width + 1, a.Mesh.Height + 1
	case a.Volume != nil:
		return int(a.Volume.Dims[0]), int(a.Volume.Dims[1])
	default:
		return 0, 0
	}
}
