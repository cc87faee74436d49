package core

import (
	"sort"

	"terragen/pkg/mesh"
	"terragen/pkg/volume"
)

// Artifact is everything a surface hands to the renderer. Mesh and Volume
// are optional; Material is passed through untouched.
type Artifact struct {
	Name     string
	Mesh     *mesh.Mesh
	Volume   *volume.Texture
	Material any
}

// Surface defines the minimal contract a generated surface must implement.
type Surface interface {
	Name() string
	Generate(seed int64) ([]Artifact, error)
}

// Factory constructs a Surface using an optional configuration map.
type Factory func(cfg map[string]string) Surface

var surfaces = map[string]Factory{}

// Register adds a surface factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	surfaces[name] = f
}

// Surfaces exposes the registry of available surface factories.
func Surfaces() map[string]Factory {
	return surfaces
}

// SurfaceNames lists registered surfaces in lexical order.
func SurfaceNames() []string {
	names := make([]string, 0, len(surfaces))
	for name := range surfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
