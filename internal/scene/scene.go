// Package scene generates every registered surface of the world in a fixed
// order.
package scene

import (
	"fmt"
	"maps"

	"terragen/internal/core"
	"terragen/internal/surfaces/rock"
	"terragen/internal/surfaces/sky"
	"terragen/internal/surfaces/terrain"
	"terragen/internal/surfaces/water"
)

// Order is the generation order. Rock reads the terrain keys so its band
// tracks the terrain it overlays.
var Order = []string{terrain.Name, rock.Name, water.Name, sky.Name}

// Overrides are flag-style settings shared by every surface. Each surface
// picks out the keys it knows.
type Overrides map[string]string

// Result holds the artifacts of one scene in generation order.
type Result struct {
	Seed      int64
	Artifacts []core.Artifact
}

// Find returns the first artifact with the given name.
func (r Result) Find(name string) (core.Artifact, bool) {
	for _, a := range r.Artifacts {
		if a.Name == name {
			return a, true
		}
	}
	return core.Artifact{}, false
}

// Generate builds the named surfaces, or all of Order when names is empty,
// sequentially. The first failure aborts the scene.
func Generate(seed int64, overrides Overrides, names ...string) (Result, error) {
	if len(names) == 0 {
		names = Order
	}
	res := Result{Seed: seed}
	registry := core.Surfaces()
	for _, name := range names {
		factory, ok := registry[name]
		if !ok {
			return Result{}, fmt.Errorf("scene: unknown surface %q", name)
		}
		s := factory(maps.Clone(overrides))
		arts, err := s.Generate(seed)
		if err != nil {
			return Result{}, err
		}
		res.Artifacts = append(res.Artifacts, arts...)
	}
	return res, nil
}
