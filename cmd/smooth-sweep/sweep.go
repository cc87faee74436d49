package main

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"terragen/internal/surfaces/terrain"
	pcore "terragen/pkg/core"
	"terragen/pkg/mesh"
)

type kernelSet struct {
	kind   string
	radius int
	sigma  float32
}

func (k kernelSet) String() string {
	if k.kind == "box" {
		return "box3"
	}
	return fmt.Sprintf("%s r=%d σ=%.1f", k.kind, k.radius, k.sigma)
}

type runResult struct {
	kernel        kernelSet
	meanDeviation float64
	maxDeviation  float64
	cliffShare    float64
	elapsed       time.Duration
}

func (r runResult) String() string {
	return fmt.Sprintf("%-22s meanDev=%.4f maxDev=%.4f cliffs=%.2f%% elapsed=%s",
		r.kernel, r.meanDeviation, r.maxDeviation, 100*r.cliffShare, r.elapsed.Round(time.Millisecond))
}

// runKernel generates the terrain for seed with k applied and compares the
// smoothed normals against the raw face-accumulated ones.
func runKernel(base terrain.Config, k kernelSet, seed int64) (runResult, error) {
	cfg := base
	cfg.Kernel = k.kind
	cfg.SmoothRadius = k.radius
	cfg.SmoothSigma = k.sigma
	kernel, err := mesh.ParseKernel(cfg.Kernel, cfg.SmoothRadius, cfg.SmoothSigma)
	if err != nil {
		return runResult{}, err
	}
	h, err := terrain.Heightmap(pcore.NewRNG(seed), cfg)
	if err != nil {
		return runResult{}, err
	}

	start := time.Now()
	m, err := mesh.Build(cfg.Width, cfg.Height, cfg.Unit, h)
	if err != nil {
		return runResult{}, err
	}
	if err := m.AccumulateFaceNormals(); err != nil {
		return runResult{}, err
	}
	raw := append(m.Normals[:0:0], m.Normals...)
	m.Smooth(kernel)
	elapsed := time.Since(start)

	mean, worst := deviation(raw, m)
	cliffs := m.Histogram(cfg.Thresholds)[mesh.CategoryCliff]
	return runResult{
		kernel:        k,
		meanDeviation: mean,
		maxDeviation:  worst,
		cliffShare:    float64(cliffs) / float64(m.VertexCount()),
		elapsed:       elapsed,
	}, nil
}

// deviation returns the mean and largest angle in radians between raw and
// the mesh's current normals.
func deviation(raw []mgl32.Vec3, m *mesh.Mesh) (mean, worst float64) {
	if len(raw) == 0 {
		return 0, 0
	}
	sum := 0.0
	for i, n := range m.Normals {
		dot := math.Max(-1, math.Min(1, float64(n.Dot(raw[i]))))
		a := math.Acos(dot)
		sum += a
		worst = math.Max(worst, a)
	}
	return sum / float64(len(raw)), worst
}
