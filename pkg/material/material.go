// Package material holds the shading parameters handed to the renderer next
// to each generated buffer. Nothing in this module interprets them beyond
// mirroring the classifier thresholds.
package material

import (
	"github.com/go-gl/mathgl/mgl32"

	"terragen/pkg/mesh"
)

// Terrain parameterizes the terrain shader's height/slope blending.
type Terrain struct {
	PeakHeight   float32
	PeakWidth    float32
	CliffSlope   float32
	CliffWidth   float32
	SteepSlope   float32
	SteepWidth   float32
	SeaHeight    float32
	SeaWidth     float32
	LightDir     mgl32.Vec3
	Ambient      mgl32.Vec4
	Diffuse      mgl32.Vec4
	PeakColor    mgl32.Vec4
	CliffColor   mgl32.Vec4
	GrassColor   mgl32.Vec4
	SeaColor     mgl32.Vec4
	UseVertexRGB bool
}

// DefaultTerrain mirrors mesh.DefaultThresholds so shader and CPU colors agree.
func DefaultTerrain() Terrain {
	th := mesh.DefaultThresholds()
	return Terrain{
		PeakHeight:   th.Peak,
		PeakWidth:    2,
		CliffSlope:   th.Steep,
		CliffWidth:   0.05,
		SteepSlope:   th.Flat,
		SteepWidth:   0.01,
		SeaHeight:    th.Sea,
		SeaWidth:     0.5,
		LightDir:     mgl32.Vec3{0.3, 1, 0.2}.Normalize(),
		Ambient:      mgl32.Vec4{0.2, 0.2, 0.25, 1},
		Diffuse:      mgl32.Vec4{0.9, 0.88, 0.8, 1},
		PeakColor:    mesh.CategoryPeak.Color(),
		CliffColor:   mesh.CategoryCliff.Color(),
		GrassColor:   mesh.CategorySlope.Color(),
		SeaColor:     mesh.CategorySea.Color(),
		UseVertexRGB: true,
	}
}

// WithThresholds returns a copy whose blend heights and slopes follow th.
func (t Terrain) WithThresholds(th mesh.Thresholds) Terrain {
	t.PeakHeight = th.Peak
	t.CliffSlope = th.Steep
	t.SteepSlope = th.Flat
	t.SeaHeight = th.Sea
	return t
}

// Rock shades the exposed-rock overlay. Fragments below Cutoff are discarded,
// which hides the out-of-band sentinel vertices.
type Rock struct {
	Color    mgl32.Vec4
	Ambient  mgl32.Vec4
	LightDir mgl32.Vec3
	Cutoff   float32
}

// DefaultRock discards everything below cutoff.
func DefaultRock(cutoff float32) Rock {
	return Rock{
		Color:    mgl32.Vec4{0.42, 0.4, 0.38, 1},
		Ambient:  mgl32.Vec4{0.2, 0.2, 0.25, 1},
		LightDir: mgl32.Vec3{0.3, 1, 0.2}.Normalize(),
		Cutoff:   cutoff,
	}
}

// Water parameterizes one translucent water layer.
type Water struct {
	Color    mgl32.Vec4
	Opacity  float32
	Specular float32
	LightDir mgl32.Vec3
	Layer    int
}

// DefaultWater returns the shared water look for layer i.
func DefaultWater(layer int) Water {
	return Water{
		Color:    mgl32.Vec4{0.12, 0.32, 0.6, 1},
		Opacity:  0.35,
		Specular: 0.6,
		LightDir: mgl32.Vec3{0.3, 1, 0.2}.Normalize(),
		Layer:    layer,
	}
}

// AddressMode is a texture coordinate wrap rule.
type AddressMode uint8

const (
	AddressRepeat AddressMode = iota
	AddressClamp
)

// FilterMode is a texture filter.
type FilterMode uint8

const (
	FilterLinear FilterMode = iota
	FilterNearest
)

// Sampler describes how the renderer samples a packed volume.
type Sampler struct {
	AddressU, AddressV, AddressW AddressMode
	Mag, Min, Mip                FilterMode
	LodMin, LodMax               float32
}

// RepeatLinear wraps on every axis with linear filtering, matching the
// periodic noise inside the volume.
func RepeatLinear() Sampler {
	return Sampler{
		AddressU: AddressRepeat, AddressV: AddressRepeat, AddressW: AddressRepeat,
		Mag: FilterLinear, Min: FilterLinear, Mip: FilterLinear,
		LodMin: 1, LodMax: 1,
	}
}

// Sky parameterizes the ray-marched sky volume.
type Sky struct {
	StepSize    float32
	NoiseSize   float32
	NoiseScale  float32
	NoiseScroll float32
	NoiseBias   float32
	NoiseThresh float32
	StepCount   uint32
	CameraPos   mgl32.Vec3
	BoxMin      mgl32.Vec3
	BoxMax      mgl32.Vec3
	Sampler     Sampler
}

// DefaultSky returns the stock ray-march settings for a box of the given
// horizontal width and half height.
func DefaultSky(width, halfHeight float32) Sky {
	corner := mgl32.Vec3{width / 2, halfHeight, width / 2}
	return Sky{
		StepSize:    1,
		NoiseSize:   1,
		NoiseScale:  0.03,
		NoiseThresh: 10,
		StepCount:   200,
		BoxMin:      corner.Mul(-1),
		BoxMax:      corner,
		Sampler:     RepeatLinear(),
	}
}
