// Package heightmap composes noise samplers into scalar height and density
// functions. Every Func is pure: it only reads the immutable samplers it
// captured, so composed functions can be evaluated in any order.
package heightmap

import (
	"math"

	"terragen/pkg/noise"
)

// Func maps a horizontal position to a height.
type Func func(x, y float32) float32

// Func3 maps a point in space to a density.
type Func3 func(x, y, z float32) float32

// Octave is one noise layer: Source sampled at (x/Divisor, y/Divisor) and
// scaled by Amplitude.
type Octave struct {
	Source    noise.Sampler2D
	Divisor   float32
	Amplitude float32
}

// Octave3 is the volumetric counterpart of Octave.
type Octave3 struct {
	Source    noise.Sampler3D
	Divisor   float32
	Amplitude float32
}

// Standard octave table: wavelength and amplitude grow together so the
// coarse layers dominate the shape and the fine ones add detail.
var (
	DefaultDivisors   = []float32{3, 13, 43, 197}
	DefaultAmplitudes = []float32{1, 4, 16, 64}
)

// DefaultOctaves spreads the given sources round-robin over the standard
// octave table. It returns nil when no sources are given.
func DefaultOctaves(sources ...noise.Sampler2D) []Octave {
	if len(sources) == 0 {
		return nil
	}
	octaves := make([]Octave, len(DefaultDivisors))
	for i := range octaves {
		octaves[i] = Octave{
			Source:    sources[i%len(sources)],
			Divisor:   DefaultDivisors[i],
			Amplitude: DefaultAmplitudes[i],
		}
	}
	return octaves
}

// DefaultOctaves3 is DefaultOctaves for volumetric sources.
func DefaultOctaves3(sources ...noise.Sampler3D) []Octave3 {
	if len(sources) == 0 {
		return nil
	}
	octaves := make([]Octave3, len(DefaultDivisors))
	for i := range octaves {
		octaves[i] = Octave3{
			Source:    sources[i%len(sources)],
			Divisor:   DefaultDivisors[i],
			Amplitude: DefaultAmplitudes[i],
		}
	}
	return octaves
}

// ScaleAmplitudes returns a copy of octaves with every amplitude multiplied
// by k.
func ScaleAmplitudes(octaves []Octave, k float32) []Octave {
	out := make([]Octave, len(octaves))
	for i, o := range octaves {
		o.Amplitude *= k
		out[i] = o
	}
	return out
}

// AmplitudeBound is the sum of absolute amplitudes, an upper bound on
// |Layered(octaves)| for sources bounded by one.
func AmplitudeBound(octaves []Octave) float32 {
	var sum float32
	for _, o := range octaves {
		sum += float32(math.Abs(float64(o.Amplitude)))
	}
	return sum
}

// Layered sums the octaves. A zero divisor is treated as one.
func Layered(octaves ...Octave) Func {
	layers := append([]Octave(nil), octaves...)
	for i := range layers {
		if layers[i].Divisor == 0 {
			layers[i].Divisor = 1
		}
	}
	return func(x, y float32) float32 {
		var h float32
		for _, o := range layers {
			h += o.Source.Sample(x/o.Divisor, y/o.Divisor) * o.Amplitude
		}
		return h
	}
}

// Layered3 sums volumetric octaves.
func Layered3(octaves ...Octave3) Func3 {
	layers := append([]Octave3(nil), octaves...)
	for i := range layers {
		if layers[i].Divisor == 0 {
			layers[i].Divisor = 1
		}
	}
	return func(x, y, z float32) float32 {
		var d float32
		for _, o := range layers {
			d += o.Source.Sample(x/o.Divisor, y/o.Divisor, z/o.Divisor) * o.Amplitude
		}
		return d
	}
}

// Sum adds the functions pointwise.
func Sum(fns ...Func) Func {
	fns = append([]Func(nil), fns...)
	return func(x, y float32) float32 {
		var h float32
		for _, fn := range fns {
			h += fn(x, y)
		}
		return h
	}
}

// Sum3 adds volumetric functions pointwise.
func Sum3(fns ...Func3) Func3 {
	fns = append([]Func3(nil), fns...)
	return func(x, y, z float32) float32 {
		var d float32
		for _, fn := range fns {
			d += fn(x, y, z)
		}
		return d
	}
}

// Constant returns a flat heightmap.
func Constant(h float32) Func {
	return func(float32, float32) float32 { return h }
}

// Offset shifts fn vertically by dh.
func Offset(fn Func, dh float32) Func {
	return func(x, y float32) float32 { return fn(x, y) + dh }
}

// Translate samples fn at (x+dx, y+dy). Translating copies of one function
// by distinct offsets decorrelates them.
func Translate(fn Func, dx, dy float32) Func {
	return func(x, y float32) float32 { return fn(x+dx, y+dy) }
}

// Rescale samples fn at (x/divisor, y/divisor).
func Rescale(fn Func, divisor float32) Func {
	if divisor == 0 {
		divisor = 1
	}
	return func(x, y float32) float32 { return fn(x/divisor, y/divisor) }
}

// Band confines overlay to where base lies within [lo, hi]. Outside the band
// it returns sentinel; inside it returns overlay + base − offset, so the
// overlay rides on the base surface.
func Band(base Func, lo, hi, sentinel, offset float32, overlay Func) Func {
	return func(x, y float32) float32 {
		b := base(x, y)
		if b < lo || b > hi {
			return sentinel
		}
		return overlay(x, y) + b - offset
	}
}

// VerticalBias is −(y−mid)²/k, suppressing density away from the mid band.
// A zero k disables the bias.
func VerticalBias(mid, k float32) Func3 {
	if k == 0 {
		return func(float32, float32, float32) float32 { return 0 }
	}
	return func(_, y, _ float32) float32 {
		d := y - mid
		return -d * d / k
	}
}
