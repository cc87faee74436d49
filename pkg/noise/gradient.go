package noise

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"terragen/pkg/core"
)

// Sampler2D is a continuous scalar field over the plane.
type Sampler2D interface {
	Sample(x, y float32) float32
}

// Sampler3D is a continuous scalar field over space.
type Sampler3D interface {
	Sample(x, y, z float32) float32
}

// Field2D is gradient noise over a size×size torus of random unit vectors.
// The lattice is immutable after construction.
type Field2D struct {
	size  int
	grads []mgl32.Vec2
}

// NewField2D draws a lattice whose gradients point at angles uniform in
// [0, 2π). Sizes below one are clamped to one.
func NewField2D(size int, rng *rand.Rand) *Field2D {
	if size <= 0 {
		size = 1
	}
	f := &Field2D{size: size, grads: make([]mgl32.Vec2, size*size)}
	for i := range f.grads {
		a := core.Angle(rng)
		f.grads[i] = mgl32.Vec2{float32(math.Cos(a)), float32(math.Sin(a))}
	}
	return f
}

// Size returns the lattice period along each axis.
func (f *Field2D) Size() int { return f.size }

// Gradient returns the lattice vector at (x, y), wrapping toroidally.
func (f *Field2D) Gradient(x, y int) mgl32.Vec2 {
	x, y = wrapIndex(x, f.size), wrapIndex(y, f.size)
	return f.grads[y*f.size+x]
}

// Sample evaluates the field. The result is periodic with period Size in both
// axes and lies roughly within [-1, 1].
func (f *Field2D) Sample(x, y float32) float32 {
	n := float64(f.size)
	px, py := wrap(float64(x), n), wrap(float64(y), n)
	x0, y0 := math.Floor(px), math.Floor(py)
	tx, ty := px-x0, py-y0
	xi, yi := int(x0), int(y0)

	// Corner i sits at (xi + i&1, yi + i>>1&1).
	var c [4]float64
	for i := range c {
		cx, cy := i&1, (i>>1)&1
		g := f.Gradient(xi+cx, yi+cy)
		c[i] = float64(g[0])*(tx-float64(cx)) + float64(g[1])*(ty-float64(cy))
	}

	u, v := Fade(tx), Fade(ty)
	return float32(lerp(lerp(c[0], c[1], u), lerp(c[2], c[3], u), v))
}

// Field3D is gradient noise over a size³ torus of random unit vectors.
type Field3D struct {
	size  int
	grads []mgl32.Vec3
}

// NewField3D draws each gradient uniformly from the cube [-1, 1)³ and
// normalizes it. Directions are therefore biased toward the cube corners.
func NewField3D(size int, rng *rand.Rand) *Field3D {
	if size <= 0 {
		size = 1
	}
	f := &Field3D{size: size, grads: make([]mgl32.Vec3, size*size*size)}
	for i := range f.grads {
		var v mgl32.Vec3
		for {
			v = mgl32.Vec3{
				float32(core.Signed(rng)),
				float32(core.Signed(rng)),
				float32(core.Signed(rng)),
			}
			if v.Len() > 1e-6 {
				break
			}
		}
		f.grads[i] = v.Normalize()
	}
	return f
}

// Size returns the lattice period along each axis.
func (f *Field3D) Size() int { return f.size }

// Gradient returns the lattice vector at (x, y, z), wrapping toroidally.
func (f *Field3D) Gradient(x, y, z int) mgl32.Vec3 {
	s := f.size
	x, y, z = wrapIndex(x, s), wrapIndex(y, s), wrapIndex(z, s)
	return f.grads[(z*s+y)*s+x]
}

// Sample evaluates the field. The result is periodic with period Size in every
// axis and lies roughly within [-1, 1].
func (f *Field3D) Sample(x, y, z float32) float32 {
	n := float64(f.size)
	px, py, pz := wrap(float64(x), n), wrap(float64(y), n), wrap(float64(z), n)
	x0, y0, z0 := math.Floor(px), math.Floor(py), math.Floor(pz)
	tx, ty, tz := px-x0, py-y0, pz-z0
	xi, yi, zi := int(x0), int(y0), int(z0)

	var c [8]float64
	for i := range c {
		cx, cy, cz := i&1, (i>>1)&1, (i>>2)&1
		g := f.Gradient(xi+cx, yi+cy, zi+cz)
		c[i] = float64(g[0])*(tx-float64(cx)) +
			float64(g[1])*(ty-float64(cy)) +
			float64(g[2])*(tz-float64(cz))
	}

	u, v, w := Fade(tx), Fade(ty), Fade(tz)
	near := lerp(lerp(c[0], c[1], u), lerp(c[2], c[3], u), v)
	far := lerp(lerp(c[4], c[5], u), lerp(c[6], c[7], u), v)
	return float32(lerp(near, far, w))
}

// Fade is the quintic 6t⁵ − 15t⁴ + 10t³ easing curve.
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// wrap maps v into [0, n) using the Euclidean remainder.
func wrap(v, n float64) float64 {
	r := math.Mod(v, n)
	if r < 0 {
		r += n
	}
	return r
}

func wrapIndex(i, n int) int {
	return (i%n + n) % n
}
