package heightmap

import (
	"math"
	"testing"

	"terragen/pkg/core"
	"terragen/pkg/noise"
)

// linear is a deterministic stand-in sampler whose value is easy to predict.
type linear struct{ kx, ky float32 }

func (l linear) Sample(x, y float32) float32 { return l.kx*x + l.ky*y }

type linear3 struct{ k float32 }

func (l linear3) Sample(x, y, z float32) float32 { return l.k * (x + y + z) }

func TestLayeredSumsScaledOctaves(t *testing.T) {
	fn := Layered(
		Octave{Source: linear{1, 0}, Divisor: 2, Amplitude: 3},
		Octave{Source: linear{0, 1}, Divisor: 4, Amplitude: 8},
	)
	// 3*(10/2) + 8*(8/4) = 15 + 16
	if got := fn(10, 8); got != 31 {
		t.Fatalf("Layered = %f, want 31", got)
	}
}

func TestLayeredZeroDivisorTreatedAsOne(t *testing.T) {
	fn := Layered(Octave{Source: linear{1, 1}, Amplitude: 2})
	if got := fn(1, 2); got != 6 {
		t.Fatalf("Layered = %f, want 6", got)
	}
}

func TestDefaultOctavesRoundRobin(t *testing.T) {
	a, b := linear{1, 0}, linear{0, 1}
	octaves := DefaultOctaves(a, b)
	if len(octaves) != 4 {
		t.Fatalf("got %d octaves", len(octaves))
	}
	for i, o := range octaves {
		want := noise.Sampler2D(a)
		if i%2 == 1 {
			want = b
		}
		if o.Source != want {
			t.Fatalf("octave %d has wrong source", i)
		}
		if o.Divisor != DefaultDivisors[i] || o.Amplitude != DefaultAmplitudes[i] {
			t.Fatalf("octave %d = %+v", i, o)
		}
	}
	if AmplitudeBound(octaves) != 85 {
		t.Fatalf("bound = %f, want 85", AmplitudeBound(octaves))
	}
	if DefaultOctaves() != nil {
		t.Fatal("no sources should give no octaves")
	}
}

func TestScaleAmplitudesCopies(t *testing.T) {
	octaves := DefaultOctaves(linear{1, 0})
	scaled := ScaleAmplitudes(octaves, 0.5)
	if scaled[3].Amplitude != 32 || octaves[3].Amplitude != 64 {
		t.Fatalf("scaled %f original %f", scaled[3].Amplitude, octaves[3].Amplitude)
	}
}

func TestLayeredBoundedByAmplitudes(t *testing.T) {
	rng := core.NewRNG(3)
	a := noise.NewField2D(100, rng.Source())
	b := noise.NewField2D(100, rng.Source())
	octaves := DefaultOctaves(a, b)
	fn := Layered(octaves...)
	bound := AmplitudeBound(octaves)
	for i := 0; i < 5000; i++ {
		x := float32(rng.Signed() * 500)
		y := float32(rng.Signed() * 500)
		h := fn(x, y)
		if math.IsNaN(float64(h)) || h < -bound || h > bound {
			t.Fatalf("h(%f,%f) = %f outside ±%f", x, y, h, bound)
		}
	}
}

func TestTranslateDecorrelates(t *testing.T) {
	f := noise.NewField2D(64, core.NewRNG(4).Source())
	base := Layered(Octave{Source: f, Divisor: 3, Amplitude: 1})
	moved := Translate(base, 7.5, -2.25)
	if got, want := moved(1, 1), base(8.5, -1.25); got != want {
		t.Fatalf("Translate = %f, want %f", got, want)
	}
	same := 0
	for i := 0; i < 100; i++ {
		x, y := float32(i)*0.7, float32(i)*1.3
		if base(x, y) == moved(x, y) {
			same++
		}
	}
	if same > 5 {
		t.Fatalf("translated copy matched the original at %d points", same)
	}
}

func TestRescaleAndOffset(t *testing.T) {
	fn := Offset(Rescale(linear{1, 2}.Sample, 4), 1)
	if got := fn(8, 4); got != 1+2+2 {
		t.Fatalf("got %f, want 5", got)
	}
}

func TestSumAndConstant(t *testing.T) {
	fn := Sum(Constant(2), linear{1, 0}.Sample, Constant(-0.5))
	if got := fn(3, 100); got != 4.5 {
		t.Fatalf("Sum = %f, want 4.5", got)
	}
}

func TestBand(t *testing.T) {
	base := linear{1, 0}.Sample // height equals x
	overlay := Constant(0.25)
	fn := Band(base, 4, 40, -1000, 0.5, overlay)

	cases := []struct {
		x    float32
		want float32
	}{
		{x: 3, want: -1000},
		{x: 4, want: 0.25 + 4 - 0.5},
		{x: 20, want: 0.25 + 20 - 0.5},
		{x: 40, want: 0.25 + 40 - 0.5},
		{x: 41, want: -1000},
	}
	for _, tc := range cases {
		if got := fn(tc.x, 0); got != tc.want {
			t.Fatalf("Band(%f) = %f, want %f", tc.x, got, tc.want)
		}
	}
}

func TestLayered3AndVerticalBias(t *testing.T) {
	fn := Sum3(
		Layered3(Octave3{Source: linear3{1}, Divisor: 2, Amplitude: 4}),
		VerticalBias(128, 16384),
	)
	// 4*(2+0+2)/2 + -(0-128)²/16384 = 8 - 1
	if got := fn(2, 0, 2); got != 7 {
		t.Fatalf("got %f, want 7", got)
	}
	if got := VerticalBias(10, 0)(0, 50, 0); got != 0 {
		t.Fatalf("zero k should disable bias, got %f", got)
	}
	if got := VerticalBias(128, 16384)(5, 128, 9); got != 0 {
		t.Fatalf("bias at mid = %f, want 0", got)
	}
}

func TestDefaultOctaves3(t *testing.T) {
	f := noise.NewField3D(8, core.NewRNG(1).Source())
	octaves := DefaultOctaves3(f)
	if len(octaves) != 4 || octaves[3].Divisor != 197 || octaves[3].Amplitude != 64 {
		t.Fatalf("unexpected octave table %+v", octaves)
	}
	if DefaultOctaves3() != nil {
		t.Fatal("no sources should give no octaves")
	}
}
