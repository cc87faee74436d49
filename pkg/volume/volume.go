package volume

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"terragen/pkg/heightmap"
)

var (
	// ErrInvalidSize reports a non-positive lattice size or a bad step.
	ErrInvalidSize = errors.New("volume: invalid size")
	// ErrUnknownFormat reports a texel format outside the known set.
	ErrUnknownFormat = errors.New("volume: unknown format")
)

// Format is the texel layout of a packed volume.
type Format uint8

const (
	// R32F stores one float32 per texel.
	R32F Format = iota
	// RGBA32F stores the sample broadcast into four float32 channels.
	RGBA32F
)

// Channels returns the number of float32 channels per texel.
func (f Format) Channels() int {
	switch f {
	case R32F:
		return 1
	case RGBA32F:
		return 4
	default:
		return 0
	}
}

func (f Format) String() string {
	switch f {
	case R32F:
		return "r32f"
	case RGBA32F:
		return "rgba32f"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// ParseFormat resolves "r32f" or "rgba32f".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "r32f", "":
		return R32F, nil
	case "rgba32f":
		return RGBA32F, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Texture is a dense size³ lattice of little-endian float32 texels, laid out
// x fastest, then y, then z.
type Texture struct {
	Bytes  []byte
	Dims   [3]uint32
	Format Format
}

// Pack samples fn at (i·step, j·step, k·step) for every lattice point of a
// size×size×size grid.
func Pack(size int, step float32, fn heightmap.Func3, format Format) (*Texture, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if math.IsNaN(float64(step)) || math.IsInf(float64(step), 0) {
		return nil, fmt.Errorf("%w: step %v", ErrInvalidSize, step)
	}
	channels := format.Channels()
	if channels == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if fn == nil {
		return nil, fmt.Errorf("%w: nil density function", ErrInvalidSize)
	}

	tex := &Texture{
		Bytes:  make([]byte, size*size*size*4*channels),
		Dims:   [3]uint32{uint32(size), uint32(size), uint32(size)},
		Format: format,
	}
	for k := 0; k < size; k++ {
		for j := 0; j < size; j++ {
			for i := 0; i < size; i++ {
				bits := math.Float32bits(fn(float32(i)*step, float32(j)*step, float32(k)*step))
				off := tex.Offset(i, j, k)
				for c := 0; c < channels; c++ {
					binary.LittleEndian.PutUint32(tex.Bytes[off+4*c:], bits)
				}
			}
		}
	}
	return tex, nil
}

// Offset returns the byte offset of texel (i, j, k).
func (t *Texture) Offset(i, j, k int) int {
	s := int(t.Dims[0])
	return 4 * t.Format.Channels() * (i + j*s + k*s*s)
}

// At decodes the first channel of texel (i, j, k).
func (t *Texture) At(i, j, k int) float32 {
	off := t.Offset(i, j, k)
	return math.Float32frombits(binary.LittleEndian.Uint32(t.Bytes[off:]))
}

// Floats decodes the first channel of every texel in layout order.
func (t *Texture) Floats() []float32 {
	channels := t.Format.Channels()
	if channels == 0 {
		return nil
	}
	stride := 4 * channels
	out := make([]float32, len(t.Bytes)/stride)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(t.Bytes[i*stride:]))
	}
	return out
}
