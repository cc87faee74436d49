package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"terragen/internal/core"
	"terragen/pkg/material"
	"terragen/pkg/mesh"
)

func describe(a core.Artifact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", a.Name)
	if m := a.Mesh; m != nil {
		lo, hi := m.HeightRange()
		fmt.Fprintf(&b, "  grid %dx%d unit %g: %d vertices, %d triangles\n", m.Width, m.Height, m.Unit, m.VertexCount(), len(m.Indices)/3)
		fmt.Fprintf(&b, "  height [%.3f, %.3f]\n", lo, hi)
		fmt.Fprintf(&b, "  max normal length error %.2e\n", maxUnitError(m))
		if len(m.Colors) > 0 {
			th := mesh.DefaultThresholds()
			if t, ok := a.Material.(material.Terrain); ok {
				th = mesh.Thresholds{Sea: t.SeaHeight, Peak: t.PeakHeight, Steep: t.CliffSlope, Flat: t.SteepSlope}
			}
			hist := m.Histogram(th)
			for c := mesh.CategorySea; c <= mesh.CategoryPeak; c++ {
				fmt.Fprintf(&b, "  %-5s %8d (%.1f%%)\n", c, hist[c], 100*float64(hist[c])/float64(m.VertexCount()))
			}
		}
	}
	if v := a.Volume; v != nil {
		lo, hi := float32(math.Inf(1)), float32(math.Inf(-1))
		for _, f := range v.Floats() {
			lo, hi = min(lo, f), max(hi, f)
		}
		fmt.Fprintf(&b, "  volume %dx%dx%d %s: %d bytes, density [%.3f, %.3f]\n", v.Dims[0], v.Dims[1], v.Dims[2], v.Format, len(v.Bytes), lo, hi)
	}
	return b.String()
}

func maxUnitError(m *mesh.Mesh) float64 {
	worst := 0.0
	for _, n := range m.Normals {
		worst = math.Max(worst, math.Abs(float64(n.Len())-1))
	}
	return worst
}

// dump writes each buffer of a to dir as raw little-endian data and returns
// the paths written.
func dump(dir string, a core.Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	base := strings.ReplaceAll(a.Name, "/", "_")
	buffers := map[string]any{}
	if m := a.Mesh; m != nil {
		buffers["positions.f32"] = m.Positions
		buffers["normals.f32"] = m.Normals
		buffers["indices.u32"] = m.Indices
		if len(m.Colors) > 0 {
			buffers["colors.f32"] = m.Colors
		}
	}
	var written []string
	for _, suffix := range []string{"positions.f32", "normals.f32", "colors.f32", "indices.u32"} {
		data, ok := buffers[suffix]
		if !ok {
			continue
		}
		var buf bytes.Buffer
		if err := binary.Write(&buf, binary.LittleEndian, data); err != nil {
			return written, fmt.Errorf("encode %s: %w", suffix, err)
		}
		path := filepath.Join(dir, base+"."+suffix)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	if v := a.Volume; v != nil {
		path := filepath.Join(dir, fmt.Sprintf("%s.%dx%dx%d.%s", base, v.Dims[0], v.Dims[1], v.Dims[2], v.Format))
		if err := os.WriteFile(path, v.Bytes, 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
