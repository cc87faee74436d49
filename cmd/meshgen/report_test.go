package main

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"terragen/internal/scene"
	_ "terragen/internal/surfaces/sky"
	_ "terragen/internal/surfaces/terrain"
)

func TestDescribeAndDump(t *testing.T) {
	res, err := scene.Generate(5, scene.Overrides{"w": "6", "h": "4", "field_size": "8", "sky_size": "3"}, "terrain", "sky")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	ter, _ := res.Find("terrain")
	report := describe(ter)
	if !strings.Contains(report, "35 vertices, 48 triangles") {
		t.Fatalf("report = %q", report)
	}

	dir := t.TempDir()
	files, err := dump(dir, ter)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if len(files) != 4 {
		t.Fatalf("wrote %v", files)
	}
	raw, err := os.ReadFile(filepath.Join(dir, "terrain.positions.f32"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(raw) != 35*3*4 {
		t.Fatalf("positions file is %d bytes", len(raw))
	}
	if y := math.Float32frombits(binary.LittleEndian.Uint32(raw[4:])); y != ter.Mesh.Positions[0][1] {
		t.Fatalf("first height = %f, want %f", y, ter.Mesh.Positions[0][1])
	}
	idx, err := os.ReadFile(filepath.Join(dir, "terrain.indices.u32"))
	if err != nil || len(idx) != 6*4*6*4 {
		t.Fatalf("indices file: %d bytes, %v", len(idx), err)
	}

	sky, _ := res.Find("sky")
	files, err = dump(dir, sky)
	if err != nil || len(files) != 1 || !strings.HasSuffix(files[0], "sky.3x3x3.r32f") {
		t.Fatalf("sky dump = %v, %v", files, err)
	}
	if !strings.Contains(describe(sky), "108 bytes") {
		t.Fatalf("sky report = %q", describe(sky))
	}
}
