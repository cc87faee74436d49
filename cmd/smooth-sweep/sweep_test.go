package main

import (
	"testing"

	"terragen/internal/surfaces/terrain"
)

func sweepBase() terrain.Config {
	cfg := terrain.DefaultConfig()
	cfg.Width, cfg.Height = 24, 24
	cfg.FieldSize = 16
	return cfg
}

func TestRunKernelNoneHasNoDeviation(t *testing.T) {
	res, err := runKernel(sweepBase(), kernelSet{kind: "none"}, 3)
	if err != nil {
		t.Fatalf("runKernel: %v", err)
	}
	if res.meanDeviation > 1e-3 || res.maxDeviation > 1e-3 {
		t.Fatalf("identity smoothing deviated: %+v", res)
	}
}

func TestRunKernelWiderSmoothsMore(t *testing.T) {
	narrow, err := runKernel(sweepBase(), kernelSet{kind: "gaussian", radius: 1, sigma: 1}, 3)
	if err != nil {
		t.Fatalf("runKernel: %v", err)
	}
	wide, err := runKernel(sweepBase(), kernelSet{kind: "gaussian", radius: 6, sigma: 4.5}, 3)
	if err != nil {
		t.Fatalf("runKernel: %v", err)
	}
	if wide.meanDeviation <= narrow.meanDeviation {
		t.Fatalf("wide kernel deviates %f, narrow %f", wide.meanDeviation, narrow.meanDeviation)
	}
	if wide.cliffShare < 0 || wide.cliffShare > 1 {
		t.Fatalf("cliff share = %f", wide.cliffShare)
	}
}

func TestRunKernelRejectsUnknown(t *testing.T) {
	if _, err := runKernel(sweepBase(), kernelSet{kind: "median"}, 3); err == nil {
		t.Fatalf("expected error for unknown kernel")
	}
}
