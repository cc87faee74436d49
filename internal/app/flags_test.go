package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-surface", "water", "-seed", "9", "-scale", "1.5", "-set", "w=64", "-set", "sea = -3", "-set", "junk"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Surface != "water" || cfg.Seed != 9 || cfg.Scale != 1.5 || cfg.TPS != 30 {
		t.Fatalf("cfg = %+v", cfg)
	}
	m := cfg.Overrides.Map()
	if len(m) != 2 || m["w"] != "64" || m["sea"] != "-3" {
		t.Fatalf("overrides = %v", m)
	}
	if got := cfg.Overrides.String(); got != "w=64,sea = -3,junk" {
		t.Fatalf("String() = %q", got)
	}
}

func TestKVListLaterKeysWin(t *testing.T) {
	l := KVList{"w=1", "w=2", "=x"}
	if m := l.Map(); len(m) != 1 || m["w"] != "2" {
		t.Fatalf("map = %v", m)
	}
}
