package app

import (
	"flag"
	"strings"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the entries into surface overrides. Entries without '=' are
// skipped and later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

// Config represents the command-line parameters for the preview.
type Config struct {
	Surface    string
	Scale      float64
	TPS        int
	Seed       int64
	PanelWidth int
	Overrides  KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Surface: "terrain", Scale: 0.75, TPS: 30, Seed: 42, PanelWidth: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Surface, "surface", c.Surface, "surface to preview")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "preview pixels per vertex")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generation seed")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "parameter panel width in pixels")
	fs.Var(&c.Overrides, "set", "surface override in key=value form (repeatable)")
}
