package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"terragen/internal/app"
	"terragen/internal/scene"
	_ "terragen/internal/surfaces/rock"
	_ "terragen/internal/surfaces/sky"
	_ "terragen/internal/surfaces/terrain"
	_ "terragen/internal/surfaces/water"
)

func main() {
	seed := flag.Int64("seed", 42, "generation seed")
	surfaces := flag.String("surfaces", "", "comma-separated surfaces to generate (default: all, in scene order)")
	out := flag.String("out", "", "directory for raw little-endian buffer dumps (optional)")
	var overrides app.KVList
	flag.Var(&overrides, "set", "surface override in key=value form (repeatable)")
	flag.Parse()

	var names []string
	if *surfaces != "" {
		for _, n := range strings.Split(*surfaces, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
	}

	start := time.Now()
	res, err := scene.Generate(*seed, overrides.Map(), names...)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	log.Printf("generated %d artifacts in %s", len(res.Artifacts), time.Since(start).Round(time.Millisecond))

	for _, a := range res.Artifacts {
		fmt.Print(describe(a))
		if *out == "" {
			continue
		}
		files, err := dump(*out, a)
		if err != nil {
			log.Fatalf("dump %s: %v", a.Name, err)
		}
		for _, f := range files {
			log.Printf("wrote %s", f)
		}
	}
}
