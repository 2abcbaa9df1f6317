// Command export writes the built-in scenarios to scenario files.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/heatmap/scenarios"
)

func main() {
	dir := flag.String("dir", "testdata/scenarios", "output directory")
	ext := flag.String("ext", ".yaml", "file name extension: .yaml, .toml or .json")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(scenarios.All)) {
		for _, s := range scenarios.All[category] {
			name := category + "_" + s.Name
			path := filepath.Join(*dir, name+*ext)
			if err := scenarios.Save(path, &s); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}
