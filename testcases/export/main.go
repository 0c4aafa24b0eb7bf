// Command export traces all test cases and writes the resulting SVG
// documents, for visual inspection and for comparison with other SVG
// tooling. Run from the trace module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/trace"
	"seehuhn.de/go/trace/svg"
	"seehuhn.de/go/trace/testcases"
)

const outDir = "testdata/svg"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(tc, filepath.Join(outDir, name+".svg")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(tc testcases.TestCase, fname string) error {
	g, err := trace.NewGrid(tc.Width, tc.Height, tc.Pix)
	if err != nil {
		return err
	}
	records, err := trace.Trace(g)
	if err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := svg.Write(f, g, records, nil); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
