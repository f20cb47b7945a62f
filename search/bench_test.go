package search_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/geodeforge/search"
)

// BenchmarkRun_Sample24 measures a full default search of the first sample blueprint.
func BenchmarkRun_Sample24(b *testing.B) {
	bp := sampleBlueprints(b)[0]
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.Run(&bp)
	}
}

// BenchmarkRun_Sample32 is the longer horizon used for the product score.
func BenchmarkRun_Sample32(b *testing.B) {
	bp := sampleBlueprints(b)[1]
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.Run(&bp, search.WithTimeLimit(32))
	}
}

// BenchmarkExpand_Workers compares pool sizes on one wide frontier.
func BenchmarkExpand_Workers(b *testing.B) {
	bp := sampleBlueprints(b)[0]
	gen := search.Generator{Blueprint: &bp}

	// grow an unpruned frontier to a useful width
	frontier := []search.State{search.Start()}
	for tick := 0; tick < 14; tick++ {
		succ, err := search.Expand(context.Background(), frontier, gen, 4)
		if err != nil {
			b.Fatal(err)
		}
		frontier = search.Prune(succ, 0)
	}

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = search.Expand(context.Background(), frontier, gen, workers)
			}
		})
	}
}
