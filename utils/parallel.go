package utils

import (
	"math"
	"runtime"
	"sync"

	goutils "go.viam.com/utils"
)

// ParallelFactor controls the max level of parallelization. This might be useful
// to set in tests where too much parallelism actually slows tests down in
// aggregate.
var ParallelFactor = runtime.GOMAXPROCS(0)

func init() {
	if ParallelFactor <= 0 {
		ParallelFactor = 1
	}
}

// ParallelRanges splits the index range [0, n) into contiguous chunks and runs
// work on each chunk from its own goroutine. work must be safe to call
// concurrently on disjoint ranges; writing results to per-index slots avoids
// any locking.
func ParallelRanges(n int, work func(from, to int)) {
	if n <= 0 {
		return
	}
	workers := ParallelFactor
	if workers > n {
		workers = n
	}
	chunk := int(math.Ceil(float64(n) / float64(workers)))

	var wg sync.WaitGroup
	for from := 0; from < n; from += chunk {
		to := from + chunk
		if to > n {
			to = n
		}
		fromCopy, toCopy := from, to
		wg.Add(1)
		goutils.PanicCapturingGo(func() {
			defer wg.Done()
			work(fromCopy, toCopy)
		})
	}
	wg.Wait()
}
