package overlay

import (
	"sync"

	"github.com/anthonynsimon/bild/parallel"
)

// dispatch calls fn over [0, rows) split into disjoint contiguous ranges and
// waits for every call to return.
func (c Compositor) dispatch(rows int, fn func(start, end int)) {
	switch {
	case rows <= 0:
		return
	case c.Workers < 1:
		parallel.Line(rows, fn)
	case c.Workers == 1 || rows == 1:
		fn(0, rows)
	default:
		var wg sync.WaitGroup
		for _, r := range rowRanges(rows, c.Workers) {
			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				fn(start, end)
			}(r[0], r[1])
		}
		wg.Wait()
	}
}

// rowRanges splits [0, rows) into at most workers ranges whose sizes differ
// by at most one.
func rowRanges(rows, workers int) [][2]int {
	if workers > rows {
		workers = rows
	}
	if workers < 1 {
		return nil
	}

	size, extra := rows/workers, rows%workers
	ranges := make([][2]int, 0, workers)
	start := 0
	for i := 0; i < workers; i++ {
		end := start + size
		if i < extra {
			end++
		}
		ranges = append(ranges, [2]int{start, end})
		start = end
	}
	return ranges
}
