package overlay

import (
	"sync"
	"testing"
)

func TestRowRanges(t *testing.T) {
	tests := []struct {
		rows, workers int
		wantRanges    int
	}{
		{10, 1, 1},
		{10, 3, 3},
		{10, 10, 10},
		{3, 8, 3},
		{1, 4, 1},
		{0, 4, 0},
		{100, 7, 7},
	}

	for _, tt := range tests {
		ranges := rowRanges(tt.rows, tt.workers)
		if len(ranges) != tt.wantRanges {
			t.Errorf("rowRanges(%d, %d): got %d ranges, want %d", tt.rows, tt.workers, len(ranges), tt.wantRanges)
			continue
		}

		next := 0
		for _, r := range ranges {
			if r[0] != next {
				t.Errorf("rowRanges(%d, %d): range %v does not start at %d", tt.rows, tt.workers, r, next)
			}
			size := r[1] - r[0]
			if size < tt.rows/tt.workers || size > tt.rows/tt.workers+1 || size == 0 {
				t.Errorf("rowRanges(%d, %d): unbalanced range %v", tt.rows, tt.workers, r)
			}
			next = r[1]
		}
		if next != tt.rows {
			t.Errorf("rowRanges(%d, %d): covered %d rows, want %d", tt.rows, tt.workers, next, tt.rows)
		}
	}
}

func TestDispatch_VisitsEveryRowOnce(t *testing.T) {
	for _, workers := range []int{0, 1, 2, 5, 64} {
		const rows = 37
		var mu sync.Mutex
		seen := make([]int, rows)

		Compositor{Workers: workers}.dispatch(rows, func(start, end int) {
			mu.Lock()
			defer mu.Unlock()
			for r := start; r < end; r++ {
				seen[r]++
			}
		})

		for r, n := range seen {
			if n != 1 {
				t.Errorf("workers=%d: row %d visited %d times", workers, r, n)
			}
		}
	}
}
