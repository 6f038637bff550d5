package cli

import (
	"runtime"
	"sync"
)

// pool runs file jobs on a fixed number of goroutines. With a single worker
// jobs run inline on the caller's goroutine.
type pool struct {
	wg   sync.WaitGroup
	jobs chan func()
}

func startPool(numWorkers int) *pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &pool{}
	if numWorkers == 1 {
		return p
	}

	p.jobs = make(chan func(), numWorkers)
	p.wg.Add(numWorkers)
	for range numWorkers {
		go func() {
			defer p.wg.Done()
			for f := range p.jobs {
				f()
			}
		}()
	}
	return p
}

// do schedules f, blocking while all workers are busy.
func (p *pool) do(f func()) {
	if p.jobs == nil {
		f()
		return
	}
	p.jobs <- f
}

// wait stops accepting jobs and returns once every scheduled job has finished.
func (p *pool) wait() {
	if p.jobs == nil {
		return
	}
	close(p.jobs)
	p.wg.Wait()
}
