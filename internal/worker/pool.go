package worker

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type task func()

// Pool runs background jobs (quote snapshot writes) off the request
// path. The optional gauge tracks queued-but-unstarted jobs.
type Pool struct {
	wg    sync.WaitGroup
	jobs  chan task
	depth prometheus.Gauge
}

func NewPool(n int, depth prometheus.Gauge) *Pool {
	p := &Pool{jobs: make(chan task, 1024), depth: depth}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if p.depth != nil {
					p.depth.Dec()
				}
				job()
			}
		}()
	}
	return p
}

func (p *Pool) Submit(f task) {
	if p.depth != nil {
		p.depth.Inc()
	}
	p.jobs <- f
}

func (p *Pool) Stop() { close(p.jobs); p.wg.Wait() }
