// Package service provides the query-routing-and-response pipeline.
package service

import (
	"sync"

	"github.com/psychohealer/psychohealer/pkg/metrics"
)

type task struct {
	fn   func()
	done chan struct{}
}

// Pool is a small bounded worker pool. Blocking backend and search calls run
// on its workers so total outbound concurrency stays bounded; submitters
// block until a worker accepts the task.
type Pool struct {
	tasks chan task
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// NewPool starts size workers.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = 3
	}
	p := &Pool{tasks: make(chan task)}
	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for t := range p.tasks {
		metrics.WorkerPoolBusy.Inc()
		t.fn()
		metrics.WorkerPoolBusy.Dec()
		close(t.done)
	}
}

// Submit hands fn to a worker and returns a channel closed when fn has
// completed. Submit blocks until a worker is free.
func (p *Pool) Submit(fn func()) <-chan struct{} {
	t := task{fn: fn, done: make(chan struct{})}
	p.tasks <- t
	return t.done
}

// Close stops accepting tasks and waits for in-flight work to finish.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}
