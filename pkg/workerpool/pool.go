// Package workerpool runs background jobs on a fixed set of goroutines with
// a bounded queue. Notification delivery and webhook calls go through it so
// a slow SMTP server never blocks a checkout response.
package workerpool

import (
	"errors"
	"sync"

	"github.com/htoohtoo/storefront/pkg/logger"
)

var (
	ErrPoolFull   = errors.New("workerpool: queue full")
	ErrPoolClosed = errors.New("workerpool: closed")
)

type Job func()

type Pool struct {
	jobs   chan Job
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// New starts a pool of workers goroutines sharing a queue of queueSize.
func New(workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	p := &Pool{jobs: make(chan Job, queueSize)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.run(job)
	}
}

func (p *Pool) run(job Job) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("workerpool: job panicked", "panic", r)
		}
	}()
	job()
}

// Submit enqueues a job without blocking. Returns ErrPoolFull when the queue
// is at capacity and ErrPoolClosed after Stop.
func (p *Pool) Submit(job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.jobs <- job:
		return nil
	default:
		return ErrPoolFull
	}
}

// Stop rejects new jobs, drains the queue and waits for in-flight jobs.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}
