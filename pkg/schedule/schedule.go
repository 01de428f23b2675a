// Package schedule runs named jobs on fixed intervals. The server uses it to
// evict idle session containers and expired identity snapshots.
package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/htoohtoo/storefront/pkg/logger"
)

type job struct {
	name     string
	interval time.Duration
	fn       func()
}

type Scheduler struct {
	mu   sync.Mutex
	jobs []job
}

func New() *Scheduler { return &Scheduler{} }

// Every registers fn to run each interval once Start is called.
func (s *Scheduler) Every(interval time.Duration, name string, fn func()) {
	s.mu.Lock()
	s.jobs = append(s.jobs, job{name: name, interval: interval, fn: fn})
	s.mu.Unlock()
}

// Start launches one ticker goroutine per job. All stop when ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	jobs := make([]job, len(s.jobs))
	copy(jobs, s.jobs)
	s.mu.Unlock()

	for _, j := range jobs {
		go s.loop(ctx, j)
	}
}

func (s *Scheduler) loop(ctx context.Context, j job) {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.run(j)
		}
	}
}

func (s *Scheduler) run(j job) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("schedule: job panicked", "job", j.name, "panic", r)
		}
	}()
	j.fn()
}
