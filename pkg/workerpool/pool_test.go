package workerpool_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/htoohtoo/storefront/pkg/workerpool"
)

func TestSubmitRunsJobs(t *testing.T) {
	p := workerpool.New(4, 16)

	var count int64
	for i := 0; i < 10; i++ {
		if err := p.Submit(func() { atomic.AddInt64(&count, 1) }); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	p.Stop()

	if got := atomic.LoadInt64(&count); got != 10 {
		t.Errorf("ran %d jobs, want 10", got)
	}
}

func TestSubmitAfterStop(t *testing.T) {
	p := workerpool.New(1, 1)
	p.Stop()

	if err := p.Submit(func() {}); err != workerpool.ErrPoolClosed {
		t.Errorf("Submit after Stop = %v, want ErrPoolClosed", err)
	}
}

func TestQueueFull(t *testing.T) {
	p := workerpool.New(1, 1)
	defer p.Stop()

	block := make(chan struct{})
	_ = p.Submit(func() { <-block })

	// Give the single worker time to pick up the blocking job, then fill
	// the one queue slot.
	time.Sleep(50 * time.Millisecond)
	_ = p.Submit(func() {})

	if err := p.Submit(func() {}); err != workerpool.ErrPoolFull {
		t.Errorf("Submit on full queue = %v, want ErrPoolFull", err)
	}
	close(block)
}

func TestPanickingJobDoesNotKillWorker(t *testing.T) {
	p := workerpool.New(1, 4)

	_ = p.Submit(func() { panic("boom") })

	done := make(chan struct{})
	if err := p.Submit(func() { close(done) }); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not survive a panicking job")
	}
	p.Stop()
}
