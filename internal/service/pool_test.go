package service

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolRunsSubmittedTasks(t *testing.T) {
	t.Parallel()

	p := NewPool(3)
	defer p.Close()

	var counter int64
	var dones []<-chan struct{}
	for i := 0; i < 20; i++ {
		dones = append(dones, p.Submit(func() {
			atomic.AddInt64(&counter, 1)
		}))
	}
	for _, done := range dones {
		<-done
	}

	assert.Equal(t, int64(20), atomic.LoadInt64(&counter))
}

func TestPoolDoneClosesAfterCompletion(t *testing.T) {
	t.Parallel()

	p := NewPool(1)
	defer p.Close()

	var ran bool
	done := p.Submit(func() {
		time.Sleep(10 * time.Millisecond)
		ran = true
	})
	<-done

	assert.True(t, ran)
}

func TestPoolBoundsConcurrency(t *testing.T) {
	t.Parallel()

	p := NewPool(2)
	defer p.Close()

	var active, peak int64
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-p.Submit(func() {
				n := atomic.AddInt64(&active, 1)
				mu.Lock()
				if n > peak {
					peak = n
				}
				mu.Unlock()
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt64(&active, -1)
			})
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, int64(2))
}

func TestPoolCloseWaitsForInflight(t *testing.T) {
	t.Parallel()

	p := NewPool(1)

	var finished atomic.Bool
	p.Submit(func() {
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
	})
	p.Close()

	assert.True(t, finished.Load())
}

func TestPoolCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	p := NewPool(2)
	p.Close()
	assert.NotPanics(t, p.Close)
}
