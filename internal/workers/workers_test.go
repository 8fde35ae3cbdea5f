// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arenacast/backend/internal/cache"
	"github.com/arenacast/backend/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int64
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())

	deadline := time.After(time.Second)
	for i, w := range []*mockWorker{w1, w2, w3} {
		for w.runCount.Load() == 0 {
			select {
			case <-deadline:
				t.Fatalf("worker[%d]: Run was never called", i)
			case <-time.After(time.Millisecond):
			}
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
}

func TestCacheSweeper_EvictsExpired(t *testing.T) {
	views := cache.NewViewCache(time.Nanosecond)
	views.Set("/profile/a", 1)

	sweeper := NewCacheSweeper(views, time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweeper.Run(ctx)

	deadline := time.After(time.Second)
	for views.Len() > 0 {
		select {
		case <-deadline:
			t.Fatal("sweeper never evicted the expired entry")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestCacheSweeper_StopsOnCancel(t *testing.T) {
	views := cache.NewViewCache(time.Minute)
	sweeper := NewCacheSweeper(views, time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}
