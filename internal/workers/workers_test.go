// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	// orderWorker records its index into the shared order slice
	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := NewWorkers(newOrderWorker(1), newOrderWorker(2), newOrderWorker(3))
	ws.Run(context.Background())

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestWorkers_Wait_BlocksUntilGoroutinesReturn(t *testing.T) {
	ws := NewWorkers()
	release := make(chan struct{})
	var finished bool
	var mu sync.Mutex

	ws.Go(func() {
		<-release
		mu.Lock()
		finished = true
		mu.Unlock()
	})

	close(release)
	ws.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, finished)
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run(context.Context) {
	*o.order = append(*o.order, o.id)
}

// ── SessionSweeper ───────────────────────────────────────────────────────────

type recordingPurger struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (p *recordingPurger) DeleteExpired(_ context.Context, _ time.Time) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return 1, p.err
}

func (p *recordingPurger) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestSessionSweeper_PurgesUntilCancelled(t *testing.T) {
	purger := &recordingPurger{}
	group := NewWorkers()
	sweeper := NewSessionSweeper(purger, 10*time.Millisecond, group, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	group.Add(sweeper)
	group.Run(ctx)

	require.Eventually(t, func() bool { return purger.Calls() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	group.Wait()

	stopped := purger.Calls()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, purger.Calls(), "no sweeps after shutdown")
}

func TestSessionSweeper_ErrorsDoNotStopTheLoop(t *testing.T) {
	purger := &recordingPurger{err: errors.New("boom")}
	group := NewWorkers()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		group.Wait()
	})

	NewSessionSweeper(purger, 5*time.Millisecond, group, logger.Nop()).Run(ctx)

	require.Eventually(t, func() bool { return purger.Calls() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestNewSessionSweeper_DefaultInterval(t *testing.T) {
	sweeper := NewSessionSweeper(&recordingPurger{}, 0, NewWorkers(), logger.Nop())

	assert.Equal(t, defaultSweepInterval, sweeper.interval)
}
