// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	// orderWorker records its index into the shared order slice
	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := NewWorkers(
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	)
	ws.Run()

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ws.Run()
	ws.Run()
	ws.Run()

	if w.runCount != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", w.runCount)
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, o.id)
}

func TestPool_RunsEveryTask(t *testing.T) {
	p := NewPool(4)

	var done atomic.Int64
	for i := 0; i < 100; i++ {
		p.Submit(func() { done.Add(1) })
	}
	p.Close()

	if got := done.Load(); got != 100 {
		t.Errorf("expected 100 finished tasks, got %d", got)
	}
}

func TestPool_BoundsConcurrency(t *testing.T) {
	const size = 3
	p := NewPool(size)

	var inFlight, peak atomic.Int64
	for i := 0; i < 30; i++ {
		p.Submit(func() {
			n := inFlight.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			inFlight.Add(-1)
		})
	}
	p.Close()

	if got := peak.Load(); got > size {
		t.Errorf("expected at most %d tasks in flight, observed %d", size, got)
	}
}

func TestPool_CloseWaitsForSubmittedTasks(t *testing.T) {
	p := NewPool(2)

	var mu sync.Mutex
	finished := 0
	for i := 0; i < 10; i++ {
		p.Submit(func() {
			time.Sleep(2 * time.Millisecond)
			mu.Lock()
			finished++
			mu.Unlock()
		})
	}
	p.Close()

	mu.Lock()
	defer mu.Unlock()
	if finished != 10 {
		t.Errorf("Close returned before all tasks finished: %d of 10", finished)
	}
}

func TestPool_IgnoresNilTask(t *testing.T) {
	p := NewPool(1)

	// Should not panic or deadlock
	p.Submit(nil)
	p.Close()
}

func TestPool_SizeBelowOneIsRaised(t *testing.T) {
	p := NewPool(0)

	ran := false
	p.Submit(func() { ran = true })
	p.Close()

	if !ran {
		t.Error("expected the task to run on a single raised worker")
	}
}
