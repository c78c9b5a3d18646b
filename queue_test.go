// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbo

import (
	"sync"
	"testing"
)

func TestQueueDrainEmpty(t *testing.T) {
	var q disposalQueue
	if got := q.drain(); got != nil {
		t.Errorf("drain() of empty queue = %v, want nil", got)
	}
}

func TestQueueEnqueueDrain(t *testing.T) {
	var q disposalQueue
	q.enqueue(1)
	q.enqueue(2)
	q.enqueue(3)

	got := q.drain()
	if len(got) != 3 {
		t.Fatalf("drain() returned %d handles, want 3", len(got))
	}
	if again := q.drain(); again != nil {
		t.Errorf("second drain() = %v, want nil", again)
	}
}

func TestQueueEnqueueAfterDrainGoesToNextDrain(t *testing.T) {
	var q disposalQueue
	q.enqueue(1)

	first := q.drain()
	q.enqueue(2)
	second := q.drain()

	if len(first) != 1 || first[0] != 1 {
		t.Errorf("first drain = %v, want [1]", first)
	}
	if len(second) != 1 || second[0] != 2 {
		t.Errorf("second drain = %v, want [2]", second)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	var q disposalQueue

	const producers = 32
	const perProducer = 64

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				q.enqueue(Handle(p*perProducer + i + 1))
			}
		}()
	}
	wg.Wait()

	seen := make(map[Handle]bool)
	for _, h := range q.drain() {
		if seen[h] {
			t.Errorf("handle %d drained twice", h)
		}
		seen[h] = true
	}
	if len(seen) != producers*perProducer {
		t.Errorf("drained %d handles, want %d", len(seen), producers*perProducer)
	}
}
