// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// property_test.go: property-based tests for Buffer.
package ring_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/momentics/nshring/ring"
)

// TestRingPropertyBased performs randomized operations against a slice model.
// Each seed runs as its own subtest, so a failure names the seed to replay.
func TestRingPropertyBased(t *testing.T) {
	for seed := int64(0); seed < 32; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			ringModelRun(t, rand.New(rand.NewSource(seed)))
		})
	}
}

func ringModelRun(t *testing.T, rng *rand.Rand) {
	capacity := 1 + rng.Intn(64)
	rb := ring.New[int](capacity)
	var model []int
	pushes := 0

	for i := 0; i < 5000; i++ {
		switch rng.Intn(8) {
		case 0, 1, 2, 3: // push
			pushes++
			rb.PushBack(pushes)
			model = append(model, pushes)
			if len(model) > capacity {
				model = model[1:]
			}
		case 4, 5: // pop
			v, ok := rb.PopFront()
			if ok != (len(model) > 0) {
				t.Fatalf("PopFront ok=%v with model len %d", ok, len(model))
			}
			if ok {
				if v != model[0] {
					t.Fatalf("PopFront: expected %d, got %d", model[0], v)
				}
				model = model[1:]
			}
		case 6: // random access
			j := rng.Intn(capacity+2) - 1
			v, ok := rb.Get(j)
			want := j >= 0 && j < len(model)
			if ok != want || (ok && v != model[j]) {
				t.Fatalf("Get(%d) = %d, %v; model %v", j, v, ok, model)
			}
		case 7:
			if rng.Intn(50) == 0 {
				rb.Clear()
				model = model[:0]
			}
		}

		if rb.Len() != len(model) {
			t.Fatalf("Invariant failed: expected len %d, got %d", len(model), rb.Len())
		}
		if rb.Len() < 0 || rb.Len() > capacity {
			t.Fatalf("Ring length out of bounds: %d", rb.Len())
		}
		if rb.IsFull() != (len(model) == capacity) {
			t.Fatalf("IsFull mismatch at len %d", len(model))
		}
	}

	got := rb.ToSlice()
	if len(got) != len(model) {
		t.Fatalf("final contents: expected %v, got %v", model, got)
	}
	for i := range got {
		if got[i] != model[i] {
			t.Fatalf("final contents: expected %v, got %v", model, got)
		}
	}
	// the oldest survivor of a full buffer was pushed capacity pushes ago
	if rb.IsFull() {
		if front, _ := rb.Front(); front != model[0] {
			t.Fatalf("oldest survivor: expected %d, got %d", model[0], front)
		}
	}
}

// TestRingOldestSurvivor checks eviction order after sustained overflow.
func TestRingOldestSurvivor(t *testing.T) {
	for capacity := 1; capacity <= 17; capacity++ {
		rb := ring.New[int](capacity)
		for n := 1; n <= 3*capacity+5; n++ {
			rb.PushBack(n)
			if n >= capacity {
				if front, _ := rb.Front(); front != n-capacity+1 {
					t.Fatalf("cap %d after %d pushes: oldest %d", capacity, n, front)
				}
			}
		}
	}
}
