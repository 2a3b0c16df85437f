package spinlock

import (
	"sync"
	"testing"

	"github.com/kolkov/critsection/critical"
)

// TestAcquireRelease verifies the lock word tracks section state and the
// restore state is the width's zero value.
func TestAcquireRelease(t *testing.T) {
	state := critical.Acquire()
	if locked.Load() != 1 {
		t.Error("lock word not set inside critical section")
	}

	var zero critical.RawRestoreState
	if state.Raw() != zero {
		t.Errorf("restore state = %v, want zero value", state.Raw())
	}

	critical.Release(state)
	if locked.Load() != 0 {
		t.Error("lock word still set after release")
	}
}

// TestMutualExclusion hammers a shared counter from many goroutines. Run
// with -race: any exclusion failure is a detected race or a lost update.
func TestMutualExclusion(t *testing.T) {
	const (
		goroutines = 8
		increments = 1000
	)

	var (
		counter int
		wg      sync.WaitGroup
	)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				critical.Do(func() {
					counter++
				})
			}
		}()
	}
	wg.Wait()

	if counter != goroutines*increments {
		t.Errorf("counter = %d, want %d", counter, goroutines*increments)
	}
}

// TestScopedResult verifies the scoped form under contention returns each
// body's result.
func TestScopedResult(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]int, 16)

	for i := range results {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			results[n] = critical.With(func() int { return n * n })
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != i*i {
			t.Errorf("results[%d] = %d, want %d", i, got, i*i)
		}
	}
}
