package worker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chessduel-go/internal/chess"
)

// acceptAll returns a process function that accepts every intent.
func acceptAll() ProcessFunc {
	return func(item Intent) Result {
		return Result{Intent: item, Verdict: Accepted}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item Intent) Result {
		atomic.AddInt32(counter, 1)
		return Result{Intent: item, Verdict: Accepted}
	}
}

// collectResults drains the result channel and returns the results.
func collectResults(pool *Pool) []Result {
	var out []Result
	for r := range pool.Results() {
		out = append(out, r)
	}
	return out
}

func intent(side chess.Side) Intent {
	return Intent{Side: side, Src: chess.C(4, 1), Dest: chess.C(4, 3)}
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		if !pool.Submit(intent(chess.White)) {
			t.Fatalf("Submit %d refused", i)
		}
	}

	go pool.Close()

	results := collectResults(pool)
	if len(results) != numItems {
		t.Errorf("results = %d; want %d", len(results), numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolAssignsIndices tests that every submission gets a distinct index.
func TestPoolAssignsIndices(t *testing.T) {
	pool := NewPool(acceptAll(), WithWorkers(3), WithBufferSize(20))
	pool.Start()

	const numItems = 12
	for i := 0; i < numItems; i++ {
		pool.Submit(intent(chess.Black))
	}
	go pool.Close()

	seen := make(map[int]bool)
	for _, r := range collectResults(pool) {
		if seen[r.Intent.Index] {
			t.Errorf("duplicate index %d", r.Intent.Index)
		}
		seen[r.Intent.Index] = true
	}
	for i := 1; i <= numItems; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestPoolVerdictsPassThrough tests that verdicts and errors reach Results.
func TestPoolVerdictsPassThrough(t *testing.T) {
	process := func(item Intent) Result {
		if item.Side == chess.Black {
			return Result{Intent: item, Verdict: Discarded}
		}
		return Result{Intent: item, Verdict: Accepted}
	}
	pool := NewPool(process)
	pool.Start()

	pool.Submit(intent(chess.White))
	pool.Submit(intent(chess.Black))
	go pool.Close()

	counts := map[Verdict]int{}
	for _, r := range collectResults(pool) {
		counts[r.Verdict]++
	}
	if counts[Accepted] != 1 || counts[Discarded] != 1 {
		t.Errorf("verdict counts = %v; want one accepted, one discarded", counts)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(item Intent) Result {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return Result{Intent: item}
	}

	pool := NewPool(slowProcessFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(intent(chess.White))
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(acceptAll(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

// TestPoolTrySubmit tests non-blocking submission.
func TestPoolTrySubmit(t *testing.T) {
	release := make(chan struct{})
	blocked := func(item Intent) Result {
		<-release
		return Result{Intent: item}
	}

	pool := NewPool(blocked, WithWorkers(1), WithBufferSize(2))
	pool.Start()

	// The worker takes the first item and blocks; two more fill the buffer.
	accepted := 0
	for i := 0; i < 5; i++ {
		if pool.TrySubmit(intent(chess.White)) {
			accepted++
		}
	}
	if accepted < 2 || accepted > 3 {
		t.Errorf("accepted = %d; want 2 or 3 with a full buffer", accepted)
	}

	pool.Stop()
	if pool.TrySubmit(intent(chess.White)) {
		t.Error("TrySubmit after Stop should return false")
	}

	close(release)
	go pool.Close()
	collectResults(pool)
}

// TestPoolSubmitAfterClose tests that a closed pool refuses work.
func TestPoolSubmitAfterClose(t *testing.T) {
	pool := NewPool(acceptAll())
	pool.Start()
	pool.Close()

	if pool.Submit(intent(chess.White)) {
		t.Error("Submit after Close should return false")
	}
	if pool.TrySubmit(intent(chess.White)) {
		t.Error("TrySubmit after Close should return false")
	}

	// A second Close is a no-op.
	pool.Close()
}

// TestPoolCloseRacesTrySubmit is designed to be run with -race flag.
func TestPoolCloseRacesTrySubmit(t *testing.T) {
	pool := NewPool(acceptAll(), WithWorkers(2), WithBufferSize(4))
	pool.Start()

	done := make(chan struct{})
	go func() {
		collectResults(pool)
		close(done)
	}()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				pool.TrySubmit(intent(chess.White))
			}
		}()
	}

	pool.Close()
	wg.Wait()
	<-done
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(intent(chess.White))
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestNewPool tests the functional options constructor.
func TestNewPool(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		pool := NewPool(acceptAll())
		if pool.NumWorkers() != 1 {
			t.Errorf("default workers = %d; want 1", pool.NumWorkers())
		}
		if pool.bufferSize != 10 {
			t.Errorf("default bufferSize = %d; want 10", pool.bufferSize)
		}
	})

	t.Run("with multiple options", func(t *testing.T) {
		pool := NewPool(acceptAll(), WithWorkers(8), WithBufferSize(100))
		if pool.NumWorkers() != 8 {
			t.Errorf("NumWorkers() = %d; want 8", pool.NumWorkers())
		}
		if pool.bufferSize != 100 {
			t.Errorf("bufferSize = %d; want 100", pool.bufferSize)
		}
	})

	t.Run("invalid values ignored", func(t *testing.T) {
		pool := NewPool(acceptAll(), WithWorkers(0), WithBufferSize(-5))
		if pool.NumWorkers() != 1 {
			t.Errorf("NumWorkers() = %d; want 1 (default)", pool.NumWorkers())
		}
		if pool.bufferSize != 10 {
			t.Errorf("bufferSize = %d; want 10 (default)", pool.bufferSize)
		}
	})
}

func TestVerdictString(t *testing.T) {
	for v, want := range map[Verdict]string{Accepted: "accepted", Rejected: "rejected", Discarded: "discarded", Verdict(9): "unknown"} {
		if got := v.String(); got != want {
			t.Errorf("Verdict(%d).String() = %q; want %q", int(v), got, want)
		}
	}
}
