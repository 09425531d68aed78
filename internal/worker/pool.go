// Package worker provides a worker pool that carries move intents from the
// joysticks to the engine's commit path.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessduel-go/internal/chess"
)

// Intent is one submitted move.
type Intent struct {
	Side  chess.Side
	Src   chess.Coordinate
	Dest  chess.Coordinate
	Stamp uint64 // Turn stamp observed at submission
	Index int    // Submission sequence number for tracking
}

// Verdict classifies how the engine handled an intent.
type Verdict int

const (
	Accepted  Verdict = iota // Committed to the board
	Rejected                 // Invalid; the submitter was notified
	Discarded                // Out of turn or stale; dropped silently
)

// String returns the name of the verdict.
func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case Discarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Result represents the outcome of processing an intent.
type Result struct {
	Intent  Intent
	Verdict Verdict
	Err     error
}

// ProcessFunc is the function signature for processing an intent.
type ProcessFunc func(item Intent) Result

// Pool manages a pool of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan Intent
	resultChan  chan Result
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
	submitted   int64 // Atomic sequence for Intent.Index

	closeMu sync.RWMutex
	closed  bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan Intent, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits an intent for processing, blocking while the buffer is
// full. It reports false if the pool is closed.
func (p *Pool) Submit(item Intent) bool {
	p.closeMu.RLock()
	defer p.closeMu.RUnlock()
	if p.closed {
		return false
	}
	item.Index = int(atomic.AddInt64(&p.submitted, 1))
	p.workChan <- item
	return true
}

// TrySubmit attempts to submit an intent without blocking.
// Returns false if the work channel is full or the pool is stopped or closed.
func (p *Pool) TrySubmit(item Intent) bool {
	if p.IsStopped() {
		return false
	}
	p.closeMu.RLock()
	defer p.closeMu.RUnlock()
	if p.closed {
		return false
	}
	item.Index = int(atomic.AddInt64(&p.submitted, 1))
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish; the
// result channel is closed afterwards. Later submissions are refused.
// Results must be drained concurrently or Close may block.
func (p *Pool) Close() {
	p.closeMu.Lock()
	if p.closed {
		p.closeMu.Unlock()
		return
	}
	p.closed = true
	close(p.workChan)
	p.closeMu.Unlock()

	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
