// Package analysis holds the single most-recent AI analysis result. The slot
// is overwritten per request: beginning a new request discards the previous
// result before anything arrives, so a stale result can never be displayed as
// if it were current.
package analysis

import (
	"sync"

	"github.com/jonathan/resume-studio/internal/types"
)

// State is the lifecycle of the single analysis slot.
type State int

// Slot states. Pending and Idle are distinct: "no result" and "result on the
// way" render differently.
const (
	StateIdle State = iota
	StatePending
	StateReady
	StateFailed
)

// String returns the state name for logs and API payloads.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Snapshot is an observed slot value. Result is non-nil only in StateReady,
// Err only in StateFailed.
type Snapshot struct {
	State  State
	Result *types.AnalysisResult
	Err    error
}

// Cache is the single-slot analysis holder.
type Cache struct {
	mu     sync.Mutex
	state  State
	result *types.AnalysisResult
	err    error
}

// New returns an idle cache.
func New() *Cache {
	return &Cache{}
}

// Begin atomically discards the previous result and marks the slot pending.
// Called before a new analysis request dispatches; the clear-before-fetch
// ordering is a contract, not an accident.
func (c *Cache) Begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StatePending
	c.result = nil
	c.err = nil
}

// Resolve stores the result and marks the slot ready, unconditionally
// overwriting whatever was there.
func (c *Cache) Resolve(result types.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateReady
	c.result = &result
	c.err = nil
}

// Fail marks the slot failed with err; no result is retained.
func (c *Cache) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateFailed
	c.result = nil
	c.err = err
}

// Clear resets the slot to idle with no result.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateIdle
	c.result = nil
	c.err = nil
}

// Get returns the current slot value.
func (c *Cache) Get() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{State: c.state, Result: c.result, Err: c.err}
}
