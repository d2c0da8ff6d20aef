// Package observability provides hooks for instrumenting the automata pipeline.
//
// Libraries emit events through the registered hooks and never depend on a
// concrete backend. The CLI registers hooks that log each event at debug
// level; tests register recorders.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetOperationHooks(&myOperationHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Operations().OnApplyStart(ctx, "determinize", states)
//	// ... do the work ...
//	observability.Operations().OnApplyComplete(ctx, "determinize", resultStates, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Operation Hooks
// =============================================================================

// OperationHooks receives events from definition loading and automaton
// operations.
type OperationHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, states int, duration time.Duration, err error)

	// Apply events. states is the total state count of the inputs for
	// OnApplyStart and of the result for OnApplyComplete.
	OnApplyStart(ctx context.Context, op string, states int)
	OnApplyComplete(ctx context.Context, op string, states int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, op string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, op string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, op string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopOperationHooks is a no-op implementation of OperationHooks.
type NoopOperationHooks struct{}

func (NoopOperationHooks) OnLoadStart(context.Context, string)                                {}
func (NoopOperationHooks) OnLoadComplete(context.Context, string, int, time.Duration, error)  {}
func (NoopOperationHooks) OnApplyStart(context.Context, string, int)                          {}
func (NoopOperationHooks) OnApplyComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	operationHooks OperationHooks = NoopOperationHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
	hooksMu        sync.RWMutex
)

// SetOperationHooks registers custom operation hooks. Nil is ignored.
func SetOperationHooks(h OperationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		operationHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Operations returns the registered operation hooks.
func Operations() OperationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return operationHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	operationHooks = NoopOperationHooks{}
	cacheHooks = NoopCacheHooks{}
}
