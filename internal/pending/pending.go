// Package pending tracks in-flight remote payment intents between
// intent-creation and capture. The association {provider order id -> cart,
// amount, currency} is deliberately volatile: a process restart loses it and
// the capture then fails with a missing-context error instead of guessing.
package pending

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Context links a provider order id back to the originating cart and the
// amount agreed at intent-creation time. The amount is authoritative at
// capture even if the cart changed in the interim.
type Context struct {
	CartID    string
	Amount    decimal.Decimal
	Currency  string
	CreatedAt time.Time
}

// Store is the exactly-once-consumable key-value contract the checkout
// orchestrator depends on. Implementations must be safe for concurrent use.
type Store interface {
	Put(providerOrderID string, pc Context)
	Get(providerOrderID string) (Context, bool)
	Delete(providerOrderID string)
}

// MemoryStore is a mutex-guarded in-process Store. Entries older than the
// TTL are swept by a background janitor so abandoned checkouts do not leak
// for the process lifetime.
type MemoryStore struct {
	mu       sync.Mutex
	contexts map[string]Context
	ttl      time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// Compile-time check that MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a MemoryStore. A non-positive ttl disables the
// janitor entirely.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		contexts: make(map[string]Context),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	if ttl > 0 {
		go s.janitor()
	}
	return s
}

// Put stores the context for a provider order id, stamping CreatedAt when
// the caller left it zero.
func (s *MemoryStore) Put(providerOrderID string, pc Context) {
	if pc.CreatedAt.IsZero() {
		pc.CreatedAt = time.Now()
	}
	s.mu.Lock()
	s.contexts[providerOrderID] = pc
	s.mu.Unlock()
}

// Get returns the context for a provider order id if present.
func (s *MemoryStore) Get(providerOrderID string) (Context, bool) {
	s.mu.Lock()
	pc, ok := s.contexts[providerOrderID]
	s.mu.Unlock()
	return pc, ok
}

// Delete removes the context for a provider order id.
func (s *MemoryStore) Delete(providerOrderID string) {
	s.mu.Lock()
	delete(s.contexts, providerOrderID)
	s.mu.Unlock()
}

// Len returns the number of tracked contexts.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contexts)
}

// Stop terminates the janitor goroutine.
func (s *MemoryStore) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *MemoryStore) janitor() {
	interval := s.ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

func (s *MemoryStore) sweep(now time.Time) {
	cutoff := now.Add(-s.ttl)
	s.mu.Lock()
	for id, pc := range s.contexts {
		if pc.CreatedAt.Before(cutoff) {
			delete(s.contexts, id)
		}
	}
	s.mu.Unlock()
}
