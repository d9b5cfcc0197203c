package ledger

import (
	"log/slog"
	"sync"
)

// Ledger is the in-memory transaction store backing every display surface.
// It is safe for concurrent use. Data is lost on process exit - there is no
// persistence layer behind it.
//
// Mutations are linearizable: each Append/Remove takes effect atomically with
// respect to the published snapshot, and observers always see a full snapshot
// taken after a complete mutation, never a partially applied one.
type Ledger struct {
	mu        sync.RWMutex
	entries   []Transaction
	observers map[int]func([]Transaction)
	nextObsID int
	logger    *slog.Logger
}

// New creates an empty ledger.
func New(logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		observers: make(map[int]func([]Transaction)),
		logger:    logger,
	}
}

// Append extends the stored sequence with txns in the given order and
// notifies observers with the new full snapshot. An empty append still
// counts as a mutation and is published.
func (l *Ledger) Append(txns []Transaction) {
	l.mu.Lock()
	l.entries = append(l.entries, txns...)
	snap := l.snapshotLocked()
	obs := l.observersLocked()
	l.mu.Unlock()

	l.logger.Info("ledger.append", "added", len(txns), "total", len(snap))
	for _, fn := range obs {
		fn(snap)
	}
}

// Remove deletes every entry structurally equal to txn, not just the first,
// and notifies observers.
func (l *Ledger) Remove(txn Transaction) {
	l.mu.Lock()
	kept := l.entries[:0]
	removed := 0
	for _, e := range l.entries {
		if e.Equals(txn) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept
	snap := l.snapshotLocked()
	obs := l.observersLocked()
	l.mu.Unlock()

	l.logger.Info("ledger.remove", "removed", removed, "total", len(snap))
	for _, fn := range obs {
		fn(snap)
	}
}

// Snapshot returns a copy of the current ordered sequence. Callers may hold
// or mutate the returned slice freely without affecting ledger state.
func (l *Ledger) Snapshot() []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshotLocked()
}

// Subscribe registers fn to be called with the full snapshot after every
// mutation. It returns an unsubscribe function. The current snapshot is
// delivered immediately so new observers start in sync.
func (l *Ledger) Subscribe(fn func([]Transaction)) (unsubscribe func()) {
	l.mu.Lock()
	id := l.nextObsID
	l.nextObsID++
	l.observers[id] = fn
	snap := l.snapshotLocked()
	l.mu.Unlock()

	fn(snap)
	return func() {
		l.mu.Lock()
		delete(l.observers, id)
		l.mu.Unlock()
	}
}

func (l *Ledger) snapshotLocked() []Transaction {
	snap := make([]Transaction, len(l.entries))
	copy(snap, l.entries)
	return snap
}

func (l *Ledger) observersLocked() []func([]Transaction) {
	obs := make([]func([]Transaction), 0, len(l.observers))
	for _, fn := range l.observers {
		obs = append(obs, fn)
	}
	return obs
}
