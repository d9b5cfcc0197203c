package ledger

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(date, desc, amount string) Transaction {
	a, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	return NewTransaction(date, desc, a)
}

func TestTransactionEquals(t *testing.T) {
	t1 := txn("22/5/2025", "Coffee Shop", "-4.50")

	assert.True(t, t1.Equals(txn("22/5/2025", "Coffee Shop", "-4.50")))
	// amounts compare numerically, not textually
	assert.True(t, t1.Equals(txn("22/5/2025", "Coffee Shop", "-4.5")))

	assert.False(t, t1.Equals(txn("23/5/2025", "Coffee Shop", "-4.50")))
	assert.False(t, t1.Equals(txn("22/5/2025", "Coffee", "-4.50")))
	assert.False(t, t1.Equals(txn("22/5/2025", "Coffee Shop", "4.50")))
}

func TestAppendRemoveSnapshot(t *testing.T) {
	l := New(nil)
	t1 := txn("22/5/2025", "Coffee Shop", "-4.50")
	t2 := txn("23/5/2025", "Salary Payment", "2500.00")

	l.Append([]Transaction{t1, t2})
	l.Remove(t1)

	snap := l.Snapshot()
	require.Len(t, snap, 1)
	assert.True(t, snap[0].Equals(t2))
}

func TestRemoveDeletesAllEqualEntries(t *testing.T) {
	l := New(nil)
	dup := txn("22/5/2025", "Coffee Shop", "-4.50")
	other := txn("22/5/2025", "Bakery", "-2.00")

	l.Append([]Transaction{dup, other, dup})
	l.Remove(dup)

	snap := l.Snapshot()
	require.Len(t, snap, 1)
	assert.True(t, snap[0].Equals(other))
}

func TestSnapshotIsIsolated(t *testing.T) {
	l := New(nil)
	l.Append([]Transaction{txn("22/5/2025", "Coffee Shop", "-4.50")})

	snap := l.Snapshot()
	snap[0] = txn("1/1/1999", "tampered", "0.01")

	fresh := l.Snapshot()
	require.Len(t, fresh, 1)
	assert.Equal(t, "Coffee Shop", fresh[0].Description)
}

func TestSubscribeDeliversFullSnapshots(t *testing.T) {
	l := New(nil)
	var mu sync.Mutex
	var seen [][]Transaction

	unsubscribe := l.Subscribe(func(snap []Transaction) {
		mu.Lock()
		seen = append(seen, snap)
		mu.Unlock()
	})
	defer unsubscribe()

	t1 := txn("22/5/2025", "Coffee Shop", "-4.50")
	t2 := txn("23/5/2025", "Salary Payment", "2500.00")
	l.Append([]Transaction{t1})
	l.Append([]Transaction{t2})
	l.Remove(t1)

	mu.Lock()
	defer mu.Unlock()
	// initial snapshot on subscribe, then one per mutation
	require.Len(t, seen, 4)
	assert.Empty(t, seen[0])
	assert.Len(t, seen[1], 1)
	assert.Len(t, seen[2], 2)
	require.Len(t, seen[3], 1)
	assert.True(t, seen[3][0].Equals(t2))
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	l := New(nil)
	calls := 0
	unsubscribe := l.Subscribe(func([]Transaction) { calls++ })
	unsubscribe()

	l.Append([]Transaction{txn("22/5/2025", "Coffee Shop", "-4.50")})
	assert.Equal(t, 1, calls) // only the initial snapshot
}

func TestAppendPreservesOrder(t *testing.T) {
	l := New(nil)
	batch := []Transaction{
		txn("22/5/2025", "first", "-1.00"),
		txn("22/5/2025", "second", "-2.00"),
		txn("23/5/2025", "third", "-3.00"),
	}
	l.Append(batch)

	snap := l.Snapshot()
	require.Len(t, snap, 3)
	for i := range batch {
		assert.True(t, snap[i].Equals(batch[i]), "position %d", i)
	}
}
