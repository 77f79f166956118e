// Package memstore implements store.Store with in-memory maps. It backs the
// service tests and local development without a database.
//
// Transact holds the store-wide mutex for the whole transaction and keeps a
// deep-copied snapshot; if the callback fails the snapshot is swapped back
// in, so a failed checkout rolls back every write exactly like a database
// transaction would.
package memstore

import (
	"context"
	"sync"

	"github.com/zaxiang/Mini-Amazon/store"
)

type MemStore struct {
	mu sync.Mutex
	st *memState
}

func New() *MemStore {
	return &MemStore{st: newState()}
}

func (m *MemStore) Transact(ctx context.Context, fn func(store.Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := m.st.clone()
	if err := fn(&memTx{st: m.st}); err != nil {
		m.st = snap
		return err
	}
	return nil
}

// memTx is the view handed to Transact callbacks. It operates on the live
// state without locking; the MemStore mutex is already held.
type memTx struct {
	st *memState
}

// Nested transactions join the enclosing one.
func (t *memTx) Transact(ctx context.Context, fn func(store.Store) error) error {
	return fn(t)
}

func (m *MemStore) tx() *memTx { return &memTx{st: m.st} }

var (
	_ store.Store = (*MemStore)(nil)
	_ store.Store = (*memTx)(nil)
)
