package game

import (
	"sync"

	"github.com/jtoman/codeduel/internal/model"
)

// keyedLocks serializes operations per game id. Entries are reference
// counted so the map does not accumulate locks for deleted games.
type keyedLocks struct {
	mu      sync.Mutex
	entries map[model.GameID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{entries: make(map[model.GameID]*lockEntry)}
}

// lock acquires the lock for a game id and returns the matching unlock
// function. Operations on distinct ids never block each other.
func (k *keyedLocks) lock(id model.GameID) func() {
	k.mu.Lock()
	entry, ok := k.entries[id]
	if !ok {
		entry = &lockEntry{}
		k.entries[id] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.entries, id)
		}
		k.mu.Unlock()
	}
}
