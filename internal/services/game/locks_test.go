package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedLocksSerializesSameKey(t *testing.T) {
	locks := newKeyedLocks()

	const goroutines = 50
	const increments = 20

	counter := 0
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				unlock := locks.lock("game_1")
				counter++
				unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*increments, counter)
}

func TestKeyedLocksReleasesEntries(t *testing.T) {
	locks := newKeyedLocks()

	unlock := locks.lock("game_1")
	unlock()

	unlockA := locks.lock("game_a")
	unlockB := locks.lock("game_b")
	unlockA()
	unlockB()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Empty(t, locks.entries)
}

func TestKeyedLocksDistinctKeysDoNotBlock(t *testing.T) {
	locks := newKeyedLocks()

	unlockA := locks.lock("game_a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.lock("game_b")
		unlockB()
		close(done)
	}()

	<-done
}
