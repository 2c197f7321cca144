package game

import (
	"sync"
	"testing"
)

func TestChannelLocksExclusive(t *testing.T) {
	locks := NewChannelLocks()

	if !locks.TryAcquire("chan1") {
		t.Fatal("first acquire must succeed")
	}
	if locks.TryAcquire("chan1") {
		t.Fatal("second acquire on the same channel must fail")
	}
	if !locks.TryAcquire("chan2") {
		t.Fatal("different channel must be independent")
	}

	locks.Release("chan1")
	if !locks.TryAcquire("chan1") {
		t.Fatal("acquire after release must succeed")
	}
}

func TestChannelLocksReleaseUnheld(t *testing.T) {
	locks := NewChannelLocks()
	locks.Release("never-held") // must not panic
}

func TestChannelLocksSingleWinner(t *testing.T) {
	locks := NewChannelLocks()
	const goroutines = 50

	var wg sync.WaitGroup
	wins := make(chan struct{}, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if locks.TryAcquire("chan1") {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	if count != 1 {
		t.Fatalf("winners = %d, want exactly 1", count)
	}
}
