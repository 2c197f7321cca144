package game

import "sync"

// ChannelLocks guarantees at most one active round per channel. The first
// requester wins; anyone else gets an "already in progress" reply from the
// command. Locks are held for the duration of a round and always released
// on round end or timeout.
type ChannelLocks struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewChannelLocks() *ChannelLocks {
	return &ChannelLocks{active: make(map[string]struct{})}
}

// TryAcquire claims the channel. It returns false when a round is already
// running there.
func (l *ChannelLocks) TryAcquire(channelID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.active[channelID]; busy {
		return false
	}
	l.active[channelID] = struct{}{}
	return true
}

// Release frees the channel. Releasing an unclaimed channel is a no-op.
func (l *ChannelLocks) Release(channelID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.active, channelID)
}
