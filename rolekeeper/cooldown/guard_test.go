package cooldown

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestGuard[K comparable]() (*Guard[K], *fakeClock) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	g := NewGuard[K]()
	g.now = clock.Now
	return g, clock
}

func TestGuard_Check(t *testing.T) {
	g, clock := newTestGuard[UserKey]()
	key := UserKey(1)

	ok, _ := g.Check(key, time.Hour)
	require.True(t, ok, "first check opens the window")

	clock.Advance(20 * time.Minute)
	ok, remaining := g.Check(key, time.Hour)
	require.False(t, ok)
	assert.Equal(t, 40*time.Minute, remaining)

	clock.Advance(40 * time.Minute)
	ok, _ = g.Check(key, time.Hour)
	require.True(t, ok, "elapsed window clears")
	assert.Equal(t, 0, g.Len())

	ok, _ = g.Check(key, time.Hour)
	require.True(t, ok, "cleared key opens a fresh window")
	ok, _ = g.Check(key, time.Hour)
	assert.False(t, ok)
}

func TestGuard_PairKeysAreOrdered(t *testing.T) {
	g, _ := newTestGuard[PairKey]()

	ok, _ := g.Check(PairKey{Actor: 1, Target: 2}, time.Minute)
	require.True(t, ok)

	ok, _ = g.Check(PairKey{Actor: 2, Target: 1}, time.Minute)
	assert.True(t, ok, "reversed pair is a different key")

	ok, _ = g.Check(PairKey{Actor: 1, Target: 2}, time.Minute)
	assert.False(t, ok)
}

func TestGuard_ConcurrentExpiryBoundary(t *testing.T) {
	g, clock := newTestGuard[UserKey]()
	key := UserKey(7)

	ok, _ := g.Check(key, time.Hour)
	require.True(t, ok)
	clock.Advance(time.Hour)

	// Every racer after the first observes either the expiry transition or
	// the fresh window it opened, so exactly two are let through: the one
	// clearing the old window and the one opening the new.
	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := g.Check(key, time.Hour); ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(2), allowed.Load())
}

func TestGuard_ForgetAndPrune(t *testing.T) {
	g, clock := newTestGuard[UserKey]()

	g.Check(UserKey(1), time.Hour)
	g.Forget(UserKey(1))
	ok, _ := g.Check(UserKey(1), time.Hour)
	assert.True(t, ok, "forgotten key is allowed again")

	g.Check(UserKey(2), time.Hour)
	clock.Advance(2 * time.Hour)
	g.Check(UserKey(3), time.Hour)

	assert.Equal(t, 2, g.Prune(time.Hour))
	assert.Equal(t, 1, g.Len())
}

func TestGuard_MemberKeysAreScopedByGuild(t *testing.T) {
	g, _ := newTestGuard[MemberKey]()

	ok, _ := g.Check(MemberKey{GuildID: 1, UserID: 9}, time.Hour)
	assert.True(t, ok)
	ok, _ = g.Check(MemberKey{GuildID: 2, UserID: 9}, time.Hour)
	assert.True(t, ok, "another guild has its own window")
	ok, _ = g.Check(MemberKey{GuildID: 1, UserID: 9}, time.Hour)
	assert.False(t, ok)
}
