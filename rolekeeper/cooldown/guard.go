// Package cooldown rate-limits gated actions per key.
package cooldown

import (
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/puzpuzpuz/xsync/v3"
)

// UserKey gates an action per acting user.
type UserKey snowflake.ID

// MemberKey gates an action per user within one guild.
type MemberKey struct {
	GuildID snowflake.ID
	UserID  snowflake.ID
}

// PairKey gates an action per ordered (actor, target) pair within one guild.
type PairKey struct {
	GuildID snowflake.ID
	Actor   snowflake.ID
	Target  snowflake.ID
}

// Guard remembers when each key's window opened. An entry only exists while
// a window may still be open.
type Guard[K comparable] struct {
	entries *xsync.MapOf[K, time.Time]
	now     func() time.Time
}

func NewGuard[K comparable]() *Guard[K] {
	return &Guard[K]{
		entries: xsync.NewMapOf[K, time.Time](),
		now:     time.Now,
	}
}

// Check reports whether the action gated by key may run now. With no entry a
// window is opened and the action is allowed. With an elapsed entry the entry
// is dropped and the action is allowed; the next Check opens a fresh window.
// Otherwise the remaining time is returned and nothing changes.
//
// The decision runs inside the map's per-bucket compute, so callers racing on
// the same key see at most one transition.
func (g *Guard[K]) Check(key K, window time.Duration) (bool, time.Duration) {
	now := g.now()
	var (
		allowed   bool
		remaining time.Duration
	)
	g.entries.Compute(key, func(started time.Time, loaded bool) (time.Time, bool) {
		if !loaded {
			allowed = true
			return now, false
		}
		elapsed := now.Sub(started)
		if elapsed >= window {
			allowed = true
			return started, true
		}
		remaining = window - elapsed
		return started, false
	})
	return allowed, remaining
}

// Forget drops the entry for key, refunding an open window.
func (g *Guard[K]) Forget(key K) {
	g.entries.Delete(key)
}

// Prune drops every entry older than window. Entries are otherwise only
// cleared by Check, so long-lived processes call this from a ticker.
func (g *Guard[K]) Prune(window time.Duration) int {
	now := g.now()
	pruned := 0
	g.entries.Range(func(key K, started time.Time) bool {
		g.entries.Compute(key, func(current time.Time, loaded bool) (time.Time, bool) {
			if loaded && now.Sub(current) >= window {
				pruned++
				return current, true
			}
			return current, !loaded
		})
		return true
	})
	return pruned
}

func (g *Guard[K]) Len() int {
	return g.entries.Size()
}
