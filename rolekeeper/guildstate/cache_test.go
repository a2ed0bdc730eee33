package guildstate_test

import (
	"context"
	"errors"
	"iter"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/guildstate"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/guildstate/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	guildID   snowflake.ID = 100
	adminRole snowflake.ID = 201
	botRole   snowflake.ID = 202
	goldRole  snowflake.ID = 203
	blueRole  snowflake.ID = 204
	alice     snowflake.ID = 301
	bob       snowflake.ID = 302
	backdate               = 48 * time.Hour
)

var guildRoles = []guildstate.RoleInfo{
	{ID: guildID, Name: "@everyone"},
	{ID: adminRole, Name: "Admin", Permissions: discord.PermissionAdministrator},
	{ID: botRole, Name: "Bot", Managed: true},
	{ID: goldRole, Name: "Gold"},
	{ID: blueRole, Name: "Blue"},
}

type entry struct {
	member guildstate.MemberRoles
	err    error
}

func members(entries ...entry) iter.Seq2[guildstate.MemberRoles, error] {
	return func(yield func(guildstate.MemberRoles, error) bool) {
		for _, e := range entries {
			if !yield(e.member, e.err) {
				return
			}
		}
	}
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newCache(t *testing.T, opts ...guildstate.Option) (*guildstate.Cache, *mock.MockMembershipSource, *clock) {
	t.Helper()
	source := mock.NewMockMembershipSource(gomock.NewController(t))
	clk := &clock{now: time.Unix(1_700_000_000, 0)}
	opts = append([]guildstate.Option{guildstate.WithClock(clk.Now)}, opts...)
	return guildstate.NewCache(source, backdate, opts...), source, clk
}

func expectHydration(source *mock.MockMembershipSource) {
	source.EXPECT().ListRoles(gomock.Any(), guildID).Return(guildRoles, nil).Times(1)
	source.EXPECT().StreamMembers(gomock.Any(), guildID).Return(members(
		entry{member: guildstate.MemberRoles{UserID: alice, RoleIDs: []snowflake.ID{goldRole, adminRole}}},
		entry{err: errors.New("unknown member")},
		entry{member: guildstate.MemberRoles{UserID: bob, RoleIDs: []snowflake.ID{blueRole}}},
	)).Times(1)
}

func TestCache_HydrationKeepsOnlyCosmeticRoles(t *testing.T) {
	cache, source, _ := newCache(t)
	expectHydration(source)

	state, err := cache.Get(context.Background(), guildID)
	require.NoError(t, err)

	assert.True(t, state.IsManaged(goldRole))
	assert.True(t, state.IsManaged(blueRole))
	assert.False(t, state.IsManaged(adminRole), "privileged role must never be managed")
	assert.False(t, state.IsManaged(botRole))
	assert.False(t, state.IsManaged(guildID))
	assert.ElementsMatch(t, []snowflake.ID{goldRole}, state.RolesOf(alice))
	assert.ElementsMatch(t, []snowflake.ID{blueRole}, state.RolesOf(bob))

	assert.False(t, state.ReserveName("Gold"), "hydrated names are taken")
	assert.True(t, state.ReserveName("Admin"), "discarded role names stay free")
}

func TestCache_HydratedGrantsAreBackdated(t *testing.T) {
	cache, source, _ := newCache(t)
	expectHydration(source)

	state, err := cache.Get(context.Background(), guildID)
	require.NoError(t, err)

	_, err = state.Revoke(alice, goldRole, backdate)
	assert.NoError(t, err)
}

func TestCache_SingleFlightHydration(t *testing.T) {
	cache, source, _ := newCache(t)

	release := make(chan struct{})
	source.EXPECT().ListRoles(gomock.Any(), guildID).DoAndReturn(
		func(context.Context, snowflake.ID) ([]guildstate.RoleInfo, error) {
			<-release
			return guildRoles, nil
		}).Times(1)
	source.EXPECT().StreamMembers(gomock.Any(), guildID).Return(members()).Times(1)

	const callers = 16
	results := make([]*guildstate.GuildState, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			state, err := cache.Get(context.Background(), guildID)
			assert.NoError(t, err)
			results[i] = state
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, state := range results {
		assert.Same(t, results[0], state)
	}
}

func TestCache_HydrationOutlivesAbandoningCaller(t *testing.T) {
	cache, source, _ := newCache(t)

	started := make(chan struct{})
	release := make(chan struct{})
	source.EXPECT().ListRoles(gomock.Any(), guildID).DoAndReturn(
		func(ctx context.Context, _ snowflake.ID) ([]guildstate.RoleInfo, error) {
			close(started)
			<-release
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return guildRoles, nil
		}).Times(1)
	source.EXPECT().StreamMembers(gomock.Any(), guildID).Return(members()).Times(1)

	impatient, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := cache.Get(impatient, guildID)
		firstErr <- err
	}()
	<-started

	waiter := make(chan *guildstate.GuildState, 1)
	go func() {
		state, err := cache.Get(context.Background(), guildID)
		assert.NoError(t, err)
		waiter <- state
	}()

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	state := <-waiter
	require.NotNil(t, state)
	assert.True(t, state.IsManaged(goldRole))

	cached, ok := cache.Peek(guildID)
	require.True(t, ok)
	assert.Same(t, state, cached)
}

func TestCache_FailedHydrationIsRetried(t *testing.T) {
	cache, source, _ := newCache(t)

	gomock.InOrder(
		source.EXPECT().ListRoles(gomock.Any(), guildID).Return(nil, errors.New("gateway down")),
		source.EXPECT().ListRoles(gomock.Any(), guildID).Return(guildRoles, nil),
	)
	source.EXPECT().StreamMembers(gomock.Any(), guildID).Return(members()).Times(1)

	_, err := cache.Get(context.Background(), guildID)
	require.Error(t, err)
	_, ok := cache.Peek(guildID)
	assert.False(t, ok)

	state, err := cache.Get(context.Background(), guildID)
	require.NoError(t, err)
	assert.True(t, state.IsManaged(goldRole))
}

func TestCache_InvalidateRehydrates(t *testing.T) {
	cache, source, _ := newCache(t)
	source.EXPECT().ListRoles(gomock.Any(), guildID).Return(guildRoles, nil).Times(2)
	source.EXPECT().StreamMembers(gomock.Any(), guildID).Return(members()).Times(2)

	first, err := cache.Get(context.Background(), guildID)
	require.NoError(t, err)
	cache.Invalidate(guildID)
	second, err := cache.Get(context.Background(), guildID)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestCache_HydrateHook(t *testing.T) {
	var calls atomic.Int32
	var kept []guildstate.RoleInfo
	cache, source, _ := newCache(t, guildstate.WithHydrateHook(
		func(_ context.Context, state *guildstate.GuildState, roles []guildstate.RoleInfo) {
			calls.Add(1)
			kept = roles
		}))
	expectHydration(source)

	_, err := cache.Get(context.Background(), guildID)
	require.NoError(t, err)
	_, err = cache.Get(context.Background(), guildID)
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	require.Len(t, kept, 2)
	assert.Equal(t, goldRole, kept[0].ID)
	assert.Equal(t, blueRole, kept[1].ID)
}
