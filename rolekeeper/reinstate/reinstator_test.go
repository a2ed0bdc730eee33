package reinstate

import (
	"context"
	"errors"
	"iter"
	"slices"
	"sync"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/guildstate"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/guildstate/mock"
)

const (
	guildID  snowflake.ID = 1
	goldRole snowflake.ID = 10
	blueRole snowflake.ID = 11
	redRole  snowflake.ID = 12
	alice    snowflake.ID = 100
)

type storedGrants map[snowflake.ID][]snowflake.ID

func (s storedGrants) ListByUser(_ context.Context, _, userID snowflake.ID) ([]snowflake.ID, error) {
	if userID == 0 {
		return nil, errors.New("db down")
	}
	return s[userID], nil
}

type granter struct {
	mu    sync.Mutex
	added []snowflake.ID
	fail  snowflake.ID
}

func (g *granter) AddRole(_ context.Context, _, _, roleID snowflake.ID, _ string) error {
	if roleID == g.fail {
		return errors.New("missing permissions")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.added = append(g.added, roleID)
	return nil
}

func newCache(t *testing.T) *guildstate.Cache {
	source := mock.NewMockMembershipSource(gomock.NewController(t))
	source.EXPECT().ListRoles(gomock.Any(), guildID).Return([]guildstate.RoleInfo{
		{ID: goldRole, Name: "Gold"},
		{ID: blueRole, Name: "Blue"},
		{ID: redRole, Name: "Red"},
	}, nil)
	source.EXPECT().StreamMembers(gomock.Any(), guildID).Return(iter.Seq2[guildstate.MemberRoles, error](
		func(yield func(guildstate.MemberRoles, error) bool) {
			yield(guildstate.MemberRoles{UserID: alice, RoleIDs: []snowflake.ID{goldRole}}, nil)
		}))
	return guildstate.NewCache(source, 0)
}

func TestReinstator_OnJoin(t *testing.T) {
	g := &granter{fail: redRole}
	r := New(newCache(t), storedGrants{alice: {goldRole, blueRole, redRole, 999}}, g)

	restored := r.OnJoin(context.Background(), guildID, alice)

	assert.Equal(t, 2, restored, "the failing role is skipped")
	slices.Sort(g.added)
	assert.Equal(t, []snowflake.ID{goldRole, blueRole}, g.added, "unmanaged stored roles are ignored")
}

func TestReinstator_UnknownMember(t *testing.T) {
	g := &granter{}
	r := New(newCache(t), storedGrants{}, g)

	assert.Zero(t, r.OnJoin(context.Background(), guildID, 555))
	assert.Empty(t, g.added)
}

func TestReinstator_StoreFailureFallsBackToCache(t *testing.T) {
	g := &granter{}
	cache := newCache(t)
	r := New(cache, storedGrants{}, g)

	// user 0 makes the store fail; the cache still knows nothing about them.
	assert.Zero(t, r.OnJoin(context.Background(), guildID, 0))

	assert.Equal(t, 1, r.OnJoin(context.Background(), guildID, alice))
	assert.Equal(t, []snowflake.ID{goldRole}, g.added)
}
