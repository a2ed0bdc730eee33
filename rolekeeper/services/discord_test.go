package services

import (
	"context"
	"errors"
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/guildstate"
)

const guildID snowflake.ID = 1

type fakeRest struct {
	roles       []discord.Role
	members     []discord.Member
	failAfter   snowflake.ID
	failPage    bool
	pageCalls   []snowflake.ID
	added       [][3]snowflake.ID
	removed     [][3]snowflake.ID
	created     []discord.RoleCreate
	deleted     []snowflake.ID
	messages    map[snowflake.ID][]string
	actionErr   error
	messagesErr error
}

func (f *fakeRest) GetRoles(snowflake.ID, ...rest.RequestOpt) ([]discord.Role, error) {
	return f.roles, f.actionErr
}

func (f *fakeRest) CreateRole(_ snowflake.ID, create discord.RoleCreate, _ ...rest.RequestOpt) (*discord.Role, error) {
	if f.actionErr != nil {
		return nil, f.actionErr
	}
	f.created = append(f.created, create)
	return &discord.Role{ID: snowflake.ID(500 + len(f.created)), Name: create.Name}, nil
}

func (f *fakeRest) DeleteRole(_ snowflake.ID, roleID snowflake.ID, _ ...rest.RequestOpt) error {
	if f.actionErr != nil {
		return f.actionErr
	}
	f.deleted = append(f.deleted, roleID)
	return nil
}

func (f *fakeRest) GetMembers(_ snowflake.ID, limit int, after snowflake.ID, _ ...rest.RequestOpt) ([]discord.Member, error) {
	f.pageCalls = append(f.pageCalls, after)
	if f.failPage && after == f.failAfter {
		return nil, errors.New("gateway timeout")
	}
	var page []discord.Member
	for _, m := range f.members {
		if m.User.ID > after && len(page) < limit {
			page = append(page, m)
		}
	}
	return page, nil
}

func (f *fakeRest) AddMemberRole(guildID, userID, roleID snowflake.ID, _ ...rest.RequestOpt) error {
	if f.actionErr != nil {
		return f.actionErr
	}
	f.added = append(f.added, [3]snowflake.ID{guildID, userID, roleID})
	return nil
}

func (f *fakeRest) RemoveMemberRole(guildID, userID, roleID snowflake.ID, _ ...rest.RequestOpt) error {
	if f.actionErr != nil {
		return f.actionErr
	}
	f.removed = append(f.removed, [3]snowflake.ID{guildID, userID, roleID})
	return nil
}

func (f *fakeRest) CreateMessage(channelID snowflake.ID, create discord.MessageCreate, _ ...rest.RequestOpt) (*discord.Message, error) {
	if f.messagesErr != nil {
		return nil, f.messagesErr
	}
	if f.messages == nil {
		f.messages = map[snowflake.ID][]string{}
	}
	f.messages[channelID] = append(f.messages[channelID], create.Content)
	return &discord.Message{ChannelID: channelID, Content: create.Content}, nil
}

func members(n int) []discord.Member {
	out := make([]discord.Member, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, discord.Member{
			User:    discord.User{ID: snowflake.ID(1000 + i)},
			RoleIDs: []snowflake.ID{10},
		})
	}
	return out
}

func TestListRoles(t *testing.T) {
	api := &fakeRest{roles: []discord.Role{
		{ID: 10, Name: "Gold", Permissions: discord.PermissionsNone},
		{ID: 11, Name: "Mods", Permissions: discord.PermissionKickMembers},
		{ID: 12, Name: "Bot", Managed: true},
	}}
	svc := NewDiscordService(api, api)

	infos, err := svc.ListRoles(context.Background(), guildID)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, guildstate.RoleInfo{ID: 10, Name: "Gold"}, infos[0])
	assert.Equal(t, discord.PermissionKickMembers, infos[1].Permissions)
	assert.True(t, infos[2].Managed)
}

func TestStreamMembersPages(t *testing.T) {
	api := &fakeRest{members: members(memberPageSize + 5)}
	svc := NewDiscordService(api, api)

	var seen int
	for member, err := range svc.StreamMembers(context.Background(), guildID) {
		require.NoError(t, err)
		assert.Equal(t, []snowflake.ID{10}, member.RoleIDs)
		seen++
	}
	assert.Equal(t, memberPageSize+5, seen)
	assert.Equal(t, []snowflake.ID{0, snowflake.ID(1000 + memberPageSize)}, api.pageCalls)
}

func TestStreamMembersStopsOnPageError(t *testing.T) {
	api := &fakeRest{
		members:   members(memberPageSize + 5),
		failPage:  true,
		failAfter: snowflake.ID(1000 + memberPageSize),
	}
	svc := NewDiscordService(api, api)

	var seen, failures int
	for _, err := range svc.StreamMembers(context.Background(), guildID) {
		if err != nil {
			failures++
			continue
		}
		seen++
	}
	assert.Equal(t, memberPageSize, seen)
	assert.Equal(t, 1, failures)
}

func TestStreamMembersEarlyBreak(t *testing.T) {
	api := &fakeRest{members: members(10)}
	svc := NewDiscordService(api, api)

	var seen int
	for range svc.StreamMembers(context.Background(), guildID) {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
	assert.Len(t, api.pageCalls, 1)
}

func TestRoleActions(t *testing.T) {
	ctx := context.Background()
	api := &fakeRest{}
	svc := NewDiscordService(api, api)

	require.NoError(t, svc.AddRole(ctx, guildID, 100, 10, "add"))
	require.NoError(t, svc.RemoveRole(ctx, guildID, 100, 10, "remove"))
	assert.Equal(t, [][3]snowflake.ID{{guildID, 100, 10}}, api.added)
	assert.Equal(t, [][3]snowflake.ID{{guildID, 100, 10}}, api.removed)

	id, err := svc.CreateRole(ctx, guildID, "Gold", 0xffd700)
	require.NoError(t, err)
	assert.Equal(t, snowflake.ID(501), id)
	require.Len(t, api.created, 1)
	created := api.created[0]
	assert.Equal(t, 0xffd700, created.Color)
	assert.True(t, created.Hoist)
	assert.True(t, created.Mentionable)
	require.NotNil(t, created.Permissions)
	assert.Equal(t, discord.PermissionsNone, *created.Permissions)

	require.NoError(t, svc.DeleteRole(ctx, guildID, id, "delete"))
	assert.Equal(t, []snowflake.ID{501}, api.deleted)
}

func TestRoleActionsWrapErrors(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("missing access")
	api := &fakeRest{actionErr: cause}
	svc := NewDiscordService(api, api)

	assert.ErrorIs(t, svc.AddRole(ctx, guildID, 100, 10, "add"), cause)
	assert.ErrorIs(t, svc.RemoveRole(ctx, guildID, 100, 10, "remove"), cause)
	assert.ErrorIs(t, svc.DeleteRole(ctx, guildID, 10, "delete"), cause)
	_, err := svc.CreateRole(ctx, guildID, "Gold", 0)
	assert.ErrorIs(t, err, cause)
}
