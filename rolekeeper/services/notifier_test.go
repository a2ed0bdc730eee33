package services

import (
	"context"
	"errors"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type channelTable struct {
	channels map[snowflake.ID]snowflake.ID
	lookups  int
	err      error
}

func (c *channelTable) MainChannel(_ context.Context, guildID snowflake.ID) (snowflake.ID, bool, error) {
	c.lookups++
	if c.err != nil {
		return 0, false, c.err
	}
	ch, ok := c.channels[guildID]
	return ch, ok, nil
}

func TestSendBatchCachesChannel(t *testing.T) {
	ctx := context.Background()
	api := &fakeRest{}
	table := &channelTable{channels: map[snowflake.ID]snowflake.ID{guildID: 77}}
	n := NewChannelNotifier(api, table)

	require.NoError(t, n.SendBatch(ctx, guildID, "first"))
	require.NoError(t, n.SendBatch(ctx, guildID, "second"))

	assert.Equal(t, []string{"first", "second"}, api.messages[77])
	assert.Equal(t, 1, table.lookups)

	table.channels[guildID] = 78
	n.Forget(guildID)
	require.NoError(t, n.SendBatch(ctx, guildID, "third"))
	assert.Equal(t, []string{"third"}, api.messages[78])
	assert.Equal(t, 2, table.lookups)
}

func TestSendBatchSkipsGuildWithoutChannel(t *testing.T) {
	api := &fakeRest{}
	table := &channelTable{channels: map[snowflake.ID]snowflake.ID{}}
	n := NewChannelNotifier(api, table)

	require.NoError(t, n.SendBatch(context.Background(), guildID, "lost"))
	assert.Empty(t, api.messages)

	// Negative lookups are not cached.
	table.channels[guildID] = 77
	require.NoError(t, n.SendBatch(context.Background(), guildID, "found"))
	assert.Equal(t, []string{"found"}, api.messages[77])
}

func TestSendBatchErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("lookup failure", func(t *testing.T) {
		table := &channelTable{err: errors.New("db down")}
		n := NewChannelNotifier(&fakeRest{}, table)
		assert.Error(t, n.SendBatch(ctx, guildID, "x"))
	})

	t.Run("post failure evicts channel", func(t *testing.T) {
		api := &fakeRest{messagesErr: errors.New("unknown channel")}
		table := &channelTable{channels: map[snowflake.ID]snowflake.ID{guildID: 77}}
		n := NewChannelNotifier(api, table)

		assert.Error(t, n.SendBatch(ctx, guildID, "x"))
		api.messagesErr = nil
		require.NoError(t, n.SendBatch(ctx, guildID, "y"))
		assert.Equal(t, 2, table.lookups)
	})
}
