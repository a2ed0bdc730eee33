package deadline_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/repositories"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/database"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/deadline"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent map[snowflake.ID][]string
}

func (n *recordingNotifier) SendBatch(_ context.Context, guildID snowflake.ID, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.sent == nil {
		n.sent = make(map[snowflake.ID][]string)
	}
	n.sent[guildID] = append(n.sent[guildID], text)
	return nil
}

func TestSweepAgainstStore(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewSQLite(ctx, filepath.Join(t.TempDir(), "deadline.db"))
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.InitializeSchema(ctx))

	repo := repositories.NewRoleRepository(db.BunDB(), repositories.Horizons{Day: 24 * time.Hour, Hour: time.Hour})
	in := func(d time.Duration) *time.Time {
		v := time.Now().Add(d)
		return &v
	}
	owner := snowflake.ID(5)
	_, err = repo.CreateRole(ctx, 1, 10, "Soon", &owner, in(20*time.Hour), 20)
	require.NoError(t, err)
	_, err = repo.CreateRole(ctx, 1, 11, "Sooner", &owner, in(30*time.Minute), 20)
	require.NoError(t, err)
	_, err = repo.CreateRole(ctx, 2, 12, "Later", &owner, in(72*time.Hour), 20)
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	s := deadline.NewScheduler(repo, notifier, deadline.DefaultWindows(24*time.Hour, time.Hour), 1900)

	require.NoError(t, s.Sweep(ctx))
	require.Len(t, notifier.sent[1], 2, "one day batch and one hour batch")
	assert.Contains(t, notifier.sent[1][0], "<@&10>")
	assert.Contains(t, notifier.sent[1][0], "<@&11>")
	assert.Contains(t, notifier.sent[1][1], "<@&11>")
	assert.NotContains(t, notifier.sent[1][1], "<@&10>")
	assert.Empty(t, notifier.sent[2])

	require.NoError(t, s.Sweep(ctx))
	assert.Len(t, notifier.sent[1], 2, "warnings are sent once")
}
