package deadline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/models"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/deadline/mock"
)

func roleDue(id int64, deadline time.Time, owner int64) models.Role {
	unix := deadline.Unix()
	return models.Role{RoleID: id, GuildID: 1, Name: "r", Deadline: &unix, OwnerID: &owner}
}

func TestScheduler_SweepGuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)
	notifier := mock.NewMockNotifier(ctrl)
	recorder := mock.NewMockRecorder(ctrl)

	due := time.Unix(1_700_000_000, 0)
	windows := DefaultWindows(24*time.Hour, time.Hour)

	store.EXPECT().SweepWarnings(gomock.Any(), snowflake.ID(1), 24*time.Hour, models.WarningDay).
		Return([]models.Role{roleDue(10, due, 5), roleDue(11, due, 6)}, nil)
	store.EXPECT().SweepWarnings(gomock.Any(), snowflake.ID(1), time.Hour, models.WarningHour).
		Return(nil, nil)
	recorder.EXPECT().WarningsSent(models.WarningDay, 2)
	notifier.EXPECT().SendBatch(gomock.Any(), snowflake.ID(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ snowflake.ID, text string) error {
			assert.Contains(t, text, "in less than a day")
			assert.Contains(t, text, "<@&10> expires <t:1700000000:R>, owner <@5>")
			assert.Contains(t, text, "<@&11>")
			return nil
		})

	s := NewScheduler(store, notifier, windows, 1900, WithRecorder(recorder))
	require.NoError(t, s.SweepGuild(context.Background(), 1))
}

func TestScheduler_SweepBatchesByBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)
	notifier := mock.NewMockNotifier(ctrl)

	rows := make([]models.Role, 50)
	for i := range rows {
		rows[i] = roleDue(int64(1000+i), time.Unix(1_700_000_000, 0), 5)
	}
	store.EXPECT().SweepWarnings(gomock.Any(), snowflake.ID(1), gomock.Any(), models.WarningDay).Return(rows, nil)

	var sent []string
	notifier.EXPECT().SendBatch(gomock.Any(), snowflake.ID(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ snowflake.ID, text string) error {
			sent = append(sent, text)
			return errors.New("missing access")
		}).MinTimes(2)

	s := NewScheduler(store, notifier, DefaultWindows(24*time.Hour, time.Hour)[:1], 300)
	require.NoError(t, s.SweepGuild(context.Background(), 1), "delivery failures are logged, not returned")

	total := 0
	for _, text := range sent {
		assert.LessOrEqual(t, len(text), 300)
		total += strings.Count(text, "<@&")
	}
	assert.Equal(t, 50, total)
}

func TestScheduler_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)
	notifier := mock.NewMockNotifier(ctrl)

	store.EXPECT().GuildsWithDeadlines(gomock.Any()).Return([]snowflake.ID{1, 2, 3}, nil)
	store.EXPECT().SweepWarnings(gomock.Any(), snowflake.ID(1), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	store.EXPECT().SweepWarnings(gomock.Any(), snowflake.ID(2), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	store.EXPECT().SweepWarnings(gomock.Any(), snowflake.ID(3), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	s := NewScheduler(store, notifier, DefaultWindows(24*time.Hour, time.Hour), 1900, WithConcurrency(2))
	assert.NoError(t, s.Sweep(context.Background()), "one failing guild does not fail the sweep")

	store.EXPECT().GuildsWithDeadlines(gomock.Any()).Return(nil, errors.New("db down"))
	assert.Error(t, s.Sweep(context.Background()))
}
