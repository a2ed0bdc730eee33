package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellavondegurechaff/rolekeeper/internal/domain/roles"
	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/models"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/config"
)

func TestCommandNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, cmd := range Commands {
		name := cmd.CommandName()
		assert.False(t, seen[name], "duplicate command %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, 14)
}

func TestDescribeOwnership(t *testing.T) {
	tests := []struct {
		name      string
		ownership models.Ownership
		want      string
	}{
		{"owned", models.Ownership{Status: models.OwnerOwned, OwnerID: 42}, "role <@&7> is owned by <@42>"},
		{"orphan", models.Ownership{Status: models.OwnerOrphan}, "role <@&7> is an orphan"},
		{"unknown", models.Ownership{Status: models.OwnerNotFound}, "role <@&7> is not controlled by me"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeOwnership(7, tt.ownership))
		})
	}
}

func TestDescribeTransfer(t *testing.T) {
	assert.Equal(t, "<@9>'s balance: 1,500€",
		describeTransfer(9, models.Transfer{Applied: true, Sent: 500, RecipientBalance: 1500}))
	assert.Equal(t, "<@9>'s balance: 1,000,000€, 250€ refunded",
		describeTransfer(9, models.Transfer{Applied: true, Sent: 750, Refunded: 250, RecipientBalance: 1_000_000}))
}

func TestFilterNames(t *testing.T) {
	names := []string{"Blue", "Gold", "Golden Hour", "Red"}

	got := filterNames(names, "gold")
	require.Len(t, got, 2)
	assert.ElementsMatch(t, []string{"Gold", "Golden Hour"}, got)
	assert.Empty(t, filterNames(names, "xyz"))
}

func TestPageNames(t *testing.T) {
	names := make([]string, 300)
	for i := range names {
		names[i] = strings.Repeat("x", 20)
	}

	pages := pageNames(names)
	require.Greater(t, len(pages), 1)
	total := 0
	for _, page := range pages {
		assert.LessOrEqual(t, len(page), config.MessageBudget)
		total += strings.Count(page, " - ")
	}
	assert.Equal(t, len(names), total)
}

func TestFailureHidesInternalErrors(t *testing.T) {
	assert.Equal(t, "internal error", failure("test", assert.AnError))
	assert.Equal(t, roles.ErrNotOwner.Error(), failure("test", roles.ErrNotOwner))
}
