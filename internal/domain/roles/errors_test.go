package roles

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: "ok"},
		{name: "sentinel", err: ErrQuotaExceeded, want: "too many owned roles"},
		{name: "wrapped sentinel", err: fmt.Errorf("create: %w", ErrDuplicateName), want: "duplicate name"},
		{name: "validation", err: &ValidationError{Field: "colour", Reason: "expected #RRGGBB"}, want: "invalid colour: expected #RRGGBB"},
		{name: "store failure", err: errors.New("pq: connection refused"), want: "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestUserMessage_Cooldown(t *testing.T) {
	msg := UserMessage(&CooldownError{Remaining: time.Hour})
	assert.Contains(t, msg, "cooldown, try again <t:")
	assert.True(t, IsPolicy(fmt.Errorf("wrap: %w", &CooldownError{})))
	assert.False(t, IsPolicy(errors.New("boom")))
}
