package guildstate

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrRoleNotManaged = errors.New("role is not managed by this bot")
	ErrAlreadyGranted = errors.New("role already applied")
	ErrNotGranted     = errors.New("role is not applied")
)

// CooldownError is returned by Revoke while a grant is younger than the
// requested minimum age.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown on a recently added role, %s remaining", e.Remaining.Round(time.Second))
}
