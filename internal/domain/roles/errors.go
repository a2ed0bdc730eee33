package roles

import (
	"errors"
	"fmt"
	"time"

	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/guildstate"
)

// Policy refusals. They reach the user verbatim through UserMessage.
var (
	ErrRoleNotManaged       = guildstate.ErrRoleNotManaged
	ErrAlreadyGranted       = guildstate.ErrAlreadyGranted
	ErrNotGranted           = guildstate.ErrNotGranted
	ErrDuplicateName        = errors.New("duplicate name")
	ErrQuotaExceeded        = errors.New("too many owned roles")
	ErrNotOwner             = errors.New("role not owned")
	ErrOwnershipUnavailable = errors.New("role already taken or you own too many roles")
	ErrInsufficientFunds    = errors.New("not enough money")
	ErrRoleNotFound         = errors.New("role not found")
	ErrSelfTransfer         = errors.New("cannot transfer to yourself")
	ErrPermissionDenied     = errors.New("permission denied")
)

// CooldownError carries the remaining wait of whichever window refused the call.
type CooldownError = guildstate.CooldownError

// ValidationError rejects malformed input before any state is touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var policyErrors = []error{
	ErrRoleNotManaged,
	ErrAlreadyGranted,
	ErrNotGranted,
	ErrDuplicateName,
	ErrQuotaExceeded,
	ErrNotOwner,
	ErrOwnershipUnavailable,
	ErrInsufficientFunds,
	ErrRoleNotFound,
	ErrSelfTransfer,
	ErrPermissionDenied,
}

// IsPolicy reports whether err is a refusal rather than a failure.
func IsPolicy(err error) bool {
	var cooldown *CooldownError
	var validation *ValidationError
	if errors.As(err, &cooldown) || errors.As(err, &validation) {
		return true
	}
	for _, target := range policyErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// UserMessage turns err into a reply. Anything that is not a policy refusal
// becomes "internal error"; the details stay in the logs.
func UserMessage(err error) string {
	if err == nil {
		return "ok"
	}

	var cooldown *CooldownError
	if errors.As(err, &cooldown) {
		return fmt.Sprintf("cooldown, try again <t:%d:R>", time.Now().Add(cooldown.Remaining).Unix())
	}
	if IsPolicy(err) {
		return err.Error()
	}
	return "internal error"
}
