package roles

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const maxRoleNameLength = 100

// Config holds the ledger policy knobs.
type Config struct {
	Quota            int
	GrantCooldown    time.Duration
	NewRoleCooldown  time.Duration
	TransferCooldown time.Duration
	InitialLifetime  time.Duration
	MaxExtendSeconds int64
	// MaxBalance is the balance ceiling. A single extension can never cost
	// more than a full balance, so it can never buy more seconds either.
	MaxBalance int64
}

// ParseColour reads "#RRGGBB" (the # is optional). An empty string picks a
// random colour.
func ParseColour(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return rand.IntN(0x1000000), nil
	}
	hex := strings.TrimPrefix(raw, "#")
	if len(hex) != 6 {
		return 0, &ValidationError{Field: "colour", Reason: "expected format: `#FFFFFF`"}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, &ValidationError{Field: "colour", Reason: "expected format: `#FFFFFF`"}
	}
	return int(v & 0xFFFFFF), nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", &ValidationError{Field: "name", Reason: "must not be empty"}
	case utf8.RuneCountInString(name) > maxRoleNameLength:
		return "", &ValidationError{Field: "name", Reason: "must be at most 100 characters"}
	}
	return name, nil
}
