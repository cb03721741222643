package valueobjects

import "fmt"

// RunMode controls when a ticket action executes: manually via a user, or
// automatically on a ticket lifecycle event.
type RunMode string

const (
	RunManual    RunMode = "manual"
	RunOnCreate  RunMode = "on_create"
	RunOnClaim   RunMode = "on_claim"
	RunOnUnclaim RunMode = "on_unclaim"
	RunOnUpdate  RunMode = "on_update"
)

var validRunModes = map[RunMode]bool{
	RunManual:    true,
	RunOnCreate:  true,
	RunOnClaim:   true,
	RunOnUnclaim: true,
	RunOnUpdate:  true,
}

func NewRunMode(s string) (RunMode, error) {
	rm := RunMode(s)
	if !rm.IsValid() {
		return "", fmt.Errorf("invalid run mode: %s", s)
	}
	return rm, nil
}

func (rm RunMode) String() string {
	return string(rm)
}

func (rm RunMode) IsValid() bool {
	return validRunModes[rm]
}

func (rm RunMode) IsAutomatic() bool {
	return rm != RunManual
}
