package valueobjects

import "fmt"

// ActionType is the closed set of side effects a ticket action can perform.
// The dispatcher switches exhaustively over these values; adding a type here
// without a handler arm is a compile-visible hole, not a runtime surprise.
type ActionType string

const (
	// ActionNoop performs no domain side effect; it exists so a ticket
	// status transition and audit trail can hang off a button.
	ActionNoop ActionType = "noop"

	// ActionUpdateShiftStatus overwrites the status of the existing shift
	// assignment for the ticket's person. Fails if no assignment exists.
	ActionUpdateShiftStatus ActionType = "update_shift_status"

	// ActionUpsertShiftAssignment creates or updates the shift assignment
	// for the ticket's person. The create-capable counterpart of
	// ActionUpdateShiftStatus.
	ActionUpsertShiftAssignment ActionType = "upsert_shift_assignment"

	// ActionUpsertTag attaches an org-preferred tag to the ticket's person.
	ActionUpsertTag ActionType = "upsert_tag"

	// ActionRemoveTag detaches an org-preferred tag from the ticket's person.
	ActionRemoveTag ActionType = "remove_tag"
)

var validActionTypes = map[ActionType]bool{
	ActionNoop:                  true,
	ActionUpdateShiftStatus:     true,
	ActionUpsertShiftAssignment: true,
	ActionUpsertTag:             true,
	ActionRemoveTag:             true,
}

func NewActionType(s string) (ActionType, error) {
	at := ActionType(s)
	if !at.IsValid() {
		return "", fmt.Errorf("invalid action type: %s", s)
	}
	return at, nil
}

func (at ActionType) String() string {
	return string(at)
}

func (at ActionType) IsValid() bool {
	return validActionTypes[at]
}
