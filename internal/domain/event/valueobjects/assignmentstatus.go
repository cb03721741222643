package valueobjects

import "fmt"

// AssignmentStatus tracks how committed a person is to working a shift.
type AssignmentStatus string

const (
	AssignmentInit      AssignmentStatus = "init"
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentDeclined  AssignmentStatus = "declined"
	AssignmentPartial   AssignmentStatus = "partial"
	AssignmentConfirmed AssignmentStatus = "confirmed"
	AssignmentSignedIn  AssignmentStatus = "signed_in"
	AssignmentNoShow    AssignmentStatus = "no_show"
)

var validAssignmentStatuses = map[AssignmentStatus]bool{
	AssignmentInit:      true,
	AssignmentPending:   true,
	AssignmentDeclined:  true,
	AssignmentPartial:   true,
	AssignmentConfirmed: true,
	AssignmentSignedIn:  true,
	AssignmentNoShow:    true,
}

func NewAssignmentStatus(s string) (AssignmentStatus, error) {
	as := AssignmentStatus(s)
	if !as.IsValid() {
		return "", fmt.Errorf("invalid assignment status: %s", s)
	}
	return as, nil
}

func (as AssignmentStatus) String() string {
	return string(as)
}

func (as AssignmentStatus) IsValid() bool {
	return validAssignmentStatuses[as]
}
