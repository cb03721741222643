package event

import (
	"fmt"
	"time"

	vo "github.com/libdough/openvolunteer/internal/domain/event/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/id"
)

// ShiftAssignment records that a person is assigned to work a shift. The
// (shift, person) pair is unique; concurrent creators race on that
// constraint and the loser treats the existing row as the result.
type ShiftAssignment struct {
	id          string
	shiftID     string
	personID    string
	status      vo.AssignmentStatus
	assignedBy  *string
	checkedInAt *time.Time
	createdAt   time.Time
}

func NewShiftAssignment(shiftID, personID string, status vo.AssignmentStatus, assignedBy *string) (*ShiftAssignment, error) {
	if shiftID == "" {
		return nil, fmt.Errorf("shift ID is required")
	}
	if personID == "" {
		return nil, fmt.Errorf("person ID is required")
	}
	if status == "" {
		status = vo.AssignmentPending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid assignment status: %s", status)
	}
	return &ShiftAssignment{
		id:         id.New(),
		shiftID:    shiftID,
		personID:   personID,
		status:     status,
		assignedBy: assignedBy,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructShiftAssignment(
	assignmentID, shiftID, personID string,
	status vo.AssignmentStatus,
	assignedBy *string,
	checkedInAt *time.Time,
	createdAt time.Time,
) (*ShiftAssignment, error) {
	if assignmentID == "" {
		return nil, fmt.Errorf("assignment ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid assignment status: %s", status)
	}
	return &ShiftAssignment{
		id:          assignmentID,
		shiftID:     shiftID,
		personID:    personID,
		status:      status,
		assignedBy:  assignedBy,
		checkedInAt: checkedInAt,
		createdAt:   createdAt,
	}, nil
}

func (a *ShiftAssignment) ID() string                  { return a.id }
func (a *ShiftAssignment) ShiftID() string             { return a.shiftID }
func (a *ShiftAssignment) PersonID() string            { return a.personID }
func (a *ShiftAssignment) Status() vo.AssignmentStatus { return a.status }
func (a *ShiftAssignment) AssignedBy() *string         { return a.assignedBy }
func (a *ShiftAssignment) CheckedInAt() *time.Time     { return a.checkedInAt }
func (a *ShiftAssignment) CreatedAt() time.Time        { return a.createdAt }

func (a *ShiftAssignment) SetStatus(status vo.AssignmentStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid assignment status: %s", status)
	}
	a.status = status
	return nil
}

func (a *ShiftAssignment) CheckIn(at time.Time) {
	a.checkedInAt = &at
	a.status = vo.AssignmentSignedIn
}
