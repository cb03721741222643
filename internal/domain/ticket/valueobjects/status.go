package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusTodo       TicketStatus = "todo"
	StatusInProgress TicketStatus = "inprogress"
	StatusBlocked    TicketStatus = "blocked"
	StatusCompleted  TicketStatus = "completed"
	StatusCanceled   TicketStatus = "canceled"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusTodo:       true,
	StatusInProgress: true,
	StatusBlocked:    true,
	StatusCompleted:  true,
	StatusCanceled:   true,
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsCompleted() bool {
	return ts == StatusCompleted
}

// IsClosed reports whether the status is terminal (completed or canceled).
func (ts TicketStatus) IsClosed() bool {
	return ts == StatusCompleted || ts == StatusCanceled
}

// ClosedStatuses returns the terminal statuses, the set maintenance jobs
// treat as resolved work.
func ClosedStatuses() []TicketStatus {
	return []TicketStatus{StatusCompleted, StatusCanceled}
}

// AllTicketStatuses returns every valid status value.
func AllTicketStatuses() []TicketStatus {
	return []TicketStatus{
		StatusOpen,
		StatusTodo,
		StatusInProgress,
		StatusBlocked,
		StatusCompleted,
		StatusCanceled,
	}
}
