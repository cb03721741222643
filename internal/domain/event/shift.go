package event

import (
	"fmt"
	"time"

	"github.com/libdough/openvolunteer/internal/shared/id"
)

// Shift is a working window within an event. Every event keeps one hidden
// default shift so tickets and assignments always have a shift to hang off.
type Shift struct {
	id        string
	eventID   string
	name      string
	startsAt  time.Time
	endsAt    time.Time
	capacity  int
	isDefault bool
	createdAt time.Time
}

func NewShift(eventID, name string, startsAt, endsAt time.Time, capacity int) (*Shift, error) {
	if eventID == "" {
		return nil, fmt.Errorf("event ID is required")
	}
	if capacity < 0 {
		return nil, fmt.Errorf("capacity cannot be negative")
	}
	if endsAt.Before(startsAt) {
		return nil, fmt.Errorf("shift cannot end before it starts")
	}
	return &Shift{
		id:        id.New(),
		eventID:   eventID,
		name:      name,
		startsAt:  startsAt,
		endsAt:    endsAt,
		capacity:  capacity,
		createdAt: time.Now(),
	}, nil
}

// NewDefaultShift creates the hidden always-present shift spanning the whole
// event.
func NewDefaultShift(e *Event) (*Shift, error) {
	s, err := NewShift(e.ID(), "Default", e.StartsAt(), e.EndsAt(), 0)
	if err != nil {
		return nil, err
	}
	s.isDefault = true
	return s, nil
}

func ReconstructShift(
	shiftID, eventID, name string,
	startsAt, endsAt time.Time,
	capacity int,
	isDefault bool,
	createdAt time.Time,
) (*Shift, error) {
	if shiftID == "" {
		return nil, fmt.Errorf("shift ID is required")
	}
	if eventID == "" {
		return nil, fmt.Errorf("event ID is required")
	}
	return &Shift{
		id:        shiftID,
		eventID:   eventID,
		name:      name,
		startsAt:  startsAt,
		endsAt:    endsAt,
		capacity:  capacity,
		isDefault: isDefault,
		createdAt: createdAt,
	}, nil
}

func (s *Shift) ID() string           { return s.id }
func (s *Shift) EventID() string      { return s.eventID }
func (s *Shift) Name() string         { return s.name }
func (s *Shift) StartsAt() time.Time  { return s.startsAt }
func (s *Shift) EndsAt() time.Time    { return s.endsAt }
func (s *Shift) Capacity() int        { return s.capacity }
func (s *Shift) IsDefault() bool      { return s.isDefault }
func (s *Shift) CreatedAt() time.Time { return s.createdAt }

// HasCapacity reports whether another assignment fits. Zero capacity means
// unlimited.
func (s *Shift) HasCapacity(assigned int) bool {
	if s.capacity == 0 {
		return true
	}
	return assigned < s.capacity
}
