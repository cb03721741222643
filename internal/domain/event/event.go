// Package event holds the event/shift/assignment side of the domain: the
// scheduling objects ticket generation reads and ticket actions mutate.
package event

import (
	"fmt"
	"time"

	vo "github.com/libdough/openvolunteer/internal/domain/event/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/id"
)

type Event struct {
	id              string
	orgID           string
	title           string
	status          vo.EventStatus
	eventType       vo.EventType
	templateID      *string
	startsAt        time.Time
	endsAt          time.Time
	locationName    string
	locationAddress string
	description     string
	ownerName       string
	createdBy       *string
	createdAt       time.Time
}

func NewEvent(
	orgID string,
	title string,
	eventType vo.EventType,
	startsAt, endsAt time.Time,
	createdBy *string,
) (*Event, error) {
	if orgID == "" {
		return nil, fmt.Errorf("org ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid event type")
	}
	if endsAt.Before(startsAt) {
		return nil, fmt.Errorf("event cannot end before it starts")
	}

	return &Event{
		id:        id.New(),
		orgID:     orgID,
		title:     title,
		status:    vo.EventDraft,
		eventType: eventType,
		startsAt:  startsAt,
		endsAt:    endsAt,
		createdBy: createdBy,
		createdAt: time.Now(),
	}, nil
}

func ReconstructEvent(
	eventID string,
	orgID string,
	title string,
	status vo.EventStatus,
	eventType vo.EventType,
	templateID *string,
	startsAt, endsAt time.Time,
	locationName, locationAddress, description, ownerName string,
	createdBy *string,
	createdAt time.Time,
) (*Event, error) {
	if eventID == "" {
		return nil, fmt.Errorf("event ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid event status")
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid event type")
	}

	return &Event{
		id:              eventID,
		orgID:           orgID,
		title:           title,
		status:          status,
		eventType:       eventType,
		templateID:      templateID,
		startsAt:        startsAt,
		endsAt:          endsAt,
		locationName:    locationName,
		locationAddress: locationAddress,
		description:     description,
		ownerName:       ownerName,
		createdBy:       createdBy,
		createdAt:       createdAt,
	}, nil
}

func (e *Event) ID() string              { return e.id }
func (e *Event) OrgID() string           { return e.orgID }
func (e *Event) Title() string           { return e.title }
func (e *Event) Status() vo.EventStatus  { return e.status }
func (e *Event) EventType() vo.EventType { return e.eventType }
func (e *Event) TemplateID() *string     { return e.templateID }
func (e *Event) StartsAt() time.Time     { return e.startsAt }
func (e *Event) EndsAt() time.Time       { return e.endsAt }
func (e *Event) LocationName() string    { return e.locationName }
func (e *Event) LocationAddress() string { return e.locationAddress }
func (e *Event) Description() string     { return e.description }
func (e *Event) OwnerName() string       { return e.ownerName }
func (e *Event) CreatedBy() *string      { return e.createdBy }
func (e *Event) CreatedAt() time.Time    { return e.createdAt }

func (e *Event) SetTemplateID(templateID string) {
	e.templateID = &templateID
}

func (e *Event) SetStatus(status vo.EventStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid event status: %s", status)
	}
	e.status = status
	return nil
}
