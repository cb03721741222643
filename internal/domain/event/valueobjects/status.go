package valueobjects

import "fmt"

type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventScheduled EventStatus = "scheduled"
	EventFinished  EventStatus = "finished"
	EventCanceled  EventStatus = "canceled"
)

var validEventStatuses = map[EventStatus]bool{
	EventDraft:     true,
	EventScheduled: true,
	EventFinished:  true,
	EventCanceled:  true,
}

func NewEventStatus(s string) (EventStatus, error) {
	es := EventStatus(s)
	if !es.IsValid() {
		return "", fmt.Errorf("invalid event status: %s", s)
	}
	return es, nil
}

func (es EventStatus) String() string {
	return string(es)
}

func (es EventStatus) IsValid() bool {
	return validEventStatuses[es]
}

func (es EventStatus) IsCanceled() bool {
	return es == EventCanceled
}

type EventType string

const (
	EventCanvass   EventType = "canvass"
	EventPhonebank EventType = "phonebank"
	EventTraining  EventType = "training"
	EventMeetup    EventType = "meetup"
	EventOther     EventType = "other"
)

var validEventTypes = map[EventType]bool{
	EventCanvass:   true,
	EventPhonebank: true,
	EventTraining:  true,
	EventMeetup:    true,
	EventOther:     true,
}

func NewEventType(s string) (EventType, error) {
	et := EventType(s)
	if !et.IsValid() {
		return "", fmt.Errorf("invalid event type: %s", s)
	}
	return et, nil
}

func (et EventType) String() string {
	return string(et)
}

func (et EventType) IsValid() bool {
	return validEventTypes[et]
}
