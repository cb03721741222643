// Package mappers converts between domain entities and persistence models.
// Timestamps are stored as Unix milliseconds and surfaced as time.Time.
package mappers

import "time"

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func timeToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func millisPtrToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}

func timePtrToMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
