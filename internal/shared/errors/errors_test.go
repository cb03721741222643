package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := NewNotFoundError("ticket not found")
	assert.Equal(t, "not_found: ticket not found", err.Error())

	err = NewValidationError("bad input", "priority out of range")
	assert.Equal(t, "validation_error: bad input (priority out of range)", err.Error())
}

func TestPredicates_MatchWrappedErrors(t *testing.T) {
	base := NewAlreadyCompletedError("action already completed")
	wrapped := fmt.Errorf("execute: %w", base)

	assert.True(t, IsAlreadyCompletedError(wrapped))
	assert.False(t, IsPermissionError(wrapped))
	assert.True(t, IsAppError(wrapped))
}

func TestPredicates_TicketKinds(t *testing.T) {
	tests := []struct {
		err  error
		pred func(error) bool
	}{
		{NewConfigurationError("no event template"), IsConfigurationError},
		{NewNoEligibleParticipantsError("no assigned people"), IsNoEligibleParticipants},
		{NewCapacityExceededError("max tickets"), IsCapacityExceededError},
		{NewTemplateRenderError("unclosed variable"), IsTemplateRenderError},
		{NewPermissionError("not assigned"), IsPermissionError},
		{NewTemplateNotFoundError("no such template"), IsTemplateNotFoundError},
	}

	for _, tt := range tests {
		assert.True(t, tt.pred(tt.err), tt.err.Error())
		assert.False(t, IsNotFoundError(tt.err), tt.err.Error())
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062: Duplicate entry 'a-b'")))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: shift_assignments.shift_id")))
	assert.False(t, IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
