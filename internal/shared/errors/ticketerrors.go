package errors

// Ticket workflow error kinds. These extend the generic taxonomy with the
// failure modes of ticket generation and action execution so callers can
// branch on kind without string matching.

const (
	ErrorTypeConfiguration          ErrorType = "configuration_error"
	ErrorTypeNoEligibleParticipants ErrorType = "no_eligible_participants"
	ErrorTypeCapacityExceeded       ErrorType = "capacity_exceeded"
	ErrorTypeTemplateRender         ErrorType = "template_render_error"
	ErrorTypePermission             ErrorType = "permission_denied"
	ErrorTypeAlreadyCompleted       ErrorType = "already_completed"
	ErrorTypeTemplateNotFound       ErrorType = "template_not_found"
)

// NewConfigurationError signals missing template wiring on an event or org.
func NewConfigurationError(message string, details ...string) *AppError {
	return newError(ErrorTypeConfiguration, message, details...)
}

// NewNoEligibleParticipantsError signals that ticket generation resolved
// zero candidate people.
func NewNoEligibleParticipantsError(message string, details ...string) *AppError {
	return newError(ErrorTypeNoEligibleParticipants, message, details...)
}

// NewCapacityExceededError signals that a template's max-ticket cap would be
// violated.
func NewCapacityExceededError(message string, details ...string) *AppError {
	return newError(ErrorTypeCapacityExceeded, message, details...)
}

// NewTemplateRenderError signals a malformed template string.
func NewTemplateRenderError(message string, details ...string) *AppError {
	return newError(ErrorTypeTemplateRender, message, details...)
}

// NewPermissionError signals that a non-assigned user attempted to execute
// a ticket action.
func NewPermissionError(message string, details ...string) *AppError {
	return newError(ErrorTypePermission, message, details...)
}

// NewAlreadyCompletedError signals re-execution of a completed action.
func NewAlreadyCompletedError(message string, details ...string) *AppError {
	return newError(ErrorTypeAlreadyCompleted, message, details...)
}

// NewTemplateNotFoundError signals that no org-scoped or global ticket
// template matched a requested name.
func NewTemplateNotFoundError(message string, details ...string) *AppError {
	return newError(ErrorTypeTemplateNotFound, message, details...)
}

func IsConfigurationError(err error) bool     { return isType(err, ErrorTypeConfiguration) }
func IsNoEligibleParticipants(err error) bool { return isType(err, ErrorTypeNoEligibleParticipants) }
func IsCapacityExceededError(err error) bool  { return isType(err, ErrorTypeCapacityExceeded) }
func IsTemplateRenderError(err error) bool    { return isType(err, ErrorTypeTemplateRender) }
func IsPermissionError(err error) bool        { return isType(err, ErrorTypePermission) }
func IsAlreadyCompletedError(err error) bool  { return isType(err, ErrorTypeAlreadyCompleted) }
func IsTemplateNotFoundError(err error) bool  { return isType(err, ErrorTypeTemplateNotFound) }
