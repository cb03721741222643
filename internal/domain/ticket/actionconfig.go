package ticket

import (
	"encoding/json"
	"fmt"

	eventvo "github.com/libdough/openvolunteer/internal/domain/event/valueobjects"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
)

// ActionConfig is the typed configuration payload of a ticket action,
// parsed from the template's JSON blob when the action is instantiated so
// malformed configuration is rejected before it can reach a handler.
// The set of implementations is sealed to the action types.
type ActionConfig interface {
	actionConfig()
}

// NoopConfig carries nothing; noop actions only exist for their status
// transition and audit trail.
type NoopConfig struct{}

func (NoopConfig) actionConfig() {}

// ShiftStatusConfig configures the shift-assignment actions: the status to
// write onto the (shift, person) assignment.
type ShiftStatusConfig struct {
	Status eventvo.AssignmentStatus
}

func (ShiftStatusConfig) actionConfig() {}

// TagConfig configures the tag actions: the name of the tag to attach or
// detach, resolved org-preferred at execution time.
type TagConfig struct {
	Tag string
}

func (TagConfig) actionConfig() {}

// rawActionConfig is the wire shape of the JSON blob.
type rawActionConfig struct {
	Status string `json:"status,omitempty"`
	Tag    string `json:"tag,omitempty"`
}

// ParseActionConfig decodes raw into the typed payload for the given action
// type. Unknown JSON keys are ignored; values relevant to the type are
// validated here.
func ParseActionConfig(actionType vo.ActionType, raw []byte) (ActionConfig, error) {
	var rc rawActionConfig
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rc); err != nil {
			return nil, fmt.Errorf("malformed action config: %w", err)
		}
	}

	switch actionType {
	case vo.ActionNoop:
		return NoopConfig{}, nil

	case vo.ActionUpdateShiftStatus:
		// This action overwrites an existing assignment, so the target
		// status must be configured explicitly.
		if rc.Status == "" {
			return nil, fmt.Errorf("update_shift_status requires a status in config")
		}
		status, err := eventvo.NewAssignmentStatus(rc.Status)
		if err != nil {
			return nil, err
		}
		return ShiftStatusConfig{Status: status}, nil

	case vo.ActionUpsertShiftAssignment:
		status := eventvo.AssignmentPending
		if rc.Status != "" {
			var err error
			status, err = eventvo.NewAssignmentStatus(rc.Status)
			if err != nil {
				return nil, err
			}
		}
		return ShiftStatusConfig{Status: status}, nil

	case vo.ActionUpsertTag, vo.ActionRemoveTag:
		// An empty tag name is allowed; the handler no-ops on it.
		return TagConfig{Tag: rc.Tag}, nil

	default:
		return nil, fmt.Errorf("unknown action type: %s", actionType)
	}
}

// EncodeActionConfig serializes a typed payload back into its JSON wire
// form for persistence.
func EncodeActionConfig(cfg ActionConfig) ([]byte, error) {
	var rc rawActionConfig
	switch c := cfg.(type) {
	case NoopConfig:
	case ShiftStatusConfig:
		rc.Status = c.Status.String()
	case TagConfig:
		rc.Tag = c.Tag
	default:
		return nil, fmt.Errorf("unknown action config type %T", cfg)
	}
	return json.Marshal(rc)
}
