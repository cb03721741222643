package ticket

import (
	"fmt"
	"time"

	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/id"
)

// Batch groups tickets generated together so they can be reviewed and
// cleaned up as a unit. Maintenance deletes a batch once it is empty or
// every ticket in it is closed.
type Batch struct {
	id              string
	orgID           string
	eventID         *string
	shiftID         *string
	name            string
	reason          string
	claimable       bool
	defaultPriority vo.Priority
	createdBy       *string
	createdAt       time.Time
}

type NewBatchParams struct {
	OrgID           string
	EventID         *string
	ShiftID         *string
	Name            string
	Reason          string
	Claimable       bool
	DefaultPriority vo.Priority
	CreatedBy       *string
}

func NewBatch(p NewBatchParams) (*Batch, error) {
	if p.OrgID == "" {
		return nil, fmt.Errorf("org ID is required")
	}
	if p.Name == "" {
		return nil, fmt.Errorf("batch name is required")
	}
	if !p.DefaultPriority.IsValid() {
		p.DefaultPriority = vo.PriorityDefault
	}

	return &Batch{
		id:              id.New(),
		orgID:           p.OrgID,
		eventID:         p.EventID,
		shiftID:         p.ShiftID,
		name:            p.Name,
		reason:          p.Reason,
		claimable:       p.Claimable,
		defaultPriority: p.DefaultPriority,
		createdBy:       p.CreatedBy,
		createdAt:       time.Now(),
	}, nil
}

func ReconstructBatch(
	batchID, orgID string,
	eventID, shiftID *string,
	name, reason string,
	claimable bool,
	defaultPriority vo.Priority,
	createdBy *string,
	createdAt time.Time,
) (*Batch, error) {
	if batchID == "" {
		return nil, fmt.Errorf("batch ID is required")
	}
	if orgID == "" {
		return nil, fmt.Errorf("org ID is required")
	}

	return &Batch{
		id:              batchID,
		orgID:           orgID,
		eventID:         eventID,
		shiftID:         shiftID,
		name:            name,
		reason:          reason,
		claimable:       claimable,
		defaultPriority: defaultPriority,
		createdBy:       createdBy,
		createdAt:       createdAt,
	}, nil
}

func (b *Batch) ID() string                   { return b.id }
func (b *Batch) OrgID() string                { return b.orgID }
func (b *Batch) EventID() *string             { return b.eventID }
func (b *Batch) ShiftID() *string             { return b.shiftID }
func (b *Batch) Name() string                 { return b.name }
func (b *Batch) Reason() string               { return b.reason }
func (b *Batch) Claimable() bool              { return b.claimable }
func (b *Batch) DefaultPriority() vo.Priority { return b.defaultPriority }
func (b *Batch) CreatedBy() *string           { return b.createdBy }
func (b *Batch) CreatedAt() time.Time         { return b.createdAt }

// DisplayID returns the batch's human-readable prefixed identifier.
func (b *Batch) DisplayID() string {
	return id.FormatWithPrefix(id.PrefixBatch, b.id)
}
