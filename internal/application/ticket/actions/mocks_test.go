package actions

import (
	"context"

	"github.com/libdough/openvolunteer/internal/domain/event"
	"github.com/libdough/openvolunteer/internal/domain/person"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

type mockShiftRepository struct {
	SaveFunc               func(ctx context.Context, s *event.Shift) error
	GetByIDFunc            func(ctx context.Context, shiftID string) (*event.Shift, error)
	GetOrCreateDefaultFunc func(ctx context.Context, eventID string) (*event.Shift, error)
}

func (m *mockShiftRepository) Save(ctx context.Context, s *event.Shift) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockShiftRepository) GetByID(ctx context.Context, shiftID string) (*event.Shift, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, shiftID)
	}
	return nil, nil
}

func (m *mockShiftRepository) GetOrCreateDefault(ctx context.Context, eventID string) (*event.Shift, error) {
	if m.GetOrCreateDefaultFunc != nil {
		return m.GetOrCreateDefaultFunc(ctx, eventID)
	}
	return nil, nil
}

type mockAssignmentRepository struct {
	SaveFunc                func(ctx context.Context, a *event.ShiftAssignment) error
	UpdateFunc              func(ctx context.Context, a *event.ShiftAssignment) error
	GetByShiftAndPersonFunc func(ctx context.Context, shiftID, personID string) (*event.ShiftAssignment, error)
	ListForEventFunc        func(ctx context.Context, eventID string, filter event.AssignmentFilter) ([]*event.ShiftAssignment, error)
}

func (m *mockAssignmentRepository) Save(ctx context.Context, a *event.ShiftAssignment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) Update(ctx context.Context, a *event.ShiftAssignment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) GetByShiftAndPerson(ctx context.Context, shiftID, personID string) (*event.ShiftAssignment, error) {
	if m.GetByShiftAndPersonFunc != nil {
		return m.GetByShiftAndPersonFunc(ctx, shiftID, personID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ListForEvent(ctx context.Context, eventID string, filter event.AssignmentFilter) ([]*event.ShiftAssignment, error) {
	if m.ListForEventFunc != nil {
		return m.ListForEventFunc(ctx, eventID, filter)
	}
	return nil, nil
}

type mockTagRepository struct {
	GetOrCreatePreferringOrgFunc func(ctx context.Context, name, orgID string) (*person.Tag, error)
	GetPreferringOrgFunc         func(ctx context.Context, name, orgID string) (*person.Tag, error)
	AttachFunc                   func(ctx context.Context, personID, tagID string) error
	DetachFunc                   func(ctx context.Context, personID, tagID string) error
	IsAttachedFunc               func(ctx context.Context, personID, tagID string) (bool, error)
}

func (m *mockTagRepository) GetOrCreatePreferringOrg(ctx context.Context, name, orgID string) (*person.Tag, error) {
	if m.GetOrCreatePreferringOrgFunc != nil {
		return m.GetOrCreatePreferringOrgFunc(ctx, name, orgID)
	}
	return nil, nil
}

func (m *mockTagRepository) GetPreferringOrg(ctx context.Context, name, orgID string) (*person.Tag, error) {
	if m.GetPreferringOrgFunc != nil {
		return m.GetPreferringOrgFunc(ctx, name, orgID)
	}
	return nil, nil
}

func (m *mockTagRepository) Attach(ctx context.Context, personID, tagID string) error {
	if m.AttachFunc != nil {
		return m.AttachFunc(ctx, personID, tagID)
	}
	return nil
}

func (m *mockTagRepository) Detach(ctx context.Context, personID, tagID string) error {
	if m.DetachFunc != nil {
		return m.DetachFunc(ctx, personID, tagID)
	}
	return nil
}

func (m *mockTagRepository) IsAttached(ctx context.Context, personID, tagID string) (bool, error) {
	if m.IsAttachedFunc != nil {
		return m.IsAttachedFunc(ctx, personID, tagID)
	}
	return false, nil
}

type mockLogger struct{}

func (mockLogger) Debug(msg string, args ...any)                   {}
func (mockLogger) Info(msg string, args ...any)                    {}
func (mockLogger) Warn(msg string, args ...any)                    {}
func (mockLogger) Error(msg string, args ...any)                   {}
func (m mockLogger) With(args ...any) logger.Interface             { return m }
func (m mockLogger) Named(name string) logger.Interface            { return m }
func (mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
