package complaint_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/notify"
)

// MockStorage is a testify/mock implementation of storage.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveComplaint(ctx context.Context, c *models.Complaint) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockStorage) ListComplaints(ctx context.Context) ([]models.Complaint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) UpdateComplaintStatus(ctx context.Context, id string, status models.Status, at time.Time) (*models.Complaint, error) {
	args := m.Called(ctx, id, status, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStorage) DeleteComplaint(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// RecordingNotifier captures dispatched events so tests can assert on
// them without a real transport.
type RecordingNotifier struct {
	Events []notify.Event
}

func (n *RecordingNotifier) Send(t notify.EventType, c models.Complaint) {
	n.Events = append(n.Events, notify.Event{Type: t, Complaint: c})
}
