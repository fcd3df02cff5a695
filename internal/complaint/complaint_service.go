// Package complaint implements the complaint lifecycle: creation with
// validation and defaults, listing, status updates, and deletion, with
// best-effort administrator notification on create and status change.
package complaint

import (
	"context"
	"fmt"
	"time"

	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/notify"
	"complaintdesk/backend/internal/storage"
)

// Notifier is the dispatch surface the service needs. Send must never
// block and never fail the calling operation.
type Notifier interface {
	Send(t notify.EventType, complaint models.Complaint)
}

// Service handles the business logic for complaints.
type Service struct {
	Storage  storage.Storage
	Notifier Notifier
}

// NewService creates a new complaint service.
func NewService(s storage.Storage, n Notifier) *Service {
	return &Service{Storage: s, Notifier: n}
}

// Create validates the candidate, applies the creation defaults
// (status Pending, dateSubmitted now), persists it, and queues a NEW
// notification. The record only exists in the store once fully formed.
func (s *Service) Create(ctx context.Context, c *models.Complaint) (*models.Complaint, error) {
	if errs := c.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	c.ApplyDefaults(time.Now())

	if err := s.Storage.SaveComplaint(ctx, c); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.Send(notify.EventNewComplaint, *c)
	}
	return c, nil
}

// List returns all complaints, most recently submitted first. An empty
// store yields an empty slice.
func (s *Service) List(ctx context.Context) ([]models.Complaint, error) {
	return s.Storage.ListComplaints(ctx)
}

// UpdateStatus sets the status of an existing complaint and refreshes
// its dateSubmitted to the update time. Any enumerated status may follow
// any other; there is no transition ordering and Resolved may be
// reopened. A STATUS_UPDATE notification is queued on success.
func (s *Service) UpdateStatus(ctx context.Context, id string, status models.Status) (*models.Complaint, error) {
	if status == "" {
		return nil, &ValidationError{Fields: map[string]string{
			"status": "Status field is required for update.",
		}}
	}
	if !status.IsValid() {
		return nil, &ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("`%s` is not a valid status.", status),
		}}
	}

	updated, err := s.Storage.UpdateComplaintStatus(ctx, id, status, time.Now())
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.Send(notify.EventStatusUpdate, *updated)
	}
	return updated, nil
}

// Delete removes a complaint permanently. Deleting an unknown id
// reports ErrNotFound, so a repeated delete is observably different
// from the first.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Storage.DeleteComplaint(ctx, id)
}
