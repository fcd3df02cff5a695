// Package storage persists complaints in MongoDB behind a small
// interface so the service layer can be tested without a live store.
package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"complaintdesk/backend/internal/config"
	"complaintdesk/backend/internal/models"
)

// ErrComplaintNotFound is returned when no record matches the given id.
// A malformed id maps here as well: it cannot match any stored record.
var ErrComplaintNotFound = errors.New("complaint not found")

type Storage interface {
	SaveComplaint(ctx context.Context, complaint *models.Complaint) error
	ListComplaints(ctx context.Context) ([]models.Complaint, error)
	UpdateComplaintStatus(ctx context.Context, id string, status models.Status, at time.Time) (*models.Complaint, error)
	DeleteComplaint(ctx context.Context, id string) error
}

// Service is the MongoDB-backed Storage implementation. Every call goes
// through the connector, so the first request after startup establishes
// the shared connection.
type Service struct {
	Connector *Connector
	Database  string
}

// NewStorageService creates a storage service on top of the connector.
func NewStorageService(conn *Connector, database string) *Service {
	if database == "" {
		database = config.DefaultDatabaseName
	}
	return &Service{Connector: conn, Database: database}
}

func (s *Service) collection(ctx context.Context) (*mongo.Collection, error) {
	client, err := s.Connector.EnsureConnected(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(s.Database).Collection(config.ComplaintsCollection), nil
}

// SaveComplaint inserts a new record and fills in the store-assigned ID.
func (s *Service) SaveComplaint(ctx context.Context, complaint *models.Complaint) error {
	coll, err := s.collection(ctx)
	if err != nil {
		return err
	}

	res, err := coll.InsertOne(ctx, complaint)
	if err != nil {
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		complaint.ID = oid
	}
	return nil
}

// ListComplaints returns all records, most recently submitted first.
func (s *Service) ListComplaints(ctx context.Context) ([]models.Complaint, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "dateSubmitted", Value: -1}})
	cur, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	complaints := make([]models.Complaint, 0)
	if err := cur.All(ctx, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

// UpdateComplaintStatus sets the status and refreshes dateSubmitted to
// the update time, returning the record as stored after the update.
func (s *Service) UpdateComplaintStatus(ctx context.Context, id string, status models.Status, at time.Time) (*models.Complaint, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrComplaintNotFound
	}

	update := bson.M{"$set": bson.M{"status": status, "dateSubmitted": at}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Complaint
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrComplaintNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteComplaint removes the record permanently. There is no soft
// delete; a second call for the same id reports not found.
func (s *Service) DeleteComplaint(ctx context.Context, id string) error {
	coll, err := s.collection(ctx)
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrComplaintNotFound
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrComplaintNotFound
	}
	return nil
}
