package sessionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillbridge/database"
	"skillbridge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxTransitionAttempts = 3

// MongoSessionRepo implements SessionRepository using MongoDB. The
// double-booking check is delegated to the active_slot_unique index.
type MongoSessionRepo struct {
	coll *mongo.Collection
}

var _ SessionRepository = (*MongoSessionRepo)(nil)

// NewMongoSessionRepo uses the "sessions" collection of the configured database.
func NewMongoSessionRepo() *MongoSessionRepo {
	return NewMongoSessionRepoWithCollection(database.Database().Collection("sessions"))
}

// NewMongoSessionRepoWithCollection stores sessions in coll.
func NewMongoSessionRepoWithCollection(coll *mongo.Collection) *MongoSessionRepo {
	return &MongoSessionRepo{coll: coll}
}

func (r *MongoSessionRepo) Book(ctx context.Context, session *models.Session) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	session.Active = session.Status.Active()
	if _, err := r.coll.InsertOne(ctx, session); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return conflictFor(session)
		}
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *MongoSessionRepo) GetByID(ctx context.Context, id string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Session
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("session", id)
		}
		return nil, fmt.Errorf("failed to fetch session %s: %w", id, err)
	}
	return &s, nil
}

func (r *MongoSessionRepo) ListFor(ctx context.Context, mentorID, date string) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"mentor_id": mentorID,
		"date":      date,
		"status":    bson.M{"$ne": models.StatusCancelled},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer cursor.Close(ctx)

	sessions := []models.Session{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}

// Transition uses the current status as an optimistic guard and retries when
// another writer got there first.
func (r *MongoSessionRepo) Transition(ctx context.Context, id string, status models.SessionStatus, at time.Time) (*models.Session, error) {
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Status == status {
			return current, nil
		}
		if !current.Status.CanTransitionTo(status) {
			return nil, transitionError(current.Status, status)
		}

		updated, err := r.compareAndSet(ctx, current, status, at)
		if err != nil {
			return nil, err
		}
		if updated != nil {
			return updated, nil
		}
	}
	return nil, fmt.Errorf("session %s changed concurrently, giving up after %d attempts", id, maxTransitionAttempts)
}

func (r *MongoSessionRepo) compareAndSet(ctx context.Context, current *models.Session, status models.SessionStatus, at time.Time) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": current.ID, "status": current.Status}
	update := bson.M{"$set": bson.M{
		"status":     status,
		"active":     status.Active(),
		"updated_at": at,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Session
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update session status: %w", err)
	}
	return &updated, nil
}
