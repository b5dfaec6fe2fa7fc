package mentorRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillbridge/database"
	"skillbridge/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMentorRepo implements MentorRepository using MongoDB.
type MongoMentorRepo struct {
	coll *mongo.Collection
}

var _ MentorRepository = (*MongoMentorRepo)(nil)

// NewMongoMentorRepo uses the "mentors" collection of the configured database.
func NewMongoMentorRepo() *MongoMentorRepo {
	return NewMongoMentorRepoWithCollection(database.Database().Collection("mentors"))
}

// NewMongoMentorRepoWithCollection stores mentors in coll.
func NewMongoMentorRepoWithCollection(coll *mongo.Collection) *MongoMentorRepo {
	return &MongoMentorRepo{coll: coll}
}

func (r *MongoMentorRepo) List(ctx context.Context) ([]models.Mentor, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve mentors: %w", err)
	}
	defer cursor.Close(ctx)

	var mentors []models.Mentor
	if err := cursor.All(ctx, &mentors); err != nil {
		return nil, fmt.Errorf("failed to decode mentors: %w", err)
	}
	return mentors, nil
}

func (r *MongoMentorRepo) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var mentor models.Mentor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&mentor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("mentor", id)
		}
		return nil, fmt.Errorf("failed to fetch mentor with id %s: %w", id, err)
	}
	return &mentor, nil
}

// Insert assigns the next sequence number from the current maximum.
func (r *MongoMentorRepo) Insert(ctx context.Context, mentor *models.Mentor) error {
	if err := mentor.Validate(); err != nil {
		return err
	}
	if mentor.ID == "" {
		mentor.ID = uuid.New().String()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var last models.Mentor
	opts := options.FindOne().SetSort(bson.D{{Key: "seq", Value: -1}}).SetProjection(bson.M{"seq": 1})
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to read mentor sequence: %w", err)
	}
	mentor.Seq = last.Seq + 1

	if _, err := r.coll.InsertOne(ctx, mentor); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.NewValidationError("id", "mentor "+mentor.ID+" already exists")
		}
		return fmt.Errorf("failed to insert mentor: %w", err)
	}
	return nil
}

func (r *MongoMentorRepo) UpdateAvailability(ctx context.Context, id string, availability models.Availability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"availability": availability}})
	if err != nil {
		return fmt.Errorf("failed to update mentor availability: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.NewNotFoundError("mentor", id)
	}
	return nil
}

func (r *MongoMentorRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count mentors: %w", err)
	}
	return n, nil
}
