package mentorRepo

import (
	"context"

	"skillbridge/models"
)

// MentorRepository defines methods for mentor data access.
type MentorRepository interface {
	// List returns every mentor in insertion order.
	List(ctx context.Context) ([]models.Mentor, error)
	// GetByID returns a *models.NotFoundError for unknown ids.
	GetByID(ctx context.Context, id string) (*models.Mentor, error)
	// Insert validates and appends a mentor.
	Insert(ctx context.Context, mentor *models.Mentor) error
	// UpdateAvailability replaces the availability of an existing mentor.
	UpdateAvailability(ctx context.Context, id string, availability models.Availability) error
	// Count returns the number of stored mentors.
	Count(ctx context.Context) (int64, error)
}
