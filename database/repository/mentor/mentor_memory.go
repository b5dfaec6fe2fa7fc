package mentorRepo

import (
	"context"
	"sync"

	"skillbridge/models"

	"github.com/google/uuid"
)

// MemoryMentorRepo keeps mentors in process memory.
type MemoryMentorRepo struct {
	mu      sync.RWMutex
	mentors []models.Mentor
	index   map[string]int
}

var _ MentorRepository = (*MemoryMentorRepo)(nil)

func NewMemoryMentorRepo() *MemoryMentorRepo {
	return &MemoryMentorRepo{index: make(map[string]int)}
}

func (r *MemoryMentorRepo) List(_ context.Context) ([]models.Mentor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Mentor, len(r.mentors))
	for i, m := range r.mentors {
		out[i] = cloneMentor(m)
	}
	return out, nil
}

func (r *MemoryMentorRepo) GetByID(_ context.Context, id string) (*models.Mentor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, models.NewNotFoundError("mentor", id)
	}
	m := cloneMentor(r.mentors[i])
	return &m, nil
}

func (r *MemoryMentorRepo) Insert(_ context.Context, mentor *models.Mentor) error {
	if err := mentor.Validate(); err != nil {
		return err
	}
	if mentor.ID == "" {
		mentor.ID = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.index[mentor.ID]; exists {
		return models.NewValidationError("id", "mentor "+mentor.ID+" already exists")
	}
	mentor.Seq = int64(len(r.mentors) + 1)
	r.index[mentor.ID] = len(r.mentors)
	r.mentors = append(r.mentors, cloneMentor(*mentor))
	return nil
}

func (r *MemoryMentorRepo) UpdateAvailability(_ context.Context, id string, availability models.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return models.NewNotFoundError("mentor", id)
	}
	availability.OpenSlots = append([]models.Slot(nil), availability.OpenSlots...)
	r.mentors[i].Availability = availability
	return nil
}

func (r *MemoryMentorRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.mentors)), nil
}

// cloneMentor copies the slice fields so callers never share backing arrays with the repo.
func cloneMentor(m models.Mentor) models.Mentor {
	m.Skills = append([]string(nil), m.Skills...)
	m.Languages = append([]string(nil), m.Languages...)
	m.Availability.OpenSlots = append([]models.Slot(nil), m.Availability.OpenSlots...)
	return m
}
