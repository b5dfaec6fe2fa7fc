package sessionRepo

import (
	"context"
	"sync"
	"time"

	"skillbridge/models"
)

type slotKey struct {
	date string
	slot models.Slot
}

// mentorShard holds one mentor's sessions. Its lock serialises booking for that mentor.
type mentorShard struct {
	mu       sync.Mutex
	sessions []*models.Session
	byID     map[string]*models.Session
	active   map[slotKey]string
}

// MemorySessionRepo keeps sessions in process memory, sharded per mentor.
type MemorySessionRepo struct {
	mu     sync.RWMutex
	shards map[string]*mentorShard
	owners map[string]string // session id -> mentor id
}

var _ SessionRepository = (*MemorySessionRepo)(nil)

func NewMemorySessionRepo() *MemorySessionRepo {
	return &MemorySessionRepo{
		shards: make(map[string]*mentorShard),
		owners: make(map[string]string),
	}
}

func (r *MemorySessionRepo) shard(mentorID string, create bool) *mentorShard {
	r.mu.RLock()
	sh := r.shards[mentorID]
	r.mu.RUnlock()
	if sh != nil || !create {
		return sh
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if sh = r.shards[mentorID]; sh == nil {
		sh = &mentorShard{
			byID:   make(map[string]*models.Session),
			active: make(map[slotKey]string),
		}
		r.shards[mentorID] = sh
	}
	return sh
}

func (r *MemorySessionRepo) Book(_ context.Context, session *models.Session) error {
	sh := r.shard(session.MentorID, true)
	key := slotKey{date: session.Date, slot: session.Slot}

	sh.mu.Lock()
	if _, taken := sh.active[key]; taken {
		sh.mu.Unlock()
		return conflictFor(session)
	}
	session.Active = session.Status.Active()
	stored := *session
	sh.sessions = append(sh.sessions, &stored)
	sh.byID[stored.ID] = &stored
	if stored.Active {
		sh.active[key] = stored.ID
	}
	sh.mu.Unlock()

	r.mu.Lock()
	r.owners[stored.ID] = stored.MentorID
	r.mu.Unlock()
	return nil
}

func (r *MemorySessionRepo) GetByID(_ context.Context, id string) (*models.Session, error) {
	sh := r.ownerShard(id)
	if sh == nil {
		return nil, models.NewNotFoundError("session", id)
	}
	sh.mu.Lock()
	defer sh.mu.Unlock()
	s, ok := sh.byID[id]
	if !ok {
		return nil, models.NewNotFoundError("session", id)
	}
	out := *s
	return &out, nil
}

func (r *MemorySessionRepo) ListFor(_ context.Context, mentorID, date string) ([]models.Session, error) {
	sh := r.shard(mentorID, false)
	if sh == nil {
		return []models.Session{}, nil
	}
	sh.mu.Lock()
	defer sh.mu.Unlock()
	out := []models.Session{}
	for _, s := range sh.sessions {
		if s.Date == date && s.Status != models.StatusCancelled {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *MemorySessionRepo) Transition(_ context.Context, id string, status models.SessionStatus, at time.Time) (*models.Session, error) {
	sh := r.ownerShard(id)
	if sh == nil {
		return nil, models.NewNotFoundError("session", id)
	}
	sh.mu.Lock()
	defer sh.mu.Unlock()

	s, ok := sh.byID[id]
	if !ok {
		return nil, models.NewNotFoundError("session", id)
	}
	if s.Status == status {
		out := *s
		return &out, nil
	}
	if !s.Status.CanTransitionTo(status) {
		return nil, transitionError(s.Status, status)
	}

	key := slotKey{date: s.Date, slot: s.Slot}
	s.SetStatus(status, at)
	if !s.Active && sh.active[key] == s.ID {
		delete(sh.active, key)
	}
	out := *s
	return &out, nil
}

func (r *MemorySessionRepo) ownerShard(id string) *mentorShard {
	r.mu.RLock()
	mentorID, ok := r.owners[id]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	return r.shard(mentorID, false)
}
