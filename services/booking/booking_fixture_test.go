package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	mentorRepo "skillbridge/database/repository/mentor"
	sessionRepo "skillbridge/database/repository/session"
	"skillbridge/models"
	"skillbridge/services/directory"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type notice struct {
	Kind    models.NotificationKind
	Message string
}

type recordingSink struct {
	mu      sync.Mutex
	notices []notice
}

func (s *recordingSink) Notify(_ context.Context, kind models.NotificationKind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, notice{Kind: kind, Message: message})
}

func (s *recordingSink) all() []notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notice(nil), s.notices...)
}

type recordingReminders struct {
	mu       sync.Mutex
	sessions []string
}

func (r *recordingReminders) ScheduleReminder(_ context.Context, s models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, s.ID)
	return nil
}

type fixture struct {
	dir       *directory.Directory
	repo      *sessionRepo.MemorySessionRepo
	store     *DefaultSessionStore
	sink      *recordingSink
	reminders *recordingReminders
	clock     func() time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mentors := mentorRepo.NewMemoryMentorRepo()
	_, err := mentorRepo.Seed(context.Background(), mentors, mentorRepo.DefaultMentors())
	require.NoError(t, err)

	f := &fixture{
		dir:       directory.NewDirectory(mentors, zap.NewNop()),
		repo:      sessionRepo.NewMemorySessionRepo(),
		sink:      &recordingSink{},
		reminders: &recordingReminders{},
		clock:     func() time.Time { return today },
	}
	f.store = NewSessionStore(f.repo, f.dir, zap.NewNop())
	f.store.Clock = f.clock
	f.store.Reminders = f.reminders
	return f
}

func (f *fixture) manager(requesterID string) *Manager {
	mgr := NewManager(NewMachine("draft-"+requesterID, requesterID), f.store, f.sink, zap.NewNop())
	mgr.Clock = f.clock
	return mgr
}

func (f *fixture) mentor(t *testing.T, id string) models.Mentor {
	t.Helper()
	m, err := f.dir.Get(context.Background(), id)
	require.NoError(t, err)
	return *m
}

func bookRequest(requesterID string, slot models.Slot) models.BookRequest {
	return models.BookRequest{
		MentorID:    "1",
		RequesterID: requesterID,
		Date:        "2026-10-21",
		Slot:        slot,
		SessionType: models.SessionVideo,
	}
}
