package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"skillbridge/models"

	"github.com/go-redis/redis/v8"
)

// DraftStore keeps in-progress booking machines between requests. Entries
// expire after the store's TTL; an expired or unknown id is a *models.NotFoundError.
type DraftStore interface {
	Save(ctx context.Context, m Machine) error
	Load(ctx context.Context, id string) (Machine, error)
	Delete(ctx context.Context, id string) error
}

const draftKeyPrefix = "booking:draft:"

func draftKey(id string) string { return draftKeyPrefix + id }

// RedisDraftStore stores machines as JSON with a sliding TTL.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func (s *RedisDraftStore) Save(ctx context.Context, m Machine) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(m.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Load(ctx context.Context, id string) (Machine, error) {
	data, err := s.client.Get(ctx, draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Machine{}, models.NewNotFoundError("booking draft", id)
	}
	if err != nil {
		return Machine{}, fmt.Errorf("failed to load booking draft: %w", err)
	}
	var m Machine
	if err := json.Unmarshal(data, &m); err != nil {
		return Machine{}, fmt.Errorf("failed to unmarshal booking draft: %w", err)
	}
	return m, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking draft: %w", err)
	}
	return nil
}

type memoryDraft struct {
	machine   Machine
	expiresAt time.Time
}

// MemoryDraftStore is the single-process DraftStore.
type MemoryDraftStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	drafts map[string]memoryDraft
	now    func() time.Time
}

func NewMemoryDraftStore(ttl time.Duration) *MemoryDraftStore {
	return &MemoryDraftStore{ttl: ttl, drafts: make(map[string]memoryDraft), now: time.Now}
}

func (s *MemoryDraftStore) Save(_ context.Context, m Machine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.drafts[m.ID] = memoryDraft{machine: m, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryDraftStore) Load(_ context.Context, id string) (Machine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok || !s.now().Before(d.expiresAt) {
		delete(s.drafts, id)
		return Machine{}, models.NewNotFoundError("booking draft", id)
	}
	return d.machine, nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}

// sweep drops expired drafts. Callers hold s.mu.
func (s *MemoryDraftStore) sweep() {
	now := s.now()
	for id, d := range s.drafts {
		if !now.Before(d.expiresAt) {
			delete(s.drafts, id)
		}
	}
}
