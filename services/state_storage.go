package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/muizrexhepi/menyro-sub000/models"
)

// onboardingSlotTTL keeps abandoned wizard state from living forever.
const onboardingSlotTTL = 7 * 24 * time.Hour

// StateStorage is the durable slot the onboarding wizard persists to.
// Load returns nil (no error) when the slot is empty.
type StateStorage interface {
	Load(ctx context.Context, key string) (*models.OnboardingState, error)
	Save(ctx context.Context, key string, state *models.OnboardingState) error
	Clear(ctx context.Context, key string) error
}

// RedisStateStorage keeps wizard state in Redis as JSON.
type RedisStateStorage struct {
	Client *redis.Client
}

func NewRedisStateStorage(client *redis.Client) *RedisStateStorage {
	return &RedisStateStorage{Client: client}
}

func (s *RedisStateStorage) Load(ctx context.Context, key string) (*models.OnboardingState, error) {
	raw, err := s.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state models.OnboardingState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisStateStorage) Save(ctx context.Context, key string, state *models.OnboardingState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, key, raw, onboardingSlotTTL).Err()
}

func (s *RedisStateStorage) Clear(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}

// MemoryStateStorage is the in-process fallback, also used in tests.
type MemoryStateStorage struct {
	mu    sync.RWMutex
	slots map[string]models.OnboardingState
}

func NewMemoryStateStorage() *MemoryStateStorage {
	return &MemoryStateStorage{slots: make(map[string]models.OnboardingState)}
}

func (s *MemoryStateStorage) Load(ctx context.Context, key string) (*models.OnboardingState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.slots[key]
	if !ok {
		return nil, nil
	}
	snapshot := state
	return &snapshot, nil
}

func (s *MemoryStateStorage) Save(ctx context.Context, key string, state *models.OnboardingState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = *state
	return nil
}

func (s *MemoryStateStorage) Clear(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
	return nil
}
