// Package episodestore keeps running episode state in Redis so that any API
// instance can serve the next action.
package episodestore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/gridforge/labyrinth-api/service/i"
	"github.com/redis/go-redis/v9"
)

const (
	episodeKeyFmt = "episode:%s"
	lockKeyFmt    = "episode:%s:lock"
)

// RedisEpisodeStore stores serialized episode state with a TTL and guards
// updates with a distributed mutex per episode.
type RedisEpisodeStore struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisEpisodeStore initializes a RedisEpisodeStore with the provided Redis client and TTL.
func NewRedisEpisodeStore(client *redis.Client, ttlSeconds int) (*RedisEpisodeStore, error) {
	store := &RedisEpisodeStore{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store, nil
}

// Create stores the initial state of a new episode with the configured TTL.
func (s *RedisEpisodeStore) Create(ctx context.Context, id uuid.UUID, state []byte) error {
	return s.client.Set(ctx, s.episodeKey(id), state, s.ttl).Err()
}

// Get returns the current state of an episode.
func (s *RedisEpisodeStore) Get(ctx context.Context, id uuid.UUID) ([]byte, error) {
	state, err := s.client.Get(ctx, s.episodeKey(id)).Bytes()
	if err == redis.Nil {
		return nil, i.ErrEpisodeNotFound
	}
	return state, err
}

// Update applies fn to the stored state while holding the episode's mutex,
// so concurrent actions on one episode are serialized. The TTL is refreshed
// on every update.
func (s *RedisEpisodeStore) Update(ctx context.Context, id uuid.UUID, fn func(state []byte) ([]byte, error)) error {
	mutex := s.locker.NewMutex(s.lockKey(id))
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	state, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	next, err := fn(state)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, s.episodeKey(id), next, s.ttl).Err()
}

// Delete removes an episode from the store.
func (s *RedisEpisodeStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, s.episodeKey(id)).Err()
}

func (s *RedisEpisodeStore) episodeKey(id uuid.UUID) string {
	return fmt.Sprintf(episodeKeyFmt, id)
}

func (s *RedisEpisodeStore) lockKey(id uuid.UUID) string {
	return fmt.Sprintf(lockKeyFmt, id)
}
