// File: services/conversation/store_redis.go
package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bookline/models"
	"bookline/utils"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "conv:"

// RedisStore keeps sessions in Redis with a TTL matching the conversation
// timeout, so idle sessions expire server-side. It is the backend to use when
// running more than one instance behind the webhook.
type RedisStore struct {
	client *redis.Client
	clock  utils.Clock
	ttl    time.Duration
}

// NewRedisStore builds a Redis-backed store.
func NewRedisStore(client *redis.Client, clock utils.Clock, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, clock: clock, ttl: ttl}
}

func sessionKey(contact string) string {
	return sessionKeyPrefix + contact
}

func (r *RedisStore) Get(ctx context.Context, contact string) (*models.Session, bool, error) {
	data, err := r.client.Get(ctx, sessionKey(contact)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch session: %w", err)
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, false, fmt.Errorf("failed to parse session record: %w", err)
	}
	return &sess, true, nil
}

func (r *RedisStore) GetOrCreate(ctx context.Context, contact string) (*models.Session, bool, error) {
	sess, ok, err := r.Get(ctx, contact)
	if err != nil {
		return nil, false, err
	}
	if ok {
		return sess, false, nil
	}
	fresh := models.NewSession(contact, r.clock.Now())
	if err := r.Save(ctx, fresh); err != nil {
		return nil, false, err
	}
	return fresh, true, nil
}

func (r *RedisStore) Save(ctx context.Context, sess *models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(sess.Contact), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *RedisStore) Reset(ctx context.Context, contact string) (*models.Session, error) {
	fresh := models.NewSession(contact, r.clock.Now())
	if err := r.Save(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

func (r *RedisStore) Touch(sess *models.Session) {
	sess.LastInteractionAt = r.clock.Now()
}

func (r *RedisStore) Snapshot(ctx context.Context) (map[string]models.Session, error) {
	out := make(map[string]models.Session)
	iter := r.client.Scan(ctx, 0, sessionKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		data, err := r.client.Get(ctx, key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch session %s: %w", key, err)
		}
		var sess models.Session
		if err := json.Unmarshal([]byte(data), &sess); err != nil {
			return nil, fmt.Errorf("failed to parse session %s: %w", key, err)
		}
		out[strings.TrimPrefix(key, sessionKeyPrefix)] = sess
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan sessions: %w", err)
	}
	return out, nil
}
