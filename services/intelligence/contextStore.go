package intelligence

import (
	"context"
	"encoding/json"
	"time"

	"frontdesk/models"

	"github.com/go-redis/redis/v8"
)

const sessionContextPrefix = "kiosk:ctx:"

// RedisContextStore keeps the last voice exchange per kiosk serial so the
// classifier can resolve follow-up utterances ("cancel it", "yes, that one").
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, serial string) (*models.SessionContext, error) {
	key := sessionContextPrefix + serial
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.SessionContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var sc models.SessionContext
	if err := json.Unmarshal([]byte(data), &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *RedisContextStore) Set(ctx context.Context, serial string, sc *models.SessionContext) error {
	key := sessionContextPrefix + serial
	b, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, serial string) error {
	return s.client.Del(ctx, sessionContextPrefix+serial).Err()
}
