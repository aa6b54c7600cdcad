package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pos-terminal/internal/models"

	"github.com/go-redis/redis/v8"
)

const snapshotKeyPrefix = "pos:cart:"

// RedisSnapshotStore: sepet anlık görüntülerini Redis'te tutar. Değer,
// satır dizisinin JSON'udur; her kayıtta komple üzerine yazılır.
type RedisSnapshotStore struct {
	client *redis.Client
}

func NewRedisSnapshotStore(redisURL string) (*RedisSnapshotStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("geçersiz Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis'e bağlanılamadı: %w", err)
	}

	return &RedisSnapshotStore{client: client}, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, sessionID string, lines []models.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("sepet serileştirilemedi: %w", err)
	}
	return s.client.Set(ctx, snapshotKeyPrefix+sessionID, data, 0).Err()
}

func (s *RedisSnapshotStore) Load(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	data, err := s.client.Get(ctx, snapshotKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("sepet anlık görüntüsü çözülemedi: %w", err)
	}
	return lines, nil
}

func (s *RedisSnapshotStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, snapshotKeyPrefix+sessionID).Err()
}
