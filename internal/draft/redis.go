package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Chinex4/unipaddy-app/internal/config"
	"github.com/Chinex4/unipaddy-app/internal/model"
)

// RedisStore keeps the draft under one fixed key as a JSON document.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Draft.Redis.Password,
		DB:       cfg.Draft.Redis.DB,
		PoolSize: cfg.Draft.Redis.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &RedisStore{
		client: rdb,
		key:    cfg.Draft.Key,
	}, nil
}

func (s *RedisStore) Load(ctx context.Context) ([]model.CourseRow, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return []model.CourseRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}

	var rows []model.CourseRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	if rows == nil {
		rows = []model.CourseRow{}
	}
	return rows, nil
}

func (s *RedisStore) Save(ctx context.Context, rows []model.CourseRow) error {
	if rows == nil {
		rows = []model.CourseRow{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	return s.client.Set(ctx, s.key, data, 0).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
