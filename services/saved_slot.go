package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// SavedQuestionsKey is the single durable slot the saved-question id
// list lives under, as a JSON array of question ids.
const SavedQuestionsKey = "stackit:saved-questions"

// FileSlot stores the saved-question list in a local JSON file. This is
// the default slot when no Redis URL is configured.
type FileSlot struct {
	Path string
}

func NewFileSlot(path string) *FileSlot {
	return &FileSlot{Path: path}
}

func (s *FileSlot) Load() ([]string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read saved slot: %v", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to parse saved slot: %v", err)
	}
	return ids, nil
}

func (s *FileSlot) Store(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal saved ids: %v", err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write saved slot: %v", err)
	}
	return nil
}

// RedisSlot stores the saved-question list under a single Redis key.
type RedisSlot struct {
	client *redis.Client
	key    string
}

func NewRedisSlot(redisURL string) (*RedisSlot, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisSlot{client: client, key: SavedQuestionsKey}, nil
}

func (s *RedisSlot) Load() ([]string, error) {
	data, err := s.client.Get(context.Background(), s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read saved slot: %v", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to parse saved slot: %v", err)
	}
	return ids, nil
}

func (s *RedisSlot) Store(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal saved ids: %v", err)
	}
	if err := s.client.Set(context.Background(), s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write saved slot: %v", err)
	}
	return nil
}
