package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// configKeyPrefix namespaces config keys in Redis
const configKeyPrefix = "config:"

// ErrKeyNotFound is returned when a config key has no value
var ErrKeyNotFound = errors.New("config key not found")

// Config holds configuration for the Redis config repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed config repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetValue retrieves a config value by key from Redis
func (r *redisRepository) GetValue(ctx context.Context, input *GetValueInput) (*GetValueOutput, error) {
	if input == nil || input.Key == "" {
		return nil, errors.New("input and key cannot be empty")
	}

	value, err := r.client.Get(ctx, configKeyPrefix+input.Key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get config value: %w", err)
	}

	return &GetValueOutput{
		Value: value,
	}, nil
}

// SetValue persists a config value to Redis
func (r *redisRepository) SetValue(ctx context.Context, input *SetValueInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	if err := r.client.Set(ctx, configKeyPrefix+input.Key, input.Value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set config value: %w", err)
	}

	return nil
}
