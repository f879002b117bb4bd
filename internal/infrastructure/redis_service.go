package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"

	"toolbox-api/internal/domain/entities"
)

// RedisService caches person profiles. When no Redis is reachable the
// service degrades to a no-op so the API keeps working without a cache.
type RedisService struct {
	client *redis.Client
}

func NewRedisService() *RedisService {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err == nil {
			client := redis.NewClient(opt)
			if err := client.Ping(context.Background()).Err(); err == nil {
				return &RedisService{client: client}
			}
			fmt.Printf("Warning: Redis connection failed with REDIS_URL: %v\n", err)
		}
	}

	host := GetEnvAsString("REDIS_HOST", "localhost")
	port := GetEnvAsString("REDIS_PORT", "6379")
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       GetEnvAsInt("REDIS_DB", 0),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		fmt.Printf("Warning: Redis connection failed: %v\n", err)
		fmt.Printf("Redis will be disabled. Profile reads always hit the database.\n")
		return &RedisService{client: nil}
	}

	return &RedisService{client: client}
}

func (r *RedisService) SetProfile(ctx context.Context, personID string, person *entities.Person, ttl time.Duration) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	data, err := json.Marshal(person)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, "profile:"+personID, data, ttl).Err()
}

func (r *RedisService) GetProfile(ctx context.Context, personID string) (*entities.Person, error) {
	if r.client == nil {
		return nil, redis.Nil // Redis disabled, behave like a cache miss
	}
	data, err := r.client.Get(ctx, "profile:"+personID).Result()
	if err != nil {
		return nil, err
	}

	var person entities.Person
	if err := json.Unmarshal([]byte(data), &person); err != nil {
		return nil, err
	}

	return &person, nil
}

func (r *RedisService) DeleteProfile(ctx context.Context, personID string) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Del(ctx, "profile:"+personID).Err()
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Close()
}
