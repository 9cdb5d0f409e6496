package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when no live session exists for a
// token. The auth gate maps it to 401.
var ErrSessionNotFound = errors.New("session not found")

type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(url string) (*RedisCache, error) {
	client := redis.NewClient(
		&redis.Options{
			Addr:     url,
			Password: "",
			DB:       0,
		},
	)
	redisCache := &RedisCache{Client: client}

	return redisCache, nil
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

func (r *RedisCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key, data, expiration).Err()
}

func (r *RedisCache) Get(ctx context.Context, key string, dest any) error {
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

/*
* auth sessions
 */

// Session is written by the auth service at sign-in; the booking API
// only reads it to confirm the bearer token is still live.
type Session struct {
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *RedisCache) SaveSession(ctx context.Context, token string, session Session, ttl time.Duration) error {
	return r.Set(ctx, MakeSessionKey(token), session, ttl)
}

func (r *RedisCache) GetSession(ctx context.Context, token string) (*Session, error) {
	var session Session
	err := r.Get(ctx, MakeSessionKey(token), &session)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}
