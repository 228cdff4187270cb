package redis

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"inventoryservice/pkg/domain/model"
)

type Config struct {
	URL          string `split_words:"true" default:"redis://localhost:6379/0"`
	ReadTimeout  int    `split_words:"true" default:"3"`
	WriteTimeout int    `split_words:"true" default:"3"`
	DialTimeout  int    `split_words:"true" default:"5"`
}

func (c *Config) New() (*redis.Client, error) {
	opts, err := redis.ParseURL(c.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}

	opts.ReadTimeout = time.Duration(c.ReadTimeout) * time.Second
	opts.WriteTimeout = time.Duration(c.WriteTimeout) * time.Second
	opts.DialTimeout = time.Duration(c.DialTimeout) * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errors.Wrap(err, "ping redis")
	}
	return client, nil
}

// SessionStore keeps sessions in Redis with a per-session TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) key(token string) string {
	return "session:" + token
}

func (s *SessionStore) Put(ctx context.Context, token, username string) error {
	return errors.Wrap(s.client.Set(ctx, s.key(token), username, s.ttl).Err(), "store session")
}

func (s *SessionStore) Get(ctx context.Context, token string) (string, error) {
	username, err := s.client.Get(ctx, s.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", model.ErrSessionNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "load session")
	}
	return username, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return errors.Wrap(s.client.Del(ctx, s.key(token)).Err(), "delete session")
}
