package helper

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"metroll_cms/model"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps login sessions. The redis implementation is the real
// one; tests swap in an in-memory fake.
type SessionStore interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, s *model.Session, ttl time.Duration) error
	Destroy(ctx context.Context, id string) error
}

type RedisSessionStore struct {
	RDB *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{RDB: rdb}
}

func sessionKey(id string) string {
	return "metroll:session:" + id
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*model.Session, error) {
	raw, err := s.RDB.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess model.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *model.Session, ttl time.Duration) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.RDB.Set(ctx, sessionKey(sess.ID), raw, ttl).Err()
}

func (s *RedisSessionStore) Destroy(ctx context.Context, id string) error {
	return s.RDB.Del(ctx, sessionKey(id)).Err()
}
