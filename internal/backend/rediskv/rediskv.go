// Package rediskv implements kv.Store on Redis string keys.
package rediskv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"todo/internal/kv"
	"todo/internal/logging"
)

// Store maps each key to prefix+key in Redis. Values never expire.
type Store struct {
	rdb    redis.UniversalClient
	prefix string
	log    *logrus.Entry
}

var _ kv.Store = (*Store)(nil)

// Open connects to Redis with opts and checks the connection with PING.
// Keys are stored under prefix.
func Open(ctx context.Context, opts *redis.Options, prefix string, log *logrus.Logger) (*Store, error) {
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	s := New(rdb, prefix, log)
	s.log.WithFields(logrus.Fields{
		"addr": opts.Addr,
		"db":   opts.DB,
		"tls":  opts.TLSConfig != nil,
	}).Debug("connected")
	return s, nil
}

// New wraps an existing client.
func New(rdb redis.UniversalClient, prefix string, log *logrus.Logger) *Store {
	return &Store{
		rdb:    rdb,
		prefix: prefix,
		log:    logging.Component(log, "rediskv"),
	}
}

// Key returns the Redis key used for key.
func (s *Store) Key(key string) string {
	return s.prefix + key
}

// Get implements kv.Store. redis.Nil is reported as an absent key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, s.Key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", s.Key(key), err)
	}
	return v, true, nil
}

// Set implements kv.Store.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.Key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", s.Key(key), err)
	}
	s.log.WithField("key", s.Key(key)).Debug("saved")
	return nil
}

// Close closes the client.
func (s *Store) Close() error {
	return s.rdb.Close()
}
