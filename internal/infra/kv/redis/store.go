package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goredis "github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/store-reservations/internal/infra/kv"
)

type Store struct {
	client *goredis.Client
}

func NewClient(addr, password string) *goredis.Client {
	if !strings.Contains(addr, ":") {
		addr = addr + ":6379"
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
	})
}

func New(client *goredis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

var _ kv.Store = (*Store)(nil)
