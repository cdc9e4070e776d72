package storage

import (
	"context"
	"time"

	"cpd/internal/structures"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 2 * time.Second

// RedisStore keeps each bucket under "<prefix>:<bucket>". Several daemons
// may share it; writes are still whole-document and last write wins.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(conf structures.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "connect to redis %s", conf.Addr)
	}

	prefix := conf.Prefix
	if prefix == "" {
		prefix = "cpd"
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (r *RedisStore) key(bucket string) string {
	return r.prefix + ":" + bucket
}

func (r *RedisStore) Read(bucket string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.key(bucket)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read bucket %s", bucket)
	}
	return data, nil
}

func (r *RedisStore) Write(bucket string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	return errors.Wrapf(r.client.Set(ctx, r.key(bucket), data, 0).Err(), "write bucket %s", bucket)
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
