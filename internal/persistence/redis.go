package persistence

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/adoptafacil/internal/config"
)

var errRedisNotConfigured = errors.New("redis client not configured")

// Redis wraps the go-redis client and serves as the repository list cache.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
// An empty address yields a disabled wrapper.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if cfg.Addr == "" {
		logger.Info("REDIS_ADDR not provided; list cache disabled")
		return &Redis{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Enabled reports whether a client is configured.
func (r *Redis) Enabled() bool {
	return r != nil && r.Client != nil
}

// Close closes the client.
func (r *Redis) Close() {
	if r.Enabled() {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return errRedisNotConfigured
	}
	return r.Client.Ping(ctx).Err()
}

// Get returns the cached bytes for key; a miss is not an error.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !r.Enabled() {
		return nil, false, errRedisNotConfigured
	}
	res, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return res, true, nil
}

// setIfGeneration writes KEYS[1] only while KEYS[2] (missing counts as 0) equals ARGV[1].
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
  return 0
end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
  redis.call('SET', KEYS[1], ARGV[2], 'PX', ttl)
else
  redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

// Generation returns the counter stored at genKey, zero when absent.
func (r *Redis) Generation(ctx context.Context, genKey string) (int64, error) {
	if !r.Enabled() {
		return 0, errRedisNotConfigured
	}
	gen, err := r.Client.Get(ctx, genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (r *Redis) SetIfGeneration(ctx context.Context, key, genKey string, gen int64, value []byte, ttl time.Duration) (bool, error) {
	if !r.Enabled() {
		return false, errRedisNotConfigured
	}
	stored, err := setIfGeneration.Run(ctx, r.Client, []string{key, genKey},
		strconv.FormatInt(gen, 10), value, ttl.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return stored == 1, nil
}

// Invalidate bumps the generation and drops the cached value in one transaction.
func (r *Redis) Invalidate(ctx context.Context, key, genKey string) error {
	if !r.Enabled() {
		return errRedisNotConfigured
	}
	_, err := r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Del(ctx, key)
		return nil
	})
	return err
}
