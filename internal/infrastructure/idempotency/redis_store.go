package idempotency

import (
	"context"
	"time"

	"marketplace_escrow/internal/usecase/interfaces"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "marketplace:idem:"

// releaseScript deletes KEYS[1] only while it still holds ARGV[1].
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

type redisCmdable interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *goredis.Cmd
}

// RedisStore holds reservations as SET NX PX keys so every API replica sees
// the same lock. Expiry bounds how long a crashed request can block retries.
type RedisStore struct {
	rdb    redisCmdable
	prefix string
}

var _ interfaces.IIdempotencyStore = (*RedisStore)(nil)

func NewRedisStore(rdb redisCmdable) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: defaultKeyPrefix}
}

func (s *RedisStore) Reserve(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := s.rdb.SetNX(ctx, s.prefix+key, token, ttl).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

func (s *RedisStore) Release(ctx context.Context, key, token string) error {
	return s.rdb.Eval(ctx, releaseScript, []string{s.prefix + key}, token).Err()
}
