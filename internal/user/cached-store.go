package user

import (
	"context"
	"encoding/json"
	"time"

	"github.com/iamjuaness/mi-boleta/pkg/cache"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	memTTLSeconds = 60
	redisTTL      = 5 * time.Minute
	redisTimeout  = 50 * time.Millisecond
)

// CachedStore layers an in-memory cache and an optional Redis cache in front
// of another Store. Lookups check memory first, then Redis, then the backing
// store; lower-layer hits are written back upward. Concurrent misses for the
// same email share one backing-store round trip via singleflight.
type CachedStore struct {
	inner    Store
	memCache cache.Cache
	redis    *redis.Client // nil disables the Redis layer
	group    singleflight.Group
	logger   *zap.Logger
}

func NewCachedStore(inner Store, memCache cache.Cache, redisClient *redis.Client) *CachedStore {
	return &CachedStore{
		inner:    inner,
		memCache: memCache,
		redis:    redisClient,
		logger:   zap.L(),
	}
}

func (s *CachedStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	key := "user:email:" + email

	if val, ok := s.memCache.Get(key); ok {
		if u, ok := val.(*User); ok {
			return u, nil
		}
	}

	result, err, _ := s.group.Do(key, func() (any, error) {
		// Double-check memory after winning the flight.
		if val, ok := s.memCache.Get(key); ok {
			if u, ok := val.(*User); ok {
				return u, nil
			}
		}

		if u, ok := s.fromRedis(ctx, key); ok {
			s.memCache.SetWithTTL(key, u, memTTLSeconds)
			return u, nil
		}

		u, err := s.inner.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}

		s.memCache.SetWithTTL(key, u, memTTLSeconds)
		s.toRedis(ctx, key, u)
		return u, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*User), nil
}

// cachedUser is the Redis wire form. User itself hides the password hash
// from JSON, but the cache must round-trip it or cached logins would fail.
type cachedUser struct {
	IDUser       string `json:"idUser"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	PasswordHash string `json:"passwordHash"`
	Active       bool   `json:"active"`
}

func (s *CachedStore) fromRedis(ctx context.Context, key string) (*User, bool) {
	if s.redis == nil {
		return nil, false
	}

	redisCtx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	raw, err := s.redis.Get(redisCtx, key).Result()
	if err != nil || raw == "" {
		return nil, false
	}

	var cu cachedUser
	if err := json.Unmarshal([]byte(raw), &cu); err != nil {
		s.logger.Warn("Dropping undecodable Redis cache entry",
			zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &User{
		IDUser:       cu.IDUser,
		Email:        cu.Email,
		Name:         cu.Name,
		Role:         cu.Role,
		PasswordHash: cu.PasswordHash,
		Active:       cu.Active,
	}, true
}

func (s *CachedStore) toRedis(ctx context.Context, key string, u *User) {
	if s.redis == nil {
		return
	}
	cu := cachedUser{
		IDUser:       u.IDUser,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		PasswordHash: u.PasswordHash,
		Active:       u.Active,
	}
	if data, err := json.Marshal(cu); err == nil {
		s.redis.Set(ctx, key, data, redisTTL)
	}
}
