package cache

import (
	"context"
	"time"
)

// Locker pose des verrous courts dans Redis (SET NX + TTL). Sert à absorber
// les doubles soumissions : la seconde mutation sur le même article est
// refusée tant que la première est en vol.
type Locker struct{}

func (Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return RedisClient.SetNX(ctx, "lock:"+key, "1", ttl).Result()
}

func (Locker) Unlock(ctx context.Context, key string) {
	RedisClient.Del(ctx, "lock:"+key)
}
