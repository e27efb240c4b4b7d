package token_bucket

import (
	"sync"
	"time"
)

// KeyedLimiter держит отдельный TokenBucket на каждый ключ, например на рейс.
// Бакеты, не использовавшиеся дольше idleTTL, удаляются при следующем обращении.
type KeyedLimiter struct {
	capacity   int
	refillRate float64
	idleTTL    time.Duration

	mu        sync.Mutex
	buckets   map[int64]*keyedBucket
	lastSweep time.Time
}

type keyedBucket struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewKeyedLimiter(capacity int, refillRate float64, idleTTL time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		buckets:    make(map[int64]*keyedBucket),
		lastSweep:  time.Now(),
	}
}

func (k *KeyedLimiter) Allow(key int64) bool {
	k.mu.Lock()
	now := time.Now()
	k.evictIdle(now)

	b, ok := k.buckets[key]
	if !ok {
		b = &keyedBucket{bucket: NewTokenBucket(k.capacity, k.refillRate)}
		k.buckets[key] = b
	}
	b.lastSeen = now
	k.mu.Unlock()

	return b.bucket.Allow()
}

func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return len(k.buckets)
}

func (k *KeyedLimiter) evictIdle(now time.Time) {
	if k.idleTTL <= 0 || now.Sub(k.lastSweep) < k.idleTTL {
		return
	}
	for key, b := range k.buckets {
		if now.Sub(b.lastSeen) >= k.idleTTL {
			delete(k.buckets, key)
		}
	}
	k.lastSweep = now
}
