package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

// TokenBucket пропускает до capacity запросов подряд и пополняется
// со скоростью refillRate токенов в секунду. Дробные токены копятся.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now)
}

func newTokenBucket(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}
	t.lastRefill = now

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
}

// KeyedLimiter держит отдельное ведро на каждый ключ (например, IP клиента).
// Вёдра, не использованные дольше idleTTL, вычищаются при очередном обращении.
type KeyedLimiter struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64
	idleTTL    time.Duration
	buckets    map[string]*keyedBucket
	lastSweep  time.Time
	now        func() time.Time
}

type keyedBucket struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewKeyedLimiter(capacity int, refillRate float64, idleTTL time.Duration) *KeyedLimiter {
	return newKeyedLimiter(capacity, refillRate, idleTTL, time.Now)
}

func newKeyedLimiter(capacity int, refillRate float64, idleTTL time.Duration, now func() time.Time) *KeyedLimiter {
	return &KeyedLimiter{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		buckets:    make(map[string]*keyedBucket),
		lastSweep:  now(),
		now:        now,
	}
}

func (k *KeyedLimiter) Allow(key string) bool {
	k.mu.Lock()
	now := k.now()
	if k.idleTTL > 0 && now.Sub(k.lastSweep) >= k.idleTTL {
		k.sweep(now)
	}

	entry, ok := k.buckets[key]
	if !ok {
		entry = &keyedBucket{bucket: newTokenBucket(k.capacity, k.refillRate, k.now)}
		k.buckets[key] = entry
	}
	entry.lastSeen = now
	k.mu.Unlock()

	return entry.bucket.Allow()
}

// Len количество активных вёдер.
func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

func (k *KeyedLimiter) sweep(now time.Time) {
	for key, entry := range k.buckets {
		if now.Sub(entry.lastSeen) > k.idleTTL {
			delete(k.buckets, key)
		}
	}
	k.lastSweep = now
}
