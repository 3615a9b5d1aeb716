package recipe

import (
	"sync"
	"time"

	"recipe-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

// instructionCache 크롤링한 조리법의 인메모리 TTL 캐시.
// 같은 레시피가 연속으로 추천될 때 외부 소스를 다시 두드리지 않기 위한 것.
type instructionCache struct {
	mu      sync.RWMutex
	store   map[int]cacheEntry
	ttl     time.Duration
	maxSize int
	hits    int64
	misses  int64
	done    chan struct{}
}

type cacheEntry struct {
	instructions string
	expiresAt    time.Time
}

// newInstructionCache 캐시 생성 후 만료 청소 고루틴을 시작한다.
func newInstructionCache(ttl time.Duration, maxSize int, cleanupInterval time.Duration) *instructionCache {
	c := &instructionCache{
		store:   make(map[int]cacheEntry),
		ttl:     ttl,
		maxSize: maxSize,
		done:    make(chan struct{}),
	}
	go c.startCleanup(cleanupInterval)
	return c
}

// get 캐시 조회. 만료된 항목은 미적중으로 처리한다.
func (c *instructionCache) get(recipeID int) (string, bool) {
	c.mu.RLock()
	entry, ok := c.store[recipeID]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		if ok {
			delete(c.store, recipeID)
		}
		c.misses++
		c.mu.Unlock()
		return "", false
	}

	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
	return entry.instructions, true
}

// set 캐시 저장. 가득 차면 만료 항목을 먼저 청소하고,
// 그래도 자리가 없으면 저장을 건너뛴다.
func (c *instructionCache) set(recipeID int, instructions string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.store) >= c.maxSize {
		c.cleanupLocked()
		if len(c.store) >= c.maxSize {
			common.LogWarn("조리법 캐시가 가득 찼습니다",
				zap.Int("size", len(c.store)),
			)
			return
		}
	}

	c.store[recipeID] = cacheEntry{
		instructions: instructions,
		expiresAt:    time.Now().Add(c.ttl),
	}
}

func (c *instructionCache) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.cleanupLocked()
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}

func (c *instructionCache) cleanupLocked() {
	now := time.Now()
	for id, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, id)
		}
	}
}

// close 청소 고루틴 종료
func (c *instructionCache) close() {
	close(c.done)
}
