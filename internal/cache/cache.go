package cache

import (
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/JustJay7/bpso-complaint-intake/internal/intake"
)

// Cache keeps recently filed case records for the lookup API
type Cache interface {
	Get(caseNumber int64) (*intake.CaseRecord, bool)
	Set(record *intake.CaseRecord)
	Delete(caseNumber int64)
	Clear()
	Stats() CacheStats
}

type CacheStats struct {
	Hits       int64     `json:"hits"`
	Misses     int64     `json:"misses"`
	Size       int       `json:"size"`
	LastAccess time.Time `json:"last_access"`
}

type RecentCases struct {
	cache   *cache.Cache
	mu      sync.RWMutex
	stats   CacheStats
	maxSize int
}

func NewCache(maxSize int, ttl time.Duration) Cache {
	return &RecentCases{
		cache:   cache.New(ttl, ttl*2),
		maxSize: maxSize,
	}
}

func (c *RecentCases) Get(caseNumber int64) (*intake.CaseRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.LastAccess = time.Now()

	if data, found := c.cache.Get(key(caseNumber)); found {
		if record, ok := data.(*intake.CaseRecord); ok {
			c.stats.Hits++
			return record, true
		}
	}

	c.stats.Misses++
	return nil, false
}

// Set stores record, evicting the entry closest to expiry when full.
// A colliding case number replaces the older record.
func (c *RecentCases) Set(record *intake.CaseRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(record.CaseNumber)
	if _, exists := c.cache.Get(k); !exists && c.maxSize > 0 && c.cache.ItemCount() >= c.maxSize {
		c.removeOldest()
	}

	c.cache.Set(k, record, cache.DefaultExpiration)
}

func (c *RecentCases) Delete(caseNumber int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Delete(key(caseNumber))
}

func (c *RecentCases) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Flush()
	c.stats = CacheStats{}
}

func (c *RecentCases) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := c.stats
	stats.Size = c.cache.ItemCount()
	return stats
}

func (c *RecentCases) removeOldest() {
	items := c.cache.Items()
	if len(items) == 0 {
		return
	}

	var oldestKey string
	var oldestExpiry int64

	for k, item := range items {
		if oldestKey == "" || item.Expiration < oldestExpiry {
			oldestKey = k
			oldestExpiry = item.Expiration
		}
	}

	c.cache.Delete(oldestKey)
}

func key(caseNumber int64) string {
	return "case:" + strconv.FormatInt(caseNumber, 10)
}
