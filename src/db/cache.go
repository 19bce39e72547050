package db

import (
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Storing cache keys in concurrent data structures so a mutation can clear
// every cached read for its family without scanning the whole cache.
var (
	Cache                *ristretto.Cache
	TransactionCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
	SummaryCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

// Transaction List Cache Functions
func SetTransactionCache(cacheKey string, value interface{}) {
	TransactionCacheKeys.Lock()
	TransactionCacheKeys.m[cacheKey] = struct{}{}
	TransactionCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func ClearAllTransactionCaches() {
	TransactionCacheKeys.Lock()
	for key := range TransactionCacheKeys.m {
		Cache.Del(key)
	}
	TransactionCacheKeys.m = make(map[string]struct{})
	TransactionCacheKeys.Unlock()
}

// Summary Cache Functions
func SetSummaryCache(cacheKey string, value interface{}) {
	SummaryCacheKeys.Lock()
	SummaryCacheKeys.m[cacheKey] = struct{}{}
	SummaryCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func ClearAllSummaryCaches() {
	SummaryCacheKeys.Lock()
	for key := range SummaryCacheKeys.m {
		Cache.Del(key)
	}
	SummaryCacheKeys.m = make(map[string]struct{})
	SummaryCacheKeys.Unlock()
}
