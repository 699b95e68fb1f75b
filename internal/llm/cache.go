package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Cache stores model responses keyed by a stable hash of the exact call.
// A hit is only possible for a byte-identical prompt on the same tier and
// method; the scoring core never depends on a cache being present.
type Cache interface {
	Get(key string) (string, bool)
	Put(key, value string)
}

// CacheKey derives the cache key for one generation call.
func CacheKey(method string, tier ModelTier, prompt string) string {
	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte{0})
	h.Write([]byte(tier))
	h.Write([]byte{0})
	h.Write([]byte(prompt))
	return hex.EncodeToString(h.Sum(nil))
}

// MemoryCache is an in-process Cache safe for concurrent use.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

// Get returns the cached response for key, if any.
func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores a response under key, replacing any previous value.
func (c *MemoryCache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Len reports the number of cached responses.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// CachedClient decorates a Client with response caching. Errors are never
// cached; only successful generations are stored.
type CachedClient struct {
	inner Client
	cache Cache
}

// NewCachedClient wraps inner with the given cache. A nil cache gets a
// fresh MemoryCache.
func NewCachedClient(inner Client, cache Cache) *CachedClient {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &CachedClient{inner: inner, cache: cache}
}

// GenerateContent serves from cache when possible, delegating on miss.
func (c *CachedClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.generate(ctx, "content", prompt, tier, c.inner.GenerateContent)
}

// GenerateJSON serves from cache when possible, delegating on miss.
func (c *CachedClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.generate(ctx, "json", prompt, tier, c.inner.GenerateJSON)
}

func (c *CachedClient) generate(ctx context.Context, method, prompt string, tier ModelTier, call func(context.Context, string, ModelTier) (string, error)) (string, error) {
	key := CacheKey(method, tier, prompt)
	if v, ok := c.cache.Get(key); ok {
		return v, nil
	}
	out, err := call(ctx, prompt, tier)
	if err != nil {
		return "", err
	}
	c.cache.Put(key, out)
	return out, nil
}

// GetModel returns the wrapped client's model name for a tier.
func (c *CachedClient) GetModel(tier ModelTier) string {
	return c.inner.GetModel(tier)
}

// Close closes the wrapped client.
func (c *CachedClient) Close() error {
	return c.inner.Close()
}
