package session

import (
	"sync"
	"time"

	"github.com/cadence-dl/cadence/filesystem"
	"github.com/cadence-dl/cadence/key"
	"github.com/cadence-dl/cadence/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// tokenData is the on-disk shape of the token cache, one entry per vendor.
type tokenData struct {
	Tokens map[string]string `json:"tokens"`
}

type tokenCache struct {
	internal *gache.Cache[*tokenData]
	mu       sync.RWMutex
}

// Tokens carry no expiry of their own: staleness is only ever discovered
// by an unauthorized API response, so the cache lifetime is effectively
// unbounded.
var cache = &tokenCache{
	internal: gache.New[*tokenData](&gache.Options{
		Path:       where.Tokens(),
		Lifetime:   time.Hour * 24 * 365,
		FileSystem: &filesystem.GacheFs{},
	}),
}

func (c *tokenCache) Get(vendor string) mo.Option[string] {
	if !viper.GetBool(key.TokenCacheEnable) {
		return mo.None[string]()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[string]()
	}

	if token, ok := data.Tokens[vendor]; ok && token != "" {
		return mo.Some(token)
	}

	return mo.None[string]()
}

func (c *tokenCache) Set(vendor, token string) error {
	if !viper.GetBool(key.TokenCacheEnable) {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil {
		data = &tokenData{Tokens: make(map[string]string)}
	}

	data.Tokens[vendor] = token
	return c.internal.Set(data)
}

// ClearTokens drops every cached bearer token. Used by the cache-clearing
// command and by tests.
func ClearTokens() error {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	return cache.internal.Set(&tokenData{Tokens: make(map[string]string)})
}
