package snapshot

import "github.com/htoohtoo/storefront/pkg/cache"

// redisDriver stores snapshots through the shared Redis client. No TTL:
// the snapshot lives until logout removes it.
type redisDriver struct{}

func (redisDriver) put(key, value string) error {
	return cache.SetString(key, value, 0)
}

func (redisDriver) get(key string) (string, bool, error) {
	v, ok := cache.GetString(key)
	return v, ok, nil
}

func (redisDriver) del(key string) error {
	return cache.Del(key)
}
