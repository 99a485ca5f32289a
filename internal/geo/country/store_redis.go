package country

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/placewise/geodir/internal/platform/constants"
)

// RedisCache implements [Cache] on top of go-redis.
//
// The payload is the JSON-encoded country slice under a single key; the
// listing is small (one row per country) and always read whole.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed country list cache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

const listKey = constants.RedisPrefixCountries + "list"

func (cache *RedisCache) GetList(ctx context.Context) ([]*Country, error) {
	payload, err := cache.client.Get(ctx, listKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Cache miss, not a failure.
			return nil, nil
		}
		return nil, fmt.Errorf("country_cache_get_failed: %w", err)
	}

	var countries []*Country
	if err := json.Unmarshal(payload, &countries); err != nil {
		// A corrupt entry behaves like a miss; the next SetList overwrites it.
		return nil, fmt.Errorf("country_cache_decode_failed: %w", err)
	}

	return countries, nil
}

func (cache *RedisCache) SetList(ctx context.Context, countries []*Country) error {
	payload, err := json.Marshal(countries)
	if err != nil {
		return fmt.Errorf("country_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(ctx, listKey, payload, constants.CountryListTTL).Err(); err != nil {
		return fmt.Errorf("country_cache_set_failed: %w", err)
	}

	return nil
}
