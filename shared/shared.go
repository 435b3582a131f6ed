package shared

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"lodgedesk/shared/cache"
)

// BuildCacheKey joins a prefix and its qualifiers into a single cache key.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, cacheStore cache.RedisCache, prefix string) {
	if err := cacheStore.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
	}
}
