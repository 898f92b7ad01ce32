package booking

import (
	"context"
	"encoding/json"

	"aamer/models"
	"aamer/utils"

	"go.uber.org/zap"
)

// providerByUserID resolves a provider profile through the Redis cache,
// falling back to MongoDB. Cache trouble is logged and ignored; the lookup
// still answers from the database.
func (s *DefaultBookingService) providerByUserID(ctx context.Context, userID string) (*models.Provider, error) {
	if userID == "" {
		return nil, nil
	}

	key := utils.ProviderCachePrefix + userID
	if utils.CacheClient != nil {
		if raw, err := utils.CacheClient.Get(ctx, key).Result(); err == nil {
			var provider models.Provider
			if err := json.Unmarshal([]byte(raw), &provider); err == nil {
				return &provider, nil
			}
		}
	}

	provider, err := s.Providers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if provider != nil && utils.CacheClient != nil {
		if raw, err := json.Marshal(provider); err == nil {
			if err := utils.CacheClient.Set(ctx, key, raw, utils.ProviderCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache provider profile",
					zap.String("userId", userID), zap.Error(err))
			}
		}
	}
	return provider, nil
}
