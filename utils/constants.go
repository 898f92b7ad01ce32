// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// ProviderCachePrefix is the prefix used for cached provider profiles.
const ProviderCachePrefix = "provider:"

// ProviderCacheTTL is the time-to-live for cached provider profiles.
const ProviderCacheTTL = 10 * time.Minute
