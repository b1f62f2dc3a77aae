// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis viewer-session cache keys.
const AuthCachePrefix = "viewer:"

// AuthCacheTTL is the time-to-live for viewer-session cache entries.
const AuthCacheTTL = 10 * time.Minute

// ViewerCookieName is the cookie carrying the signed viewer identity.
const ViewerCookieName = "viewer"

// ViewerCookieMaxAge is how long the viewer cookie stays valid.
const ViewerCookieMaxAge = 365 * 24 * time.Hour
