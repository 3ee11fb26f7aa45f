package ratelimit

// MetadataKey is the operation metadata key naming the rate limit policy for
// an endpoint. Operations without it are not rate limited.
const MetadataKey = "ratelimit-policy"
