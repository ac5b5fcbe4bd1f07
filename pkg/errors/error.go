package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"

	// SymbolInvalidError represents an empty or unusable ticker symbol.
	SymbolInvalidError ErrorCode = "symbol_invalid"

	// ProviderFetchError represents a failed call to the market-data provider.
	ProviderFetchError ErrorCode = "provider_fetch_error"
	// ProviderDecodeError represents a malformed provider response body.
	ProviderDecodeError ErrorCode = "provider_decode_error"
	// UpstreamFetchError represents a whole-bundle historical fetch failure.
	UpstreamFetchError ErrorCode = "upstream_fetch_error"

	// StreamErrorCeilingError represents a stream terminated after too many
	// consecutive provider failures.
	StreamErrorCeilingError ErrorCode = "stream_error_ceiling"

	// CacheBackendError represents a failure in the historical bundle cache.
	CacheBackendError ErrorCode = "cache_backend_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisDelError represents an error when deleting a value from Redis.
	RedisDelError ErrorCode = "redis_del_error"
)

// CodeOf extracts the ErrorCode from err, unwrapping ErrorTracer layers.
// Returns GeneralInternalServerError when err carries no code.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if details, ok := err.(*ErrorDetails); ok {
			return ErrorCode(details.Code)
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = unwrapper.Unwrap()
	}
	return GeneralInternalServerError
}
