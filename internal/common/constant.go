// Package common contains shared constants and sentinel errors used across
// storeadmin components.
package common

const (
	// RequestIDHeader is the HTTP header used to correlate a request with
	// its log lines.
	RequestIDHeader = "X-Request-ID"

	// AuthorizationHeader carries an optional bearer token when token
	// authentication is enabled.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the token in AuthorizationHeader.
	BearerPrefix = "Bearer "
)
