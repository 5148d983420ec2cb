package common

const (
	// AuthHeaderName is the HTTP header carrying the access token.
	AuthHeaderName = "Authorization"

	// BearerPrefix is the expected scheme prefix in AuthHeaderName.
	BearerPrefix = "Bearer "
)
