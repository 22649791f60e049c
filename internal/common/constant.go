package common

// AuthHeaderName is the HTTP header used to carry the access token on
// outbound requests.
const AuthHeaderName = "Authorization"

// BearerPrefix precedes the access token in the auth header.
const BearerPrefix = "Bearer "
