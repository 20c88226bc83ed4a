package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerScheme prefixes the token inside the Authorization header.
const BearerScheme = "Bearer"

// RequestIDHeaderName echoes the per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"

// DefaultLanguage is assigned to accounts that did not choose a language.
const DefaultLanguage = "en"
