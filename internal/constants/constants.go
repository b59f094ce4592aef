package constants

const (
	// BearerPrefix precedes the token in the Authorization header.
	BearerPrefix = "Bearer "

	// ContextKeyClaims holds the validated token claims on the gin context.
	ContextKeyClaims = "token_claims"
	// ContextKeyRequestID holds the request id on the gin context.
	ContextKeyRequestID = "request_id"

	RequestIDHeader = "X-Request-ID"

	InternalErrMessage = "Internal server error"
)
