package constant

const (
	ContextKeyRequestID = "requestid"

	RequestIDHeader = "X-Stride-Request-ID"

	// UserIDHeader carries the authenticated user's id. Authentication itself
	// happens at the gateway; this backend trusts the header value.
	UserIDHeader = "X-User-ID"
)
