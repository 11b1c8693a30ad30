package errors

// User-friendly error messages
const (
	MsgInvalidQuery        = "A non-empty search query is required. Please provide a business type or name to search for."
	MsgMissingCredential   = "The places API key is not configured. Set GOOGLE_MAPS_API_KEY and restart the service."
	MsgProviderUnavailable = "We're unable to reach the places provider right now. Please try again in a few minutes."
	MsgRateLimited         = "You're searching too quickly! Please wait a moment and try again."
	MsgInternalError       = "Something went wrong on our end. Please try again later."
)
