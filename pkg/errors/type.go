package errors

// ValidationError is an error with a field and messages.
// Rendered as 400 Bad Request.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// HTTPError represents an HTTP error with status code and message.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// AuthenticationError is returned when a caller cannot be admitted: a rejected bind,
// a missing, invalid or expired token, or a missing group. Rendered as 401.
type AuthenticationError struct {
	Message string
}

// BackendError wraps a storage fault of the authentication backend that is
// unrelated to credential correctness. Rendered as 500.
type BackendError struct {
	Message string
	Err     error
}
