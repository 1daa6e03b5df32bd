package user

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// MessageDatabaseError is the body of a 500 caused by the user store.
const MessageDatabaseError = "Database error"
