package auth

import "fmt"

// Response bodies of the auth gate and the cookie bridge.
const (
	MessageMissingBearer = "Missing bearer token"
	MessageInvalidJWT    = "Invalid JWT"
	MessageExpiredJWT    = "Expired JWT"
	MessageInvalidCookie = "Invalid token cookie"
)

// MessageNotInGroup is the body sent when a valid token lacks group.
func MessageNotInGroup(group string) string {
	return fmt.Sprintf("User is not in group %s", group)
}

// MessageBindFailed is the body sent when username could not be bound.
func MessageBindFailed(username string) string {
	return fmt.Sprintf("Authentication error for `%s`", username)
}

// MessageGroupLookupFailed is the body sent when the groups of username could not be read.
func MessageGroupLookupFailed(username string) string {
	return fmt.Sprintf("Could not fetch the groups of `%s`", username)
}
