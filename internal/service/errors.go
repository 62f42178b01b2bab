package service

import (
	"net/http"

	"todo-service/internal/policy"
)

// Error is a terminal, caller-facing failure. Handlers translate it 1:1 into a
// response status and a detail string; nothing below the transport retries it.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

// NewError creates a caller-facing error with the given status and detail.
func NewError(status int, detail string) *Error {
	return &Error{Status: status, Detail: detail}
}

var (
	// ErrIncorrectCredentials is the uniform login failure. Unknown username
	// and wrong password are indistinguishable to the caller.
	ErrIncorrectCredentials = NewError(http.StatusUnauthorized, "Incorrect credentials")

	// ErrInvalidToken covers every decode, signature, expiry and stale-claim
	// failure during token verification.
	ErrInvalidToken = NewError(http.StatusUnauthorized, "Could not validate credentials")

	// ErrInactiveUser rejects a structurally valid token whose principal has
	// been deactivated.
	ErrInactiveUser = NewError(http.StatusForbidden, "Inactive user")
)

// decisionError maps a denying policy decision to a caller-facing error.
func decisionError(d policy.Decision) *Error {
	if d.Effect == policy.EffectNotFound {
		return NewError(http.StatusNotFound, d.Detail)
	}
	return NewError(http.StatusForbidden, d.Detail)
}
