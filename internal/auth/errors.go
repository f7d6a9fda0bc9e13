package auth

import "errors"

// ErrInvalidToken indicates a token failed verification: malformed,
// wrongly signed, expired, or carrying unusable claims.
var ErrInvalidToken = errors.New("invalid token")

// ErrInvalidCredentials indicates a login failure. Unknown users, inactive
// accounts, and wrong passwords all surface as this one error so callers
// cannot distinguish them.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrDenied indicates a valid identity lacks the role or ownership an
// operation requires. The message stays generic on purpose.
var ErrDenied = errors.New("access denied")

// ErrPasswordTooShort indicates a new password fails the minimum-length policy.
var ErrPasswordTooShort = errors.New("password too short")
