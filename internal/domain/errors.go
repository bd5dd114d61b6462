package domain

import "errors"

var (
	ErrChatNotFound     = errors.New("chat not found")
	ErrEndOfHistory     = errors.New("end of history")
	ErrMediaUnsupported = errors.New("media has no downloadable payload")
	ErrSignUpRequired   = errors.New("account is not registered, sign up is not supported")
)
