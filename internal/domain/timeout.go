package domain

import (
	"context"
	"errors"
	"net"
)

// IsTimeout reports whether err is a timeout-class failure worth retrying.
// Anything else (bad file reference, revoked access, disk errors) is final.
func IsTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
