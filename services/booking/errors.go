package booking

import "errors"

// ErrBookingNotFound reports a lookup miss. It is a conversational condition,
// not a storage fault: callers turn it into a reply, never into a 500.
var ErrBookingNotFound = errors.New("booking not found")
