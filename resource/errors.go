package resource

import "errors"

// ErrMemoryLimitExceeded is returned when a single reservation exceeds the
// memory limit.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")
