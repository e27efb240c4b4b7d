package telemetry

import "errors"

var ErrRateLimited = errors.New("too many position samples for trip")
