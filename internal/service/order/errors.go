package order

import "errors"

var ErrUndefinedStatus = errors.New("no handler for order status")
