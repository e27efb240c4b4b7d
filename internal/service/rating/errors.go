package rating

import "errors"

var ErrAlreadyRated = errors.New("order already rated")
