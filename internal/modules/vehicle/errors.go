package vehicle

import "errors"

var ErrValidation = errors.New("validation error")
