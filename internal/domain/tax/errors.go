package tax

import "errors"

var ErrAlreadySubmitted = errors.New("declaration already submitted")
