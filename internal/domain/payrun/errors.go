package payrun

import "errors"

var ErrEmployeeFailed = errors.New("employee calculation failed")
