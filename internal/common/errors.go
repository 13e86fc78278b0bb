package common

import "errors"

// ErrorValidation marks user input rejected before any request is sent.
var ErrorValidation = errors.New("validation error")
