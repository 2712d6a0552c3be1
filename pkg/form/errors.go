package form

import "errors"

var ErrSubmissionInFlight = errors.New("form: submission already in flight")
