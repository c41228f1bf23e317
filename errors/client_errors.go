// errors/client_errors.go
package errors

import "errors"

var (
	ErrMissingBaseURL     = errors.New("api base URL is not configured")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrFormInvalid        = errors.New("form has validation errors")
	ErrFormClosed         = errors.New("form is not open")
	ErrEmptyDataset       = errors.New("dataset is empty")
	ErrMissingProject     = errors.New("no project selected")
)
