// errors/api_error.go
package errors

import (
	stderrors "errors"
	"fmt"
)

// APIError is the decoded failure of one backend call: either a transport
// level HTTP failure or an application level envelope with status=false.
// Fields carries the server's field-keyed validation errors when present so
// forms can map them back onto their inputs.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// FieldError returns the server-side error for one field, if any.
func (e *APIError) FieldError(field string) (string, bool) {
	msg, ok := e.Fields[field]
	return msg, ok
}

// AsAPIError unwraps err into an *APIError when it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
