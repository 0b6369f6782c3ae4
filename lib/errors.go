package lib

import "fmt"

// Response is the raw outcome of one API call. It is kept on every service
// error so callers can inspect the diagnostic text the service returned.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// APIError reports a non-2xx status not covered by a more specific kind.
type APIError struct {
	Response *Response
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Error %d: %s", e.Response.StatusCode, e.Response.Status)
}

// MissingParameterError reports a 400: the request was malformed or incomplete.
type MissingParameterError struct{ APIError }

func (e *MissingParameterError) Unwrap() error { return &e.APIError }

// InsufficientAccessError reports a 401 or 403: the access key is missing,
// invalid, or lacks the permission the operation needs.
type InsufficientAccessError struct{ APIError }

func (e *InsufficientAccessError) Unwrap() error { return &e.APIError }

// ServerError reports a 500 from the service.
type ServerError struct{ APIError }

func (e *ServerError) Unwrap() error { return &e.APIError }

// classifyStatus maps a failure status to the error taxonomy. Callers never
// retry; the classified error ends the operation.
func classifyStatus(response *Response) error {
	switch response.StatusCode {
	case 400:
		return &MissingParameterError{APIError{Response: response}}
	case 401, 403:
		return &InsufficientAccessError{APIError{Response: response}}
	case 500:
		return &ServerError{APIError{Response: response}}
	}
	return &APIError{Response: response}
}

// DataFormatError reports a value outside one of the closed enumerations.
// It usually means the service speaks a newer API version than this binding.
type DataFormatError struct {
	Kind  string
	Value interface{}
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("unknown %s value: %v", e.Kind, e.Value)
}

// UsageError reports a caller mistake. It is raised before any request is
// sent, so it never carries a Response.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }
