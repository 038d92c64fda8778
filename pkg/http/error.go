package http

import (
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const connectionFailureMessage = "Не удалось подключиться к серверу"

// Error is a non-2xx backend response, carrying the detail message from
// the standard {"detail": "..."} error body when one was decodable.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

func ResponseError(resp *resty.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode()}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		apiErr.Detail = body.Detail
	}
	return apiErr
}

// ConnectionError marks a request that produced no response at all. Its
// message is the user-facing connectivity fallback, the original transport
// error stays reachable through Unwrap.
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return connectionFailureMessage
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

func WrapConnectionError(err error) error {
	if err == nil {
		return nil
	}
	return &ConnectionError{Cause: err}
}
