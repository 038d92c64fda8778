package http

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

var ErrParsing = errors.New("parsing error")

// ParseResponse decodes a response body into an explicit payload type, so
// malformed backend responses fail fast instead of propagating partially
// filled values to the caller.
func ParseResponse[T any](resp *resty.Response) (T, error) {
	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("%w: decode json body: %w", ErrParsing, err)
	}
	return result, nil
}
