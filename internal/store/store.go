// Package store holds the reactive state containers consumed by views:
// last-fetched data, a loading flag and an error message per resource,
// with operations that delegate to the backend clients.
//
// Overlapping operations on one store are not serialized: both raise the
// loading flag, both proceed, and the one completing last wins the final
// state write.
package store

import (
	"errors"
	"strconv"
	"sync"

	"github.com/go-resty/resty/v2"

	pkghttp "github.com/hackplatform/client-go/pkg/http"
)

const fallbackErrorMessage = "Ошибка"

// Tracker carries the loading flag and error message shared by every
// store, and guards the embedding store's data.
type Tracker struct {
	mu      sync.Mutex
	loading bool
	err     string
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

func (t *Tracker) Err() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Tracker) begin() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = true
	t.err = ""
}

func (t *Tracker) end(err error, override, fallback string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = false
	if err != nil {
		t.err = Message(err, override, fallback)
	}
}

func (t *Tracker) setErr(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.err = msg
}

// Message picks the most specific display message for a failure:
// caller-supplied override, then the backend detail field, then the
// per-operation fallback for detail-less backend errors. Non-backend
// failures keep their own message, connection errors included.
func Message(err error, override, fallback string) string {
	if override != "" {
		return override
	}

	var apiErr *pkghttp.Error
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		if fallback != "" {
			return fallback
		}
		return fallbackErrorMessage
	}

	if err != nil && err.Error() != "" {
		return err.Error()
	}

	if fallback != "" {
		return fallback
	}
	return fallbackErrorMessage
}

// run executes one store operation under the common lifecycle: loading is
// raised with a cleared error, the failure message is recorded, loading
// always drops. The error is returned so callers can still react to it.
func run[T any](t *Tracker, fallback string, op func() (T, error)) (T, error) {
	t.begin()
	result, err := op()
	t.end(err, "", fallback)
	if err != nil {
		var blank T
		return blank, err
	}
	return result, nil
}

// Request is the permissive variant of run: the failure is recorded in
// the tracker and swallowed, the caller only gets the zero value and
// false. The 401 session teardown still happens inside the client.
func Request[T any](t *Tracker, override string, op func() (T, error)) (T, bool) {
	t.begin()
	result, err := op()
	t.end(err, override, "")
	if err != nil {
		var blank T
		return blank, false
	}
	return result, true
}

func send[T any](req *resty.Request, method, url string) (T, error) {
	var result T
	resp, err := req.Execute(method, url)
	if err != nil {
		return result, pkghttp.WrapConnectionError(err)
	}
	if resp.IsError() {
		return result, pkghttp.ResponseError(resp)
	}
	if len(resp.Body()) == 0 {
		return result, nil
	}
	return pkghttp.ParseResponse[T](resp)
}

func sendNoResult(req *resty.Request, method, url string) error {
	_, err := send[struct{}](req, method, url)
	return err
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func sendRaw(req *resty.Request, method, url string) ([]byte, error) {
	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, pkghttp.WrapConnectionError(err)
	}
	if resp.IsError() {
		return nil, pkghttp.ResponseError(resp)
	}
	return resp.Body(), nil
}
