package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/filedesk/internal/netx"
)

// Failure is either a *TransportFailure or a *ServerFailure. The set is
// closed: only this package constructs failures, so a type switch over the
// two variants is exhaustive.
type Failure interface {
	error
	failure()
}

// TransportKind tells why no response was obtained.
type TransportKind int

const (
	// NoResponse: the request was sent but no response arrived.
	NoResponse TransportKind = iota
	Timeout
	Offline
)

func (k TransportKind) String() string {
	switch k {
	case Timeout:
		return "timeout"
	case Offline:
		return "offline"
	default:
		return "no response"
	}
}

type TransportFailure struct {
	Kind TransportKind
	Err  error
}

func (f *TransportFailure) Error() string {
	return fmt.Sprintf("transport failure (%s): %v", f.Kind, f.Err)
}

func (f *TransportFailure) Unwrap() error { return f.Err }

func (*TransportFailure) failure() {}

// ServerFailure is a response with a non-2xx status.
type ServerFailure struct {
	Status     int
	StatusText string
	// Message is the server-supplied explanation, if the body carried one.
	Message string
	Body    []byte
}

func (f *ServerFailure) Error() string {
	if f.Message != "" {
		return fmt.Sprintf("server responded %d %s: %s", f.Status, f.StatusText, f.Message)
	}
	return fmt.Sprintf("server responded %d %s", f.Status, f.StatusText)
}

// IsAuth reports a 401 or 403.
func (f *ServerFailure) IsAuth() bool {
	return f.Status == http.StatusUnauthorized || f.Status == http.StatusForbidden
}

func (*ServerFailure) failure() {}

// classifyTransport turns an error from sending a request or reading its
// response into a *TransportFailure. Errors that are not transport failures
// (caller cancellation, request construction) are returned unchanged.
func classifyTransport(err error, online bool) error {
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case netx.IsTimeout(err):
		return &TransportFailure{Kind: Timeout, Err: err}
	case !online || netx.IsOffline(err):
		return &TransportFailure{Kind: Offline, Err: err}
	}

	var ue *url.Error
	if errors.As(err, &ue) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &TransportFailure{Kind: NoResponse, Err: err}
	}
	return err
}

func newServerFailure(resp *http.Response, body []byte) *ServerFailure {
	return &ServerFailure{
		Status:     resp.StatusCode,
		StatusText: statusText(resp),
		Message:    serverMessage(body),
		Body:       body,
	}
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// messageKeys are the body fields that carry an explanation, in lookup order.
var messageKeys = []string{"message", "detail", "error"}

// serverMessage extracts an explanation from a JSON error body. A value may be
// a string or a list whose first element is a string.
func serverMessage(body []byte) string {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return ""
	}
	for _, k := range messageKeys {
		switch v := obj[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case []any:
			if len(v) > 0 {
				if s, ok := v[0].(string); ok && s != "" {
					return s
				}
			}
		}
	}
	return ""
}
