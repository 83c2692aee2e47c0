package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urlErr(err error) error {
	return &url.Error{Op: "Post", URL: "http://example.test/api/files/upload/", Err: err}
}

func TestClassifyTransport(t *testing.T) {
	refused := urlErr(&net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED})

	tests := []struct {
		name     string
		err      error
		online   bool
		wantKind TransportKind
		wantRaw  bool
	}{
		{"deadline", urlErr(context.DeadlineExceeded), true, Timeout, false},
		{"deadline while offline", urlErr(context.DeadlineExceeded), false, Timeout, false},
		{"monitor offline", refused, false, Offline, false},
		{"dns failure", urlErr(&net.DNSError{Err: "server misbehaving", Name: "example.test"}), true, Offline, false},
		{"unreachable", urlErr(&net.OpError{Op: "dial", Net: "tcp", Err: syscall.ENETUNREACH}), true, Offline, false},
		{"refused", refused, true, NoResponse, false},
		{"truncated body", fmt.Errorf("read: %w", io.ErrUnexpectedEOF), true, NoResponse, false},
		{"cancelled", urlErr(context.Canceled), false, 0, true},
		{"other", errors.New("bad request build"), true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyTransport(tt.err, tt.online)
			if tt.wantRaw {
				assert.Same(t, tt.err, got)
				return
			}
			var tf *TransportFailure
			require.ErrorAs(t, got, &tf)
			assert.Equal(t, tt.wantKind, tf.Kind)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestServerMessage(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"message":"too big"}`, "too big"},
		{`{"detail":"Not found."}`, "Not found."},
		{`{"error":["first","second"]}`, "first"},
		{`{"message":"","detail":"fallback"}`, "fallback"},
		{`{"file":["This field is required."]}`, ""},
		{`<html>oops</html>`, ""},
		{``, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, serverMessage([]byte(tt.body)), tt.body)
	}
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Payload Too Large", statusText(&http.Response{StatusCode: 413, Status: "413 Payload Too Large"}))
	assert.Equal(t, "Teapot Custom", statusText(&http.Response{StatusCode: 418, Status: "418 Teapot Custom"}))
	assert.Equal(t, "Bad Gateway", statusText(&http.Response{StatusCode: 502}))
}

func TestFailureErrorStrings(t *testing.T) {
	tf := &TransportFailure{Kind: Offline, Err: errors.New("dial")}
	assert.Equal(t, "transport failure (offline): dial", tf.Error())

	sf := &ServerFailure{Status: 500, StatusText: "Internal Server Error", Message: "db"}
	assert.Equal(t, "server responded 500 Internal Server Error: db", sf.Error())
	sf.Message = ""
	assert.Equal(t, "server responded 500 Internal Server Error", sf.Error())
}
