package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/filedesk/internal/client/models"
	"github.com/dmitrijs2005/filedesk/internal/logging"
)

const (
	DefaultBaseURL       = "https://williamscut.pythonanywhere.com/api/"
	DefaultUploadTimeout = 30 * time.Second

	pathUpload      = "files/upload/"
	pathUploadLabel = "files/upload-label/"
	pathList        = "files/list/"
	pathDelete      = "files/delete/"
	pathHealth      = "health/"

	formField = "file"
)

// ResponseHook observes every response before its body is read.
type ResponseHook func(ctx context.Context, req *http.Request, resp *http.Response)

// HTTPClient implements Client over net/http. Credentials are never sent:
// the underlying http.Client has no cookie jar unless one is injected.
type HTTPClient struct {
	base          string
	http          *http.Client
	logger        logging.Logger
	online        func() bool
	uploadTimeout time.Duration
	hooks         []ResponseHook
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// WithConnectivity sets the probe consulted when a request fails without a
// response. netx.Monitor.Online fits.
func WithConnectivity(online func() bool) Option {
	return func(c *HTTPClient) { c.online = online }
}

func WithUploadTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.uploadTimeout = d
		}
	}
}

// WithResponseHook appends a hook run after the built-in ones.
func WithResponseHook(h ResponseHook) Option {
	return func(c *HTTPClient) { c.hooks = append(c.hooks, h) }
}

// NewHTTPClient returns a client rooted at baseURL. Relative request paths
// are appended to it, so a missing trailing slash is added.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: unsupported scheme %q", baseURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", baseURL)
	}

	base := u.String()
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	c := &HTTPClient{
		base:          base,
		http:          &http.Client{},
		logger:        logging.Nop(),
		online:        func() bool { return true },
		uploadTimeout: DefaultUploadTimeout,
	}
	c.hooks = []ResponseHook{c.logForbidden}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *HTTPClient) BaseURL() string { return c.base }

func (c *HTTPClient) UploadFile(ctx context.Context, name string, r io.Reader) (models.FileRecord, error) {
	return c.upload(ctx, pathUpload, name, r)
}

// UploadLabelFile posts to the label endpoint; the contract is otherwise
// identical to UploadFile.
func (c *HTTPClient) UploadLabelFile(ctx context.Context, name string, r io.Reader) (models.FileRecord, error) {
	return c.upload(ctx, pathUploadLabel, name, r)
}

func (c *HTTPClient) upload(ctx context.Context, path, name string, r io.Reader) (models.FileRecord, error) {
	body, contentType, err := multipartBody(name, r)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.uploadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	data, err := c.send(req)
	if err != nil {
		return nil, c.uploadError(ctx, name, err)
	}

	rec, err := models.DecodeRecord(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}

	c.logger.Info(ctx, "file uploaded", "name", name, "id", rec.ID())
	return rec, nil
}

func multipartBody(name string, r io.Reader) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, formField, quoteEscaper.Replace(name)))
	h.Set("Content-Type", contentTypeOf(name))

	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", fmt.Errorf("read %s: %w", name, err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return buf, mw.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// contentTypeOf guesses the part type from the file extension.
func contentTypeOf(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// uploadError maps failures to their user message. Errors that are not
// failures are returned unchanged.
func (c *HTTPClient) uploadError(ctx context.Context, name string, err error) error {
	var f Failure
	if !errors.As(err, &f) {
		return err
	}
	msg, ok := UploadMessage(f)
	if !ok {
		return err
	}
	c.logger.Error(ctx, "upload failed", "name", name, "error", err)
	return &Error{Message: msg, Cause: f}
}

func (c *HTTPClient) ListFiles(ctx context.Context) ([]models.FileRecord, error) {
	req, err := c.newJSONRequest(ctx, http.MethodGet, pathList)
	if err != nil {
		return nil, c.genericError(ctx, "list files", MsgFetchFailed, err)
	}

	data, err := c.send(req)
	if err != nil {
		return nil, c.genericError(ctx, "list files", MsgFetchFailed, err)
	}

	files, err := models.DecodeList(bytes.NewReader(data))
	if err != nil {
		return nil, c.genericError(ctx, "list files", MsgFetchFailed, fmt.Errorf("decode list: %w", err))
	}
	return files, nil
}

func (c *HTTPClient) DeleteFile(ctx context.Context, id string) error {
	if id == "" {
		return c.genericError(ctx, "delete file", MsgDeleteFailed, errEmptyID)
	}

	req, err := c.newJSONRequest(ctx, http.MethodDelete, pathDelete+url.PathEscape(id)+"/")
	if err != nil {
		return c.genericError(ctx, "delete file", MsgDeleteFailed, err)
	}

	if _, err := c.send(req); err != nil {
		return c.genericError(ctx, "delete file", MsgDeleteFailed, fmt.Errorf("id %s: %w", id, err))
	}

	c.logger.Info(ctx, "file deleted", "id", id)
	return nil
}

// Ping reports whether the backend answers at all. Any HTTP response counts
// as reachable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := c.newJSONRequest(ctx, http.MethodGet, pathHealth)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) genericError(ctx context.Context, op, msg string, err error) error {
	c.logger.Error(ctx, op+" failed", "error", err)
	return &Error{Message: msg, Cause: err}
}

func (c *HTTPClient) newJSONRequest(ctx context.Context, method, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// send performs req and returns the response body of a 2xx answer. Every
// other outcome is a Failure, or the raw error when it is not one.
func (c *HTTPClient) send(req *http.Request) ([]byte, error) {
	ctx := req.Context()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err, c.online())
	}
	defer resp.Body.Close()

	for _, h := range c.hooks {
		h(ctx, req, resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(err, c.online())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newServerFailure(resp, data)
	}
	return data, nil
}

func (c *HTTPClient) logForbidden(ctx context.Context, req *http.Request, resp *http.Response) {
	if resp.StatusCode != http.StatusForbidden {
		return
	}
	c.logger.Warn(ctx, "request forbidden, possibly rejected by cross-origin policy",
		"method", req.Method, "url", req.URL.String())
}
