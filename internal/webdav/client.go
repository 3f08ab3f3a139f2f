package webdav

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	kerrors "github.com/PolarWolf314/tcountdown/internal/errors"
)

const (
	// DefaultTimeout bounds every request, including reading the body.
	DefaultTimeout = 15 * time.Second

	// FolderName is the collection created under the server base URL.
	FolderName = "T-Countdown"

	// ObjectName is the document stored inside FolderName.
	ObjectName = "data.json"

	// EmptyDocument is returned by Get when the object does not exist.
	EmptyDocument = "[]"

	contentTypeJSON = "application/json; charset=utf-8"

	// maxRedirects matches net/http's default limit.
	maxRedirects = 10
)

// Credentials are plaintext and must only live for the duration of a call.
type Credentials struct {
	Username string
	Password string
}

// Header returns the value of the Authorization header.
func (c Credentials) Header() string {
	raw := c.Username + ":" + c.Password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw))
}

// Logger receives diagnostics about ignored failures.
type Logger interface {
	Debugf(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

type Client struct {
	httpClient *http.Client
	log        Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its timeout is used as
// is. A nil CheckRedirect is replaced by the client's own redirect policy on a
// copy; hc itself is not modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		clone := *hc
		if clone.CheckRedirect == nil {
			clone.CheckRedirect = checkRedirect
		}
		c.httpClient = &clone
	}
}

// WithTimeout sets the total per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = newHTTPClient(d)
	}
}

func WithLogger(l Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		httpClient: newHTTPClient(DefaultTimeout),
		log:        nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:       timeout,
		CheckRedirect: checkRedirect,
	}
}

// checkRedirect follows a redirect only when it keeps the original method.
// net/http turns PUT and PROPFIND into a bodyless GET on 301/302/303; those
// responses are returned as is so they surface as a NetworkError.
func checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	if req.Method != via[0].Method {
		return http.ErrUseLastResponse
	}
	return nil
}

// BaseURL returns server with a trailing slash.
func BaseURL(server string) string {
	if strings.HasSuffix(server, "/") {
		return server
	}
	return server + "/"
}

func FolderURL(server string) string {
	return BaseURL(server) + FolderName + "/"
}

func ObjectURL(server string) string {
	return FolderURL(server) + ObjectName
}

// Test checks that the server is reachable and accepts the credentials.
func (c *Client) Test(ctx context.Context, server string, creds Credentials) error {
	url := BaseURL(server)

	resp, err := c.do(ctx, "PROPFIND", url, creds, nil, func(req *http.Request) {
		req.Header.Set("Depth", "0")
	})
	if err != nil {
		return err
	}
	defer drain(resp)

	switch {
	case isSuccess(resp.StatusCode):
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &kerrors.AuthError{Op: "PROPFIND", StatusCode: resp.StatusCode}
	default:
		return &kerrors.NetworkError{Op: "PROPFIND", URL: url, StatusCode: resp.StatusCode}
	}
}

// EnsureFolder creates the app folder. Failures, including "already
// exists", are ignored.
func (c *Client) EnsureFolder(ctx context.Context, server string, creds Credentials) {
	url := FolderURL(server)

	resp, err := c.do(ctx, "MKCOL", url, creds, nil, nil)
	if err != nil {
		c.log.Debugf("MKCOL %s failed, continuing: %v", url, err)
		return
	}
	defer drain(resp)

	if !isSuccess(resp.StatusCode) {
		c.log.Debugf("MKCOL %s returned %d, continuing", url, resp.StatusCode)
	}
}

// Put uploads body to url.
func (c *Client) Put(ctx context.Context, url string, creds Credentials, body string) error {
	resp, err := c.do(ctx, http.MethodPut, url, creds, strings.NewReader(body), func(req *http.Request) {
		req.Header.Set("Content-Type", contentTypeJSON)
	})
	if err != nil {
		return err
	}
	defer drain(resp)

	if !isSuccess(resp.StatusCode) {
		return &kerrors.NetworkError{Op: http.MethodPut, URL: url, StatusCode: resp.StatusCode}
	}
	return nil
}

// Get downloads url. A 404 yields EmptyDocument.
func (c *Client) Get(ctx context.Context, url string, creds Credentials) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, url, creds, nil, nil)
	if err != nil {
		return "", err
	}
	defer drain(resp)

	if resp.StatusCode == http.StatusNotFound {
		return EmptyDocument, nil
	}
	if !isSuccess(resp.StatusCode) {
		return "", &kerrors.NetworkError{Op: http.MethodGet, URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &kerrors.NetworkError{Op: http.MethodGet, URL: url, Err: err}
	}
	return string(data), nil
}

func (c *Client) do(ctx context.Context, method, url string, creds Credentials, body io.Reader, prepare func(*http.Request)) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, &kerrors.NetworkError{Op: method, URL: url, Err: err}
	}
	req.Header.Set("Authorization", creds.Header())
	if prepare != nil {
		prepare(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &kerrors.NetworkError{Op: method, URL: url, Err: err}
	}
	return resp, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
