// Package libhttp provides a procedure for retrieving documents over HTTP.
package libhttp

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/nicferrier/nicrisp/lisp"
	"github.com/nicferrier/nicrisp/lisp/lisplib/internal/libutil"
	"github.com/nicferrier/nicrisp/lisp/lispjson"
)

// DefaultTestURL is the location fetched when httpget is given the url
// ``test''.
const DefaultTestURL = "https://jsonplaceholder.typicode.com/posts/1"

// DefaultTimeout bounds each request made by a Client created without
// WithClient or WithTimeout.
const DefaultTimeout = 30 * time.Second

// Option configures a Client.
type Option func(c *Client)

// WithClient makes requests with hc.  A nil hc is replaced with a client
// that has no timeout.
func WithClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout bounds the total time of each request, including reading the
// response body.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		var hc http.Client
		if c.http != nil {
			hc = *c.http
		}
		hc.Timeout = d
		c.http = &hc
	}
}

// WithTestURL changes the location fetched for the url ``test''.
func WithTestURL(url string) Option {
	return func(c *Client) {
		c.testURL = url
	}
}

// WithLogger makes the Client log requests to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client performs the requests made by the httpget builtin.
type Client struct {
	http    *http.Client
	testURL string
	logger  *slog.Logger
	rt      *lisp.Runtime
}

// NewClient returns a Client configured by opts.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: DefaultTimeout},
		testURL: DefaultTestURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	return c
}

// LoadPackage adds the http builtins to env.  When no logger option is given
// requests are logged through whatever logger the environment's runtime has
// at the time of the request.
func LoadPackage(env *lisp.LEnv, opts ...Option) error {
	c := NewClient(opts...)
	c.rt = env.Runtime
	return env.AddBuiltins(libutil.Defs(c.Builtins())...)
}

// Builtins returns the builtin functions which use c.
func (c *Client) Builtins() []*libutil.Builtin {
	return []*libutil.Builtin{
		libutil.Function("httpget", c.BuiltinGet),
	}
}

// BuiltinGet retrieves a url and returns the list (status url headers body).
// Header names are lower case and sorted.  The body is a document when the
// response is JSON and a string otherwise.
func (c *Client) BuiltinGet(args []*lisp.LVal) *lisp.LVal {
	if len(args) < 1 {
		return lisp.Errorf("pass a url")
	}
	url := args[0].Str
	if args[0].Type != lisp.LString {
		url = args[0].String()
	}
	if url == "test" {
		url = c.testURL
	}
	resp, err := c.get(url)
	if err != nil {
		return lisp.Error(err)
	}
	body := lisp.String(string(resp.body))
	if strings.HasPrefix(resp.header.Get("Content-Type"), "application/json") {
		body = lispjson.Load(resp.body)
		if body.Type == lisp.LError {
			return body
		}
	}
	return lisp.List([]*lisp.LVal{
		lisp.Number(float64(resp.status)),
		lisp.String(resp.url),
		headerList(resp.header),
		body,
	})
}

type response struct {
	status int
	url    string
	header http.Header
	body   []byte
}

func (c *Client) get(url string) (*response, error) {
	start := time.Now()
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if logger := c.log(); logger != nil {
		logger.Debug("http get",
			"url", url,
			"status", resp.StatusCode,
			"bytes", len(b),
			"duration", time.Since(start))
	}
	return &response{
		status: resp.StatusCode,
		url:    resp.Request.URL.String(),
		header: resp.Header,
		body:   b,
	}, nil
}

func (c *Client) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	if c.rt != nil {
		return c.rt.Logger
	}
	return nil
}

func headerList(h http.Header) *lisp.LVal {
	names := make([]string, 0, len(h))
	for k := range h {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	cells := make([]*lisp.LVal, len(names))
	for i, k := range names {
		cells[i] = lisp.List([]*lisp.LVal{
			lisp.String(strings.ToLower(k)),
			lisp.String(strings.Join(h[k], ", ")),
		})
	}
	return lisp.List(cells)
}
