package viddler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/antonholmquist/jason"
	"github.com/rs/zerolog"

	"github.com/go-viddler/viddler/params"
)

const (
	// DefaultBaseURL is the root of the Viddler REST API.
	DefaultBaseURL = "http://api.viddler.com/rest/v1/"

	// If you modify this package, please change the user agent.
	DefaultUserAgent = "go-viddler (https://github.com/go-viddler/viddler)"
)

// Client talks to the Viddler API. It is safe for concurrent use; each
// call builds and owns its own request.
type Client struct {
	httpc    *http.Client
	apiURL   *url.URL
	apiKey   string
	registry *Registry
	boundary func() string
	logger   zerolog.Logger

	// UserAgent is sent with every request.
	UserAgent string

	mu                 sync.RWMutex
	username, password string
	sessionID          string
}

// New returns an initialized Client for the given API key. An error is
// returned if the base URL set with WithBaseURL is not a valid URL.
func New(apiKey string, opts ...Option) (*Client, error) {
	o := clientOptions{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		logger:    zerolog.Nop(),
		boundary:  params.NewBoundary,
	}
	for _, opt := range opts {
		opt(&o)
	}

	apiURL, err := url.Parse(o.baseURL)
	if err != nil {
		return nil, fmt.Errorf("viddler: invalid base URL: %w", err)
	}

	httpc := o.httpClient
	if httpc == nil {
		httpc = &http.Client{}
	}
	if o.timeout > 0 {
		// Leave the caller's client alone.
		hc := *httpc
		hc.Timeout = o.timeout
		httpc = &hc
	}

	registry := o.registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	return &Client{
		httpc:     httpc,
		apiURL:    apiURL,
		apiKey:    apiKey,
		registry:  registry,
		boundary:  o.boundary,
		logger:    o.logger,
		UserAgent: o.userAgent,
		username:  o.username,
		password:  o.password,
	}, nil
}

// Registry returns the registry used to validate attributes.
func (c *Client) Registry() *Registry {
	return c.registry
}

// Run makes one request to the API method named by endpoint ("videos.upload"
// or "viddler.videos.upload"). configure, if not nil, is called with the
// request's parameters, already holding the method name, right before the
// request is encoded.
//
// Requests carrying a params.File are sent as multipart/form-data POSTs;
// other requests use verb (http.MethodGet or http.MethodPost).
//
// Errors from the HTTP client are returned as they are. Otherwise the
// error is ErrEmptyResponse, a *ParseError or an *APIError.
func (c *Client) Run(ctx context.Context, verb, endpoint string, configure func(p *params.Values)) (*jason.Object, error) {
	req := newRequest(verb, endpoint)
	if configure != nil {
		configure(&req.params)
	}
	return c.do(ctx, req)
}

// Get makes a GET request with the given parameters.
func (c *Client) Get(ctx context.Context, endpoint string, p params.Values) (*jason.Object, error) {
	return c.Run(ctx, http.MethodGet, endpoint, func(v *params.Values) { v.Merge(p) })
}

// Post makes a POST request with the given parameters.
func (c *Client) Post(ctx context.Context, endpoint string, p params.Values) (*jason.Object, error) {
	return c.Run(ctx, http.MethodPost, endpoint, func(v *params.Values) { v.Merge(p) })
}

// Call validates attrs against the endpoint's spec and, if they pass,
// makes the request with the API key, the session id (when there is one)
// and attrs. Validation errors are returned before any network access.
func (c *Client) Call(ctx context.Context, verb, endpoint string, attrs params.Values) (*jason.Object, error) {
	if err := c.registry.Validate(endpoint, attrs); err != nil {
		return nil, err
	}
	return c.send(ctx, verb, endpoint, attrs, params.Values{})
}

// send runs endpoint with the API key, the session id if any, then fixed
// and attrs, in that order. attrs are not validated.
func (c *Client) send(ctx context.Context, verb, endpoint string, attrs, fixed params.Values) (*jason.Object, error) {
	return c.Run(ctx, verb, endpoint, func(p *params.Values) {
		p.Set("api_key", c.apiKey)
		if sid := c.SessionID(); sid != "" {
			p.Set("sessionid", sid)
		}
		p.Merge(fixed)
		p.Merge(attrs)
	})
}

// do encodes and sends req and parses the response.
func (c *Client) do(ctx context.Context, req *request) (*jason.Object, error) {
	if err := req.encode(c.apiURL.String(), c.boundary); err != nil {
		return nil, err
	}

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.verb, req.url, body)
	if err != nil {
		return nil, fmt.Errorf("viddler: unable to make request: %w", err)
	}

	for k, vs := range req.header {
		httpReq.Header[k] = vs
	}
	httpReq.Header.Set("Accept", "application/xml")
	httpReq.Header.Set("User-Agent", c.UserAgent)

	c.logger.Debug().
		Str("http_method", req.verb).
		Str("method", req.endpoint).
		Str("url", c.apiURL.String()).
		Bool("multipart", req.multipart()).
		Int("body_bytes", len(req.body)).
		Msg("Sending Viddler API request")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("method", req.endpoint).
		Int("status", resp.StatusCode).
		Int("bytes", len(raw)).
		Msg("Received Viddler API response")

	return parseResponse(raw)
}
