package viddler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	baseURL    string
	username   string
	password   string
	timeout    time.Duration
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
	registry   *Registry
	boundary   func() string
}

// WithBaseURL sets the REST endpoint root. Defaults to DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(o *clientOptions) {
		o.baseURL = u
	}
}

// WithCredentials sets the username and password used to open a session.
func WithCredentials(username, password string) Option {
	return func(o *clientOptions) {
		o.username = username
		o.password = password
	}
}

// WithTimeout sets the HTTP client timeout. Zero means no timeout; the
// context passed to each call still applies.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets the underlying HTTP client. With WithTimeout, a copy
// of it carrying the timeout is used instead and c is not modified.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = c
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithLogger sets the logger. Requests are logged at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithRegistry replaces the endpoint registry used to validate attributes.
func WithRegistry(r *Registry) Option {
	return func(o *clientOptions) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithBoundary sets the generator of multipart boundary tokens.
func WithBoundary(gen func() string) Option {
	return func(o *clientOptions) {
		o.boundary = gen
	}
}
