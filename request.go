package viddler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-viddler/viddler/params"
)

// request is a single pending API call. It is built, configured and
// encoded once, executed once and then dropped.
type request struct {
	verb     string
	endpoint string
	params   params.Values
	header   http.Header
	url      string
	body     []byte
}

func newRequest(verb, endpoint string) *request {
	r := &request{
		verb:     strings.ToUpper(verb),
		endpoint: methodName(endpoint),
		header:   make(http.Header),
	}
	r.params.Set("method", r.endpoint)
	return r
}

// multipart reports whether the request carries a file.
func (r *request) multipart() bool {
	return r.params.HasFiles()
}

// encode fills url, body and header from params. A request with a file is
// sent as a multipart POST whatever verb it was created with.
func (r *request) encode(baseURL string, boundary func() string) error {
	if r.verb != http.MethodGet && r.verb != http.MethodPost {
		return fmt.Errorf("viddler: unsupported HTTP method %q", r.verb)
	}

	enc, err := params.Encode(r.verb, baseURL, r.params, boundary)
	if err != nil {
		return fmt.Errorf("viddler: encoding %s: %w", r.endpoint, err)
	}

	r.verb = enc.Method
	r.url = enc.URL
	r.body = enc.Body
	for k, vs := range enc.Header {
		r.header[k] = vs
	}
	return nil
}
