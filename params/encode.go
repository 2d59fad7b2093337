package params

import (
	"net/http"
	"strings"
)

// FormContentType is the Content-Type of query-encoded requests.
const FormContentType = "application/x-www-form-urlencoded"

// Encoded is a parameter set rendered for the wire.
type Encoded struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Multipart reports whether the body is multipart/form-data.
func (e *Encoded) Multipart() bool {
	return strings.HasPrefix(e.Header.Get("Content-Type"), "multipart/")
}

// Encode renders v for a request to baseURL.
//
// Without files, GET requests carry v as the query string and POST requests
// carry it as an urlencoded body. With at least one file the request is
// always a multipart/form-data POST; boundary supplies its delimiter token
// (NewBoundary when nil).
func Encode(method, baseURL string, v Values, boundary func() string) (*Encoded, error) {
	e := &Encoded{
		Method: method,
		URL:    baseURL,
		Header: make(http.Header),
	}
	e.Header.Set("Content-Type", FormContentType)

	if v.HasFiles() {
		if boundary == nil {
			boundary = NewBoundary
		}
		mp, err := EncodeMultipart(v, boundary())
		if err != nil {
			return nil, err
		}
		e.Method = http.MethodPost
		e.Header.Set("Content-Type", mp.ContentType)
		e.Body = mp.Body
		return e, nil
	}

	if method == http.MethodPost {
		e.Body = []byte(v.Encode())
		return e, nil
	}

	if q := v.Encode(); q != "" {
		e.URL = baseURL + "?" + q
	}
	return e, nil
}
