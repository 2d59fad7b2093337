package viddler

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyResponse is returned when the API answered with an empty
	// body. The HTTP exchange itself succeeded.
	ErrEmptyResponse = errors.New("viddler: empty response")

	// ErrAuthenticationRequired is returned by methods that need a session
	// when the client has no username and password.
	ErrAuthenticationRequired = errors.New("viddler: method requires username and password")
)

// APIError is an error reported by the API in an <error> response.
type APIError struct {
	Description, Details, Code string
}

// Error formats the error as "description: details; [code: N]", leaving
// out the details and code segments when they are empty.
func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Description)
	if e.Details != "" {
		b.WriteString(": " + e.Details + ";")
	}
	if e.Code != "" {
		b.WriteString(" [code: " + e.Code + "]")
	}
	return b.String()
}

// ParseError is returned when a non-empty response body is not XML.
type ParseError struct {
	Body []byte
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("viddler: unable to parse response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingAttributeError is returned when a call lacks required attributes.
type MissingAttributeError struct {
	Endpoint string
	Keys     []string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("viddler: %s: missing required key(s): %s", e.Endpoint, strings.Join(e.Keys, ", "))
}

// UnknownAttributeError is returned when a call carries attributes the
// endpoint does not accept.
type UnknownAttributeError struct {
	Endpoint string
	Keys     []string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("viddler: %s: unknown key(s): %s", e.Endpoint, strings.Join(e.Keys, ", "))
}

// extractAPIError builds an *APIError from the value of a top-level
// <error> node. The fields may be child elements or attributes; both end
// up as keys of the node.
func extractAPIError(node interface{}) *APIError {
	apiErr := &APIError{}
	switch n := node.(type) {
	case map[string]interface{}:
		apiErr.Description = textOf(n["description"])
		apiErr.Details = textOf(n["details"])
		apiErr.Code = textOf(n["code"])
	case string:
		apiErr.Description = strings.TrimSpace(n)
	}
	return apiErr
}

// textOf returns the text content of a parsed XML value.
func textOf(v interface{}) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case map[string]interface{}:
		return textOf(x[textKey])
	case []interface{}:
		if len(x) > 0 {
			return textOf(x[0])
		}
	}
	return ""
}
