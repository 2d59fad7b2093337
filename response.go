package viddler

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/antonholmquist/jason"
	"github.com/clbanning/mxj/v2"
)

const (
	// mxj marks attributes with this prefix; it is folded away so that
	// attributes and child elements are addressed the same way.
	attrPrefix = "-"
	// textKey holds the text of an element that also has attributes.
	textKey = "#text"
)

// parseResponse turns a raw XML response body into a response tree, or
// into ErrEmptyResponse, a *ParseError or an *APIError.
func parseResponse(body []byte) (*jason.Object, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyResponse
	}

	m, err := mxj.NewMapXml(body)
	if err != nil {
		return nil, &ParseError{Body: body, Err: err}
	}
	tree := foldAttributes(map[string]interface{}(m)).(map[string]interface{})

	if node, ok := tree["error"]; ok {
		return nil, extractAPIError(node)
	}

	// The tree only holds strings, maps and slices, so this cannot fail
	// short of a bug in the folding above.
	js, err := json.Marshal(tree)
	if err != nil {
		return nil, &ParseError{Body: body, Err: err}
	}
	obj, err := jason.NewObjectFromBytes(js)
	if err != nil {
		return nil, &ParseError{Body: body, Err: err}
	}
	return obj, nil
}

// foldAttributes strips the attribute prefix from map keys throughout the
// tree. A child element wins over an attribute with the same name.
func foldAttributes(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, child := range x {
			if strings.HasPrefix(k, attrPrefix) {
				continue
			}
			out[k] = foldAttributes(child)
		}
		for k, child := range x {
			if !strings.HasPrefix(k, attrPrefix) {
				continue
			}
			name := strings.TrimPrefix(k, attrPrefix)
			if _, ok := out[name]; !ok {
				out[name] = foldAttributes(child)
			}
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, child := range x {
			out[i] = foldAttributes(child)
		}
		return out
	default:
		return v
	}
}
