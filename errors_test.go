package viddler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorMessage(t *testing.T) {
	var errtests = []struct {
		err  APIError
		want string
	}{
		{APIError{Description: "Bad", Details: "oops", Code: "42"}, "Bad: oops; [code: 42]"},
		{APIError{Description: "Bad"}, "Bad"},
		{APIError{Description: "Bad", Code: "42"}, "Bad [code: 42]"},
		{APIError{Description: "Bad", Details: "oops"}, "Bad: oops;"},
		{APIError{}, ""},
	}

	for i, tt := range errtests {
		if g := tt.err.Error(); g != tt.want {
			t.Errorf("(test:%d) Error() = %q, want %q", i, g, tt.want)
		}
	}
}

func TestExtractAPIError(t *testing.T) {
	node := map[string]interface{}{
		"description": "Bad",
		"details":     map[string]interface{}{textKey: " oops "},
		"code":        []interface{}{"42", "43"},
	}
	assert.Equal(t, &APIError{Description: "Bad", Details: "oops", Code: "42"}, extractAPIError(node))
	assert.Equal(t, &APIError{Description: "plain"}, extractAPIError(" plain "))
	assert.Equal(t, &APIError{}, extractAPIError(nil))
}

func TestValidationErrorMessages(t *testing.T) {
	err := error(&MissingAttributeError{Endpoint: "users.register", Keys: []string{"password", "lang"}})
	assert.Equal(t, "viddler: users.register: missing required key(s): password, lang", err.Error())

	err = &UnknownAttributeError{Endpoint: "videos.upload", Keys: []string{"bogus"}}
	assert.Equal(t, "viddler: videos.upload: unknown key(s): bogus", err.Error())
}

func TestParseErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &ParseError{Body: []byte("x"), Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "boom")
}
