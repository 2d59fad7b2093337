package viddler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponseEmpty(t *testing.T) {
	for _, body := range []string{"", " ", "\n\t \r\n"} {
		_, err := parseResponse([]byte(body))
		assert.ErrorIs(t, err, ErrEmptyResponse, "body %q", body)
	}
}

func TestParseResponseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "child elements",
			body: `<error><code>42</code><description>Bad</description><details>oops</details></error>`,
			want: "Bad: oops; [code: 42]",
		},
		{
			name: "attributes",
			body: `<error code="42" description="Bad" details="oops"/>`,
			want: "Bad: oops; [code: 42]",
		},
		{
			name: "description only",
			body: `<error><description>Bad</description></error>`,
			want: "Bad",
		},
		{
			name: "empty details",
			body: `<error><description>Bad</description><details/><code>3</code></error>`,
			want: "Bad [code: 3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := parseResponse([]byte(tt.body))
			assert.Nil(t, resp)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Error())
		})
	}
}

func TestParseResponseTree(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<video_list page="1" per_page="2">
  <video>
    <id>a</id>
    <title>First</title>
  </video>
  <video id="b">
    <title>Second</title>
  </video>
</video_list>`

	resp, err := parseResponse([]byte(body))
	require.NoError(t, err)

	page, err := resp.GetString("video_list", "page")
	require.NoError(t, err)
	assert.Equal(t, "1", page)

	videos, err := resp.GetObjectArray("video_list", "video")
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "a", getString(videos[0], "id"))
	assert.Equal(t, "b", getString(videos[1], "id"))
	assert.Equal(t, "Second", getString(videos[1], "title"))
}

func TestParseResponseTextWithAttributes(t *testing.T) {
	resp, err := parseResponse([]byte(`<auth><sessionid type="string">abc</sessionid></auth>`))
	require.NoError(t, err)
	assert.Equal(t, "abc", getString(resp, "auth", "sessionid", textKey))
	assert.Equal(t, "string", getString(resp, "auth", "sessionid", "type"))
}

func TestParseResponseElementWinsOverAttribute(t *testing.T) {
	resp, err := parseResponse([]byte(`<video title="attr"><title>element</title></video>`))
	require.NoError(t, err)
	assert.Equal(t, "element", getString(resp, "video", "title"))
}

func TestParseResponseMalformed(t *testing.T) {
	_, err := parseResponse([]byte(`<video><title>T</video>`))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotErrorIs(t, err, ErrEmptyResponse)
}
