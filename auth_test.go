package viddler

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	server, client := setup(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "viddler.users.auth", q.Get("method"))
		assert.Equal(t, "APIKEY", q.Get("api_key"))
		assert.Equal(t, "username", q.Get("user"))
		assert.Equal(t, "password", q.Get("password"))
		xmlResponse(w, `<auth><sessionid>SID123</sessionid></auth>`)
	}, WithCredentials("username", "password"))
	defer server.Close()

	assert.False(t, client.Authenticated())
	sid, err := client.Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SID123", sid)
	assert.True(t, client.Authenticated())
	assert.Equal(t, "SID123", client.SessionID())
}

func TestAuthenticateWithoutCredentials(t *testing.T) {
	client, err := New("APIKEY")
	require.NoError(t, err)
	_, err = client.Authenticate(context.Background())
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}

func TestAuthenticateAPIError(t *testing.T) {
	server, client := setup(func(w http.ResponseWriter, r *http.Request) {
		xmlResponse(w, `<error><code>101</code><description>Bad login</description></error>`)
	}, WithCredentials("username", "wrong"))
	defer server.Close()

	_, err := client.Authenticate(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "101", apiErr.Code)
	assert.False(t, client.Authenticated())
}

func TestSessionOpenedOnce(t *testing.T) {
	var auths int32
	server, client := setup(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("method") {
		case "viddler.users.auth":
			atomic.AddInt32(&auths, 1)
			xmlResponse(w, `<auth><sessionid>SID</sessionid></auth>`)
		case "viddler.videos.getRecordToken":
			assert.Equal(t, "SID", r.URL.Query().Get("sessionid"))
			xmlResponse(w, `<record_token>TOKEN</record_token>`)
		default:
			t.Errorf("Unexpected request: %s", r.URL)
		}
	}, WithCredentials("username", "password"))
	defer server.Close()

	for i := 0; i < 2; i++ {
		token, err := client.GetRecordToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "TOKEN", token)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&auths))
}
