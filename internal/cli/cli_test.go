package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-viddler/viddler/config"
)

func fakeAPI(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(server.Close)

	t.Setenv("VIDDLER_API_URL", server.URL+"/rest/v1/")
	t.Setenv("VIDDLER_API_KEY", "KEY")
	t.Setenv("VIDDLER_LOG_LEVEL", "error")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseAttributes(t *testing.T) {
	attrs, err := parseAttributes([]string{"video_id=abc", "title=a=b", "empty="})
	require.NoError(t, err)
	assert.Equal(t, []string{"video_id", "title", "empty"}, attrs.Keys())
	assert.Equal(t, "a=b", attrs.Get("title"))
	assert.Equal(t, "", attrs.Get("empty"))

	_, err = parseAttributes([]string{"novalue"})
	assert.Error(t, err)
	_, err = parseAttributes([]string{"=x"})
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	setupLogger(config.LoggingConfig{Level: "warn", Format: "json"})
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	setupLogger(config.LoggingConfig{Level: "bogus", Format: "console"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestNewClient(t *testing.T) {
	cfg := &config.Config{
		API:  config.APIConfig{URL: "http://example.com/rest/v1/", Key: "KEY"},
		Auth: config.AuthConfig{Username: "u", Password: "p"},
		HTTP: config.HTTPConfig{UserAgent: "test-agent"},
	}
	c, err := newClient(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "test-agent", c.UserAgent)
	assert.False(t, c.Authenticated())
}

func TestCallCommand(t *testing.T) {
	fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "method=viddler.videos.getDetails&api_key=KEY&video_id=abc", r.URL.RawQuery)
		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><video><id>abc</id><title>Hi</title></video>`))
	})

	out, err := execute(t, "--env", "call", "videos.getDetails", "video_id=abc")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Hi"`)
	assert.Contains(t, out, `"id": "abc"`)
}

func TestVideosCommandFilter(t *testing.T) {
	fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "viddler.videos.getByTag", r.URL.Query().Get("method"))
		assert.Equal(t, "soap", r.URL.Query().Get("tag"))
		w.Write([]byte(`<video_list>
			<video><id>1</id><title>Popular</title><view_count>500</view_count></video>
			<video><id>2</id><title>Quiet</title><view_count>3</view_count></video>
		</video_list>`))
	})

	out, err := execute(t, "--env", "videos", "--tag", "soap", "--filter", "Video.ViewCount > 10")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 videos:")
	assert.Contains(t, out, "Popular [1]")
	assert.NotContains(t, out, "Quiet")
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3", "today")
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "viddler 1.2.3 (built today)\n", out)
}
