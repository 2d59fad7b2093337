package params

import (
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadValues() Values {
	var v Values
	v.Set("title", "T")
	v.Set("description", "D")
	v.SetFile("file", NewFile("/movies/movie.mov", strings.NewReader("MOVIEDATA")))
	v.Set("tags", "x")
	v.Set("make_public", "1")
	return v
}

func TestEncodeMultipart_Body(t *testing.T) {
	var v Values
	v.Set("title", "T")
	v.SetFile("file", NewFile("f.mov", strings.NewReader("abc")))
	v.Set("make_public", "1")

	mp, err := EncodeMultipart(v, "BOUNDARY")
	require.NoError(t, err)

	want := "--BOUNDARY\r\n" +
		"Content-Disposition: form-data; name=\"title\"\r\n\r\n" +
		"T\r\n" +
		"--BOUNDARY\r\n" +
		"Content-Disposition: form-data; name=\"make_public\"\r\n\r\n" +
		"1\r\n" +
		"--BOUNDARY\r\n" +
		"Content-Disposition: form-data; name=\"file\"; filename=\"f.mov\"\r\n" +
		"Content-Transfer-Encoding: binary\r\n" +
		"Content-Type: video/quicktime\r\n\r\n" +
		"abc\r\n" +
		"--BOUNDARY--\r\n"
	assert.Equal(t, want, string(mp.Body))
	assert.Equal(t, "multipart/form-data; boundary=BOUNDARY", mp.ContentType)
}

func TestEncodeMultipart_TextPartsFirst(t *testing.T) {
	mp, err := EncodeMultipart(uploadValues(), NewBoundary())
	require.NoError(t, err)

	mediaType, mparams, err := mime.ParseMediaType(mp.ContentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	r := multipart.NewReader(strings.NewReader(string(mp.Body)), mparams["boundary"])
	var names []string
	for {
		part, err := r.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, part.FormName())
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		if part.FormName() == "file" {
			assert.Equal(t, "movie.mov", part.FileName())
			assert.Equal(t, "video/quicktime", part.Header.Get("Content-Type"))
			assert.Equal(t, "binary", part.Header.Get("Content-Transfer-Encoding"))
			assert.Equal(t, "MOVIEDATA", string(data))
		}
	}
	assert.Equal(t, []string{"title", "description", "tags", "make_public", "file"}, names)
	assert.True(t, strings.HasSuffix(string(mp.Body), "--"+mparams["boundary"]+"--\r\n"))
}

func TestEncodeMultipart_UnknownExtension(t *testing.T) {
	var v Values
	v.SetFile("file", NewFile("blob", strings.NewReader("x")))
	mp, err := EncodeMultipart(v, "b")
	require.NoError(t, err)
	assert.Contains(t, string(mp.Body), "Content-Type: application/octet-stream\r\n")
}

func TestEncodeMultipart_BadBoundary(t *testing.T) {
	_, err := EncodeMultipart(uploadValues(), "")
	assert.Error(t, err)
}

func TestNewBoundary(t *testing.T) {
	a, b := NewBoundary(), NewBoundary()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestEncode(t *testing.T) {
	t.Run("get without files", func(t *testing.T) {
		e, err := Encode(http.MethodGet, "http://api.example/rest/", New("method", "viddler.videos.getFeatured", "api_key", "k"), nil)
		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, e.Method)
		assert.Equal(t, "http://api.example/rest/?method=viddler.videos.getFeatured&api_key=k", e.URL)
		assert.Nil(t, e.Body)
		assert.Equal(t, FormContentType, e.Header.Get("Content-Type"))
		assert.False(t, e.Multipart())
	})

	t.Run("post without files", func(t *testing.T) {
		e, err := Encode(http.MethodPost, "http://api.example/rest/", New("a", "1", "b", "2"), nil)
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, e.Method)
		assert.Equal(t, "http://api.example/rest/", e.URL)
		assert.Equal(t, "a=1&b=2", string(e.Body))
		assert.Equal(t, FormContentType, e.Header.Get("Content-Type"))
	})

	t.Run("files force multipart post", func(t *testing.T) {
		e, err := Encode(http.MethodGet, "http://api.example/rest/", uploadValues(), func() string { return "fixed" })
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, e.Method)
		assert.Equal(t, "http://api.example/rest/", e.URL)
		assert.True(t, e.Multipart())
		assert.Equal(t, "multipart/form-data; boundary=fixed", e.Header.Get("Content-Type"))
		assert.True(t, strings.HasPrefix(string(e.Body), "--fixed\r\n"))
	})
}
