package params

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/google/uuid"
)

// Multipart is a fully encoded multipart/form-data body.
type Multipart struct {
	ContentType string
	Body        []byte
}

// NewBoundary returns a random boundary token.
func NewBoundary() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// EncodeMultipart packs v into a multipart/form-data body delimited by
// boundary. All string values are written first, then all files, each
// group in insertion order. File contents are read in full.
func EncodeMultipart(v Values, boundary string) (*Multipart, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.SetBoundary(boundary); err != nil {
		return nil, fmt.Errorf("params: invalid boundary %q: %w", boundary, err)
	}

	for _, p := range v.pairs {
		if p.file != nil {
			continue
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"`, escapeQuotes(p.key)))
		part, err := mw.CreatePart(h)
		if err != nil {
			return nil, err
		}
		if _, err := io.WriteString(part, p.value); err != nil {
			return nil, err
		}
	}

	for _, p := range v.pairs {
		if p.file == nil {
			continue
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(p.key), escapeQuotes(p.file.BaseName())))
		h.Set("Content-Transfer-Encoding", "binary")
		h.Set("Content-Type", p.file.MediaType())
		part, err := mw.CreatePart(h)
		if err != nil {
			return nil, err
		}
		if p.file.Content == nil {
			continue
		}
		if _, err := io.Copy(part, p.file.Content); err != nil {
			return nil, fmt.Errorf("params: reading %s: %w", p.file.Name, err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}

	return &Multipart{
		ContentType: mw.FormDataContentType(),
		Body:        buf.Bytes(),
	}, nil
}
