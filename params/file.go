package params

import (
	"io"
	"mime"
	"path/filepath"
	"strings"
)

// DefaultContentType is used for file parts whose media type is unknown.
const DefaultContentType = "application/octet-stream"

// File is a binary payload sent as a multipart file part.
type File struct {
	// Name is the file name; only its base name is sent.
	Name string
	// Content is read in full when the request is encoded.
	Content io.Reader
	// ContentType overrides the media type looked up from Name.
	ContentType string
}

// NewFile returns a File reading from r.
func NewFile(name string, r io.Reader) File {
	return File{Name: name, Content: r}
}

// BaseName returns the name sent in the part's Content-Disposition.
func (f File) BaseName() string {
	return filepath.Base(filepath.ToSlash(f.Name))
}

// MediaType returns the declared content type, or the one matching the
// file name's extension.
func (f File) MediaType() string {
	if f.ContentType != "" {
		return f.ContentType
	}
	return TypeByFilename(f.Name)
}

// mediaTypes covers the formats the upload endpoint accepts. It is
// consulted before the system table so results don't depend on the host.
var mediaTypes = map[string]string{
	".3gp":  "video/3gpp",
	".asf":  "video/x-ms-asf",
	".avi":  "video/x-msvideo",
	".dv":   "video/x-dv",
	".flv":  "video/x-flv",
	".gif":  "image/gif",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".m4v":  "video/x-m4v",
	".mkv":  "video/x-matroska",
	".mov":  "video/quicktime",
	".mp3":  "audio/mpeg",
	".mp4":  "video/mp4",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".ogv":  "video/ogg",
	".png":  "image/png",
	".qt":   "video/quicktime",
	".txt":  "text/plain",
	".vob":  "video/mpeg",
	".webm": "video/webm",
	".wmv":  "video/x-ms-wmv",
	".xml":  "application/xml",
}

// TypeByFilename returns the media type for name's extension, or
// DefaultContentType when there is no match.
func TypeByFilename(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return DefaultContentType
	}
	if t, ok := mediaTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return DefaultContentType
}
