package viddler

import (
	"strings"
	"time"

	"github.com/antonholmquist/jason"
)

// Video holds the details of a video.
type Video struct {
	ID            string
	URL           string
	Title         string
	Description   string
	Tags          []string
	ThumbnailURL  string
	Author        string
	LengthSeconds int
	ViewCount     int
	CommentCount  int
	UploadTime    time.Time
	Width         int
	Height        int
	// Permissions is the raw permissions node (view, embed, ...), if any.
	Permissions *jason.Object
	Comments    []Comment
}

// NewVideo reads a Video from a <video> node.
func NewVideo(o *jason.Object) *Video {
	v := &Video{
		ID:            getString(o, "id"),
		URL:           getString(o, "url"),
		Title:         getString(o, "title"),
		Description:   getString(o, "description"),
		Tags:          videoTags(o),
		ThumbnailURL:  getString(o, "thumbnail_url"),
		Author:        getString(o, "author"),
		LengthSeconds: getInt(o, "length_seconds"),
		ViewCount:     getInt(o, "view_count"),
		CommentCount:  getInt(o, "comment_count"),
		UploadTime:    unixMillis(getString(o, "upload_time")),
		Width:         getInt(o, "width"),
		Height:        getInt(o, "height"),
	}
	if o != nil {
		if p, err := o.GetObject("permissions"); err == nil {
			v.Permissions = p
		}
	}
	for _, c := range getObjects(o, "comment_list", "comment") {
		v.Comments = append(v.Comments, *NewComment(c))
	}
	return v
}

// SecretURL returns the secret url token of the view permission, if set.
func (v *Video) SecretURL() string {
	return getString(v.Permissions, "view", "secreturl")
}

// videoTags reads tags given either as a comma separated list or as
// <tags><global>a</global><global>b</global></tags>.
func videoTags(o *jason.Object) []string {
	if o == nil {
		return nil
	}
	if s, err := o.GetString("tags"); err == nil {
		return splitList(s)
	}
	v, err := o.GetValue("tags", "global")
	if err != nil {
		return nil
	}
	if s, err := v.String(); err == nil {
		return splitList(s)
	}
	arr, err := v.Array()
	if err != nil {
		return nil
	}
	var tags []string
	for _, item := range arr {
		if s, err := item.String(); err == nil && strings.TrimSpace(s) != "" {
			tags = append(tags, strings.TrimSpace(s))
		}
	}
	return tags
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
