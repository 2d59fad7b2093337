package viddler

import (
	"strconv"
	"strings"
	"time"

	"github.com/antonholmquist/jason"
)

// Comment is a comment on a video.
type Comment struct {
	Author string
	Text   string
	Time   time.Time
}

// NewComment reads a Comment from a <comment> node.
func NewComment(o *jason.Object) *Comment {
	return &Comment{
		Author: getString(o, "author"),
		Text:   getString(o, "text"),
		Time:   unixMillis(getString(o, "time")),
	}
}

// unixMillis parses the API's timestamps, which are Unix times in
// milliseconds. Unparseable values give the zero time.
func unixMillis(s string) time.Time {
	ms, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
