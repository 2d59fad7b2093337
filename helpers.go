package viddler

import (
	"strconv"
	"strings"

	"github.com/antonholmquist/jason"
)

// Namespace prefixes every API method name.
const Namespace = "viddler."

// methodName returns the full API method name for endpoint, adding the
// namespace when it is missing: "videos.upload" -> "viddler.videos.upload".
func methodName(endpoint string) string {
	if strings.HasPrefix(endpoint, Namespace) {
		return endpoint
	}
	return Namespace + endpoint
}

// shortName strips the namespace: "viddler.videos.upload" -> "videos.upload".
func shortName(endpoint string) string {
	return strings.TrimPrefix(endpoint, Namespace)
}

// getString returns the string at keys, or "" when absent.
func getString(o *jason.Object, keys ...string) string {
	if o == nil {
		return ""
	}
	s, err := o.GetString(keys...)
	if err != nil {
		return ""
	}
	return s
}

// getInt returns the integer at keys, or 0. XML values arrive as strings.
func getInt(o *jason.Object, keys ...string) int {
	n, err := strconv.Atoi(strings.TrimSpace(getString(o, keys...)))
	if err != nil {
		return 0
	}
	return n
}

// getObjects returns the objects at keys. XML has no arrays, so a single
// child arrives as an object and several as an array; both are accepted.
func getObjects(o *jason.Object, keys ...string) []*jason.Object {
	if o == nil {
		return nil
	}
	v, err := o.GetValue(keys...)
	if err != nil {
		return nil
	}
	if obj, err := v.Object(); err == nil {
		return []*jason.Object{obj}
	}
	arr, err := v.Array()
	if err != nil {
		return nil
	}
	objs := make([]*jason.Object, 0, len(arr))
	for _, item := range arr {
		if obj, err := item.Object(); err == nil {
			objs = append(objs, obj)
		}
	}
	return objs
}
