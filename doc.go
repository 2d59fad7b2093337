/*
Package viddler provides functionality for interacting with the Viddler
REST API (v1).

go-viddler is intended for users who are already familiar with (or are
willing to learn) the Viddler API. It is intended to make dealing with the
API more convenient, but not to hide it.

# Basic usage

	c, err := viddler.New("API_KEY", viddler.WithCredentials("user", "password"))
	if err != nil {
		panic(err) // Malformed base URL
	}

	videos, err := c.FindAllVideosByTag(ctx, "soap", viddler.ListOptions{PerPage: 10})
	if err != nil {
		panic(err)
	}

Methods needing a session (UploadVideo, UpdateProfile, ...) open one on
first use with the credentials given to New.

# Arbitrary calls

Run, Get, Post and Call make arbitrary requests. They take an API method
name, with or without the "viddler." prefix, and return the parsed XML
response as a *jason.Object whose first key is the root element:

	resp, err := c.Get(ctx, "videos.getFeatured", params.New("api_key", key))
	title, _ := resp.GetString("video_list", "video", "title")

Attributes become child keys: <video id="x"/> and <video><id>x</id></video>
read the same. Elements that repeat become arrays.

Run hands the request's parameters to a callback right before sending, so
that parameters shared by many calls can be attached in one place:

	resp, err := c.Run(ctx, http.MethodGet, "users.getProfile", func(p *params.Values) {
		p.Set("api_key", key)
		p.Set("user", "someone")
	})

Call checks its attributes against the Registry before sending anything.

# params.Values

params.Values is an ordered map of parameters. Values keep the order in
which they were set, and a value is either a string or a params.File. A
request with a File is sent as a multipart/form-data POST, with the text
fields first and the files last; other requests are query encoded.

# Error handling

Errors fall into four groups:

  - validation errors (*MissingAttributeError, *UnknownAttributeError),
    returned before any network access;
  - errors from the HTTP client, returned unchanged;
  - ErrEmptyResponse, when the API answered with an empty body;
  - *APIError, when the API answered with an <error> document.

Nothing is retried. Malformed XML is reported as a *ParseError.
*/
package viddler // import "github.com/go-viddler/viddler"
