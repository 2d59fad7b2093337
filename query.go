package viddler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-viddler/viddler/params"
)

// VideoQuery pages through a video listing (videos.getByUser,
// videos.getByTag).
//
// Call Next to retrieve the first page of results. If Next returns false,
// then either all results have been received or an error occurred; the
// error is available through the Err method. If Next returns true, the
// page is available through Videos and another call to Next retrieves the
// following page.
//
// The following example prints every video tagged "soap":
//	q := c.NewVideoQuery("videos.getByTag", params.New("tag", "soap"), 100)
//	for q.Next(ctx) {
//		for _, v := range q.Videos() {
//			fmt.Println(v.Title)
//		}
//	}
//	if q.Err() != nil {
//		// handle the error
//	}
type VideoQuery struct {
	c        *Client
	endpoint string
	params   params.Values
	page     int
	perPage  int
	videos   []*Video
	done     bool
	err      error
}

// NewVideoQuery instantiates a query against endpoint with the given
// parameters (e.g. user or tag) and page size, which is capped at
// MaxPerPage. The page and per_page parameters are managed by the query.
func (c *Client) NewVideoQuery(endpoint string, p params.Values, perPage int) *VideoQuery {
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	p = p.Clone()
	p.Del("page")
	p.Del("per_page")
	return &VideoQuery{
		c:        c,
		endpoint: endpoint,
		params:   p,
		perPage:  perPage,
	}
}

// Err returns the first error encountered by the Next method.
func (q *VideoQuery) Err() error {
	return q.err
}

// Videos returns the page retrieved by the last call to Next.
func (q *VideoQuery) Videos() []*Video {
	return q.videos
}

// Page returns the number of the page retrieved by the last call to Next.
func (q *VideoQuery) Page() int {
	return q.page
}

// Next retrieves the next page. A page shorter than the page size is the
// last one.
func (q *VideoQuery) Next(ctx context.Context) bool {
	if q.done || q.err != nil {
		return false
	}
	if q.page == 0 {
		if q.err = q.c.optionalSession(ctx); q.err != nil {
			return false
		}
	}

	q.page++
	resp, err := q.c.send(ctx, http.MethodGet, q.endpoint, params.New(
		"page", strconv.Itoa(q.page),
		"per_page", strconv.Itoa(q.perPage),
	), q.params)
	if err != nil {
		q.err = fmt.Errorf("viddler: %s page %d: %w", q.endpoint, q.page, err)
		return false
	}

	q.videos = videoList(resp)
	if len(q.videos) < q.perPage {
		q.done = true
	}
	return len(q.videos) > 0
}
