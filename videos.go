package viddler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/antonholmquist/jason"

	"github.com/go-viddler/viddler/params"
)

// MaxPerPage is the largest page size the API serves.
const MaxPerPage = 100

// ListOptions selects a page of a video listing. Zero values mean page 1
// and 20 videos per page; PerPage is capped at MaxPerPage.
type ListOptions struct {
	Page    int
	PerPage int
}

func (o ListOptions) values() params.Values {
	page, perPage := o.Page, o.PerPage
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return params.New("page", strconv.Itoa(page), "per_page", strconv.Itoa(perPage))
}

// GetRecordToken returns a token for recording a video with a webcam
// (viddler.videos.getRecordToken). It requires a session.
func (c *Client) GetRecordToken(ctx context.Context) (string, error) {
	if err := c.requireSession(ctx); err != nil {
		return "", fmt.Errorf("viddler: get record token: %w", err)
	}
	resp, err := c.send(ctx, http.MethodGet, "videos.getRecordToken", params.Values{}, params.Values{})
	if err != nil {
		return "", fmt.Errorf("viddler: get record token: %w", err)
	}
	token := getString(resp, "record_token")
	if token == "" {
		return "", fmt.Errorf("viddler: get record token: no record_token in response")
	}
	return token, nil
}

// UploadVideo uploads a video (viddler.videos.upload). attrs must hold
// title, description, tags, make_public ("1" or "0") and the video itself
// as a params.File under "file". It requires a session.
//
//	var attrs params.Values
//	attrs.Set("title", "Great Title")
//	attrs.Set("description", "...")
//	attrs.Set("tags", "one,two")
//	attrs.Set("make_public", "1")
//	attrs.SetFile("file", params.NewFile("movie.mov", f))
//	video, err := c.UploadVideo(ctx, attrs)
func (c *Client) UploadVideo(ctx context.Context, attrs params.Values) (*Video, error) {
	if err := c.registry.Validate("videos.upload", attrs); err != nil {
		return nil, err
	}
	if err := c.requireSession(ctx); err != nil {
		return nil, fmt.Errorf("viddler: upload video: %w", err)
	}
	resp, err := c.send(ctx, http.MethodPost, "videos.upload", attrs, params.Values{})
	if err != nil {
		return nil, fmt.Errorf("viddler: upload video: %w", err)
	}
	return videoFrom(resp, "upload video")
}

// GetVideoStatus returns the processing status of a video
// (viddler.videos.getStatus). The content of the status node is internal to
// Viddler and returned as is.
func (c *Client) GetVideoStatus(ctx context.Context, videoID string) (*jason.Object, error) {
	resp, err := c.send(ctx, http.MethodGet, "videos.getStatus", params.Values{}, params.New("video_id", videoID))
	if err != nil {
		return nil, fmt.Errorf("viddler: get video status: %w", err)
	}
	status, err := resp.GetObject("video_status")
	if err != nil {
		return nil, fmt.Errorf("viddler: get video status: no video_status in response")
	}
	return status, nil
}

// FindVideoByID returns the details of a video (viddler.videos.getDetails).
// A session is used when credentials are available.
func (c *Client) FindVideoByID(ctx context.Context, videoID string) (*Video, error) {
	if err := c.optionalSession(ctx); err != nil {
		return nil, fmt.Errorf("viddler: find video: %w", err)
	}
	resp, err := c.send(ctx, http.MethodGet, "videos.getDetails", params.Values{}, params.New("video_id", videoID))
	if err != nil {
		return nil, fmt.Errorf("viddler: find video %s: %w", videoID, err)
	}
	return videoFrom(resp, "find video")
}

// FindVideoByURL returns the details of the video at a viddler.com url
// (viddler.videos.getDetailsByUrl). A session is used when credentials are
// available.
func (c *Client) FindVideoByURL(ctx context.Context, videoURL string) (*Video, error) {
	if err := c.optionalSession(ctx); err != nil {
		return nil, fmt.Errorf("viddler: find video: %w", err)
	}
	resp, err := c.send(ctx, http.MethodGet, "videos.getDetailsByUrl", params.Values{}, params.New("url", videoURL))
	if err != nil {
		return nil, fmt.Errorf("viddler: find video by url: %w", err)
	}
	return videoFrom(resp, "find video by url")
}

// UpdateVideo changes the details of a video (viddler.videos.setDetails).
// See DefaultRegistry for the accepted attributes. It requires a session.
func (c *Client) UpdateVideo(ctx context.Context, videoID string, attrs params.Values) (*Video, error) {
	if err := c.registry.Validate("videos.setDetails", attrs); err != nil {
		return nil, err
	}
	if err := c.requireSession(ctx); err != nil {
		return nil, fmt.Errorf("viddler: update video: %w", err)
	}
	resp, err := c.send(ctx, http.MethodGet, "videos.setDetails", attrs, params.New("video_id", videoID))
	if err != nil {
		return nil, fmt.Errorf("viddler: update video %s: %w", videoID, err)
	}
	return videoFrom(resp, "update video")
}

// FindAllVideosByUser lists a user's videos (viddler.videos.getByUser).
// A session is used when credentials are available.
func (c *Client) FindAllVideosByUser(ctx context.Context, username string, opts ListOptions) ([]*Video, error) {
	if err := c.optionalSession(ctx); err != nil {
		return nil, fmt.Errorf("viddler: videos by user: %w", err)
	}
	return c.listVideos(ctx, "videos.getByUser", params.New("user", username), opts)
}

// FindAllVideosByTag lists videos with a tag (viddler.videos.getByTag).
func (c *Client) FindAllVideosByTag(ctx context.Context, tag string, opts ListOptions) ([]*Video, error) {
	return c.listVideos(ctx, "videos.getByTag", params.New("tag", tag), opts)
}

// FindAllFeaturedVideos lists the featured videos (viddler.videos.getFeatured).
func (c *Client) FindAllFeaturedVideos(ctx context.Context) ([]*Video, error) {
	resp, err := c.send(ctx, http.MethodGet, "videos.getFeatured", params.Values{}, params.Values{})
	if err != nil {
		return nil, fmt.Errorf("viddler: videos.getFeatured: %w", err)
	}
	return videoList(resp), nil
}

// listVideos validates attrs and the paging options together and fetches
// one page of endpoint.
func (c *Client) listVideos(ctx context.Context, endpoint string, attrs params.Values, opts ListOptions) ([]*Video, error) {
	attrs.Merge(opts.values())
	if err := c.registry.Validate(endpoint, attrs); err != nil {
		return nil, err
	}
	resp, err := c.send(ctx, http.MethodGet, endpoint, attrs, params.Values{})
	if err != nil {
		return nil, fmt.Errorf("viddler: %s: %w", endpoint, err)
	}
	return videoList(resp), nil
}

// videoList reads the videos of a <video_list> response. Empty entries are
// skipped.
func videoList(resp *jason.Object) []*Video {
	nodes := getObjects(resp, "video_list", "video")
	videos := make([]*Video, 0, len(nodes))
	for _, n := range nodes {
		videos = append(videos, NewVideo(n))
	}
	return videos
}

func videoFrom(resp *jason.Object, op string) (*Video, error) {
	node, err := resp.GetObject("video")
	if err != nil {
		return nil, fmt.Errorf("viddler: %s: no video in response", op)
	}
	return NewVideo(node), nil
}
