package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-viddler/viddler"
	"github.com/go-viddler/viddler/internal/filter"
	"github.com/go-viddler/viddler/params"
)

var (
	// video flags
	showEmbed   bool
	embedWidth  int
	embedHeight int

	// videos flags
	byUser     string
	byTag      string
	featured   bool
	page       int
	perPage    int
	allPages   bool
	filterExpr string
)

// videoCmd shows one video
var videoCmd = &cobra.Command{
	Use:   "video <id|url>",
	Short: "Show the details of a video",
	Args:  cobra.ExactArgs(1),
	RunE:  runVideo,
}

// videosCmd lists videos
var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "List videos by user, by tag or featured",
	Long: `List videos by user, by tag or the featured videos. The list can be
narrowed with an expression, for example:

  viddler videos --tag soap --filter 'Video.ViewCount > 100 && daysSince(Video.UploadTime) < 30'`,
	Args: cobra.NoArgs,
	RunE: runVideos,
}

func init() {
	videoCmd.Flags().BoolVar(&showEmbed, "embed", false, "print the embed code")
	videoCmd.Flags().IntVar(&embedWidth, "width", 0, "embed width (default 437)")
	videoCmd.Flags().IntVar(&embedHeight, "height", 0, "embed height (default 370)")

	videosCmd.Flags().StringVarP(&byUser, "user", "u", "", "list the videos of a user")
	videosCmd.Flags().StringVarP(&byTag, "tag", "t", "", "list the videos with a tag")
	videosCmd.Flags().BoolVar(&featured, "featured", false, "list the featured videos")
	videosCmd.Flags().IntVar(&page, "page", 1, "page to list")
	videosCmd.Flags().IntVar(&perPage, "per-page", 20, "videos per page (at most 100)")
	videosCmd.Flags().BoolVar(&allPages, "all", false, "list every page")
	videosCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	videosCmd.MarkFlagsMutuallyExclusive("user", "tag", "featured")
	videosCmd.MarkFlagsOneRequired("user", "tag", "featured")
}

func runVideo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		video *viddler.Video
		err   error
	)
	if strings.Contains(args[0], "://") {
		video, err = client.FindVideoByURL(ctx, args[0])
	} else {
		video, err = client.FindVideoByID(ctx, args[0])
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printVideo(w, video, true)
	if showEmbed {
		fmt.Fprintln(w)
		fmt.Fprintln(w, video.EmbedCode(viddler.EmbedOptions{Width: embedWidth, Height: embedHeight}))
	}
	return nil
}

func runVideos(cmd *cobra.Command, args []string) error {
	var f *filter.Filter
	if filterExpr != "" {
		var err error
		if f, err = filter.Compile(filterExpr); err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		logger.Info().Str("filter", f.String()).Msg("Filtering videos")
	}

	videos, err := fetchVideos(cmd.Context())
	if err != nil {
		return err
	}
	if f != nil {
		if videos, err = f.Apply(videos); err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	if len(videos) == 0 {
		fmt.Fprintln(w, "No videos found.")
		return nil
	}
	fmt.Fprintf(w, "Found %d videos:\n", len(videos))
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, v := range videos {
		printVideo(w, v, false)
	}
	return nil
}

func fetchVideos(ctx context.Context) ([]*viddler.Video, error) {
	if featured {
		return client.FindAllFeaturedVideos(ctx)
	}

	if allPages {
		var q *viddler.VideoQuery
		if byUser != "" {
			q = client.NewVideoQuery("videos.getByUser", params.New("user", byUser), perPage)
		} else {
			q = client.NewVideoQuery("videos.getByTag", params.New("tag", byTag), perPage)
		}
		var videos []*viddler.Video
		for q.Next(ctx) {
			logger.Debug().Int("page", q.Page()).Int("videos", len(q.Videos())).Msg("Fetched page")
			videos = append(videos, q.Videos()...)
		}
		return videos, q.Err()
	}

	opts := viddler.ListOptions{Page: page, PerPage: perPage}
	switch {
	case byUser != "":
		return client.FindAllVideosByUser(ctx, byUser, opts)
	case byTag != "":
		return client.FindAllVideosByTag(ctx, byTag, opts)
	}
	return nil, errors.New("one of --user, --tag or --featured is required")
}

func printVideo(w io.Writer, v *viddler.Video, details bool) {
	fmt.Fprintf(w, "• %s [%s] by %s", v.Title, v.ID, v.Author)
	if !v.UploadTime.IsZero() {
		fmt.Fprintf(w, " (%s)", v.UploadTime.Format("2006-01-02"))
	}
	fmt.Fprintln(w)
	if !details {
		return
	}
	if v.URL != "" {
		fmt.Fprintf(w, "  URL: %s\n", v.URL)
	}
	if len(v.Tags) > 0 {
		fmt.Fprintf(w, "  Tags: %s\n", strings.Join(v.Tags, ", "))
	}
	if v.Description != "" {
		fmt.Fprintf(w, "  Description: %s\n", v.Description)
	}
	fmt.Fprintf(w, "  Length: %ds  Views: %d  Comments: %d\n", v.LengthSeconds, v.ViewCount, v.CommentCount)
	if v.Width > 0 && v.Height > 0 {
		fmt.Fprintf(w, "  Size: %dx%d\n", v.Width, v.Height)
	}
}
