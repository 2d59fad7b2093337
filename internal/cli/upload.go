package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-viddler/viddler/params"
)

var (
	uploadTitle       string
	uploadDescription string
	uploadTags        string
	uploadPublic      bool
)

// uploadCmd uploads a video file
var uploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a video",
	Long:  `Upload a video file. Credentials must be configured (auth.username and auth.password).`,
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadTitle, "title", "", "video title")
	uploadCmd.Flags().StringVar(&uploadDescription, "description", "", "video description")
	uploadCmd.Flags().StringVar(&uploadTags, "tags", "", "comma separated tags")
	uploadCmd.Flags().BoolVar(&uploadPublic, "public", true, "make the video public")
	_ = uploadCmd.MarkFlagRequired("title")
}

func runUpload(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	var attrs params.Values
	attrs.Set("title", uploadTitle)
	attrs.Set("description", uploadDescription)
	attrs.Set("tags", uploadTags)
	if err := attrs.SetValue("make_public", uploadPublic); err != nil {
		return err
	}
	attrs.SetFile("file", params.NewFile(args[0], f))

	logger.Info().Str("file", args[0]).Str("title", uploadTitle).Msg("Uploading video")

	video, err := client.UploadVideo(cmd.Context(), attrs)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Uploaded:")
	printVideo(w, video, true)
	return nil
}
