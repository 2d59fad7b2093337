package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/antonholmquist/jason"
	"github.com/spf13/cobra"

	"github.com/go-viddler/viddler/params"
)

var (
	callFiles []string
	callPost  bool
	callAuth  bool
)

// callCmd makes an arbitrary API call
var callCmd = &cobra.Command{
	Use:   "call <method> [key=value...]",
	Short: "Call an API method and print the response as JSON",
	Long: `Call an API method, e.g. "videos.getDetails video_id=abc123", and print
the parsed response as JSON. Attributes are checked against the method's
known attributes before anything is sent.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringArrayVar(&callFiles, "file", nil, "attach a file as key=path (forces a multipart POST)")
	callCmd.Flags().BoolVar(&callPost, "post", false, "send a POST request")
	callCmd.Flags().BoolVar(&callAuth, "auth", false, "open a session first")
}

func runCall(cmd *cobra.Command, args []string) error {
	attrs, err := parseAttributes(args[1:])
	if err != nil {
		return err
	}

	for _, spec := range callFiles {
		key, path, ok := strings.Cut(spec, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid --file %q, want key=path", spec)
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		attrs.SetFile(key, params.NewFile(path, f))
	}

	ctx := cmd.Context()
	if callAuth {
		if _, err := client.Authenticate(ctx); err != nil {
			return err
		}
	}

	verb := http.MethodGet
	if callPost {
		verb = http.MethodPost
	}

	logger.Debug().Str("method", args[0]).Str("params", attrs.String()).Msg("Calling API method")

	resp, err := client.Call(ctx, verb, args[0], attrs)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), resp)
}

// parseAttributes reads key=value arguments in order.
func parseAttributes(args []string) (params.Values, error) {
	var attrs params.Values
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return params.Values{}, fmt.Errorf("invalid attribute %q, want key=value", arg)
		}
		attrs.Set(key, value)
	}
	return attrs, nil
}

func printJSON(w io.Writer, o *jason.Object) error {
	raw, err := o.Marshal()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}
