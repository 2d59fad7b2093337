package viddler

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// PlayerBaseURL is where embedded players are served from.
const PlayerBaseURL = "http://www.viddler.com/"

// EmbedOptions controls the HTML produced by Video.EmbedCode. Zero fields
// take the player defaults.
type EmbedOptions struct {
	// PlayerType is "player" (default) or "simple".
	PlayerType string
	// Width and Height default to 437x370.
	Width, Height int
	// Autoplay is "t" or "f" (default).
	Autoplay string
	// UseSecretURL embeds the video through its secret url.
	UseSecretURL bool
	// FlashVars are extra player variables.
	FlashVars map[string]string
}

// EmbedCode returns the HTML that embeds the video's player.
func (v *Video) EmbedCode(opts EmbedOptions) string {
	if opts.PlayerType == "" {
		opts.PlayerType = "player"
	}
	if opts.Width == 0 {
		opts.Width = 437
	}
	if opts.Height == 0 {
		opts.Height = 370
	}
	if opts.Autoplay == "" {
		opts.Autoplay = "f"
	}

	vars := map[string]string{"autoplay": opts.Autoplay}
	for k, val := range opts.FlashVars {
		vars[k] = val
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + vars[k]
	}
	flashvars := html.EscapeString(strings.Join(pairs, "&"))

	src := PlayerBaseURL + opts.PlayerType + "/" + v.ID + "/"
	if opts.UseSecretURL {
		src += "0/" + v.SecretURL() + "/"
	}
	src = html.EscapeString(src)
	id := html.EscapeString(v.ID)

	var b strings.Builder
	fmt.Fprintf(&b, `<object classid="clsid:D27CDB6E-AE6D-11cf-96B8-444553540000" width="%d" height="%d" id="viddlerplayer-%s">`+"\n", opts.Width, opts.Height, id)
	fmt.Fprintf(&b, `<param name="movie" value="%s" />`+"\n", src)
	b.WriteString(`<param name="allowScriptAccess" value="always" />` + "\n")
	b.WriteString(`<param name="allowFullScreen" value="true" />` + "\n")
	fmt.Fprintf(&b, `<param name="flashvars" value="%s" />`+"\n", flashvars)
	fmt.Fprintf(&b, `<embed src="%s" width="%d" height="%d" type="application/x-shockwave-flash" allowScriptAccess="always" flashvars="%s" allowFullScreen="true" name="viddlerplayer-%s" >`+"\n", src, opts.Width, opts.Height, flashvars, id)
	b.WriteString("</embed>\n")
	b.WriteString("</object>\n")
	return b.String()
}
