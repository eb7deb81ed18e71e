package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`   ___              _      _`, "#818cf8"},
	{`  / __|___ _  _ _ _| |_ __| |_____ __ ___ _`, "#a78bfa"},
	{` | (__/ _ \ || | ' \  _/ _' / _ \ V  V / ' \`, "#c084fc"},
	{`  \___\___/\_,_|_||_\__\__,_\___/\_/\_/|_||_|`, "#f472b6"},
}

// PrintBanner writes the gradient banner followed by the version.
func PrintBanner(w io.Writer, profile termenv.Profile, version string) {
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, profile.String(l.text).Foreground(profile.Color(l.color)))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, profile.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}
