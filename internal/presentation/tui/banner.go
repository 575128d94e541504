package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the dpda banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"     _       _       ", "#818cf8"},
		{"  __| |_ __ | |_ __ _", "#a78bfa"},
		{" / _` | '_ \\| __/ _` |", "#c084fc"},
		{"| (_| | |_) | || (_| |", "#e879f9"},
		{" \\__,_| .__/ \\__\\__,_|", "#f472b6"},
		{"      |_|    " + version, "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
