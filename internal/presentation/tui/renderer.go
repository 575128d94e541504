package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour,
// picking a light or dark style from the terminal background.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// NewPlainRenderer renders markdown without colors, for non-terminal output.
func NewPlainRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
