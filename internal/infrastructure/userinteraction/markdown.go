package userinteraction

import (
	"strings"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
)

const defaultWrapWidth = 100

// NewMarkdownRenderer returns a glamour renderer with a fixed dark style.
// glamour.WithAutoStyle queries the terminal, which blocks when stdin is a
// pipe.
func NewMarkdownRenderer(width int) (func(string) (string, error), error) {
	if width <= 0 {
		width = defaultWrapWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(glamourstyles.DarkStyleConfig),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return func(md string) (string, error) {
		out, err := r.Render(md)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(out, "\n") + "\n", nil
	}, nil
}

func plainText(md string) (string, error) {
	return strings.TrimSpace(md) + "\n", nil
}
