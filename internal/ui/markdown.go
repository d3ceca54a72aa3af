package ui

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders model output for the terminal.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders with glamour, rebuilding the term renderer only
// when the wrap width changes.
type GlamourRenderer struct {
	width    int
	renderer *glamour.TermRenderer
}

func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

func (g *GlamourRenderer) Render(content string, width int) (string, error) {
	if g.renderer == nil || g.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		g.renderer, g.width = r, width
	}
	return g.renderer.Render(content)
}
