package tui

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/tormodhaugland/pl/internal/model"
)

const readmePlaceholder = "No README"

// previewPane shows the README of the selected project.
type previewPane struct {
	viewport   viewport.Model
	style      string // glamour standard style
	source     string // README path on display, "" for none
	width      int    // width the content was rendered at
	hasContent bool

	renderer      *glamour.TermRenderer
	rendererWidth int
}

func newPreviewPane(style string) *previewPane {
	return &previewPane{
		viewport: viewport.New(0, 0),
		style:    style,
	}
}

func (p *previewPane) setSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
}

// show loads the README of project, or clears the pane when ok is false.
// Reloading is skipped when neither the project nor the width changed.
func (p *previewPane) show(project model.Project, ok bool) {
	source := ""
	if ok {
		source = project.ReadmePath()
	}
	if source == p.source && p.width == p.viewport.Width {
		return
	}

	p.source = source
	p.width = p.viewport.Width
	p.hasContent = false
	p.viewport.SetContent("")
	p.viewport.GotoTop()

	if source == "" {
		return
	}

	data, err := os.ReadFile(source)
	if err != nil {
		slog.Debug("readme unavailable", "path", source, "error", err)
		return
	}

	p.viewport.SetContent(p.render(string(data)))
	p.hasContent = true
}

// render returns glamour output for content, or content itself when
// rendering fails.
func (p *previewPane) render(content string) string {
	if p.renderer == nil || p.rendererWidth != p.width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(p.style),
			glamour.WithWordWrap(p.width),
		)
		if err != nil {
			slog.Debug("markdown renderer unavailable", "error", err)
			return content
		}
		p.renderer = r
		p.rendererWidth = p.width
	}

	out, err := p.renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}

func (p *previewPane) scrollDown() { p.viewport.HalfPageDown() }

func (p *previewPane) scrollUp() { p.viewport.HalfPageUp() }

func (p *previewPane) view() string {
	if !p.hasContent {
		return lipgloss.Place(p.viewport.Width, p.viewport.Height,
			lipgloss.Center, lipgloss.Center,
			placeholderStyle.Render(readmePlaceholder))
	}
	return p.viewport.View()
}
