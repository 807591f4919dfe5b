// Package markdown renders Markdown and Table block sources to HTML.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts GitHub flavoured markdown. Raw HTML in the source is
// escaped, since block content comes from untrusted contributors.
type Renderer struct {
	engine goldmark.Markdown
}

func New() *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Table,
				extension.Strikethrough,
				extension.TaskList,
				extension.Linkify,
			),
			goldmark.WithRendererOptions(
				htmlrenderer.WithHardWraps(),
				htmlrenderer.WithXHTML(),
			),
		),
	}
}

// Render returns the HTML of source. Blank input renders to an empty string.
func (r *Renderer) Render(source string) (string, error) {
	text := strings.TrimSpace(source)
	if text == "" {
		return "", nil
	}

	var out bytes.Buffer
	if err := r.engine.Convert([]byte(text), &out); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return out.String(), nil
}
