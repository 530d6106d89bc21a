// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package draft

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"github.com/pdiddy/project-ascent/pkg/types"
)

// Format is an export format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Generated prose uses single newlines between list items and lines, so
// hard wraps are kept.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(htmlrenderer.WithHardWraps()),
)

// RenderMarkdown lays the seven sections out under their display titles.
// title, when non-empty, becomes the top-level heading. Blank sections are
// kept with a placeholder so the document always has the same shape.
func RenderMarkdown(title string, d types.FullProposalDraft) string {
	var sb strings.Builder
	if title = strings.TrimSpace(title); title != "" {
		fmt.Fprintf(&sb, "# %s\n\n", title)
	}
	for i, sec := range d.Sections() {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## %s\n\n", sec.Title)
		body := strings.TrimSpace(sec.Body)
		if body == "" {
			body = "_Not provided._"
		}
		sb.WriteString(body)
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderHTML converts the Markdown rendering to an HTML fragment.
func RenderHTML(title string, d types.FullProposalDraft) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(RenderMarkdown(title, d)), &buf); err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}
	return buf.String(), nil
}

// Render dispatches on format.
func Render(format Format, title string, d types.FullProposalDraft) (string, error) {
	switch format {
	case FormatMarkdown, "":
		return RenderMarkdown(title, d), nil
	case FormatHTML:
		return RenderHTML(title, d)
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
}
