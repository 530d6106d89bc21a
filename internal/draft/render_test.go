// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package draft

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/project-ascent/pkg/types"
)

func TestRenderMarkdown(t *testing.T) {
	md := RenderMarkdown("Smart Irrigation", sampleDraft("a"))

	assert.True(t, strings.HasPrefix(md, "# Smart Irrigation\n\n## Introduction\n\nIntro a\n"))
	titles := []string{"Introduction", "Problem Statement", "Objectives", "Scope of Study",
		"Significance of Study", "Methodology", "Expected Outcomes"}
	last := -1
	for _, title := range titles {
		idx := strings.Index(md, "## "+title+"\n")
		require.GreaterOrEqual(t, idx, 0, title)
		assert.Greater(t, idx, last, "sections out of order at %s", title)
		last = idx
	}
}

func TestRenderMarkdown_BlankSections(t *testing.T) {
	md := RenderMarkdown("", types.FullProposalDraft{Introduction: "Only intro"})
	assert.False(t, strings.HasPrefix(md, "# "))
	assert.Equal(t, 6, strings.Count(md, "_Not provided._"))
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("Title", sampleDraft("a"))
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "<h2>Problem Statement</h2>")
	assert.Contains(t, html, "<li>one</li>")
}

func TestRender_Formats(t *testing.T) {
	out, err := Render(FormatMarkdown, "", sampleDraft("a"))
	require.NoError(t, err)
	assert.Contains(t, out, "## Methodology")

	out, err = Render(FormatHTML, "", sampleDraft("a"))
	require.NoError(t, err)
	assert.Contains(t, out, "<h2>Methodology</h2>")

	_, err = Render("pdf", "", sampleDraft("a"))
	assert.ErrorContains(t, err, "unknown export format")
}
