// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/project-ascent/pkg/types"
)

func renderIdeas(w io.Writer, ideas []types.ProjectIdea) {
	for i, idea := range ideas {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, idea.Title)
		fmt.Fprintf(w, "   %s\n", idea.Explanation)
		fmt.Fprintf(w, "   Research gap: %s\n", idea.ResearchGap)
		fmt.Fprintf(w, "   Difficulty:   %s\n", idea.Difficulty)
		fmt.Fprintf(w, "   Duration:     %s\n", idea.EstimatedDuration)
		fmt.Fprintf(w, "   Skills:       %s\n", strings.Join(idea.RequiredSkills, ", "))
	}
}

func renderChapters(w io.Writer, o types.ChapterOutline) {
	for i, ch := range o.Chapters {
		fmt.Fprintf(w, "Chapter %d: %s\n", i+1, ch.Title)
		fmt.Fprintf(w, "  %s\n", ch.Description)
	}
}

func renderProposalOutline(w io.Writer, o types.ProposalOutline) {
	fmt.Fprintf(w, "Introduction\n\n%s\n\nChapter outline\n\n%s\n", o.Introduction, o.ChapterOutline)
}

func renderCitations(w io.Writer, c types.CitationSuggestions) {
	section := func(title string, items []string) {
		fmt.Fprintln(w, title)
		for _, it := range items {
			fmt.Fprintf(w, "  - %s\n", it)
		}
	}
	section("Topics to cite", c.SuggestedTopicsToCite)
	section("Search keywords", c.KeywordsForSearch)
	section("Example references", c.ExampleReferences)
}

func renderProjects(w io.Writer, projects []types.PastProject) {
	if len(projects) == 0 {
		fmt.Fprintln(w, "No projects found matching your criteria.")
		return
	}
	for _, p := range projects {
		fmt.Fprintf(w, "[%s] %s (%s, %d)\n", p.ID, p.Title, p.Department, p.Year)
		if p.Supervisor != "" {
			fmt.Fprintf(w, "    Supervisor: %s\n", p.Supervisor)
		}
		fmt.Fprintf(w, "    Keywords:   %s\n", strings.Join(p.Keywords, ", "))
	}
}

func renderProject(w io.Writer, p types.PastProject) {
	fmt.Fprintf(w, "%s\n\n", p.Title)
	fmt.Fprintf(w, "Department: %s (%d)\n", p.Department, p.Year)
	if p.Supervisor != "" {
		fmt.Fprintf(w, "Supervisor: %s\n", p.Supervisor)
	}
	fmt.Fprintf(w, "\nAbstract:\n%s\n\nKeywords: %s\n", p.Abstract, strings.Join(p.Keywords, ", "))
}
