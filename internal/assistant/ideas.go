// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assistant

import (
	"fmt"
	"strings"

	"github.com/pdiddy/project-ascent/pkg/types"
)

// Defaults filled into ideas whose optional fields the model left out.
const (
	DefaultExplanation = "Project explanation not provided"
	DefaultResearchGap = "Research gap to be identified"
	DefaultDifficulty  = types.DifficultyIntermediate
	DefaultDuration    = "6-8 months"
)

// DefaultSkills is copied into ideas with no required skills.
var DefaultSkills = []string{"Research", "Analysis", "Implementation"}

// NormalizeIdeas returns a copy of ideas with every field populated. Titles
// default to "Project Idea N" (1-based). A difficulty the model spelled in
// another case is canonicalised; an unknown one is replaced.
func NormalizeIdeas(ideas []types.ProjectIdea) []types.ProjectIdea {
	out := make([]types.ProjectIdea, len(ideas))
	for i, idea := range ideas {
		if strings.TrimSpace(idea.Title) == "" {
			idea.Title = fmt.Sprintf("Project Idea %d", i+1)
		}
		if strings.TrimSpace(idea.Explanation) == "" {
			idea.Explanation = DefaultExplanation
		}
		if strings.TrimSpace(idea.ResearchGap) == "" {
			idea.ResearchGap = DefaultResearchGap
		}
		idea.Difficulty = canonicalDifficulty(idea.Difficulty)
		if strings.TrimSpace(idea.EstimatedDuration) == "" {
			idea.EstimatedDuration = DefaultDuration
		}
		if len(idea.RequiredSkills) == 0 {
			idea.RequiredSkills = append([]string(nil), DefaultSkills...)
		} else {
			idea.RequiredSkills = append([]string(nil), idea.RequiredSkills...)
		}
		out[i] = idea
	}
	return out
}

func canonicalDifficulty(d types.Difficulty) types.Difficulty {
	for _, known := range []types.Difficulty{
		types.DifficultyBeginner, types.DifficultyIntermediate, types.DifficultyAdvanced,
	} {
		if strings.EqualFold(strings.TrimSpace(string(d)), string(known)) {
			return known
		}
	}
	return DefaultDifficulty
}
