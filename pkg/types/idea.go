// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Difficulty grades how demanding a project idea is for a final-year student.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Valid reports whether d is one of the three known grades.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// IdeaRequest is the student profile submitted to the idea generator.
type IdeaRequest struct {
	// Department is the student's department (e.g. "Computer Science").
	Department string `json:"department" yaml:"department"`

	// Interests is free text describing the student's areas of interest.
	Interests string `json:"interests" yaml:"interests"`
}

// ProjectIdea is one generated project suggestion. Difficulty,
// EstimatedDuration and RequiredSkills are optional in model output; ideas
// handed to a presenter always have them filled.
type ProjectIdea struct {
	// Title is the project title.
	Title string `json:"title" yaml:"title"`

	// Explanation is a short description of the idea.
	Explanation string `json:"explanation" yaml:"explanation"`

	// ResearchGap names the gap the project addresses.
	ResearchGap string `json:"researchGap" yaml:"research_gap"`

	// Difficulty is the project grade.
	Difficulty Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`

	// EstimatedDuration is a free-form duration such as "6-8 months".
	EstimatedDuration string `json:"estimatedDuration,omitempty" yaml:"estimated_duration,omitempty"`

	// RequiredSkills lists the skills or technologies needed, in order.
	RequiredSkills []string `json:"requiredSkills,omitempty" yaml:"required_skills,omitempty"`
}

// IdeaList is the model output of the idea generator.
type IdeaList struct {
	ProjectIdeas []ProjectIdea `json:"projectIdeas" yaml:"project_ideas"`
}

// IsEmpty reports whether no ideas were produced.
func (l IdeaList) IsEmpty() bool {
	return len(l.ProjectIdeas) == 0
}
