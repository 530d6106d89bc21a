// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// OutlineRequest asks for a chapter outline of a final-year report.
type OutlineRequest struct {
	ProjectTitleOrAbstract string `json:"projectTitleOrAbstract" yaml:"project_title_or_abstract"`
}

// Chapter is one entry of a chapter outline.
type Chapter struct {
	// Title is the chapter heading (e.g. "Chapter 1: Introduction").
	Title string `json:"title" yaml:"title"`

	// Description summarizes the expected content of the chapter.
	Description string `json:"description" yaml:"description"`
}

// ChapterOutline is the ordered chapter list of a report. A successful
// generation is expected to hold six chapters.
type ChapterOutline struct {
	Chapters []Chapter `json:"chapters" yaml:"chapters"`
}

// IsEmpty reports whether the outline has no chapters.
func (o ChapterOutline) IsEmpty() bool {
	return len(o.Chapters) == 0
}

// ProposalOutlineRequest asks for a proposal introduction plus outline.
type ProposalOutlineRequest struct {
	ProjectTitle string `json:"projectTitle" yaml:"project_title"`
}

// ProposalOutline is a draft introduction and a prose chapter outline.
type ProposalOutline struct {
	Introduction   string `json:"introduction" yaml:"introduction"`
	ChapterOutline string `json:"chapterOutline" yaml:"chapter_outline"`
}

// FullProposalRequest asks for a complete seven-section proposal draft.
type FullProposalRequest struct {
	ProjectTitle string `json:"projectTitle" yaml:"project_title"`
	Department   string `json:"department" yaml:"department"`

	// AbstractOrKeywords is optional context for the generator.
	AbstractOrKeywords string `json:"abstractOrKeywords,omitempty" yaml:"abstract_or_keywords,omitempty"`
}

// FullProposalDraft is the seven-section proposal. It is the only generated
// record that is persisted.
type FullProposalDraft struct {
	Introduction        string `json:"introduction" yaml:"introduction"`
	ProblemStatement    string `json:"problemStatement" yaml:"problem_statement"`
	Objectives          string `json:"objectives" yaml:"objectives"`
	ScopeOfStudy        string `json:"scopeOfStudy" yaml:"scope_of_study"`
	SignificanceOfStudy string `json:"significanceOfStudy" yaml:"significance_of_study"`
	Methodology         string `json:"methodology" yaml:"methodology"`
	ExpectedOutcomes    string `json:"expectedOutcomes" yaml:"expected_outcomes"`
}

// ProposalSection pairs a display title with section text.
type ProposalSection struct {
	Title string
	Body  string
}

// Sections returns the draft sections in document order.
func (d FullProposalDraft) Sections() []ProposalSection {
	return []ProposalSection{
		{Title: "Introduction", Body: d.Introduction},
		{Title: "Problem Statement", Body: d.ProblemStatement},
		{Title: "Objectives", Body: d.Objectives},
		{Title: "Scope of Study", Body: d.ScopeOfStudy},
		{Title: "Significance of Study", Body: d.SignificanceOfStudy},
		{Title: "Methodology", Body: d.Methodology},
		{Title: "Expected Outcomes", Body: d.ExpectedOutcomes},
	}
}

// IsEmpty reports whether every section is blank.
func (d FullProposalDraft) IsEmpty() bool {
	for _, s := range d.Sections() {
		if strings.TrimSpace(s.Body) != "" {
			return false
		}
	}
	return true
}

// RefineRequest carries student-drafted text to be polished.
type RefineRequest struct {
	TextToRefine string `json:"textToRefine" yaml:"text_to_refine"`
}

// RefinedText is the improved version of a RefineRequest.
type RefinedText struct {
	RefinedText string `json:"refinedText" yaml:"refined_text"`
}

// IsEmpty reports whether the model returned no text.
func (r RefinedText) IsEmpty() bool {
	return strings.TrimSpace(r.RefinedText) == ""
}

// CitationRequest carries a proposal section that needs supporting sources.
type CitationRequest struct {
	TextSection string `json:"textSection" yaml:"text_section"`
}

// CitationSuggestions lists what to cite and how to search for it.
// ExampleReferences are illustrative placeholders, not search results.
type CitationSuggestions struct {
	SuggestedTopicsToCite []string `json:"suggestedTopicsToCite" yaml:"suggested_topics_to_cite"`
	KeywordsForSearch     []string `json:"keywordsForSearch" yaml:"keywords_for_search"`
	ExampleReferences     []string `json:"exampleReferences" yaml:"example_references"`
}
