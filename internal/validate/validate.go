// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks the input of each assistant flow before any
// request is built. Failures are reported per field, keyed by the field's
// wire name, so a form can place each message next to its input.
package validate

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/project-ascent/pkg/types"
)

// Field bounds, in characters.
const (
	MaxDepartment   = 100
	MaxInterests    = 1000
	MaxProjectTitle = 150

	MinRefineText = 20
	MaxRefineText = 10000

	MinCitationText = 30
	MaxCitationText = 5000

	MinPlagiarismText = 50
	MaxPlagiarismText = 10000
)

// Error is a field-scoped validation failure. Fields maps a field name to
// one message per violated constraint.
type Error struct {
	Fields map[string][]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Has reports whether field has at least one violation.
func (e *Error) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

// checker accumulates violations for one record.
type checker struct {
	fields map[string][]string
}

func (c *checker) add(field, msg string) {
	if c.fields == nil {
		c.fields = make(map[string][]string)
	}
	c.fields[field] = append(c.fields[field], msg)
}

// required rejects values that are blank after trimming.
func (c *checker) required(field, label, value string) {
	if strings.TrimSpace(value) == "" {
		c.add(field, label+" is required")
	}
}

func (c *checker) minLen(field, label, value string, n int) {
	if utf8.RuneCountInString(value) < n {
		c.add(field, fmt.Sprintf("%s must be at least %d characters.", label, n))
	}
}

func (c *checker) maxLen(field, label, value string, n int) {
	if utf8.RuneCountInString(value) > n {
		c.add(field, fmt.Sprintf("%s cannot exceed %d characters.", label, n))
	}
}

func (c *checker) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &Error{Fields: c.fields}
}

// Ideas validates a project idea request.
func Ideas(req types.IdeaRequest) error {
	var c checker
	c.required("department", "Department", req.Department)
	c.maxLen("department", "Department", req.Department, MaxDepartment)
	c.required("interests", "Interests", req.Interests)
	c.maxLen("interests", "Interests", req.Interests, MaxInterests)
	return c.err()
}

// Outline validates a chapter outline request.
func Outline(req types.OutlineRequest) error {
	var c checker
	c.required("projectTitleOrAbstract", "Project title or abstract", req.ProjectTitleOrAbstract)
	return c.err()
}

// ProposalOutline validates a proposal introduction/outline request.
func ProposalOutline(req types.ProposalOutlineRequest) error {
	var c checker
	c.required("projectTitle", "Project title", req.ProjectTitle)
	c.maxLen("projectTitle", "Project title", req.ProjectTitle, MaxProjectTitle)
	return c.err()
}

// FullProposal validates a full proposal request. AbstractOrKeywords is
// optional and unconstrained.
func FullProposal(req types.FullProposalRequest) error {
	var c checker
	c.required("projectTitle", "Project title", req.ProjectTitle)
	c.required("department", "Department", req.Department)
	return c.err()
}

// Refine validates a refine request.
func Refine(req types.RefineRequest) error {
	var c checker
	c.minLen("textToRefine", "Text", req.TextToRefine, MinRefineText)
	c.maxLen("textToRefine", "Text", req.TextToRefine, MaxRefineText)
	return c.err()
}

// Citations validates a citation suggestion request.
func Citations(req types.CitationRequest) error {
	var c checker
	c.minLen("textSection", "Text section", req.TextSection, MinCitationText)
	c.maxLen("textSection", "Text section", req.TextSection, MaxCitationText)
	return c.err()
}

// PlagiarismText validates text submitted to the similarity checker.
func PlagiarismText(text string) error {
	var c checker
	c.minLen("textToCheck", "Text to check", text, MinPlagiarismText)
	c.maxLen("textToCheck", "Text to check", text, MaxPlagiarismText)
	return c.err()
}
