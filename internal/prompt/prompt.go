// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt fills the static template of each assistant flow with
// validated input and declares the JSON shape the reply must have.
// Build is pure: the same input always yields the same Request.
package prompt

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/pdiddy/project-ascent/pkg/types"
)

// Flow names one request/response operation.
type Flow string

const (
	FlowIdeas           Flow = "generateProjectIdeas"
	FlowChapterOutline  Flow = "createChapterOutline"
	FlowProposalOutline Flow = "draftProposalOutline"
	FlowFullProposal    Flow = "generateFullProposal"
	FlowRefine          Flow = "refineProposalText"
	FlowCitations       Flow = "suggestCitations"
)

// Flows lists every flow in a stable order.
var Flows = []Flow{
	FlowIdeas,
	FlowChapterOutline,
	FlowProposalOutline,
	FlowFullProposal,
	FlowRefine,
	FlowCitations,
}

// Schema declares the expected reply: a JSON object holding at least the
// Required top-level keys.
type Schema struct {
	Name     string
	Required []string
}

// Request is a filled template ready to send to the generation service.
type Request struct {
	Flow   Flow
	System string
	Text   string
	Schema Schema
}

type flowDef struct {
	tmpl   *template.Template
	schema Schema
	check  func(input any) bool
}

var flows = map[Flow]flowDef{
	FlowIdeas: {
		tmpl:   ideasTmpl,
		schema: Schema{Name: "GenerateProjectIdeasOutput", Required: []string{"projectIdeas"}},
		check:  is[types.IdeaRequest],
	},
	FlowChapterOutline: {
		tmpl:   outlineTmpl,
		schema: Schema{Name: "CreateChapterOutlineOutput", Required: []string{"chapters"}},
		check:  is[types.OutlineRequest],
	},
	FlowProposalOutline: {
		tmpl:   proposalOutlineTmpl,
		schema: Schema{Name: "DraftProposalOutlineOutput", Required: []string{"introduction", "chapterOutline"}},
		check:  is[types.ProposalOutlineRequest],
	},
	FlowFullProposal: {
		tmpl: fullProposalTmpl,
		schema: Schema{Name: "GenerateFullProposalOutput", Required: []string{
			"introduction", "problemStatement", "objectives", "scopeOfStudy",
			"significanceOfStudy", "methodology", "expectedOutcomes",
		}},
		check: is[types.FullProposalRequest],
	},
	FlowRefine: {
		tmpl:   refineTmpl,
		schema: Schema{Name: "RefineProposalTextOutput", Required: []string{"refinedText"}},
		check:  is[types.RefineRequest],
	},
	FlowCitations: {
		tmpl: citationsTmpl,
		schema: Schema{Name: "SuggestCitationsOutput", Required: []string{
			"suggestedTopicsToCite", "keywordsForSearch", "exampleReferences",
		}},
		check: is[types.CitationRequest],
	},
}

func is[T any](input any) bool {
	_, ok := input.(T)
	return ok
}

// Build renders the template of flow with input. input must be the request
// type of the flow (e.g. types.IdeaRequest for FlowIdeas).
func Build(flow Flow, input any) (Request, error) {
	s, ok := flows[flow]
	if !ok {
		return Request{}, fmt.Errorf("unknown flow %q", flow)
	}
	if !s.check(input) {
		return Request{}, fmt.Errorf("flow %s: unexpected input type %T", flow, input)
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, input); err != nil {
		return Request{}, fmt.Errorf("rendering %s template: %w", flow, err)
	}

	return Request{
		Flow:   flow,
		System: systemPrompt,
		Text:   buf.String(),
		Schema: s.schema,
	}, nil
}

// SchemaFor returns the declared output schema of flow.
func SchemaFor(flow Flow) (Schema, bool) {
	s, ok := flows[flow]
	return s.schema, ok
}
