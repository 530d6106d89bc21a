// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import "text/template"

// systemPrompt is sent with every flow. It pins the reply format.
const systemPrompt = `You are an academic writing assistant for final-year university students. ` +
	`Always reply with a single JSON object and no text outside it.`

var ideasTmpl = template.Must(template.New(string(FlowIdeas)).Parse(`You are an expert academic advisor and project HOD with extensive experience in guiding final year students.

STUDENT PROFILE:
- Department: {{.Department}}
- Areas of Interest: {{.Interests}}

TASK: Generate exactly 6 unique, innovative, and academically rigorous final year project ideas.

REQUIREMENTS FOR EACH PROJECT:
1. Must be appropriate for final year undergraduate/graduate level
2. Should address a real-world problem or significant research gap
3. Must be feasible to complete in 6-12 months
4. Should align with current industry trends and academic standards
5. Must be original and avoid generic project titles

SPECIFIC GUIDELINES:
- Titles should be specific and compelling (avoid generic terms like "System" or "Application")
- Explanations should be clear and concise (2-3 sentences maximum)
- Research gaps should be specific and well-defined
- Include appropriate difficulty level based on project complexity
- Estimate realistic completion time
- List 3-5 essential skills/technologies needed

FOCUS AREAS TO CONSIDER:
- Emerging technologies (AI, IoT, Blockchain, AR/VR, etc.)
- Sustainability and green technology
- Healthcare and medical applications
- Social impact and community solutions
- Industry 4.0 and automation
- Cybersecurity and privacy
- Data science and analytics
- Mobile and web technologies

Generate 6 distinct project ideas that would impress academic HODs and industry professionals.

Respond with a JSON object of the form:
{"projectIdeas": [{"title": "...", "explanation": "...", "researchGap": "...", "difficulty": "Beginner|Intermediate|Advanced", "estimatedDuration": "...", "requiredSkills": ["..."]}]}
`))

var outlineTmpl = template.Must(template.New(string(FlowChapterOutline)).Parse(`Based on this project title or abstract: "{{.ProjectTitleOrAbstract}}", create a typical 6-chapter outline for a final year report.
Each chapter should have a title and a short description of its expected content.
The chapters should be:
1. Introduction
2. Literature Review
3. Methodology
4. Implementation/Development (or System Design / Analysis, if more appropriate)
5. Results & Discussion
6. Conclusion & Recommendations

Return the response as a JSON object with a "chapters" array, where each element is an object with "title" and "description" fields.
`))

var proposalOutlineTmpl = template.Must(template.New(string(FlowProposalOutline)).Parse(`Based on this project title: "{{.ProjectTitle}}", write a proposal introduction and outline 5 chapters for the final report.

Respond with a JSON object with two string fields: "introduction" and "chapterOutline".
`))

var fullProposalTmpl = template.Must(template.New(string(FlowFullProposal)).Parse(`You are an AI assistant helping a student draft a project proposal.
Project Title: "{{.ProjectTitle}}"
Department: "{{.Department}}"
{{- if .AbstractOrKeywords}}
Abstract/Keywords: "{{.AbstractOrKeywords}}"
{{- end}}

Based on the information above, generate a professional project proposal with the following sections:
1.  Introduction: Provide a comprehensive introduction to the project.
2.  Problem Statement: Clearly define the problem this project addresses.
3.  Objectives: List the main objectives of the project (e.g., as bullet points).
4.  Scope of Study: Define the boundaries and limitations of the project.
5.  Significance of Study: Explain the importance and potential impact of this research.
6.  Methodology: Briefly outline the research methodology or approach to be used.
7.  Expected Outcomes: Describe the anticipated results and deliverables.

Ensure the language is academic and suitable for a university-level project proposal.

Respond with a JSON object with the string fields "introduction", "problemStatement", "objectives", "scopeOfStudy", "significanceOfStudy", "methodology" and "expectedOutcomes".
`))

var refineTmpl = template.Must(template.New(string(FlowRefine)).Parse(`Please refine the following academic text. Focus on improving clarity, ensuring a formal academic tone, correcting grammar and spelling, and enhancing overall readability.
Do not add new information, but rephrase and restructure as needed.

Original Text:
"{{.TextToRefine}}"

Return the refined text as a JSON object with a single string field "refinedText".
`))

var citationsTmpl = template.Must(template.New(string(FlowCitations)).Parse(`Analyze the following proposal section:
"{{.TextSection}}"

Based on this text:
1.  Identify and list 3-5 specific topics or concepts that should ideally be supported by citations.
2.  Suggest 5-7 relevant keywords for searching academic databases (like Google Scholar, IEEE Xplore, arXiv).
3.  Provide 2-3 example scholarly references (these should be illustrative placeholders, formatted in APA style, not actual search results) that would be relevant to the identified topics. For example: "Doe, J. (2021). Advances in machine learning. Fictional University Press." or "Smith, A. & Lee, B. (2022). A study on renewable energy. Journal of Fake Studies, 10(2), 45-60."

Return the response as a JSON object with the string arrays "suggestedTopicsToCite", "keywordsForSearch" and "exampleReferences".
`))
