// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/project-ascent/internal/archive"
	"github.com/pdiddy/project-ascent/internal/draft"
	"github.com/pdiddy/project-ascent/internal/settings"
	"github.com/pdiddy/project-ascent/pkg/types"
)

// bind decodes the JSON body into v, answering 400 on failure.
func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		abort(c, http.StatusBadRequest, CodeInvalidParam, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) requireAssistant(c *gin.Context) bool {
	if s.deps.Assistant == nil {
		abort(c, http.StatusServiceUnavailable, CodeConfiguration, "no AI backend configured")
		return false
	}
	return true
}

type ideasResponse struct {
	ProjectIdeas []types.ProjectIdea `json:"projectIdeas"`
}

func (s *Server) generateIdeas(c *gin.Context) {
	var req types.IdeaRequest
	if !bind(c, &req) || !s.requireAssistant(c) {
		return
	}
	ideas, err := s.deps.Assistant.GenerateIdeas(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, ideasResponse{ProjectIdeas: ideas})
}

func (s *Server) chapterOutline(c *gin.Context) {
	var req types.OutlineRequest
	if !bind(c, &req) || !s.requireAssistant(c) {
		return
	}
	out, err := s.deps.Assistant.ChapterOutline(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, out)
}

func (s *Server) proposalOutline(c *gin.Context) {
	var req types.ProposalOutlineRequest
	if !bind(c, &req) || !s.requireAssistant(c) {
		return
	}
	out, err := s.deps.Assistant.ProposalOutline(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, out)
}

// fullProposal generates a draft; ?save=true also persists it.
func (s *Server) fullProposal(c *gin.Context) {
	var req types.FullProposalRequest
	if !bind(c, &req) || !s.requireAssistant(c) {
		return
	}
	out, err := s.deps.Assistant.FullProposal(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	if save, _ := strconv.ParseBool(c.Query("save")); save && s.deps.Drafts != nil {
		if err := s.deps.Drafts.Save(c.Request.Context(), out); err != nil {
			fail(c, err)
			return
		}
	}
	success(c, out)
}

func (s *Server) refine(c *gin.Context) {
	var req types.RefineRequest
	if !bind(c, &req) || !s.requireAssistant(c) {
		return
	}
	out, err := s.deps.Assistant.Refine(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, out)
}

func (s *Server) citations(c *gin.Context) {
	var req types.CitationRequest
	if !bind(c, &req) || !s.requireAssistant(c) {
		return
	}
	out, err := s.deps.Assistant.Citations(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, out)
}

type draftResponse struct {
	Exists bool                     `json:"exists"`
	Draft  *types.FullProposalDraft `json:"draft,omitempty"`
}

func (s *Server) getDraft(c *gin.Context) {
	d, ok, err := s.deps.Drafts.Load(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp := draftResponse{Exists: ok}
	if ok {
		resp.Draft = &d
	}
	success(c, resp)
}

func (s *Server) putDraft(c *gin.Context) {
	var d types.FullProposalDraft
	if !bind(c, &d) {
		return
	}
	if err := s.deps.Drafts.Save(c.Request.Context(), d); err != nil {
		fail(c, err)
		return
	}
	success(c, draftResponse{Exists: true, Draft: &d})
}

func (s *Server) deleteDraft(c *gin.Context) {
	if err := s.deps.Drafts.Clear(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	success(c, draftResponse{Exists: false})
}

// exportDraft renders the saved draft as markdown or html.
func (s *Server) exportDraft(c *gin.Context) {
	d, ok, err := s.deps.Drafts.Load(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if !ok {
		abort(c, http.StatusNotFound, CodeNotFound, "no saved draft")
		return
	}

	format := draft.Format(c.DefaultQuery("format", string(draft.FormatMarkdown)))
	out, err := draft.Render(format, c.Query("title"), d)
	if err != nil {
		abort(c, http.StatusBadRequest, CodeInvalidParam, err.Error())
		return
	}
	contentType := "text/markdown; charset=utf-8"
	if format == draft.FormatHTML {
		contentType = "text/html; charset=utf-8"
	}
	c.Data(http.StatusOK, contentType, []byte(out))
}

func (s *Server) listProjects(c *gin.Context) {
	projects := s.deps.Archive.Filter(archive.Query{
		Search:     c.Query("q"),
		Department: c.Query("department"),
		Year:       c.Query("year"),
	})
	if projects == nil {
		projects = []types.PastProject{}
	}
	success(c, projects)
}

type facetsResponse struct {
	Departments []string `json:"departments"`
	Years       []int    `json:"years"`
}

func (s *Server) projectFacets(c *gin.Context) {
	success(c, facetsResponse{
		Departments: s.deps.Archive.Departments(),
		Years:       s.deps.Archive.Years(),
	})
}

func (s *Server) getProject(c *gin.Context) {
	p, ok := s.deps.Archive.Get(c.Param("id"))
	if !ok {
		abort(c, http.StatusNotFound, CodeNotFound, "project not found")
		return
	}
	success(c, p)
}

type plagiarismRequest struct {
	TextToCheck string `json:"textToCheck"`
}

type plagiarismResponse struct {
	Score   int    `json:"score"`
	High    bool   `json:"high"`
	Message string `json:"message"`
}

func (s *Server) checkPlagiarism(c *gin.Context) {
	var req plagiarismRequest
	if !bind(c, &req) {
		return
	}
	res, err := s.deps.Plagiarism.Check(c.Request.Context(), req.TextToCheck)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, plagiarismResponse{Score: res.Score, High: res.High, Message: res.Message()})
}

type themeBody struct {
	Theme settings.Theme `json:"theme"`
}

func (s *Server) getTheme(c *gin.Context) {
	t, err := s.deps.Settings.Theme(c.Request.Context())
	if err != nil {
		s.log.Warn("reading theme", zap.Error(err))
	}
	success(c, themeBody{Theme: t})
}

func (s *Server) putTheme(c *gin.Context) {
	var body themeBody
	if !bind(c, &body) {
		return
	}
	if !body.Theme.Valid() {
		abort(c, http.StatusBadRequest, CodeInvalidParam, "theme must be light, dark or system")
		return
	}
	if err := s.deps.Settings.SetTheme(c.Request.Context(), body.Theme); err != nil {
		fail(c, err)
		return
	}
	success(c, body)
}
