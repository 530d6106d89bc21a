// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/project-ascent/internal/archive"
	"github.com/pdiddy/project-ascent/internal/assistant"
	"github.com/pdiddy/project-ascent/internal/draft"
	"github.com/pdiddy/project-ascent/internal/kv"
	"github.com/pdiddy/project-ascent/internal/model"
	"github.com/pdiddy/project-ascent/internal/plagiarism"
	"github.com/pdiddy/project-ascent/internal/retry"
	"github.com/pdiddy/project-ascent/internal/settings"
	"github.com/pdiddy/project-ascent/pkg/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, backend model.Backend) (*Server, *draft.Store) {
	t.Helper()
	ctx := context.Background()
	store := kv.NewMemory()
	drafts, err := draft.Open(ctx, store, nil)
	require.NoError(t, err)
	arch, err := archive.Load()
	require.NoError(t, err)

	deps := Deps{
		Drafts:     drafts,
		Settings:   settings.New(store),
		Archive:    arch,
		Plagiarism: plagiarism.New(0, rand.New(rand.NewPCG(1, 1))),
	}
	if backend != nil {
		deps.Assistant = assistant.New(backend,
			assistant.WithIdeaPolicy(retry.Policy{MaxAttempts: 3, Delay: time.Millisecond}))
	}
	return New(deps, types.ServerConfig{}, nil), drafts
}

func do(t *testing.T, s *Server, method, path string, body any, hdr ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func staticBackend(reply string, err error) model.Backend {
	return model.BackendFunc(func(context.Context, string, string) (string, error) {
		return reply, err
	})
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t, nil)
	w := do(t, s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestIdeas_OK(t *testing.T) {
	s, _ := newTestServer(t, staticBackend(`{"projectIdeas":[{"title":"A"}]}`, nil))
	w := do(t, s, http.MethodPost, "/api/ideas", types.IdeaRequest{Department: "CS", Interests: "AI"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[Response[ideasResponse]](t, w)
	require.Len(t, resp.Data.ProjectIdeas, 1)
	assert.Equal(t, "A", resp.Data.ProjectIdeas[0].Title)
	assert.Equal(t, types.DifficultyIntermediate, resp.Data.ProjectIdeas[0].Difficulty)
}

func TestIdeas_ValidationError(t *testing.T) {
	s, _ := newTestServer(t, staticBackend("", nil))
	w := do(t, s, http.MethodPost, "/api/ideas", types.IdeaRequest{Department: "CS"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, CodeValidationFailed, resp.Code)
	assert.Contains(t, resp.Fields, "interests")
}

func TestFlowErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		kind   model.Kind
		status int
		code   ErrorCode
	}{
		{"auth", model.KindAuth, http.StatusBadGateway, CodeConfiguration},
		{"quota", model.KindQuota, http.StatusServiceUnavailable, CodeQuotaExceeded},
		{"rate limited", model.KindRateLimited, http.StatusTooManyRequests, CodeRateLimited},
		{"unknown", model.KindUnknown, http.StatusBadGateway, CodeGenerationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t, staticBackend("", &model.Error{Kind: tt.kind, Message: "x"}))
			w := do(t, s, http.MethodPost, "/api/refine", types.RefineRequest{TextToRefine: strings.Repeat("a", 30)})
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode[ErrorResponse](t, w).Code)
		})
	}
}

func TestAuthNoticeText(t *testing.T) {
	s, _ := newTestServer(t, staticBackend("", &model.Error{Kind: model.KindAuth}))
	w := do(t, s, http.MethodPost, "/api/ideas", types.IdeaRequest{Department: "CS", Interests: "AI"})
	resp := decode[ErrorResponse](t, w)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, "Configuration error. Please contact support.", resp.Notice.Description)
}

func TestFlows_NoBackendConfigured(t *testing.T) {
	s, _ := newTestServer(t, nil)
	w := do(t, s, http.MethodPost, "/api/citations", types.CitationRequest{TextSection: strings.Repeat("a", 40)})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestInvalidBody(t *testing.T) {
	s, _ := newTestServer(t, staticBackend("", nil))
	req := httptest.NewRequest(http.MethodPost, "/api/refine", strings.NewReader("{"))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeInvalidParam, decode[ErrorResponse](t, w).Code)
}

func TestInFlightGuard(t *testing.T) {
	entered := make(chan struct{})
	unblock := make(chan struct{})
	var once sync.Once
	backend := model.BackendFunc(func(ctx context.Context, _, _ string) (string, error) {
		once.Do(func() { close(entered) })
		<-unblock
		return `{"refinedText":"done"}`, nil
	})
	s, _ := newTestServer(t, backend)
	body := types.RefineRequest{TextToRefine: strings.Repeat("a", 30)}

	first := make(chan *httptest.ResponseRecorder)
	go func() { first <- do(t, s, http.MethodPost, "/api/refine", body, ClientIDHeader, "tab-1") }()
	<-entered

	dup := do(t, s, http.MethodPost, "/api/refine", body, ClientIDHeader, "tab-1")
	assert.Equal(t, http.StatusConflict, dup.Code)

	other := do(t, s, http.MethodPost, "/api/plagiarism",
		plagiarismRequest{TextToCheck: strings.Repeat("b", 60)}, ClientIDHeader, "tab-1")
	assert.Equal(t, http.StatusOK, other.Code, "a different form is not blocked")

	close(unblock)
	assert.Equal(t, http.StatusOK, (<-first).Code)

	// The slot is released afterwards.
	close2 := do(t, s, http.MethodPost, "/api/refine", body, ClientIDHeader, "tab-1")
	assert.Equal(t, http.StatusOK, close2.Code)
}

func TestGuard(t *testing.T) {
	g := NewGuard()
	release, ok := g.TryAcquire("c", "ideas")
	require.True(t, ok)
	_, ok = g.TryAcquire("c", "ideas")
	assert.False(t, ok)
	_, ok = g.TryAcquire("other", "ideas")
	assert.True(t, ok)
	release()
	_, ok = g.TryAcquire("c", "ideas")
	assert.True(t, ok)
}

func TestGuard_ReleaseForgetsSlot(t *testing.T) {
	g := NewGuard()
	for i := range 100 {
		release, ok := g.TryAcquire("client-"+strconv.Itoa(i), "refine")
		require.True(t, ok)
		release()
		release()
	}
	assert.Equal(t, 0, g.held())

	release, ok := g.TryAcquire("c", "ideas")
	require.True(t, ok)
	assert.Equal(t, 1, g.held())
	release()
	assert.Equal(t, 0, g.held())
}

func TestInFlightGuard_DistinctClientIDsLeaveNoSlots(t *testing.T) {
	s, _ := newTestServer(t, staticBackend(`{"refinedText":"done"}`, nil))
	body := types.RefineRequest{TextToRefine: strings.Repeat("a", 30)}

	for i := range 20 {
		w := do(t, s, http.MethodPost, "/api/refine", body, ClientIDHeader, "tab-"+strconv.Itoa(i))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	assert.Equal(t, 0, s.guard.held())
}

func TestFullProposal_SaveAndDraftRoutes(t *testing.T) {
	d := types.FullProposalDraft{
		Introduction: "I", ProblemStatement: "P", Objectives: "O", ScopeOfStudy: "S",
		SignificanceOfStudy: "Sig", Methodology: "M", ExpectedOutcomes: "E",
	}
	raw, _ := json.Marshal(d)
	s, drafts := newTestServer(t, staticBackend(string(raw), nil))

	w := do(t, s, http.MethodPost, "/api/proposal?save=true",
		types.FullProposalRequest{ProjectTitle: "T", Department: "D"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, drafts.Exists())

	w = do(t, s, http.MethodGet, "/api/draft", nil)
	got := decode[Response[draftResponse]](t, w)
	require.True(t, got.Data.Exists)
	assert.Equal(t, d, *got.Data.Draft)

	w = do(t, s, http.MethodGet, "/api/draft/export?format=html&title=My+Project", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<h1>My Project</h1>")

	w = do(t, s, http.MethodGet, "/api/draft/export?format=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodDelete, "/api/draft", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, drafts.Exists())

	w = do(t, s, http.MethodGet, "/api/draft/export", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPutDraft(t *testing.T) {
	s, drafts := newTestServer(t, nil)
	w := do(t, s, http.MethodPut, "/api/draft", types.FullProposalDraft{Introduction: "Hand written"})
	require.Equal(t, http.StatusOK, w.Code)
	got, ok := drafts.Cached()
	require.True(t, ok)
	assert.Equal(t, "Hand written", got.Introduction)
}

func TestProjects(t *testing.T) {
	s, _ := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/api/projects?q=iot", nil)
	list := decode[Response[[]types.PastProject]](t, w)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "2", list.Data[0].ID)

	w = do(t, s, http.MethodGet, "/api/projects?q=nothing-matches", nil)
	assert.Contains(t, w.Body.String(), `"data":[]`)

	w = do(t, s, http.MethodGet, "/api/projects/facets", nil)
	facets := decode[Response[facetsResponse]](t, w)
	assert.Equal(t, []int{2023, 2022, 2021}, facets.Data.Years)

	w = do(t, s, http.MethodGet, "/api/projects/4", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, s, http.MethodGet, "/api/projects/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlagiarism(t *testing.T) {
	s, _ := newTestServer(t, nil)
	w := do(t, s, http.MethodPost, "/api/plagiarism", plagiarismRequest{TextToCheck: strings.Repeat("x", 60)})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[Response[plagiarismResponse]](t, w)
	assert.GreaterOrEqual(t, res.Data.Score, 5)
	assert.LessOrEqual(t, res.Data.Score, 34)
	assert.NotEmpty(t, res.Data.Message)

	w = do(t, s, http.MethodPost, "/api/plagiarism", plagiarismRequest{TextToCheck: "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTheme(t *testing.T) {
	s, _ := newTestServer(t, nil)
	w := do(t, s, http.MethodGet, "/api/settings/theme", nil)
	assert.Equal(t, settings.ThemeSystem, decode[Response[themeBody]](t, w).Data.Theme)

	w = do(t, s, http.MethodPut, "/api/settings/theme", themeBody{Theme: settings.ThemeDark})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, s, http.MethodGet, "/api/settings/theme", nil)
	assert.Equal(t, settings.ThemeDark, decode[Response[themeBody]](t, w).Data.Theme)

	w = do(t, s, http.MethodPut, "/api/settings/theme", themeBody{Theme: "neon"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t, nil)
	do(t, s, http.MethodGet, "/healthz", nil)
	w := do(t, s, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "project_ascent_http_requests_total")
}
