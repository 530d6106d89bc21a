// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the assistant flows and supporting stores as a
// JSON HTTP API for a browser front end.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pdiddy/project-ascent/internal/archive"
	"github.com/pdiddy/project-ascent/internal/assistant"
	"github.com/pdiddy/project-ascent/internal/draft"
	"github.com/pdiddy/project-ascent/internal/plagiarism"
	"github.com/pdiddy/project-ascent/internal/settings"
	"github.com/pdiddy/project-ascent/pkg/types"
)

const (
	defaultAddr            = ":8080"
	defaultShutdownTimeout = 10 * time.Second
)

// Deps are the components the API serves. Assistant may be nil when no
// model backend is configured; flow routes then answer 503.
type Deps struct {
	Assistant  *assistant.Service
	Drafts     *draft.Store
	Settings   *settings.Store
	Archive    *archive.Archive
	Plagiarism *plagiarism.Checker
}

// Server is the HTTP API.
type Server struct {
	deps   Deps
	cfg    types.ServerConfig
	log    *zap.Logger
	guard  *Guard
	engine *gin.Engine
}

// New builds the router.
func New(deps Deps, cfg types.ServerConfig, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	s := &Server{deps: deps, cfg: cfg, log: log, guard: NewGuard()}
	s.engine = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), recovery(s.log), accessLog(s.log), httpMetrics(), corsMiddleware(s.cfg.AllowedOrigins))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/ideas", s.inFlight("ideas"), s.generateIdeas)
		api.POST("/outline", s.inFlight("outline"), s.chapterOutline)
		api.POST("/proposal/outline", s.inFlight("proposal-outline"), s.proposalOutline)
		api.POST("/proposal", s.inFlight("proposal"), s.fullProposal)
		api.POST("/refine", s.inFlight("refine"), s.refine)
		api.POST("/citations", s.inFlight("citations"), s.citations)

		api.GET("/draft", s.getDraft)
		api.PUT("/draft", s.putDraft)
		api.DELETE("/draft", s.deleteDraft)
		api.GET("/draft/export", s.exportDraft)

		api.GET("/projects", s.listProjects)
		api.GET("/projects/facets", s.projectFacets)
		api.GET("/projects/:id", s.getProject)

		api.POST("/plagiarism", s.inFlight("plagiarism"), s.checkPlagiarism)

		api.GET("/settings/theme", s.getTheme)
		api.PUT("/settings/theme", s.putTheme)
	}
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
