// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/project-ascent/internal/archive"
	"github.com/pdiddy/project-ascent/internal/assistant"
	"github.com/pdiddy/project-ascent/internal/draft"
	"github.com/pdiddy/project-ascent/internal/model"
	"github.com/pdiddy/project-ascent/internal/plagiarism"
	"github.com/pdiddy/project-ascent/internal/server"
	"github.com/pdiddy/project-ascent/internal/settings"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assistant as a JSON API",
	Long: `Serve exposes every feature over HTTP under /api, with /healthz and
Prometheus metrics on /metrics. Without an API key the archive, drafts,
settings and plagiarism routes still work; the generation routes answer 503.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var svc *assistant.Service
	switch svc, err = newAssistant(cfg); {
	case err == nil:
	case errors.Is(err, model.ErrNoAPIKey):
		logger.Warn("no API key configured; generation routes are disabled", zap.String("provider", providerName(cfg.AI.Provider)))
	default:
		return err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var (
		a      *archive.Archive
		drafts *draft.Store
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		a, err = archive.Load()
		return err
	})
	g.Go(func() error {
		var err error
		drafts, err = draft.Open(gctx, store, logger)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	srv := server.New(server.Deps{
		Assistant:  svc,
		Drafts:     drafts,
		Settings:   settings.New(store),
		Archive:    a,
		Plagiarism: plagiarism.New(cfg.Plagiarism.Delay, nil),
	}, cfg.Server, logger)
	return srv.Run(ctx)
}
