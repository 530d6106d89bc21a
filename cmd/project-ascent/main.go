// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the project-ascent CLI. Each feature
// of the proposal assistant is a subcommand; serve exposes the same
// features as an HTTP API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/project-ascent/internal/logging"
	"github.com/pdiddy/project-ascent/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// logger is built from the log config in PersistentPreRunE.
var logger = zap.NewNop()

// rootCmd is the base command for the project-ascent CLI.
var rootCmd = &cobra.Command{
	Use:   "project-ascent",
	Short: "AI assistant for final-year project proposals",
	Long: `project-ascent helps final-year students find project ideas, outline
reports, draft and refine proposals, and find citations. Generation is
delegated to an LLM (Anthropic or OpenAI); drafts and preferences are kept
in a local store.

Run "project-ascent serve" to expose the same features as a JSON API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log, err := logging.New(viper.GetString("log.level"), viper.GetString("log.format"))
		if err != nil {
			return err
		}
		logger = log

		s, err := secrets.Load(secrets.DefaultDir, logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			logger.Debug("loaded secrets", zap.Strings("keys", keys))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./project-ascent.yaml or ~/.config/project-ascent/project-ascent.yaml)")
	pf.String("provider", "", "AI provider: anthropic or openai")
	pf.String("model", "", "model identifier")
	pf.String("store", "", "store backend: file, sqlite, redis or memory")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.Bool("json", false, "print results as JSON")

	_ = viper.BindPFlag("ai.provider", pf.Lookup("provider"))
	_ = viper.BindPFlag("ai.model", pf.Lookup("model"))
	_ = viper.BindPFlag("store.backend", pf.Lookup("store"))
	_ = viper.BindPFlag("log.level", pf.Lookup("log-level"))
}

func initConfig() {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("project-ascent")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "project-ascent"))
		}
	}

	bindEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// bindEnv maps PROJECT_ASCENT_<SECTION>_<KEY> variables onto config keys.
// AutomaticEnv only resolves keys viper already knows, so every key is
// registered through setDefaults first.
func bindEnv() {
	viper.SetEnvPrefix("PROJECT_ASCENT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
