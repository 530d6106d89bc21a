// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/project-ascent/internal/model"
	"github.com/pdiddy/project-ascent/internal/plagiarism"
	"github.com/pdiddy/project-ascent/internal/retry"
	"github.com/pdiddy/project-ascent/pkg/types"
)

// setDefaults registers every config key, including the ones without a
// meaningful default, so each can be set from the environment.
func setDefaults() {
	viper.SetDefault("ai.provider", string(types.ProviderAnthropic))
	viper.SetDefault("ai.model", "")
	viper.SetDefault("ai.api_key", "")
	viper.SetDefault("ai.base_url", "")
	viper.SetDefault("ai.max_tokens", model.DefaultMaxTokens)
	viper.SetDefault("ai.timeout", 60*time.Second)
	viper.SetDefault("ai.max_attempts", retry.DefaultMaxAttempts)
	viper.SetDefault("ai.retry_delay", retry.BaseDelay)

	viper.SetDefault("store.backend", string(types.StoreFile))
	viper.SetDefault("store.path", "")
	viper.SetDefault("store.redis_url", "")
	viper.SetDefault("store.namespace", "project-ascent")

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.allowed_origins", []string{})
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)

	viper.SetDefault("plagiarism.delay", plagiarism.DefaultDelay)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
}

// loadConfig decodes the merged flags, environment and config file. The API
// key falls back to the .secrets/ file of the selected provider.
func loadConfig() (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.AppConfig{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = loadedSecrets.APIKey(cfg.AI.Provider)
	}
	return cfg, nil
}
