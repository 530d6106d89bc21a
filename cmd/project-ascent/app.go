// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/project-ascent/internal/assistant"
	"github.com/pdiddy/project-ascent/internal/kv"
	"github.com/pdiddy/project-ascent/internal/model"
	"github.com/pdiddy/project-ascent/internal/retry"
	"github.com/pdiddy/project-ascent/internal/validate"
	"github.com/pdiddy/project-ascent/pkg/types"
)

// newAssistant builds the flow service from cfg.
func newAssistant(cfg types.AppConfig) (*assistant.Service, error) {
	backend, err := model.NewBackend(cfg.AI)
	if errors.Is(err, model.ErrNoAPIKey) {
		return nil, fmt.Errorf("%w for provider %s: set ai.api_key, PROJECT_ASCENT_AI_API_KEY or .secrets/%s-api-key",
			model.ErrNoAPIKey, providerName(cfg.AI.Provider), providerName(cfg.AI.Provider))
	}
	if err != nil {
		return nil, err
	}
	policy := retry.Policy{MaxAttempts: cfg.AI.MaxAttempts, Delay: cfg.AI.RetryDelay}
	return assistant.New(backend, assistant.WithLogger(logger), assistant.WithIdeaPolicy(policy)), nil
}

func providerName(p types.AIProvider) string {
	if p == "" {
		return string(types.ProviderAnthropic)
	}
	return string(p)
}

// openStore opens the configured kv backend. Callers close it.
func openStore(ctx context.Context, cfg types.AppConfig) (kv.Store, error) {
	return kv.Open(ctx, cfg.Store)
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// reportFailure prints the user-facing summary of err to stderr and
// returns err for cobra's exit status.
func reportFailure(err error) error {
	var verr *validate.Error
	if errors.As(err, &verr) {
		fields := make([]string, 0, len(verr.Fields))
		for f := range verr.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			for _, m := range verr.Fields[f] {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", f, m)
			}
		}
		return fmt.Errorf("invalid input")
	}
	n := assistant.UserMessage(err)
	fmt.Fprintf(os.Stderr, "%s: %s\n", n.Title, n.Description)
	return err
}

// readText returns the text argument, the contents of --file, or stdin
// when the argument is "-".
func readText(cmd *cobra.Command, args []string) (string, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), nil
	}
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}
