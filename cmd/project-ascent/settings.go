// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/project-ascent/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Read and change preferences",
}

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|system]",
	Short:     "Show or set the colour theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(settings.ThemeLight), string(settings.ThemeDark), string(settings.ThemeSystem)},
	RunE:      runTheme,
}

var clearDraftsCmd = &cobra.Command{
	Use:   "clear-drafts",
	Short: "Delete the saved proposal draft",
	Args:  cobra.NoArgs,
	RunE:  runDraftClear,
}

func init() {
	settingsCmd.AddCommand(themeCmd, clearDraftsCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	prefs := settings.New(store)

	if len(args) == 1 {
		if err := prefs.SetTheme(cmd.Context(), settings.Theme(args[0])); err != nil {
			return err
		}
	}

	t, err := prefs.Theme(cmd.Context())
	if err != nil {
		return err
	}
	if jsonOutput(cmd) {
		return printJSON(os.Stdout, map[string]string{"theme": string(t)})
	}
	fmt.Fprintln(os.Stdout, t)
	return nil
}
