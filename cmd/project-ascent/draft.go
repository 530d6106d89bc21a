// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/project-ascent/internal/draft"
	"github.com/pdiddy/project-ascent/internal/kv"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Show, export or clear the saved proposal draft",
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved draft",
	RunE:  runDraftShow,
}

var draftExportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export the saved draft as Markdown or HTML",
	Example: `  project-ascent draft export --format html --title "Smart Grid Fault Detection" > proposal.html`,
	RunE:    runDraftExport,
}

var draftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved draft",
	RunE:  runDraftClear,
}

func init() {
	draftShowCmd.Flags().String("title", "", "heading for the rendered draft")
	draftExportCmd.Flags().String("format", string(draft.FormatMarkdown), "export format: markdown or html")
	draftExportCmd.Flags().String("title", "", "document title")

	draftCmd.AddCommand(draftShowCmd, draftExportCmd, draftClearCmd)
	rootCmd.AddCommand(draftCmd)
}

// withDrafts opens the configured store and the draft store on top of it
// for the duration of fn.
func withDrafts(ctx context.Context, fn func(*draft.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func(s kv.Store) { _ = s.Close() }(store)

	drafts, err := draft.Open(ctx, store, logger)
	if err != nil {
		return err
	}
	return fn(drafts)
}

func runDraftShow(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	return withDrafts(cmd.Context(), func(drafts *draft.Store) error {
		d, ok := drafts.Cached()
		if !ok {
			fmt.Fprintln(os.Stderr, "No saved draft.")
			return nil
		}
		if jsonOutput(cmd) {
			return printJSON(os.Stdout, d)
		}
		fmt.Fprint(os.Stdout, draft.RenderMarkdown(title, d))
		return nil
	})
}

func runDraftExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	title, _ := cmd.Flags().GetString("title")
	return withDrafts(cmd.Context(), func(drafts *draft.Store) error {
		d, ok := drafts.Cached()
		if !ok {
			return fmt.Errorf("no saved draft to export")
		}
		out, err := draft.Render(draft.Format(format), title, d)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, out)
		return nil
	})
}

func runDraftClear(cmd *cobra.Command, args []string) error {
	return withDrafts(cmd.Context(), func(drafts *draft.Store) error {
		if err := drafts.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Draft cleared.")
		return nil
	})
}
