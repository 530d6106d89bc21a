// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/project-ascent/pkg/types"
)

var citationsCmd = &cobra.Command{
	Use:   "citations [text...]",
	Short: "Suggest citation topics, search keywords and example references",
	Long: `Citations analyses 30 to 5000 characters of a proposal section and
suggests topics that need citations, keywords for academic search engines
and illustrative APA-style references. Pass "-" to read from stdin.`,
	RunE: runCitations,
}

func init() {
	citationsCmd.Flags().String("file", "", "read the text from a file")

	rootCmd.AddCommand(citationsCmd)
}

func runCitations(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := newAssistant(cfg)
	if err != nil {
		return err
	}

	out, err := svc.Citations(cmd.Context(), types.CitationRequest{TextSection: text})
	if err != nil {
		return reportFailure(err)
	}
	if jsonOutput(cmd) {
		return printJSON(os.Stdout, out)
	}
	renderCitations(os.Stdout, out)
	return nil
}
