// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/project-ascent/pkg/types"
)

var outlineCmd = &cobra.Command{
	Use:   "outline [title or abstract...]",
	Short: "Draft a six-chapter report outline",
	Long: `Outline drafts a typical six-chapter outline for a final-year report from
a project title or abstract. Pass "-" to read the abstract from stdin.`,
	RunE: runOutline,
}

func init() {
	outlineCmd.Flags().String("file", "", "read the title or abstract from a file")

	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
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

	out, err := svc.ChapterOutline(cmd.Context(), types.OutlineRequest{ProjectTitleOrAbstract: text})
	if err != nil {
		return reportFailure(err)
	}
	if jsonOutput(cmd) {
		return printJSON(os.Stdout, out)
	}
	renderChapters(os.Stdout, out)
	return nil
}
