// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/project-ascent/pkg/types"
)

var refineCmd = &cobra.Command{
	Use:   "refine [text...]",
	Short: "Refine academic text for clarity and tone",
	Long: `Refine rewrites 20 to 10000 characters of proposal text for clarity,
formal academic tone, grammar and readability without adding information.
Pass "-" to read the text from stdin.`,
	RunE: runRefine,
}

func init() {
	refineCmd.Flags().String("file", "", "read the text from a file")

	rootCmd.AddCommand(refineCmd)
}

func runRefine(cmd *cobra.Command, args []string) error {
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

	out, err := svc.Refine(cmd.Context(), types.RefineRequest{TextToRefine: text})
	if err != nil {
		return reportFailure(err)
	}
	if jsonOutput(cmd) {
		return printJSON(os.Stdout, out)
	}
	fmt.Fprintln(os.Stdout, out.RefinedText)
	return nil
}
