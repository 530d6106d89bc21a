// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/project-ascent/internal/plagiarism"
)

var plagiarismCmd = &cobra.Command{
	Use:   "plagiarism [text...]",
	Short: "Run the simulated similarity check",
	Long: `Plagiarism returns a simulated similarity score between 5% and 34% after
a short delay. Scores above 20% are flagged. No real comparison is made.`,
	RunE: runPlagiarism,
}

func init() {
	plagiarismCmd.Flags().String("file", "", "read the text from a file")

	rootCmd.AddCommand(plagiarismCmd)
}

func runPlagiarism(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	res, err := plagiarism.New(cfg.Plagiarism.Delay, nil).Check(cmd.Context(), text)
	if err != nil {
		return reportFailure(err)
	}
	if jsonOutput(cmd) {
		return printJSON(os.Stdout, struct {
			plagiarism.Result
			Message string `json:"message"`
		}{res, res.Message()})
	}
	fmt.Fprintf(os.Stdout, "Similarity score: %d%%\n%s\n", res.Score, res.Message())
	return nil
}
