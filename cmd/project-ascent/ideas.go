// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/project-ascent/pkg/types"
)

var ideasCmd = &cobra.Command{
	Use:   "ideas",
	Short: "Generate six final-year project ideas",
	Long: `Ideas generates six project ideas for a department and a set of
interests. Each idea has a title, explanation, research gap, difficulty,
estimated duration and required skills. Transient failures are retried
up to three times.`,
	Example: `  project-ascent ideas --department "Computer Science" --interests "AI, healthcare"`,
	RunE: runIdeas,
}

func init() {
	ideasCmd.Flags().String("department", "", "student department")
	ideasCmd.Flags().String("interests", "", "areas of interest")

	rootCmd.AddCommand(ideasCmd)
}

func runIdeas(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := newAssistant(cfg)
	if err != nil {
		return err
	}

	department, _ := cmd.Flags().GetString("department")
	interests, _ := cmd.Flags().GetString("interests")

	ideas, err := svc.GenerateIdeas(cmd.Context(), types.IdeaRequest{
		Department: department,
		Interests:  interests,
	})
	if err != nil {
		return reportFailure(err)
	}

	if jsonOutput(cmd) {
		return printJSON(os.Stdout, types.IdeaList{ProjectIdeas: ideas})
	}
	renderIdeas(os.Stdout, ideas)
	return nil
}
