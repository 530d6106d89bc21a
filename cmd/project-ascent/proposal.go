// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/project-ascent/internal/draft"
	"github.com/pdiddy/project-ascent/pkg/types"
)

var proposalCmd = &cobra.Command{
	Use:   "proposal",
	Short: "Draft proposal outlines and full proposals",
}

var proposalOutlineCmd = &cobra.Command{
	Use:   "outline [project title...]",
	Short: "Draft a proposal introduction and chapter outline",
	Args:  cobra.ArbitraryArgs,
	RunE:  runProposalOutline,
}

var proposalFullCmd = &cobra.Command{
	Use:   "full",
	Short: "Generate a seven-section project proposal",
	Long: `Full generates a proposal with introduction, problem statement, objectives,
scope, significance, methodology and expected outcomes. With --save the
result replaces the saved draft.`,
	Example: `  project-ascent proposal full --title "Smart Grid Fault Detection" --department "Electrical Engineering" --save`,
	RunE:    runProposalFull,
}

func init() {
	proposalFullCmd.Flags().String("title", "", "project title")
	proposalFullCmd.Flags().String("department", "", "department")
	proposalFullCmd.Flags().String("abstract", "", "optional abstract or keywords")
	proposalFullCmd.Flags().Bool("save", false, "save the generated proposal as the current draft")

	proposalCmd.AddCommand(proposalOutlineCmd, proposalFullCmd)
	rootCmd.AddCommand(proposalCmd)
}

func runProposalOutline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := newAssistant(cfg)
	if err != nil {
		return err
	}

	out, err := svc.ProposalOutline(cmd.Context(), types.ProposalOutlineRequest{
		ProjectTitle: strings.Join(args, " "),
	})
	if err != nil {
		return reportFailure(err)
	}
	if jsonOutput(cmd) {
		return printJSON(os.Stdout, out)
	}
	renderProposalOutline(os.Stdout, out)
	return nil
}

func runProposalFull(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := newAssistant(cfg)
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	department, _ := cmd.Flags().GetString("department")
	abstract, _ := cmd.Flags().GetString("abstract")
	save, _ := cmd.Flags().GetBool("save")

	out, err := svc.FullProposal(cmd.Context(), types.FullProposalRequest{
		ProjectTitle:       title,
		Department:         department,
		AbstractOrKeywords: abstract,
	})
	if err != nil {
		return reportFailure(err)
	}

	if save {
		store, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		drafts, err := draft.Open(cmd.Context(), store, logger)
		if err != nil {
			return err
		}
		if err := drafts.Save(cmd.Context(), out); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Draft saved.")
	}

	if jsonOutput(cmd) {
		return printJSON(os.Stdout, out)
	}
	fmt.Fprint(os.Stdout, draft.RenderMarkdown(title, out))
	return nil
}
