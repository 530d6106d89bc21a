// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/project-ascent/internal/archive"
)

var archiveCmd = &cobra.Command{
	Use:   "archive [search terms...]",
	Short: "Browse past approved projects",
	Long: `Archive lists past projects, optionally filtered by a search term matched
against title, abstract and keywords, a department and a year.`,
	Example: `  project-ascent archive machine learning --department "Computer Science"
  project-ascent archive --year 2023
  project-ascent archive --facets`,
	RunE: runArchive,
}

var archiveShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one past project",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveShow,
}

func init() {
	archiveCmd.Flags().String("department", archive.All, "department filter")
	archiveCmd.Flags().String("year", archive.All, "year filter")
	archiveCmd.Flags().Bool("facets", false, "list the departments and years instead")

	archiveCmd.AddCommand(archiveShowCmd)
	rootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, args []string) error {
	a, err := archive.Load()
	if err != nil {
		return err
	}

	if facets, _ := cmd.Flags().GetBool("facets"); facets {
		if jsonOutput(cmd) {
			return printJSON(os.Stdout, map[string]any{
				"departments": a.Departments(),
				"years":       a.Years(),
			})
		}
		fmt.Fprintf(os.Stdout, "Departments: %s\n", strings.Join(a.Departments(), ", "))
		years := make([]string, 0, len(a.Years()))
		for _, y := range a.Years() {
			years = append(years, fmt.Sprint(y))
		}
		fmt.Fprintf(os.Stdout, "Years:       %s\n", strings.Join(years, ", "))
		return nil
	}

	department, _ := cmd.Flags().GetString("department")
	year, _ := cmd.Flags().GetString("year")
	projects := a.Filter(archive.Query{
		Search:     strings.Join(args, " "),
		Department: department,
		Year:       year,
	})

	if jsonOutput(cmd) {
		return printJSON(os.Stdout, projects)
	}
	renderProjects(os.Stdout, projects)
	return nil
}

func runArchiveShow(cmd *cobra.Command, args []string) error {
	a, err := archive.Load()
	if err != nil {
		return err
	}
	p, ok := a.Get(args[0])
	if !ok {
		return fmt.Errorf("project %q not found", args[0])
	}
	if jsonOutput(cmd) {
		return printJSON(os.Stdout, p)
	}
	renderProject(os.Stdout, p)
	return nil
}
