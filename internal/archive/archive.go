// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive serves the read-only catalogue of past projects that
// students browse for inspiration.
package archive

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/project-ascent/pkg/types"
)

//go:embed projects.yaml
var projectsYAML []byte

// All matches every department or year in a Query.
const All = "all"

// Query filters the archive. Empty fields match everything.
type Query struct {
	Search     string
	Department string
	Year       string
}

// Archive is an immutable, in-memory list of past projects.
type Archive struct {
	projects []types.PastProject
}

// Load parses the embedded catalogue.
func Load() (*Archive, error) {
	return Parse(projectsYAML)
}

// Parse builds an Archive from a YAML list of projects.
func Parse(data []byte) (*Archive, error) {
	var projects []types.PastProject
	if err := yaml.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parsing archive: %w", err)
	}
	return &Archive{projects: projects}, nil
}

// Projects returns every project in catalogue order.
func (a *Archive) Projects() []types.PastProject {
	return append([]types.PastProject(nil), a.projects...)
}

// Get returns the project with id.
func (a *Archive) Get(id string) (types.PastProject, bool) {
	for _, p := range a.projects {
		if p.ID == id {
			return p, true
		}
	}
	return types.PastProject{}, false
}

// Filter returns the projects matching q in catalogue order. The search
// term matches title, abstract or any keyword, ignoring case.
func (a *Archive) Filter(q Query) []types.PastProject {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	var out []types.PastProject
	for _, p := range a.projects {
		if !matchesTerm(p, term) {
			continue
		}
		if !isAll(q.Department) && p.Department != q.Department {
			continue
		}
		if !isAll(q.Year) && strconv.Itoa(p.Year) != strings.TrimSpace(q.Year) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Departments returns the distinct departments, sorted.
func (a *Archive) Departments() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range a.projects {
		if !seen[p.Department] {
			seen[p.Department] = true
			out = append(out, p.Department)
		}
	}
	sort.Strings(out)
	return out
}

// Years returns the distinct years, newest first.
func (a *Archive) Years() []int {
	seen := map[int]bool{}
	var out []int
	for _, p := range a.projects {
		if !seen[p.Year] {
			seen[p.Year] = true
			out = append(out, p.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func matchesTerm(p types.PastProject, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Abstract), term) {
		return true
	}
	for _, k := range p.Keywords {
		if strings.Contains(strings.ToLower(k), term) {
			return true
		}
	}
	return false
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, All)
}
