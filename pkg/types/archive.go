// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PastProject is an archived, previously approved final-year project.
// Archive records are immutable reference data.
type PastProject struct {
	ID         string   `json:"id" yaml:"id"`
	Title      string   `json:"title" yaml:"title"`
	Abstract   string   `json:"abstract" yaml:"abstract"`
	Year       int      `json:"year" yaml:"year"`
	Department string   `json:"department" yaml:"department"`
	Keywords   []string `json:"keywords" yaml:"keywords"`

	// Supervisor is the supervising lecturer or HOD, when known.
	Supervisor   string `json:"supervisor,omitempty" yaml:"supervisor,omitempty"`
	StudentName  string `json:"studentName,omitempty" yaml:"student_name,omitempty"`
	Grade        string `json:"grade,omitempty" yaml:"grade,omitempty"`
	FileURL      string `json:"fileUrl,omitempty" yaml:"file_url,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty" yaml:"thumbnail_url,omitempty"`
}
