package dto

import "github.com/noah-isme/uta-ingest-api/internal/models"

// ImportRequest carries one raw timetable document plus processing options.
type ImportRequest struct {
	Content      string `json:"content" validate:"required"`
	Variant      string `json:"variant" validate:"omitempty,oneof=plan-of-study complete-timetable"`
	DisableMerge bool   `json:"disableMerge"`
}

// ImportResponse returns the normalized registries with a processing summary.
type ImportResponse struct {
	Variant     string                   `json:"variant"`
	Summary     models.IngestSummary     `json:"summary"`
	Departments []models.Department      `json:"departments"`
	Semesters   []models.Semester        `json:"semesters"`
	Courses     []models.Course          `json:"courses"`
	Faculty     []models.Faculty         `json:"faculty"`
	Rooms       []models.Room            `json:"rooms"`
	Allotments  []models.CourseAllotment `json:"allotments"`
}

// TemplateResponse wraps the downloadable sample document.
type TemplateResponse struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// ExportRequest selects which normalized collection to render as CSV.
type ExportRequest struct {
	Dataset models.NormalizedDataset `json:"dataset" validate:"required"`
	Entity  string                   `json:"entity" validate:"required,oneof=courses faculty rooms allotments"`
}
