package models

// Department represents an academic department discovered during ingestion.
// Source documents carry no separate code column, so code mirrors name at creation.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// SemesterType distinguishes academic term seasons.
type SemesterType string

const (
	SemesterTypeFall   SemesterType = "Fall"
	SemesterTypeSpring SemesterType = "Spring"
	SemesterTypeSummer SemesterType = "Summer"
)

// Semester represents a calendar term (e.g. "Semester 1", "Fall 2025").
type Semester struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Type   SemesterType `json:"type"`
	Year   int          `json:"year"`
	Active bool         `json:"active"`
}

// SemesterSchema is an external curriculum reference listing the courses that
// belong to a department-semester combination. It is consumed by the class
// metadata resolver for inference scoring and is never produced by ingestion.
type SemesterSchema struct {
	ID           string   `json:"id"`
	DepartmentID string   `json:"departmentId"`
	SemesterID   string   `json:"semesterId"`
	CourseIDs    []string `json:"courseIds"`
}
