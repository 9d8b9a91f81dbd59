package dto

import "github.com/noah-isme/uta-ingest-api/internal/models"

// ResolveRequest asks for class metadata against caller-supplied registries.
type ResolveRequest struct {
	ClassIDs    []string                 `json:"classIds" validate:"required,min=1,dive,required"`
	Allotments  []models.CourseAllotment `json:"allotments"`
	Courses     []models.Course          `json:"courses"`
	Departments []models.Department      `json:"departments"`
	Semesters   []models.Semester        `json:"semesters"`
	Schemas     []models.SemesterSchema  `json:"semesterSchemas"`
}

// ResolveResponse maps each queried classId to its inferred metadata.
type ResolveResponse struct {
	Results []models.ClassMetadata `json:"results"`
	Cached  bool                   `json:"cached"`
}
