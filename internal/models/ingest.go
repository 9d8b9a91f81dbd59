package models

// NormalizedDataset bundles the registries produced by one ingestion run, in
// order of first appearance. It is also the shape handed across the boundary
// to the external scheduling engine and accepted back by the resolver/exporter.
type NormalizedDataset struct {
	Departments []Department      `json:"departments"`
	Semesters   []Semester        `json:"semesters"`
	Courses     []Course          `json:"courses"`
	Faculty     []Faculty         `json:"faculty"`
	Rooms       []Room            `json:"rooms"`
	Allotments  []CourseAllotment `json:"allotments"`
}

// IngestSummary reports per-run counts for data quality inspection. Rows with
// a missing mandatory field are counted as skipped, not surfaced as errors.
type IngestSummary struct {
	TotalRows          int `json:"totalRows"`
	SkippedRows        int `json:"skippedRows"`
	UniqueDepartments  int `json:"uniqueDepartments"`
	UniqueSemesters    int `json:"uniqueSemesters"`
	UniqueCourses      int `json:"uniqueCourses"`
	UniqueFaculty      int `json:"uniqueFaculty"`
	UniqueRooms        int `json:"uniqueRooms"`
	Allotments         int `json:"allotments"`
	SchedulesExtracted int `json:"schedulesExtracted"`
}
