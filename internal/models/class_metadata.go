package models

// Placeholder values reported when the resolver cannot conclusively determine
// the owning department or semester of a class.
const (
	UnknownCode           = "Unknown"
	UnknownDepartmentName = "Unknown Dept"
)

// ClassMetadata is the derived, read-only inference result for a class section
// identifier. It owns no data of its own and is recomputable at any time from
// the normalized registries plus curriculum schema data.
type ClassMetadata struct {
	ClassID        string `json:"classId"`
	DepartmentCode string `json:"departmentCode,omitempty"`
	DepartmentName string `json:"departmentName,omitempty"`
	Semester       string `json:"semester,omitempty"`
	SemesterNum    int    `json:"semesterNum,omitempty"`
	DisplayName    string `json:"displayName"`
}
