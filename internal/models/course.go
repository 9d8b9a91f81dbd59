package models

// CourseType categorises curriculum placement.
type CourseType string

const (
	CourseTypeCore     CourseType = "Core"
	CourseTypeMajor    CourseType = "Major"
	CourseTypeElective CourseType = "Elective"
)

// Course represents a normalized course offering. Code is either taken verbatim
// from the source document or synthesized from the subject name; lab sections
// carry a distinguishing suffix.
type Course struct {
	ID                string     `json:"id"`
	Code              string     `json:"code"`
	Name              string     `json:"name"`
	Credits           int        `json:"credits"`
	Type              CourseType `json:"type"`
	Semester          string     `json:"semester"`
	Department        string     `json:"department"`
	RequiresLab       bool       `json:"requiresLab"`
	EstimatedStudents int        `json:"estimatedStudents"`
}

// Faculty represents an instructor extracted from the teacher column.
// Name is the cleaned form (section-code tokens and placeholder annotations stripped).
type Faculty struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Initials       string `json:"initials"`
	MaxWeeklyHours int    `json:"maxWeeklyHours"`
	Department     string `json:"department"`
}

// RoomType distinguishes lecture halls from lab rooms.
type RoomType string

const (
	RoomTypeLecture RoomType = "lecture"
	RoomTypeLab     RoomType = "lab"
)

// Room represents a teaching room referenced by the source document.
type Room struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Capacity int      `json:"capacity"`
	Type     RoomType `json:"type"`
	Building string   `json:"building,omitempty"`
}
