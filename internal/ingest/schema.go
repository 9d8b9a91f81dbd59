package ingest

import "strings"

// Variant identifies one of the two recognized source document layouts.
type Variant string

const (
	// VariantPlanOfStudy documents carry no explicit course-code or
	// credit-hours columns and use a bare integer semester level.
	VariantPlanOfStudy Variant = "plan-of-study"
	// VariantTimetable documents carry explicit course-code, credit-hours
	// and day/hour columns for a manually fixed schedule.
	VariantTimetable Variant = "complete-timetable"
)

type role int

const (
	roleDepartment role = iota
	roleSemester
	roleSection
	roleSubject
	roleCourseCode
	roleCreditHours
	roleTeacher
	roleRoom
	roleDay
	roleHour
)

var headerLabels = map[role]string{
	roleDepartment:  "department",
	roleSemester:    "semester",
	roleSection:     "section",
	roleSubject:     "subject",
	roleCourseCode:  "course code",
	roleCreditHours: "credit hours",
	roleTeacher:     "teachers",
	roleRoom:        "room",
	roleDay:         "day",
	roleHour:        "hour",
}

// columns maps semantic roles to header positions. Absent roles are simply
// missing from the map; downstream logic substitutes defaults.
type columns map[role]int

func mapColumns(header []string) columns {
	cols := make(columns, len(headerLabels))
	for idx, label := range header {
		normalized := strings.ToLower(strings.TrimSpace(label))
		for r, want := range headerLabels {
			if normalized == want {
				cols[r] = idx
				break
			}
		}
	}
	return cols
}

func (c columns) has(r role) bool {
	_, ok := c[r]
	return ok
}

// value returns the trimmed field for the role, or "" when the column is
// absent or the row is short.
func (c columns) value(row []string, r role) string {
	idx, ok := c[r]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Settings carries the tunable defaults applied while normalizing rows.
// Zero values fall back to the historical defaults of each source variant.
type Settings struct {
	DefaultCredits             int
	LabCredits                 int
	RoomCapacity               int
	PlanWeeklyHours            int
	TimetableWeeklyHours       int
	PlanEstimatedStudents      int
	TimetableEstimatedStudents int
	SemesterYear               int
}

func (s Settings) withDefaults() Settings {
	if s.DefaultCredits == 0 {
		s.DefaultCredits = 3
	}
	if s.LabCredits == 0 {
		s.LabCredits = 1
	}
	if s.RoomCapacity == 0 {
		s.RoomCapacity = 50
	}
	if s.PlanWeeklyHours == 0 {
		s.PlanWeeklyHours = 12
	}
	if s.TimetableWeeklyHours == 0 {
		s.TimetableWeeklyHours = 20
	}
	if s.PlanEstimatedStudents == 0 {
		s.PlanEstimatedStudents = 40
	}
	if s.TimetableEstimatedStudents == 0 {
		s.TimetableEstimatedStudents = 50
	}
	if s.SemesterYear == 0 {
		s.SemesterYear = 2025
	}
	return s
}

// Profile bundles the schema-variant-specific policies threaded through the
// normalizer: merge semantics, section-id qualification and per-variant
// defaults. It is passed explicitly rather than re-derived per column lookup.
type Profile struct {
	Variant Variant

	// MergeAllotments coalesces rows sharing the same (course, faculty)
	// pair into one allotment; when false every row keeps its own.
	MergeAllotments bool
	// QualifyClassIDs prefixes section codes with department and semester
	// level so short section codes stay unique across departments.
	QualifyClassIDs bool
	// FixedSemester registers a single fall term instead of deriving one
	// semester per numeric level.
	FixedSemester bool

	DefaultCredits    int
	LabCredits        int
	RoomCapacity      int
	WeeklyHours       int
	EstimatedStudents int
	SemesterYear      int
}

// PlanOfStudyProfile returns the policy set for plan-of-study documents.
func PlanOfStudyProfile(s Settings) Profile {
	s = s.withDefaults()
	return Profile{
		Variant:           VariantPlanOfStudy,
		MergeAllotments:   true,
		QualifyClassIDs:   true,
		FixedSemester:     false,
		DefaultCredits:    s.DefaultCredits,
		LabCredits:        s.LabCredits,
		RoomCapacity:      s.RoomCapacity,
		WeeklyHours:       s.PlanWeeklyHours,
		EstimatedStudents: s.PlanEstimatedStudents,
		SemesterYear:      s.SemesterYear,
	}
}

// TimetableProfile returns the policy set for complete-timetable documents.
// Section identifiers stay raw here: these documents carry a department
// column per row, so the importer has never qualified them.
func TimetableProfile(s Settings) Profile {
	s = s.withDefaults()
	return Profile{
		Variant:           VariantTimetable,
		MergeAllotments:   true,
		QualifyClassIDs:   false,
		FixedSemester:     true,
		DefaultCredits:    s.DefaultCredits,
		LabCredits:        s.LabCredits,
		RoomCapacity:      s.RoomCapacity,
		WeeklyHours:       s.TimetableWeeklyHours,
		EstimatedStudents: s.TimetableEstimatedStudents,
		SemesterYear:      s.SemesterYear,
	}
}

// DetectProfile inspects the header row and selects the schema variant.
// Day/hour columns mark a complete timetable; anything else is treated as a
// plan of study. A course-code column alone is not a timetable signal because
// cleaned plan-of-study exports carry one too, usually empty.
func DetectProfile(header []string, s Settings) Profile {
	cols := mapColumns(header)
	if cols.has(roleDay) || cols.has(roleHour) {
		return TimetableProfile(s)
	}
	return PlanOfStudyProfile(s)
}
