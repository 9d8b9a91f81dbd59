package models

// ManualSchedule captures a fixed day/time assignment parsed from the source
// document. Start and End are 24-hour "HH:MM" values; Raw preserves the
// original interval text (e.g. "08:30 - 10:00 AM").
type ManualSchedule struct {
	Day   string `json:"day"`
	Raw   string `json:"time"`
	Start string `json:"startTime,omitempty"`
	End   string `json:"endTime,omitempty"`
}

// CourseAllotment assigns one faculty member to teach one course to one or
// more class sections. ClassIDs is an order-preserving set; it never contains
// duplicates for the same allotment key.
type CourseAllotment struct {
	CourseID        string          `json:"courseId"`
	FacultyID       string          `json:"facultyId"`
	ClassIDs        []string        `json:"classIds"`
	PreferredRoomID string          `json:"preferredRoomId,omitempty"`
	ManualSchedule  *ManualSchedule `json:"manualSchedule,omitempty"`
}

// HasClass reports whether the allotment already covers the given section.
func (a *CourseAllotment) HasClass(classID string) bool {
	for _, id := range a.ClassIDs {
		if id == classID {
			return true
		}
	}
	return false
}
