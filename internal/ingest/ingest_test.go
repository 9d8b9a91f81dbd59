package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uta-ingest-api/internal/models"
	appErrors "github.com/noah-isme/uta-ingest-api/pkg/errors"
)

const planOfStudyDoc = `Department,Semester,Section,Subject,Course Code,Credit Hours,Teachers,Room
BS-AI,1,HM,Computer Programming,,3,Dr. John Smith,R6
BS-AI,1,HM,Computer Programming Lab,,1,Dr. John Smith,CS-C1`

const timetableDoc = `Department,Day,Hour,Semester,Section,Subject,Course Code,Credit Hours,Teachers,Room
BS-AI,Monday,08:30 - 10:00 AM,1,HM,Computer Programming,CS1410,3,Dr. John Smith,R6
BS-CS,Wednesday,1:00 - 2:30 PM,2,EM,Data Structures,CS2210,3,Prof. Alice Johnson,R8`

func newTestIngestor() *Ingestor {
	return New(Settings{}, nil)
}

func TestIngestRequiresHeaderAndDataRow(t *testing.T) {
	for _, content := range []string{
		"",
		"Department,Subject",
		"\n \n",
	} {
		_, err := newTestIngestor().Ingest(content, Options{})
		require.Error(t, err)
		assert.ErrorIs(t, err, appErrors.ErrStructural)
	}
}

func TestIngestPlanOfStudyScenario(t *testing.T) {
	result, err := newTestIngestor().Ingest(planOfStudyDoc, Options{})
	require.NoError(t, err)

	assert.Equal(t, VariantPlanOfStudy, result.Profile.Variant)
	require.Len(t, result.Dataset.Departments, 1)
	assert.Equal(t, "BS-AI", result.Dataset.Departments[0].Name)
	assert.Equal(t, "BS-AI", result.Dataset.Departments[0].Code)

	require.Len(t, result.Dataset.Semesters, 1)
	assert.Equal(t, "Semester 1", result.Dataset.Semesters[0].Name)
	assert.Equal(t, models.SemesterTypeFall, result.Dataset.Semesters[0].Type)

	require.Len(t, result.Dataset.Faculty, 1)
	assert.Equal(t, "Dr. John Smith", result.Dataset.Faculty[0].Name)
	assert.Equal(t, "DJS", result.Dataset.Faculty[0].Initials)
	assert.Equal(t, 12, result.Dataset.Faculty[0].MaxWeeklyHours)

	require.Len(t, result.Dataset.Courses, 2)
	assert.Equal(t, "CP", result.Dataset.Courses[0].Code)
	assert.Equal(t, "CPL-L", result.Dataset.Courses[1].Code)
	assert.True(t, result.Dataset.Courses[1].RequiresLab)
	assert.Equal(t, "Semester 1", result.Dataset.Courses[0].Semester)
	assert.Equal(t, 40, result.Dataset.Courses[0].EstimatedStudents)

	assert.Len(t, result.Dataset.Rooms, 2)

	require.Len(t, result.Dataset.Allotments, 2)
	for _, allotment := range result.Dataset.Allotments {
		assert.Equal(t, []string{"BS-AI-1-HM"}, allotment.ClassIDs)
		assert.Equal(t, result.Dataset.Faculty[0].ID, allotment.FacultyID)
	}
	assert.NotEqual(t, result.Dataset.Allotments[0].CourseID, result.Dataset.Allotments[1].CourseID)
}

func TestIngestIdempotentGetOrCreate(t *testing.T) {
	doc := `Department,Semester,Section,Subject,Teachers
BS-AI,1,A,Networks,Dr. Ada
BS-AI,1,B,Databases,Dr. Ada`

	result, err := newTestIngestor().Ingest(doc, Options{})
	require.NoError(t, err)

	assert.Len(t, result.Dataset.Departments, 1)
	assert.Len(t, result.Dataset.Semesters, 1)
	assert.Len(t, result.Dataset.Faculty, 1)
	assert.Equal(t, 1, result.Summary.UniqueDepartments)
}

func TestIngestAllotmentMergeInvariant(t *testing.T) {
	doc := `Department,Semester,Section,Subject,Teachers
BS-AI,1,A,Networks,Dr. Ada
BS-AI,1,B,Networks,Dr. Ada
BS-AI,1,A,Networks,Dr. Ada`

	result, err := newTestIngestor().Ingest(doc, Options{})
	require.NoError(t, err)

	require.Len(t, result.Dataset.Allotments, 1)
	assert.Equal(t, []string{"BS-AI-1-A", "BS-AI-1-B"}, result.Dataset.Allotments[0].ClassIDs)
}

func TestIngestDisableMergeKeepsRowAllotments(t *testing.T) {
	doc := `Department,Semester,Section,Subject,Teachers
BS-AI,1,A,Networks,Dr. Ada
BS-AI,1,B,Networks,Dr. Ada`

	result, err := newTestIngestor().Ingest(doc, Options{DisableMerge: true})
	require.NoError(t, err)

	require.Len(t, result.Dataset.Allotments, 2)
	assert.Equal(t, []string{"BS-AI-1-A"}, result.Dataset.Allotments[0].ClassIDs)
	assert.Equal(t, []string{"BS-AI-1-B"}, result.Dataset.Allotments[1].ClassIDs)
}

func TestIngestPlaceholderFacultyExcluded(t *testing.T) {
	doc := `Department,Semester,Section,Subject,Teachers
BS-AI,1,A,Networks,NF
BS-AI,1,A,Databases,new faculty
BS-AI,1,A,Compilers,SS12 (NF)`

	result, err := newTestIngestor().Ingest(doc, Options{})
	require.NoError(t, err)

	assert.Empty(t, result.Dataset.Faculty)
	assert.Empty(t, result.Dataset.Allotments)
	// The rows themselves still register their courses.
	assert.Len(t, result.Dataset.Courses, 3)
}

func TestIngestSkipsRowsMissingMandatoryFields(t *testing.T) {
	doc := `Department,Semester,Section,Subject,Teachers
,1,A,Networks,Dr. Ada
BS-AI,1,A,,Dr. Ada
BS-AI,1,A,Networks,Dr. Ada`

	result, err := newTestIngestor().Ingest(doc, Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Summary.TotalRows)
	assert.Equal(t, 2, result.Summary.SkippedRows)
	assert.Len(t, result.Dataset.Courses, 1)
}

func TestIngestTimetableVariant(t *testing.T) {
	result, err := newTestIngestor().Ingest(timetableDoc, Options{})
	require.NoError(t, err)

	assert.Equal(t, VariantTimetable, result.Profile.Variant)

	// One fixed fall term regardless of the per-row semester levels.
	require.Len(t, result.Dataset.Semesters, 1)
	assert.Equal(t, "Fall 2025", result.Dataset.Semesters[0].Name)

	require.Len(t, result.Dataset.Courses, 2)
	assert.Equal(t, "CS1410", result.Dataset.Courses[0].Code)
	assert.Equal(t, "1", result.Dataset.Courses[0].Semester)
	assert.Equal(t, 50, result.Dataset.Courses[0].EstimatedStudents)

	require.Len(t, result.Dataset.Faculty, 2)
	assert.Equal(t, 20, result.Dataset.Faculty[0].MaxWeeklyHours)

	require.Len(t, result.Dataset.Allotments, 2)
	first := result.Dataset.Allotments[0]
	assert.Equal(t, []string{"HM"}, first.ClassIDs)
	assert.Equal(t, result.Dataset.Rooms[0].ID, first.PreferredRoomID)
	require.NotNil(t, first.ManualSchedule)
	assert.Equal(t, "Monday", first.ManualSchedule.Day)
	assert.Equal(t, "08:30", first.ManualSchedule.Start)
	assert.Equal(t, "10:00", first.ManualSchedule.End)

	second := result.Dataset.Allotments[1]
	require.NotNil(t, second.ManualSchedule)
	assert.Equal(t, "13:00", second.ManualSchedule.Start)

	assert.Equal(t, 2, result.Summary.SchedulesExtracted)
}

func TestIngestVariantOverride(t *testing.T) {
	profile := TimetableProfile(Settings{})
	result, err := newTestIngestor().Ingest(planOfStudyDoc, Options{Profile: &profile})
	require.NoError(t, err)

	assert.Equal(t, VariantTimetable, result.Profile.Variant)
	require.Len(t, result.Dataset.Semesters, 1)
	assert.Equal(t, "Fall 2025", result.Dataset.Semesters[0].Name)
	require.Len(t, result.Dataset.Allotments, 2)
	assert.Equal(t, []string{"HM"}, result.Dataset.Allotments[0].ClassIDs)
}

func TestIngestSeedMergesIntoExistingRegistries(t *testing.T) {
	first, err := newTestIngestor().Ingest(planOfStudyDoc, Options{})
	require.NoError(t, err)

	doc := `Department,Semester,Section,Subject,Course Code,Credit Hours,Teachers,Room
BS-AI,1,HM,Computer Programming,,3,Dr. John Smith,R6`

	second, err := newTestIngestor().Ingest(doc, Options{Seed: &first.Dataset})
	require.NoError(t, err)

	// Nothing new: every entity resolves to the seeded records.
	assert.Len(t, second.Dataset.Departments, 1)
	assert.Len(t, second.Dataset.Courses, 2)
	assert.Len(t, second.Dataset.Faculty, 1)
	assert.Len(t, second.Dataset.Allotments, 2)
	assert.Equal(t, first.Dataset.Faculty[0].ID, second.Dataset.Faculty[0].ID)
}

func TestIngestSeedSummaryCountsDistinctCourses(t *testing.T) {
	first, err := newTestIngestor().Ingest(planOfStudyDoc, Options{})
	require.NoError(t, err)

	// Re-ingesting the same document seeded with its own output must report
	// the same counts, even though seeded courses also carry a code alias.
	second, err := newTestIngestor().Ingest(planOfStudyDoc, Options{Seed: &first.Dataset})
	require.NoError(t, err)

	assert.Equal(t, 2, second.Summary.UniqueCourses)
	assert.Equal(t, len(second.Dataset.Courses), second.Summary.UniqueCourses)
	assert.Equal(t, first.Summary.UniqueDepartments, second.Summary.UniqueDepartments)
	assert.Equal(t, first.Summary.UniqueFaculty, second.Summary.UniqueFaculty)
}

func TestIngestSeedAllotmentsDetachedFromCaller(t *testing.T) {
	first, err := newTestIngestor().Ingest(planOfStudyDoc, Options{})
	require.NoError(t, err)

	// Give the seeded slice spare capacity so an aliasing append into the
	// caller's backing array would be observable.
	seeded := &first.Dataset.Allotments[0]
	ids := make([]string, len(seeded.ClassIDs), len(seeded.ClassIDs)+4)
	copy(ids, seeded.ClassIDs)
	seeded.ClassIDs = ids

	doc := `Department,Semester,Section,Subject,Course Code,Credit Hours,Teachers,Room
BS-AI,1,EM,Computer Programming,,3,Dr. John Smith,R6`

	second, err := newTestIngestor().Ingest(doc, Options{Seed: &first.Dataset})
	require.NoError(t, err)

	merged := second.Dataset.Allotments[0]
	assert.Equal(t, []string{"BS-AI-1-HM", "BS-AI-1-EM"}, merged.ClassIDs)
	assert.Equal(t, []string{"BS-AI-1-HM"}, seeded.ClassIDs)
	assert.Equal(t, "", ids[:cap(ids)][1])
}
